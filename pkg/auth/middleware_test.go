package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/Lslreddy/surplus-to-success/pkg/config"
	"github.com/Lslreddy/surplus-to-success/pkg/logger"
)

func newTestLogger() logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

func newTestStore() sessions.Store {
	return sessions.NewCookieStore([]byte("test-auth-key-0123456789abcdef00"))
}

func TestRequireAuth_NoSession(t *testing.T) {
	store := newTestStore()
	handler := RequireAuth(store, newTestLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a session")
	}))

	req := httptest.NewRequest(http.MethodGet, "/donations", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAuth_ValidSession(t *testing.T) {
	store := newTestStore()
	actor := Actor{ID: uuid.New(), Role: RoleNGO, FullName: "Casey Nguyen"}

	// Establish the session and capture its cookie.
	loginReq := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	loginRec := httptest.NewRecorder()
	if err := EstablishSession(loginRec, loginReq, store, actor); err != nil {
		t.Fatalf("establish session: %v", err)
	}
	cookies := loginRec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie")
	}

	var got Actor
	handler := RequireAuth(store, newTestLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		got, err = ActorFromCtx(r.Context())
		if err != nil {
			t.Fatalf("actor must be in context: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/donations", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.ID != actor.ID || got.Role != actor.Role || got.FullName != actor.FullName {
		t.Fatalf("context actor %+v does not match session actor %+v", got, actor)
	}
}

func TestRequireAuth_TamperedCookie(t *testing.T) {
	store := newTestStore()
	handler := RequireAuth(store, newTestLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with a tampered cookie")
	}))

	req := httptest.NewRequest(http.MethodGet, "/donations", nil)
	req.AddCookie(&http.Cookie{Name: sessionName, Value: "not-a-valid-session"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestClearSession(t *testing.T) {
	store := newTestStore()
	actor := Actor{ID: uuid.New(), Role: RoleDonor}

	loginReq := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	loginRec := httptest.NewRecorder()
	if err := EstablishSession(loginRec, loginReq, store, actor); err != nil {
		t.Fatalf("establish session: %v", err)
	}

	logoutReq := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	for _, c := range loginRec.Result().Cookies() {
		logoutReq.AddCookie(c)
	}
	logoutRec := httptest.NewRecorder()
	if err := ClearSession(logoutRec, logoutReq, store); err != nil {
		t.Fatalf("clear session: %v", err)
	}

	var cleared bool
	for _, c := range logoutRec.Result().Cookies() {
		if c.Name == sessionName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("logout must expire the session cookie")
	}
}

func TestActorContext(t *testing.T) {
	if _, err := ActorFromCtx(httptest.NewRequest(http.MethodGet, "/", nil).Context()); err == nil {
		t.Fatal("expected ErrActorNotFound on a bare context")
	}

	actor := Actor{ID: uuid.New(), Role: RoleVolunteer}
	ctx := WithActor(httptest.NewRequest(http.MethodGet, "/", nil).Context(), actor)
	got, err := ActorFromCtx(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != actor {
		t.Fatalf("expected %+v, got %+v", actor, got)
	}
}
