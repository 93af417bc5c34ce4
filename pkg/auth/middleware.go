package auth

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/Lslreddy/surplus-to-success/pkg/httpx"
	"github.com/Lslreddy/surplus-to-success/pkg/logger"
)

const sessionName = "plateshare_session"

const (
	sessionActorIDKey  = "actor_id"
	sessionRoleKey     = "role"
	sessionFullNameKey = "full_name"
)

// RequireAuth is a chi middleware that enforces authentication via session
// cookies. It reads the session, reconstructs the Actor, and injects it into
// the request context. Returns 401 if the session is missing or malformed.
//
// After this middleware, handlers can safely call auth.ActorFromCtx(r.Context()).
func RequireAuth(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, sessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			idStr, ok := session.Values[sessionActorIDKey].(string)
			if !ok || idStr == "" {
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			actorID, err := uuid.Parse(idStr)
			if err != nil {
				log.WarnContext(r.Context(), "invalid actor_id in session", "actor_id", idStr, "error", err)
				httpx.JSONError(w, http.StatusUnauthorized, "invalid session data")
				return
			}

			roleStr, _ := session.Values[sessionRoleKey].(string)
			role, err := ParseRole(roleStr)
			if err != nil {
				log.WarnContext(r.Context(), "invalid role in session", "role", roleStr)
				httpx.JSONError(w, http.StatusUnauthorized, "invalid session data")
				return
			}

			fullName, _ := session.Values[sessionFullNameKey].(string)

			ctx := WithActor(r.Context(), Actor{ID: actorID, Role: role, FullName: fullName})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// EstablishSession writes a session cookie for actor after login/registration.
func EstablishSession(w http.ResponseWriter, r *http.Request, store sessions.Store, actor Actor) error {
	session, err := store.Get(r, sessionName)
	if err != nil {
		// A tampered cookie still yields a usable fresh session.
		session, _ = store.New(r, sessionName)
	}
	session.Values[sessionActorIDKey] = actor.ID.String()
	session.Values[sessionRoleKey] = string(actor.Role)
	session.Values[sessionFullNameKey] = actor.FullName
	return session.Save(r, w)
}

// ClearSession deletes the actor's session on logout.
func ClearSession(w http.ResponseWriter, r *http.Request, store sessions.Store) error {
	session, err := store.Get(r, sessionName)
	if err != nil {
		return nil
	}
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
