package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Lslreddy/surplus-to-success/pkg/database"
	donationdomain "github.com/Lslreddy/surplus-to-success/services/donation/domain"
	profiledomain "github.com/Lslreddy/surplus-to-success/services/profile/domain"
)

func TestMapErrorToStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"donation not found", donationdomain.ErrDonationNotFound, http.StatusNotFound},
		{"claim not found", donationdomain.ErrClaimNotFound, http.StatusNotFound},
		{"category not found", donationdomain.ErrCategoryNotFound, http.StatusNotFound},
		{"profile not found", profiledomain.ErrProfileNotFound, http.StatusNotFound},
		{"not authorized", donationdomain.ErrNotAuthorized, http.StatusForbidden},
		{"invalid credentials", profiledomain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"donation conflict", donationdomain.ErrDonationConflict, http.StatusConflict},
		{"duplicate claim", donationdomain.ErrDuplicateClaim, http.StatusConflict},
		{"email taken", profiledomain.ErrEmailTaken, http.StatusConflict},
		{"role immutable", profiledomain.ErrRoleImmutable, http.StatusConflict},
		{"invalid donation", donationdomain.ErrInvalidDonation, http.StatusUnprocessableEntity},
		{"invalid profile", profiledomain.ErrInvalidProfile, http.StatusUnprocessableEntity},
		{"database unavailable", database.ErrUnavailable, http.StatusServiceUnavailable},
		{"unrecognized error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapErrorToStatus(tt.err); got != tt.want {
				t.Errorf("mapErrorToStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})

		t.Run(tt.name+" wrapped", func(t *testing.T) {
			wrapped := fmt.Errorf("outer context: %w", tt.err)
			if got := mapErrorToStatus(wrapped); got != tt.want {
				t.Errorf("mapErrorToStatus(wrapped %v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, fmt.Errorf("claim donation: %w", donationdomain.ErrDuplicateClaim))

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("unexpected content type %q", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response must be JSON: %v", err)
	}
	if body["error"] == "" {
		t.Fatal("response must carry an error message")
	}
}
