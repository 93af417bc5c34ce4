// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/Lslreddy/surplus-to-success/pkg/database"
	"github.com/Lslreddy/surplus-to-success/pkg/httpx"
	donationdomain "github.com/Lslreddy/surplus-to-success/services/donation/domain"
	profiledomain "github.com/Lslreddy/surplus-to-success/services/profile/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, donationdomain.ErrDonationNotFound),
		errors.Is(err, donationdomain.ErrClaimNotFound),
		errors.Is(err, donationdomain.ErrCategoryNotFound),
		errors.Is(err, profiledomain.ErrProfileNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, donationdomain.ErrNotAuthorized):
		return http.StatusForbidden // 403
	case errors.Is(err, profiledomain.ErrInvalidCredentials):
		return http.StatusUnauthorized // 401
	case errors.Is(err, donationdomain.ErrDonationConflict),
		errors.Is(err, donationdomain.ErrDuplicateClaim),
		errors.Is(err, profiledomain.ErrEmailTaken),
		errors.Is(err, profiledomain.ErrRoleImmutable):
		return http.StatusConflict // 409
	case errors.Is(err, donationdomain.ErrInvalidDonation),
		errors.Is(err, profiledomain.ErrInvalidProfile):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, database.ErrUnavailable):
		return http.StatusServiceUnavailable // 503, retryable
	default:
		return http.StatusInternalServerError // 500
	}
}
