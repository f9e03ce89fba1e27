package handler

import (
	"errors"
	"net/http"

	"github.com/campuslink/backend/internal/api/response"
	"github.com/campuslink/backend/internal/domain"
	"github.com/rs/zerolog/log"
)

// respondError maps domain errors to HTTP status codes. Anything untyped is
// logged and hidden behind a generic 500.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrDepthLimitExceeded):
		response.BadRequest(w, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		response.Unauthorized(w, err.Error())
	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrOwnerCannotLeave):
		response.Forbidden(w, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrDuplicateRequest),
		errors.Is(err, domain.ErrEmailTaken):
		response.Conflict(w, err.Error())
	default:
		log.Error().Err(err).Msg("Unhandled error")
		response.InternalError(w, "internal server error")
	}
}
