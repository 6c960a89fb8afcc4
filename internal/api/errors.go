package api

import (
	"net/http"

	"github.com/meepleshelf/meeple-api/internal/api/shared"
	"github.com/meepleshelf/meeple-api/internal/apperr"
)

// InternalErrorMessage is the only message ever returned for failures that
// are not typed application errors. Internal detail stays in the logs.
const InternalErrorMessage = "An unexpected internal server error occurred."

// MissingInformationMessage is returned when a required field is absent
// from a request.
const MissingInformationMessage = "Missing required information"

// HandleAPIError is the single translation point from errors to HTTP
// responses. A typed application error responds with its carried status and
// message verbatim; anything else is logged and answered with a generic 500.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	if appErr, ok := apperr.As(err); ok {
		shared.RespondWithError(w, r, appErr.Status, appErr.Message)
		return
	}

	shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, InternalErrorMessage, err)
}
