package httpx

import (
	"errors"
	"net/http"
)

// Sentinel errors for the service layer. Handlers wrap these so one
// mapping covers every route.
var (
	ErrValidation      = errors.New("validation failed")
	ErrBusy            = errors.New("request already in flight")
	ErrUpstream        = errors.New("upstream service failed")
	ErrSchema          = errors.New("upstream response violates schema")
	ErrUpstreamTimeout = errors.New("upstream service timed out")
	ErrConfiguration   = errors.New("service misconfigured")
)

// RespondError maps service errors to HTTP responses using RFC7807.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	case errors.Is(err, ErrBusy):
		Problem(w, http.StatusConflict, "Request In Flight", err.Error())
	case errors.Is(err, ErrUpstreamTimeout):
		Problem(w, http.StatusGatewayTimeout, "Upstream Timeout", err.Error())
	case errors.Is(err, ErrSchema):
		Problem(w, http.StatusBadGateway, "Invalid Upstream Response", err.Error())
	case errors.Is(err, ErrUpstream):
		Problem(w, http.StatusBadGateway, "Upstream Failure", err.Error())
	case errors.Is(err, ErrConfiguration):
		Problem(w, http.StatusInternalServerError, "Configuration Error", err.Error())
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
