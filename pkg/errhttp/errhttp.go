// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/ghuser/inventory/pkg/httpx"
	itemdomain "github.com/ghuser/inventory/services/item/domain"
)

// production gates 5xx detail bodies. Off by default so development and tests
// see full error messages; cmd/api flips it from config at startup.
var production atomic.Bool

// SetProduction toggles production error redaction. Call once at startup.
func SetProduction(on bool) {
	production.Store(on)
}

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors, which covers
// unanticipated store-level failures (network loss and the like); in
// production those 5xx bodies are redacted to the generic status text.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status, production.Load()))
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, itemdomain.ErrItemNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, itemdomain.ErrItemAlreadyExists):
		return http.StatusConflict // 409
	case errors.Is(err, itemdomain.ErrInvalidItem):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, itemdomain.ErrNoArguments):
		return http.StatusBadRequest // 400
	case errors.Is(err, itemdomain.ErrDBOperationFailed):
		return http.StatusBadRequest // 400
	default:
		return http.StatusInternalServerError // 500
	}
}
