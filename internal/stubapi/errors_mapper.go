package stubapi

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-feed-reader/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrInvalidDataProvided:              http.StatusBadRequest,
	ErrWrongCredentials:                 http.StatusUnauthorized,
	ErrEmptyAuthorizationHeader:         http.StatusUnauthorized,
	ErrTokenIsExpiredOrInvalid:          http.StatusUnauthorized,
	utils.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError responds with the status mapped from err. Internal errors are
// reported with the generic status text only.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	msg := http.StatusText(status)
	if status != http.StatusInternalServerError {
		msg = err.Error()
	}
	http.Error(w, msg, status)
}
