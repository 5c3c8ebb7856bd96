package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-quiz/internal/service"
	"github.com/MKhiriev/go-quiz/internal/store"
)

// errorStatusMap lists errors whose status does not depend on the operation.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:        http.StatusBadRequest,
	service.ErrInvalidSelectedOptionIndex: http.StatusBadRequest,
	service.ErrWrongPassword:              http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:    http.StatusUnauthorized,

	store.ErrQuizNotFound:            http.StatusNotFound,
	store.ErrQuizConstraintViolation: http.StatusBadRequest,
	store.ErrLoginAlreadyExists:      http.StatusConflict,
	store.ErrNoUserWasFound:          http.StatusNotFound,
}

// statusFromError returns the status registered for err in errorStatusMap,
// or fallback when err matches none of them.
func statusFromError(err error, fallback int) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return fallback
}
