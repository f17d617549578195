package usecase

import (
	"errors"

	"style-sync/internal/infrastructure/backend"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("not found")
	ErrBackendUnavailable = errors.New("styling backend unavailable")
	ErrInternal           = errors.New("internal error")
)

// classifyBackendError maps backend client failures onto usecase errors.
func classifyBackendError(err error) error {
	if err == nil {
		return nil
	}
	switch code := backend.StatusCode(err); {
	case code == 401 || code == 403:
		return ErrUnauthorized
	case code == 404:
		return ErrNotFound
	case code >= 400 && code < 500:
		return ErrInvalidInput
	}
	if backend.IsUnavailable(err) {
		return ErrBackendUnavailable
	}
	return ErrInternal
}
