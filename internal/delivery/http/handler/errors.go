package handler

import (
	"errors"

	"style-sync/internal/delivery/http/middleware"
	"style-sync/internal/domain/profile"
	"style-sync/internal/pkg/response"
	"style-sync/internal/usecase"
	"style-sync/internal/usecase/dailyoutfit"

	"github.com/gofiber/fiber/v3"
)

func requireIdentity(c fiber.Ctx) (profile.Identity, error) {
	id, ok := middleware.IdentityFrom(c)
	if !ok || id.UserID == "" {
		return profile.Identity{}, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return id, nil
}

// optionalIdentity never fails; routes behind optional auth always carry an
// identity, anonymous or not.
func optionalIdentity(c fiber.Ctx) profile.Identity {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return profile.Identity{Name: profile.PlaceholderName, Email: profile.PlaceholderEmail, Anonymous: true}
	}
	return id
}

func mapError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput), errors.Is(err, dailyoutfit.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrUnauthorized), errors.Is(err, dailyoutfit.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, response.MessageNotFound, nil, err)
	case errors.Is(err, usecase.ErrBackendUnavailable):
		return middleware.NewAppError(fiber.StatusBadGateway, response.MessageBadGateway, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
