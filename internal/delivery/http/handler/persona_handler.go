package handler

import (
	"style-sync/internal/delivery/http/dto"
	"style-sync/internal/pkg/response"
	"style-sync/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PersonaHandler struct {
	uc usecase.PersonaUsecase
}

func NewPersonaHandler(uc usecase.PersonaUsecase) *PersonaHandler {
	return &PersonaHandler{uc: uc}
}

func (h *PersonaHandler) Resolve(c fiber.Ctx) error {
	id, err := requireIdentity(c)
	if err != nil {
		return err
	}
	res, err := h.uc.Resolve(c.Context(), id)
	if err != nil {
		return mapError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *PersonaHandler) Catalog(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewPersonaSummaries(h.uc.Catalog()))
}
