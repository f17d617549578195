package handler

import (
	"style-sync/internal/pkg/response"
	"style-sync/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type DashboardHandler struct {
	uc usecase.DashboardUsecase
}

func NewDashboardHandler(uc usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/style-goals", h.StyleGoals)
	r.Get("/wardrobe-gaps", h.WardrobeGaps)
}

func (h *DashboardHandler) StyleGoals(c fiber.Ctx) error {
	id, err := requireIdentity(c)
	if err != nil {
		return err
	}
	res, err := h.uc.StyleGoals(c.Context(), id)
	if err != nil {
		return mapError(err)
	}
	if res.Partial {
		return response.Fallback(c, res)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *DashboardHandler) WardrobeGaps(c fiber.Ctx) error {
	id, err := requireIdentity(c)
	if err != nil {
		return err
	}
	res, err := h.uc.WardrobeGaps(c.Context(), id)
	if err != nil {
		return mapError(err)
	}
	if res.Source != usecase.SourceBackend {
		return response.Fallback(c, res)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
