package handler

import (
	"style-sync/internal/pkg/response"
	"style-sync/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type DebugHandler struct {
	uc usecase.DebugUsecase
}

func NewDebugHandler(uc usecase.DebugUsecase) *DebugHandler {
	return &DebugHandler{uc: uc}
}

func (h *DebugHandler) Stats(c fiber.Ctx) error {
	stats := h.uc.Stats(c.Context())
	if mock, _ := stats["mock"].(bool); mock {
		return response.Fallback(c, stats)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, stats)
}
