package handler

import (
	"style-sync/internal/delivery/http/dto"
	"style-sync/internal/delivery/http/middleware"
	"style-sync/internal/pkg/response"
	"style-sync/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type QuizHandler struct {
	uc usecase.QuizUsecase
}

func NewQuizHandler(uc usecase.QuizUsecase) *QuizHandler {
	return &QuizHandler{uc: uc}
}

func (h *QuizHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/questions", h.Questions)
	r.Post("/submit", h.Submit)
}

func (h *QuizHandler) Questions(c fiber.Ctx) error {
	qs, fallback := h.uc.Questions(c.Context())
	res := dto.QuestionsResponse{Questions: qs, Fallback: fallback}
	if fallback {
		return response.Fallback(c, res)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *QuizHandler) Submit(c fiber.Ctx) error {
	var req dto.QuizSubmitRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	res, err := h.uc.Submit(c.Context(), optionalIdentity(c), usecase.SubmitInput{
		Answers:      req.Answers,
		Preferences:  req.Preferences,
		Measurements: req.Measurements,
		Sizes:        req.Sizes,
	})
	if err != nil {
		return mapError(err)
	}
	return response.Success(c, fiber.StatusOK, "Quiz submitted", res)
}
