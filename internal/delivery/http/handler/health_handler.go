package handler

import (
	"context"
	"time"

	"style-sync/internal/delivery/http/dto"
	"style-sync/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// Pinger is any dependency whose liveness is reported on /health.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	deps map[string]Pinger
}

func NewHealthHandler(deps map[string]Pinger) *HealthHandler {
	return &HealthHandler{deps: deps}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

// Health always answers 200: optional dependencies being down only degrades
// the service.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	res := dto.HealthResponse{Status: "ok", Components: make(map[string]bool, len(h.deps))}
	for name, p := range h.deps {
		ok := p != nil && p.Ping(ctx) == nil
		res.Components[name] = ok
		if !ok {
			res.Status = "degraded"
		}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
