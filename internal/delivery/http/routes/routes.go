package routes

import (
	"style-sync/internal/delivery/http/handler"
	"style-sync/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

// SocketHandler upgrades an authenticated request to the realtime channel.
type SocketHandler interface {
	Handle(c fiber.Ctx, userID string) error
}

type Handlers struct {
	Health    *handler.HealthHandler
	Quiz      *handler.QuizHandler
	Persona   *handler.PersonaHandler
	Outfit    *handler.OutfitHandler
	Dashboard *handler.DashboardHandler
	Debug     *handler.DebugHandler
	Socket    SocketHandler
	Metrics   fiber.Handler
}

type Registry struct {
	h    Handlers
	auth *middleware.AuthMiddleware
}

func NewRegistry(h Handlers, auth *middleware.AuthMiddleware) *Registry {
	return &Registry{h: h, auth: auth}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerOps(app)
	r.registerAPI(app.Group("/api"))
	r.registerSocket(app)
}

func (r *Registry) registerOps(app *fiber.App) {
	if r.h.Health != nil {
		r.h.Health.RegisterRoutes(app)
	}
	if r.h.Metrics != nil {
		app.Get("/metrics", r.h.Metrics)
	}
}

func (r *Registry) registerAPI(api fiber.Router) {
	required := r.auth.Required()
	optional := r.auth.Optional()

	if r.h.Quiz != nil {
		r.h.Quiz.RegisterRoutes(api.Group("/style-quiz", optional))
	}

	if r.h.Persona != nil {
		api.Get("/persona", required, r.h.Persona.Resolve)
		api.Get("/personas", r.h.Persona.Catalog)
	}

	if r.h.Outfit != nil {
		api.Post("/outfits/generate", required, r.h.Outfit.Generate)
		api.Get("/outfits/daily", required, r.h.Outfit.Daily)
		api.Post("/outfits/:id/rating", required, r.h.Outfit.Rate)
		api.Post("/outfit/create", required, r.h.Outfit.Create)
		api.Post("/outfit/wear", required, r.h.Outfit.Wear)
		api.Put("/location", required, r.h.Outfit.SaveLocation)
	}

	if r.h.Dashboard != nil {
		r.h.Dashboard.RegisterRoutes(api.Group("/dashboard", required))
	}

	if r.h.Debug != nil {
		api.Get("/debug-stats", r.h.Debug.Stats)
	}
}

func (r *Registry) registerSocket(app *fiber.App) {
	if r.h.Socket == nil {
		return
	}

	app.Get("/ws", r.auth.RequiredSocket(), func(c fiber.Ctx) error {
		id, ok := middleware.IdentityFrom(c)
		if !ok {
			return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}
		return r.h.Socket.Handle(c, id.UserID)
	})
}
