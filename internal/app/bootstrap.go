package app

import (
	"fmt"
	"strings"

	"style-sync/internal/config"
	"style-sync/internal/delivery/http/handler"
	"style-sync/internal/delivery/http/middleware"
	"style-sync/internal/delivery/http/routes"
	"style-sync/internal/pkg/jwt"
	"style-sync/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.Metrics(c.Metrics))
	app.Use(middleware.NewAccessLogMiddleware(c.Logger.Named("http")).Middleware())
	app.Use(middleware.NewErrorMiddleware(c.Logger.Named("http")).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	deps := map[string]handler.Pinger{}
	if c.Redis.Available() {
		deps["redis"] = c.Redis
	}
	if c.DB != nil {
		deps["profile_store"] = c.DB
	}

	auth := middleware.NewAuthMiddleware(jwt.NewDecoder(c.Config.Auth.JWTSecret), c.Logger.Named("auth")).
		WithConfirmer(c.Backend, c.Config.Auth.ConfirmTTL)

	routes.NewRegistry(routes.Handlers{
		Health:    handler.NewHealthHandler(deps),
		Quiz:      handler.NewQuizHandler(c.Quiz),
		Persona:   handler.NewPersonaHandler(c.Persona),
		Outfit:    handler.NewOutfitHandler(c.Outfit, c.Daily),
		Dashboard: handler.NewDashboardHandler(c.Dashboard),
		Debug:     handler.NewDebugHandler(c.Debug),
		Socket:    ws.NewHandler(c.Hub, c.Logger.Named("ws")),
		Metrics:   adaptor.HTTPHandler(promhttp.HandlerFor(c.Metrics.Registry(), promhttp.HandlerOpts{})),
	}, auth).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
