package middleware

import (
	"github.com/gofiber/fiber/v3"
)

type HTTPObserver interface {
	ObserveHTTP(method, route string, status int)
}

// Metrics counts requests by matched route pattern so path parameters do not
// explode label cardinality.
func Metrics(obs HTTPObserver) fiber.Handler {
	return func(c fiber.Ctx) error {
		err := c.Next()
		if obs == nil {
			return err
		}
		route := "unmatched"
		if r := c.Route(); r != nil && r.Path != "" && r.Path != "/" {
			route = r.Path
		}
		obs.ObserveHTTP(c.Method(), route, c.Response().StatusCode())
		return err
	}
}
