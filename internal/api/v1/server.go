package apiv1

import "github.com/gofiber/fiber/v2"

// ServerInterface represents all server handlers of public/docs/v1/openapi.yml.
type ServerInterface interface {
	// (GET /ping)
	GetPing(c *fiber.Ctx) error
	// (GET /stats)
	GetStats(c *fiber.Ctx) error
}

// RegisterHandlers mounts the v1 handlers on router. Extra middleware, such
// as authentication, is applied to the stats endpoint only.
func RegisterHandlers(router fiber.Router, si ServerInterface, statsMiddleware ...fiber.Handler) {
	router.Get("/ping", si.GetPing)

	stats := append(append([]fiber.Handler{}, statsMiddleware...), si.GetStats)
	router.Get("/stats", stats...)
}
