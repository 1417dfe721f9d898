package router

import (
	apiv1 "github.com/ManuelReschke/PixelShop/internal/api/v1"
	"github.com/ManuelReschke/PixelShop/internal/pkg/constants"

	"github.com/gofiber/fiber/v2"
)

type ApiRouter struct {
	svc *Services
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group(constants.RouteAPI)
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	// API v1 routes
	v1 := api.Group("/v1")
	apiServer := apiv1.NewAPIServer(h.svc.Counters, h.svc.Repos.Order)
	apiv1.RegisterHandlers(v1, apiServer, h.svc.adminAuth())
}

func NewApiRouter(svc *Services) *ApiRouter {
	return &ApiRouter{svc: svc}
}
