package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/monitor"

	"github.com/ManuelReschke/PixelShop/app/controllers"
	apiv1 "github.com/ManuelReschke/PixelShop/internal/api/v1"
	"github.com/ManuelReschke/PixelShop/internal/pkg/constants"
)

type HttpRouter struct {
	svc *Services
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	cfg := h.svc.Settings.Controllers

	store := controllers.NewStoreController(cfg, h.svc.Catalog, h.svc.Repos.Order, h.svc.Recorder())
	checkoutCtrl := controllers.NewCheckoutController(cfg, h.svc.Initiator())
	webhook := controllers.NewWebhookController(cfg, h.svc.Recorder())
	orderAPI := controllers.NewOrderAPIController(cfg, h.svc.Repos.Order)

	h.registerPublicRoutes(app, store, orderAPI)
	app.Post(constants.RouteCreateCheckoutSession, h.svc.checkoutLimiter(), checkoutCtrl.HandleCreateSession)

	// Provider webhooks (signature-verified in the recorder)
	app.Post(constants.RouteWebhook, webhook.HandleStripeWebhook)

	// fiber metrics
	app.Get(constants.RouteMetrics, h.svc.adminAuth(), monitor.New(monitor.Config{Title: "PixelShop Metrics"}))

	app.Get(constants.RoutePing, apiv1.NewAPIServer(h.svc.Counters, h.svc.Repos.Order).GetPing)
}

func NewHttpRouter(svc *Services) *HttpRouter {
	return &HttpRouter{svc: svc}
}
