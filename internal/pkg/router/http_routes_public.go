package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/PixelShop/app/controllers"
	"github.com/ManuelReschke/PixelShop/internal/pkg/constants"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App, store *controllers.StoreController, orderAPI *controllers.OrderAPIController) {
	app.Get(constants.RouteIndex, store.HandleIndex)
	app.Get(constants.RouteSuccess, store.HandleSuccess)
	app.Get(constants.RouteOrders, orderAPI.HandleListOrders)
}
