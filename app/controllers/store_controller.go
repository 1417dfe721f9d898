package controllers

import (
	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/ManuelReschke/PixelShop/app/repository"
	"github.com/ManuelReschke/PixelShop/internal/pkg/catalog"
	"github.com/ManuelReschke/PixelShop/internal/pkg/constants"
	"github.com/ManuelReschke/PixelShop/internal/pkg/orders"
	"github.com/ManuelReschke/PixelShop/internal/pkg/viewmodel"
)

const SuccessMessage = "Payment successful! Order recorded."

// StoreController renders the catalog page and handles the browser return
// from the hosted checkout.
type StoreController struct {
	cfg      Config
	catalog  *catalog.Catalog
	orders   repository.OrderRepository
	recorder *orders.Recorder
}

func NewStoreController(cfg Config, c *catalog.Catalog, orderRepo repository.OrderRepository, recorder *orders.Recorder) *StoreController {
	return &StoreController{
		cfg:      cfg.withDefaults(),
		catalog:  c,
		orders:   orderRepo,
		recorder: recorder,
	}
}

func (sc *StoreController) HandleIndex(c *fiber.Ctx) error {
	return sc.render(c, "")
}

// HandleSuccess never surfaces provider or storage errors to the shopper;
// every failure goes back to the catalog.
func (sc *StoreController) HandleSuccess(c *fiber.Ctx) error {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		return c.Redirect(constants.RouteIndex)
	}

	ctx, cancel := requestContext(c, sc.cfg.RequestTimeout)
	defer cancel()

	if _, err := sc.recorder.ConfirmRedirect(ctx, sessionID); err != nil {
		fiberlog.Warnf("[Store] confirm session %s: %v", sessionID, err)
		return c.Redirect(constants.RouteIndex)
	}
	return sc.render(c, SuccessMessage)
}

func (sc *StoreController) render(c *fiber.Ctx, msg string) error {
	ctx, cancel := requestContext(c, sc.cfg.RequestTimeout)
	defer cancel()

	recent, err := sc.orders.GetRecent(ctx, sc.cfg.RecentLimit)
	if err != nil {
		fiberlog.Errorf("[Store] load recent orders: %v", err)
	}

	return c.Render("index", viewmodel.Store{
		Layout: viewmodel.Layout{
			Page:      "index",
			Title:     "PixelShop",
			Msg:       msg,
			AppDomain: baseURL(c, sc.cfg.PublicDomain),
		},
		Products:       viewmodel.NewProducts(sc.catalog.Products()),
		Orders:         viewmodel.NewOrders(recent),
		PublishableKey: sc.cfg.PublishableKey,
		CheckoutPath:   constants.RouteCreateCheckoutSession,
	})
}
