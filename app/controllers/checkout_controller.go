package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/ManuelReschke/PixelShop/internal/pkg/checkout"
)

type CheckoutController struct {
	cfg       Config
	initiator *checkout.Initiator
}

func NewCheckoutController(cfg Config, initiator *checkout.Initiator) *CheckoutController {
	return &CheckoutController{cfg: cfg.withDefaults(), initiator: initiator}
}

// HandleCreateSession answers {"url": ...} with the hosted checkout page.
func (cc *CheckoutController) HandleCreateSession(c *fiber.Ctx) error {
	var req checkout.Request
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid JSON body")
	}

	ctx, cancel := requestContext(c, cc.cfg.RequestTimeout)
	defer cancel()

	res, err := cc.initiator.Create(ctx, req, baseURL(c, cc.cfg.PublicDomain))
	if err != nil {
		var inputErr *checkout.InputError
		if errors.As(err, &inputErr) {
			return jsonError(c, fiber.StatusBadRequest, inputErr.Error())
		}
		fiberlog.Errorf("[Checkout] create session: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"url": res.URL})
}
