package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/ManuelReschke/PixelShop/internal/pkg/orders"
	"github.com/ManuelReschke/PixelShop/internal/pkg/payment"
)

const stripeSignatureHeader = "Stripe-Signature"

type WebhookController struct {
	cfg      Config
	recorder *orders.Recorder
}

func NewWebhookController(cfg Config, recorder *orders.Recorder) *WebhookController {
	return &WebhookController{cfg: cfg.withDefaults(), recorder: recorder}
}

// HandleStripeWebhook acknowledges every verified delivery with an empty 200.
// Only storage failures answer 500 so the provider redelivers.
func (wc *WebhookController) HandleStripeWebhook(c *fiber.Ctx) error {
	rawBody := append([]byte(nil), c.BodyRaw()...)
	signature := strings.TrimSpace(c.Get(stripeSignatureHeader))
	trace := uuid.NewString()

	ctx, cancel := requestContext(c, wc.cfg.RequestTimeout)
	defer cancel()

	res, err := wc.recorder.HandleWebhook(ctx, rawBody, signature)
	if err != nil {
		if errors.Is(err, payment.ErrInvalidSignature) {
			fiberlog.Warnf("[Webhook] %s rejected: %v", trace, err)
			return c.Status(fiber.StatusBadRequest).Send(nil)
		}
		fiberlog.Errorf("[Webhook] %s failed: %v", trace, err)
		return c.Status(fiber.StatusInternalServerError).Send(nil)
	}

	switch {
	case res.Duplicate:
		fiberlog.Infof("[Webhook] %s duplicate delivery %s", trace, res.EventID)
	case res.Ignored:
		fiberlog.Debugf("[Webhook] %s ignored %s (%s)", trace, res.EventID, res.EventType)
	default:
		fiberlog.Infof("[Webhook] %s processed %s created=%t", trace, res.EventID, res.Created)
	}
	return c.Status(fiber.StatusOK).Send(nil)
}
