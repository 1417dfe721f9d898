package controllers

import (
	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"gorm.io/datatypes"

	"github.com/ManuelReschke/PixelShop/app/repository"
)

type orderResponse struct {
	ID        uint           `json:"id"`
	Amount    int64          `json:"amount"`
	Items     datatypes.JSON `json:"items"`
	CreatedAt string         `json:"created_at"`
}

type OrderAPIController struct {
	cfg    Config
	orders repository.OrderRepository
}

func NewOrderAPIController(cfg Config, orderRepo repository.OrderRepository) *OrderAPIController {
	return &OrderAPIController{cfg: cfg.withDefaults(), orders: orderRepo}
}

// HandleListOrders returns the most recent orders, newest first.
func (oc *OrderAPIController) HandleListOrders(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, oc.cfg.RequestTimeout)
	defer cancel()

	recent, err := oc.orders.GetRecent(ctx, oc.cfg.RecentLimit)
	if err != nil {
		fiberlog.Errorf("[Orders] list recent: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to load orders")
	}

	out := make([]orderResponse, 0, len(recent))
	for _, o := range recent {
		out = append(out, orderResponse{
			ID:        o.ID,
			Amount:    o.Amount,
			Items:     o.Items,
			CreatedAt: formatTime(o.CreatedAt),
		})
	}
	return c.JSON(fiber.Map{"orders": out})
}
