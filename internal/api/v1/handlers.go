package apiv1

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/ManuelReschke/PixelShop/app/repository"
	"github.com/ManuelReschke/PixelShop/internal/pkg/metrics/counter"
)

const statsTimeout = 5 * time.Second

// APIServer implements the ServerInterface
type APIServer struct {
	counters *counter.Store
	orders   repository.OrderRepository
}

// NewAPIServer creates a new API server instance
func NewAPIServer(counters *counter.Store, orders repository.OrderRepository) *APIServer {
	return &APIServer{counters: counters, orders: orders}
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(Pong{Message: "pong"})
}

// GetStats reports the activity counters and the stored order count.
// Counters read as zero while the cache is unavailable.
func (s *APIServer) GetStats(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), statsTimeout)
	defer cancel()

	counters, err := s.counters.All(ctx)
	if err != nil {
		fiberlog.Warnf("[API] read counters: %v", err)
		counters, _ = (*counter.Store)(nil).All(ctx)
	}

	var total int64
	if s.orders != nil {
		total, err = s.orders.Count(ctx)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(Error{Error: "failed to count orders"})
		}
	}
	return c.JSON(Stats{Counters: counters, Orders: total})
}
