package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	redisstorage "github.com/gofiber/storage/redis"

	"github.com/ManuelReschke/PixelShop/app/controllers"
	"github.com/ManuelReschke/PixelShop/app/repository"
	"github.com/ManuelReschke/PixelShop/internal/pkg/cache"
	"github.com/ManuelReschke/PixelShop/internal/pkg/catalog"
	"github.com/ManuelReschke/PixelShop/internal/pkg/checkout"
	"github.com/ManuelReschke/PixelShop/internal/pkg/env"
	"github.com/ManuelReschke/PixelShop/internal/pkg/events"
	"github.com/ManuelReschke/PixelShop/internal/pkg/metrics/counter"
	"github.com/ManuelReschke/PixelShop/internal/pkg/orders"
	"github.com/ManuelReschke/PixelShop/internal/pkg/payment"
)

// Settings are the router level knobs read from the environment.
type Settings struct {
	Controllers       controllers.Config
	Currency          string
	MetricsUser       string
	MetricsPassword   string
	CheckoutRateLimit int
}

func SettingsFromEnv() Settings {
	return Settings{
		Controllers: controllers.Config{
			PublicDomain:   env.GetEnv("PUBLIC_DOMAIN", ""),
			PublishableKey: env.GetEnv("STRIPE_PUBLISHABLE_KEY", ""),
			RecentLimit:    env.GetInt("ORDERS_RECENT_LIMIT", 50),
			RequestTimeout: env.GetDuration("REQUEST_TIMEOUT", 15*time.Second),
		},
		Currency:          env.GetEnv("SHOP_CURRENCY", "usd"),
		MetricsUser:       env.GetEnv("METRICS_USER", "admin"),
		MetricsPassword:   env.GetEnv("METRICS_PASSWORD", ""),
		CheckoutRateLimit: env.GetInt("CHECKOUT_RATE_LIMIT", 20),
	}
}

// Services bundles everything the routers hand to controllers.
type Services struct {
	Settings  Settings
	Catalog   *catalog.Catalog
	Repos     *repository.Repositories
	Provider  payment.Provider
	Publisher events.Publisher
	Counters  *counter.Store
	// LimiterStorage backs the checkout rate limiter. Nil means in-memory.
	LimiterStorage fiber.Storage

	initiator *checkout.Initiator
	recorder  *orders.Recorder
}

func (s *Services) Initiator() *checkout.Initiator {
	if s.initiator == nil {
		s.initiator = checkout.NewInitiator(s.Catalog, s.Provider, s.Settings.Currency, s.Counters)
	}
	return s.initiator
}

func (s *Services) Recorder() *orders.Recorder {
	if s.recorder == nil {
		s.recorder = orders.NewRecorder(s.Repos.Order, s.Repos.WebhookEvent, s.Provider, s.Publisher, s.Counters)
	}
	return s.recorder
}

// NewLimiterStorage returns Redis storage for the rate limiter when the cache
// answered at startup, nil otherwise.
func NewLimiterStorage() fiber.Storage {
	if !cache.Available() {
		return nil
	}
	return redisstorage.New(redisstorage.Config{
		Host:     cache.Host(),
		Port:     cache.Port(),
		Password: env.GetEnv("CACHE_PASSWORD", ""),
		Database: 2, // Separate database for rate limits
		Reset:    false,
	})
}

func (s *Services) checkoutLimiter() fiber.Handler {
	max := s.Settings.CheckoutRateLimit
	if max <= 0 {
		max = 20
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: time.Minute,
		Storage:    s.LimiterStorage,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many checkout attempts, try again later"})
		},
	})
}

// adminAuth guards operational endpoints. Without a configured password the
// endpoints refuse every request.
func (s *Services) adminAuth() fiber.Handler {
	users := map[string]string{}
	if s.Settings.MetricsPassword != "" {
		users[s.Settings.MetricsUser] = s.Settings.MetricsPassword
	}
	return basicauth.New(basicauth.Config{Users: users})
}
