package controllers

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const defaultRequestTimeout = 15 * time.Second

// Config holds the settings shared by the shop controllers.
type Config struct {
	PublicDomain   string
	PublishableKey string
	RecentLimit    int
	RequestTimeout time.Duration
}

func (cfg Config) withDefaults() Config {
	if cfg.RecentLimit <= 0 {
		cfg.RecentLimit = 50
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}
	return cfg
}

// requestContext bounds provider and storage calls made on behalf of c.
func requestContext(c *fiber.Ctx, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), timeout)
}

// baseURL prefers the configured public domain over the request host, so
// redirects survive reverse proxies.
func baseURL(c *fiber.Ctx, publicDomain string) string {
	if d := strings.TrimRight(strings.TrimSpace(publicDomain), "/"); d != "" {
		return d
	}
	return c.BaseURL()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func jsonError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}
