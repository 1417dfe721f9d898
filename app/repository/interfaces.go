package repository

import (
	"context"

	"github.com/ManuelReschke/PixelShop/app/models"
	"gorm.io/gorm"
)

// OrderRepository defines the interface for order-related database operations
type OrderRepository interface {
	// CreateIfNotExists inserts the order unless one with the same session id
	// exists and returns the stored row in both cases.
	CreateIfNotExists(ctx context.Context, order *models.Order) (bool, *models.Order, error)
	GetBySessionID(ctx context.Context, sessionID string) (*models.Order, error)
	GetRecent(ctx context.Context, limit int) ([]models.Order, error)
	Count(ctx context.Context) (int64, error)
}

// WebhookEventRepository defines the interface for the webhook delivery log
type WebhookEventRepository interface {
	CreateIfNotExists(ctx context.Context, event *models.WebhookEvent) (bool, *models.WebhookEvent, error)
	MarkProcessed(ctx context.Context, id uint, processingError string) error
	GetByProviderEventID(ctx context.Context, provider, providerEventID string) (*models.WebhookEvent, error)
}

// Repositories holds all repository instances
type Repositories struct {
	Order        OrderRepository
	WebhookEvent WebhookEventRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Order:        NewOrderRepository(db),
		WebhookEvent: NewWebhookEventRepository(db),
	}
}
