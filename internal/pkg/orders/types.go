package orders

import "github.com/ManuelReschke/PixelShop/app/models"

// Completion paths
const (
	SourceRedirect = "redirect"
	SourceWebhook  = "webhook"
)

// RecordInput is the normalized input for idempotent order creation.
type RecordInput struct {
	SessionID string
	Amount    int64
	Items     []byte
	Source    string
}

// Confirmation is the outcome of the browser redirect path.
type Confirmation struct {
	Paid    bool
	Created bool
	Order   *models.Order
}

// WebhookResult is the outcome of a verified webhook delivery.
type WebhookResult struct {
	EventID   string
	EventType string
	Duplicate bool
	Ignored   bool
	Created   bool
	Order     *models.Order
}
