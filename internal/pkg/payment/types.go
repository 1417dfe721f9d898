package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	PaymentStatusPaid             = "paid"
	EventCheckoutSessionCompleted = "checkout.session.completed"

	// SessionIDPlaceholder is substituted by the provider in success URLs.
	SessionIDPlaceholder = "{CHECKOUT_SESSION_ID}"
)

var ErrInvalidSignature = errors.New("invalid webhook signature")

// Provider is the subset of the payment provider API the shop depends on.
type Provider interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
	RetrieveSession(ctx context.Context, sessionID string) (*Session, error)
	// ConstructEvent verifies the signature header over the raw payload and
	// decodes the event. Verification failures wrap ErrInvalidSignature.
	ConstructEvent(payload []byte, signatureHeader string) (*Event, error)
}

type LineItem struct {
	Name       string
	UnitAmount int64
	Quantity   int64
}

type CheckoutRequest struct {
	LineItems  []LineItem
	Currency   string
	SuccessURL string
	CancelURL  string
}

type CheckoutSession struct {
	ID  string
	URL string
}

// Session is a checkout session as reported by the provider. Raw holds the
// complete provider object and is stored verbatim as order items.
type Session struct {
	ID            string
	PaymentStatus string
	AmountTotal   int64
	Raw           json.RawMessage
}

func (s *Session) IsPaid() bool {
	return s != nil && s.PaymentStatus == PaymentStatusPaid
}

// Event is a verified webhook delivery. Object is the raw data.object.
type Event struct {
	ID     string
	Type   string
	Object json.RawMessage
}

type sessionObject struct {
	ID            string `json:"id"`
	PaymentStatus string `json:"payment_status"`
	AmountTotal   *int64 `json:"amount_total"`
}

// ParseSession decodes a raw checkout session object. A missing or null
// amount_total yields 0.
func ParseSession(raw json.RawMessage) (*Session, error) {
	var obj sessionObject
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("decode checkout session: %w", err)
	}
	if strings.TrimSpace(obj.ID) == "" {
		return nil, errors.New("checkout session object has no id")
	}
	s := &Session{
		ID:            obj.ID,
		PaymentStatus: obj.PaymentStatus,
		Raw:           raw,
	}
	if obj.AmountTotal != nil {
		s.AmountTotal = *obj.AmountTotal
	}
	return s, nil
}
