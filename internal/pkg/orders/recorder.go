package orders

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ManuelReschke/PixelShop/app/models"
	"github.com/ManuelReschke/PixelShop/app/repository"
	"github.com/ManuelReschke/PixelShop/internal/pkg/events"
	"github.com/ManuelReschke/PixelShop/internal/pkg/metrics/counter"
	"github.com/ManuelReschke/PixelShop/internal/pkg/payment"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"gorm.io/datatypes"
)

const publishTimeout = 5 * time.Second

// Recorder turns completed checkouts into orders. The redirect and webhook
// paths race for the same session; both end in GetOrCreate.
type Recorder struct {
	orders     repository.OrderRepository
	deliveries repository.WebhookEventRepository
	provider   payment.Provider
	publisher  events.Publisher
	counters   *counter.Store
}

func NewRecorder(
	orders repository.OrderRepository,
	deliveries repository.WebhookEventRepository,
	provider payment.Provider,
	publisher events.Publisher,
	counters *counter.Store,
) *Recorder {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &Recorder{
		orders:     orders,
		deliveries: deliveries,
		provider:   provider,
		publisher:  publisher,
		counters:   counters,
	}
}

// GetOrCreate stores an order for the session unless one exists and returns
// the stored order either way.
func (r *Recorder) GetOrCreate(ctx context.Context, in RecordInput) (bool, *models.Order, error) {
	sessionID := strings.TrimSpace(in.SessionID)
	if sessionID == "" {
		return false, nil, errors.New("session_id is required")
	}
	items := in.Items
	if len(items) == 0 {
		items = []byte("{}")
	}

	created, stored, err := r.orders.CreateIfNotExists(ctx, &models.Order{
		SessionID: sessionID,
		Amount:    in.Amount,
		Items:     datatypes.JSON(items),
	})
	if err != nil {
		return false, nil, fmt.Errorf("get or create order for %s: %w", sessionID, err)
	}

	if created {
		fiberlog.Infof("[Orders] recorded order %d for session %s via %s (amount %d)", stored.ID, sessionID, in.Source, stored.Amount)
		r.countCreated(ctx, in.Source)
		r.publish(events.NewOrderRecorded(stored.ID, stored.SessionID, stored.Amount, in.Source, stored.CreatedAt))
	}
	return created, stored, nil
}

// ConfirmRedirect resolves the session the browser came back with. Unpaid
// sessions are reported, not recorded.
func (r *Recorder) ConfirmRedirect(ctx context.Context, sessionID string) (*Confirmation, error) {
	session, err := r.provider.RetrieveSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("retrieve session %s: %w", sessionID, err)
	}
	if !session.IsPaid() {
		return &Confirmation{Paid: false}, nil
	}

	created, order, err := r.GetOrCreate(ctx, RecordInput{
		SessionID: session.ID,
		Amount:    session.AmountTotal,
		Items:     session.Raw,
		Source:    SourceRedirect,
	})
	if err != nil {
		return nil, err
	}
	return &Confirmation{Paid: true, Created: created, Order: order}, nil
}

// HandleWebhook verifies and processes a provider delivery. Errors wrapping
// payment.ErrInvalidSignature mean nothing was stored.
func (r *Recorder) HandleWebhook(ctx context.Context, payload []byte, signature string) (*WebhookResult, error) {
	event, err := r.provider.ConstructEvent(payload, signature)
	if err != nil {
		return nil, err
	}
	r.counters.Incr(ctx, counter.WebhookDeliveries)

	eventID := strings.TrimSpace(event.ID)
	if eventID == "" {
		sum := sha256.Sum256(payload)
		eventID = "hash:" + hex.EncodeToString(sum[:])
	}
	res := &WebhookResult{EventID: eventID, EventType: event.Type}

	_, stored, err := r.deliveries.CreateIfNotExists(ctx, &models.WebhookEvent{
		Provider:        models.WebhookProviderStripe,
		ProviderEventID: eventID,
		EventType:       event.Type,
		PayloadJSON:     string(payload),
	})
	if err != nil {
		return nil, fmt.Errorf("log webhook event %s: %w", eventID, err)
	}
	if stored.IsSettled() {
		res.Duplicate = true
		return res, nil
	}

	if event.Type != payment.EventCheckoutSessionCompleted {
		res.Ignored = true
		r.markProcessed(ctx, stored.ID, nil)
		return res, nil
	}

	session, err := payment.ParseSession(event.Object)
	if err != nil {
		// Redelivery cannot fix a malformed object, so acknowledge it.
		fiberlog.Warnf("[Webhook] event %s: %v", eventID, err)
		res.Ignored = true
		r.markProcessed(ctx, stored.ID, err)
		return res, nil
	}

	created, order, err := r.GetOrCreate(ctx, RecordInput{
		SessionID: session.ID,
		Amount:    session.AmountTotal,
		Items:     session.Raw,
		Source:    SourceWebhook,
	})
	r.markProcessed(ctx, stored.ID, err)
	if err != nil {
		return nil, err
	}
	res.Created = created
	res.Order = order
	return res, nil
}

func (r *Recorder) markProcessed(ctx context.Context, id uint, processingErr error) {
	msg := ""
	if processingErr != nil {
		msg = processingErr.Error()
	}
	if err := r.deliveries.MarkProcessed(ctx, id, msg); err != nil {
		fiberlog.Warnf("[Webhook] could not mark delivery %d processed: %v", id, err)
	}
}

func (r *Recorder) countCreated(ctx context.Context, source string) {
	switch source {
	case SourceRedirect:
		r.counters.Incr(ctx, counter.OrdersRedirect)
	case SourceWebhook:
		r.counters.Incr(ctx, counter.OrdersWebhook)
	}
}

// publish runs detached from the request so a slow broker never delays the
// provider's webhook acknowledgement.
func (r *Recorder) publish(ev events.OrderRecorded) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := r.publisher.PublishOrderRecorded(ctx, ev); err != nil {
			fiberlog.Warnf("[Orders] publish %s for session %s failed: %v", ev.Type, ev.SessionID, err)
		}
	}()
}
