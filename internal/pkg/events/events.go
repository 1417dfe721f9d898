package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	TopicOrderRecorded = "pixelshop.order-recorded"
	TypeOrderRecorded  = "order.recorded"
)

// OrderRecorded is emitted once per order, by whichever completion path
// stored it first.
type OrderRecorded struct {
	EventID   string    `json:"event_id"`
	Type      string    `json:"type"`
	OrderID   uint      `json:"order_id"`
	SessionID string    `json:"session_id"`
	Amount    int64     `json:"amount"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// NewOrderRecorded fills in the event id and type.
func NewOrderRecorded(orderID uint, sessionID string, amount int64, source string, createdAt time.Time) OrderRecorded {
	return OrderRecorded{
		EventID:   uuid.NewString(),
		Type:      TypeOrderRecorded,
		OrderID:   orderID,
		SessionID: sessionID,
		Amount:    amount,
		Source:    source,
		CreatedAt: createdAt.UTC(),
	}
}

type Publisher interface {
	PublishOrderRecorded(ctx context.Context, ev OrderRecorded) error
	Close()
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishOrderRecorded(context.Context, OrderRecorded) error { return nil }
func (NopPublisher) Close()                                                    {}

func encode(ev OrderRecorded) (key, value []byte, err error) {
	value, err = json.Marshal(ev)
	if err != nil {
		return nil, nil, err
	}
	return []byte(ev.SessionID), value, nil
}
