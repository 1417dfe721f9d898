package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrderString(t *testing.T) {
	o := Order{ID: 7, SessionID: "s_1", Amount: 1000, Items: []byte(`{"foo":"bar"}`)}
	assert.Contains(t, o.String(), "s_1")
	assert.Equal(t, "Order 7 - s_1", o.String())
}

func TestWebhookEventIsSettled(t *testing.T) {
	now := time.Now()

	assert.False(t, (*WebhookEvent)(nil).IsSettled())
	assert.False(t, (&WebhookEvent{}).IsSettled())
	assert.False(t, (&WebhookEvent{ProcessedAt: &now, ProcessingError: "boom"}).IsSettled())
	assert.True(t, (&WebhookEvent{ProcessedAt: &now}).IsSettled())
}
