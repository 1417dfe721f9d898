package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderRecorded(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.FixedZone("CET", 3600))
	ev := NewOrderRecorded(42, "cs_1", 1500, "webhook", at)

	assert.NotEmpty(t, ev.EventID)
	assert.Equal(t, TypeOrderRecorded, ev.Type)
	assert.Equal(t, time.UTC, ev.CreatedAt.Location())
	assert.True(t, at.Equal(ev.CreatedAt))

	other := NewOrderRecorded(42, "cs_1", 1500, "webhook", at)
	assert.NotEqual(t, ev.EventID, other.EventID)
}

func TestEncode(t *testing.T) {
	ev := NewOrderRecorded(7, "cs_key", 700, "redirect", time.Unix(0, 0))

	key, value, err := encode(ev)
	require.NoError(t, err)
	assert.Equal(t, []byte("cs_key"), key)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(value, &decoded))
	assert.Equal(t, "order.recorded", decoded["type"])
	assert.Equal(t, "redirect", decoded["source"])
	assert.Equal(t, float64(700), decoded["amount"])
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.PublishOrderRecorded(context.Background(), OrderRecorded{}))
	p.Close()
}

func TestNewKafkaPublisherRequiresBrokers(t *testing.T) {
	_, err := NewKafkaPublisher(nil, TopicOrderRecorded)
	assert.Error(t, err)
}
