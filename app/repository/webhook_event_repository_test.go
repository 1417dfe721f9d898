package repository

import (
	"context"
	"testing"

	"github.com/ManuelReschke/PixelShop/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookEventRepository_Dedup(t *testing.T) {
	repo := NewWebhookEventRepository(newTestDB(t))
	ctx := context.Background()

	event := func() *models.WebhookEvent {
		return &models.WebhookEvent{
			Provider:        models.WebhookProviderStripe,
			ProviderEventID: "evt_1",
			EventType:       "checkout.session.completed",
			PayloadJSON:     `{"id":"evt_1"}`,
		}
	}

	created, first, err := repo.CreateIfNotExists(ctx, event())
	require.NoError(t, err)
	assert.True(t, created)
	assert.False(t, first.IsSettled())

	require.NoError(t, repo.MarkProcessed(ctx, first.ID, ""))

	created, second, err := repo.CreateIfNotExists(ctx, event())
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.IsSettled())
}

func TestWebhookEventRepository_MarkProcessedWithError(t *testing.T) {
	repo := NewWebhookEventRepository(newTestDB(t))
	ctx := context.Background()

	_, stored, err := repo.CreateIfNotExists(ctx, &models.WebhookEvent{
		Provider:        models.WebhookProviderStripe,
		ProviderEventID: "evt_err",
		EventType:       "checkout.session.completed",
		PayloadJSON:     `{}`,
	})
	require.NoError(t, err)
	require.NoError(t, repo.MarkProcessed(ctx, stored.ID, "db down"))

	reloaded, err := repo.GetByProviderEventID(ctx, models.WebhookProviderStripe, "evt_err")
	require.NoError(t, err)
	assert.NotNil(t, reloaded.ProcessedAt)
	assert.Equal(t, "db down", reloaded.ProcessingError)
	assert.False(t, reloaded.IsSettled())
}
