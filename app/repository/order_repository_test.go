package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/ManuelReschke/PixelShop/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func TestOrderRepository_CreateIfNotExists(t *testing.T) {
	repo := NewOrderRepository(newTestDB(t))
	ctx := context.Background()

	created, stored, err := repo.CreateIfNotExists(ctx, &models.Order{
		SessionID: "cs_test_1",
		Amount:    1500,
		Items:     datatypes.JSON(`{"id":"cs_test_1","amount_total":1500}`),
	})
	require.NoError(t, err)
	assert.True(t, created)
	require.NotNil(t, stored)
	assert.NotZero(t, stored.ID)
	assert.Equal(t, int64(1500), stored.Amount)
	assert.False(t, stored.CreatedAt.IsZero())

	// A second attempt with different values keeps the first row untouched.
	created, again, err := repo.CreateIfNotExists(ctx, &models.Order{
		SessionID: "cs_test_1",
		Amount:    9999,
		Items:     datatypes.JSON(`{"other":true}`),
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, stored.ID, again.ID)
	assert.Equal(t, int64(1500), again.Amount)
	assert.JSONEq(t, `{"id":"cs_test_1","amount_total":1500}`, string(again.Items))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestOrderRepository_CreateIfNotExistsConcurrent(t *testing.T) {
	repo := NewOrderRepository(newTestDB(t))
	ctx := context.Background()

	const callers = 8
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		creators int
		ids      = map[uint]struct{}{}
		errs     []error
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			created, stored, err := repo.CreateIfNotExists(ctx, &models.Order{
				SessionID: "cs_race",
				Amount:    700,
				Items:     datatypes.JSON(fmt.Sprintf(`{"caller":%d}`, i)),
			})
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			if created {
				creators++
			}
			ids[stored.ID] = struct{}{}
		}(i)
	}
	wg.Wait()

	assert.Empty(t, errs)
	assert.Equal(t, 1, creators)
	assert.Len(t, ids, 1)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestOrderRepository_GetRecent(t *testing.T) {
	repo := NewOrderRepository(newTestDB(t))
	ctx := context.Background()

	orders, err := repo.GetRecent(ctx, 50)
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)

	for i := 1; i <= 3; i++ {
		_, _, err := repo.CreateIfNotExists(ctx, &models.Order{
			SessionID: fmt.Sprintf("cs_%d", i),
			Amount:    int64(i * 100),
			Items:     datatypes.JSON(`{}`),
		})
		require.NoError(t, err)
	}

	orders, err = repo.GetRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "cs_3", orders[0].SessionID)
	assert.Equal(t, "cs_2", orders[1].SessionID)
}

func TestOrderRepository_GetBySessionIDNotFound(t *testing.T) {
	repo := NewOrderRepository(newTestDB(t))

	_, err := repo.GetBySessionID(context.Background(), "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
