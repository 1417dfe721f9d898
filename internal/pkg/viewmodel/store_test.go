package viewmodel

import (
	"testing"
	"time"

	"github.com/ManuelReschke/PixelShop/app/models"
	"github.com/ManuelReschke/PixelShop/internal/pkg/catalog"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	cases := map[int64]string{
		0:    "0.00",
		5:    "0.05",
		300:  "3.00",
		1500: "15.00",
		1999: "19.99",
		-250: "-2.50",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatAmount(in), "amount %d", in)
	}
}

func TestNewProducts(t *testing.T) {
	products := NewProducts(catalog.Default().Products())
	assert.Len(t, products, 3)
	assert.Equal(t, Product{ID: "prod_1", Name: "T-shirt", Price: 1500, DisplayPrice: "$15.00"}, products[0])
}

func TestNewOrders(t *testing.T) {
	created := time.Date(2025, 3, 9, 14, 5, 0, 0, time.FixedZone("CET", 3600))
	out := NewOrders([]models.Order{{ID: 4, SessionID: "cs_4", Amount: 700, CreatedAt: created}})

	assert.Equal(t, []Order{{
		ID:            4,
		SessionID:     "cs_4",
		Amount:        700,
		DisplayAmount: "$7.00",
		CreatedAt:     "2025-03-09T13:05:00Z",
	}}, out)
	assert.NotNil(t, NewOrders(nil))
}
