package viewmodel

import (
	"fmt"
	"time"

	"github.com/ManuelReschke/PixelShop/app/models"
	"github.com/ManuelReschke/PixelShop/internal/pkg/catalog"
)

// Product is a catalog entry prepared for the storefront
type Product struct {
	ID           string
	Name         string
	Price        int64
	DisplayPrice string
}

// Order is a stored order prepared for the recent orders table
type Order struct {
	ID            uint
	SessionID     string
	Amount        int64
	DisplayAmount string
	CreatedAt     string
}

// Store is the catalog page
type Store struct {
	Layout
	Products       []Product
	Orders         []Order
	PublishableKey string
	CheckoutPath   string
}

// FormatAmount renders minor units as a decimal amount, e.g. 1500 -> "15.00".
func FormatAmount(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s%d.%02d", sign, minor/100, minor%100)
}

func NewProducts(products []catalog.Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		out = append(out, Product{
			ID:           p.ID,
			Name:         p.Name,
			Price:        p.Price,
			DisplayPrice: "$" + FormatAmount(p.Price),
		})
	}
	return out
}

func NewOrders(orders []models.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, Order{
			ID:            o.ID,
			SessionID:     o.SessionID,
			Amount:        o.Amount,
			DisplayAmount: "$" + FormatAmount(o.Amount),
			CreatedAt:     o.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return out
}
