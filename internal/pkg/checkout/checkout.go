package checkout

import (
	"context"
	"errors"
	"strings"

	"github.com/ManuelReschke/PixelShop/internal/pkg/catalog"
	"github.com/ManuelReschke/PixelShop/internal/pkg/metrics/counter"
	"github.com/ManuelReschke/PixelShop/internal/pkg/payment"
	"github.com/go-playground/validator/v10"
	fiberlog "github.com/gofiber/fiber/v2/log"
)

// ErrNoValidItems means no requested product exists in the catalog.
var ErrNoValidItems = errors.New("no items")

// InputError is a client mistake in the checkout request.
type InputError struct {
	Err error
}

func (e *InputError) Error() string { return e.Err.Error() }
func (e *InputError) Unwrap() error { return e.Err }

// ProviderError carries the payment provider's failure message.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string { return e.Err.Error() }
func (e *ProviderError) Unwrap() error { return e.Err }

// Item is one requested product. Quantity defaults to 1 when omitted.
type Item struct {
	ID       string `json:"id"`
	Quantity *int64 `json:"quantity" validate:"omitnil,min=1"`
}

type Request struct {
	Items []Item `json:"items" validate:"dive"`
}

type Result struct {
	SessionID string
	URL       string
	Total     int64
}

// Initiator turns a cart into a hosted checkout session.
type Initiator struct {
	catalog  *catalog.Catalog
	provider payment.Provider
	currency string
	counters *counter.Store
	validate *validator.Validate
}

func NewInitiator(c *catalog.Catalog, provider payment.Provider, currency string, counters *counter.Store) *Initiator {
	if strings.TrimSpace(currency) == "" {
		currency = "usd"
	}
	return &Initiator{
		catalog:  c,
		provider: provider,
		currency: strings.ToLower(currency),
		counters: counters,
		validate: validator.New(),
	}
}

// LineItems resolves requested items against the catalog. Unknown product
// ids are skipped.
func (i *Initiator) LineItems(items []Item) ([]payment.LineItem, int64) {
	lineItems := make([]payment.LineItem, 0, len(items))
	var total int64
	for _, it := range items {
		prod, ok := i.catalog.Find(it.ID)
		if !ok {
			continue
		}
		qty := int64(1)
		if it.Quantity != nil {
			qty = *it.Quantity
		}
		total += prod.Price * qty
		lineItems = append(lineItems, payment.LineItem{
			Name:       prod.Name,
			UnitAmount: prod.Price,
			Quantity:   qty,
		})
	}
	return lineItems, total
}

// Create starts a checkout session. baseURL is the public origin of the shop
// without trailing slash; the provider redirects back to it.
func (i *Initiator) Create(ctx context.Context, req Request, baseURL string) (*Result, error) {
	if err := i.validate.Struct(req); err != nil {
		return nil, &InputError{Err: err}
	}

	lineItems, total := i.LineItems(req.Items)
	if len(lineItems) == 0 {
		return nil, &InputError{Err: ErrNoValidItems}
	}

	base := strings.TrimRight(baseURL, "/")
	session, err := i.provider.CreateCheckoutSession(ctx, payment.CheckoutRequest{
		LineItems:  lineItems,
		Currency:   i.currency,
		SuccessURL: base + "/success/?session_id=" + payment.SessionIDPlaceholder,
		CancelURL:  base + "/",
	})
	if err != nil {
		fiberlog.Errorf("[Checkout] provider rejected session (%d line items, total %d): %v", len(lineItems), total, err)
		return nil, &ProviderError{Err: err}
	}

	i.counters.Incr(ctx, counter.CheckoutSessions)
	fiberlog.Infof("[Checkout] created session %s (%d line items, total %d %s)", session.ID, len(lineItems), total, i.currency)
	return &Result{SessionID: session.ID, URL: session.URL, Total: total}, nil
}
