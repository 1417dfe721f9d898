// Package paymenttest provides an in-memory payment.Provider for tests.
// Signature verification is real: deliveries must be signed with Sign.
package paymenttest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ManuelReschke/PixelShop/internal/pkg/payment"
	"github.com/stripe/stripe-go/v81/webhook"
)

type Provider struct {
	WebhookSecret string
	CheckoutURL   string
	CreateErr     error
	RetrieveErr   error

	mu       sync.Mutex
	sessions map[string]*payment.Session
	requests []payment.CheckoutRequest
	retrieve int
}

func New(webhookSecret string) *Provider {
	return &Provider{
		WebhookSecret: webhookSecret,
		CheckoutURL:   "https://checkout.example.com/c/pay/cs_test_fake",
		sessions:      map[string]*payment.Session{},
	}
}

// AddPaidSession registers a retrievable paid session and returns its raw JSON.
func (p *Provider) AddPaidSession(id string, amountTotal int64) json.RawMessage {
	raw := json.RawMessage(fmt.Sprintf(`{"id":%q,"object":"checkout.session","payment_status":"paid","amount_total":%d}`, id, amountTotal))
	p.AddSession(&payment.Session{ID: id, PaymentStatus: payment.PaymentStatusPaid, AmountTotal: amountTotal, Raw: raw})
	return raw
}

func (p *Provider) AddSession(s *payment.Session) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sessions[s.ID] = s
}

// Requests returns the checkout requests received so far.
func (p *Provider) Requests() []payment.CheckoutRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]payment.CheckoutRequest, len(p.requests))
	copy(out, p.requests)
	return out
}

func (p *Provider) RetrieveCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.retrieve
}

func (p *Provider) CreateCheckoutSession(ctx context.Context, req payment.CheckoutRequest) (*payment.CheckoutSession, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.requests = append(p.requests, req)
	if p.CreateErr != nil {
		return nil, p.CreateErr
	}
	return &payment.CheckoutSession{ID: "cs_test_fake", URL: p.CheckoutURL}, nil
}

func (p *Provider) RetrieveSession(ctx context.Context, sessionID string) (*payment.Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.retrieve++
	if p.RetrieveErr != nil {
		return nil, p.RetrieveErr
	}
	s, ok := p.sessions[sessionID]
	if !ok {
		return nil, errors.New("No such checkout.session: " + sessionID)
	}
	return s, nil
}

func (p *Provider) ConstructEvent(payload []byte, signatureHeader string) (*payment.Event, error) {
	return payment.ConstructEvent(payload, signatureHeader, p.WebhookSecret)
}

// Sign returns a valid Stripe-Signature header for payload.
func Sign(payload []byte, secret string) string {
	return webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: time.Now(),
	}).Header
}

// CompletedEvent builds a checkout.session.completed delivery body.
func CompletedEvent(eventID string, session json.RawMessage) []byte {
	return []byte(fmt.Sprintf(`{"id":%q,"object":"event","type":%q,"data":{"object":%s}}`,
		eventID, payment.EventCheckoutSessionCompleted, session))
}
