package payment

import (
	"context"
	"strings"
)

// CreateRequest is the provider-neutral payment creation payload.
type CreateRequest struct {
	OrderNumber   string
	Amount        int64
	Currency      string
	CustomerName  string
	CustomerPhone string
	Description   string
	ReturnURL     string
	Metadata      map[string]string
}

type CreateResponse struct {
	// RedirectURL is the provider-hosted page the browser is sent to.
	RedirectURL string
	// Reference is the provider transaction reference used for status
	// lookups.
	Reference string
	// SessionID is set by providers that key status lookups on a
	// checkout session rather than the transaction reference.
	SessionID string
}

type StatusRequest struct {
	OrderNumber string
	Reference   string
	SessionID   string
}

type StatusResponse struct {
	// Status is the raw provider status string; vocabulary differs per
	// provider and is normalized by the caller.
	Status   string
	Amount   int64
	Currency string
}

// Gateway abstracts the two interchangeable payment providers.
type Gateway interface {
	Name() string
	CreatePayment(ctx context.Context, request *CreateRequest) (*CreateResponse, error)
	GetStatus(ctx context.Context, request *StatusRequest) (*StatusResponse, error)
}

const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusPending   = "pending"
)

// Normalize maps a provider status string onto the local vocabulary.
// Unknown strings stay pending so the next reconciler run retries.
func Normalize(providerStatus string) string {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "success", "successful", "completed", "paid":
		return StatusCompleted
	case "failed", "cancelled", "canceled", "expired":
		return StatusFailed
	default:
		return StatusPending
	}
}
