package ports

import (
	"context"
	"time"

	"github.com/damilolajohn6/trendora-admin/internal/core/domain"
)

// CreateOrderInput is the checkout payload. PaymentIntentID is optional; the
// server creates an intent for card payments and returns its client secret.
type CreateOrderInput struct {
	Items           []domain.OrderItem     `json:"items"`
	PaymentMethod   string                 `json:"paymentMethod"`
	ShippingAddress domain.ShippingAddress `json:"shippingAddress"`
	PaymentIntentID string                 `json:"paymentIntentId,omitempty"`
}

// CreateOrderResult couples the created order with the payment widget's
// client secret (empty for non-card payments).
type CreateOrderResult struct {
	Order        *domain.Order
	ClientSecret string
}

type OrderService interface {
	List(ctx context.Context, params OrderListParams) ([]domain.Order, Pagination, error)
	// Create places an order idempotently: retried calls with the same
	// idempotency key return the original order.
	Create(ctx context.Context, input CreateOrderInput) (*CreateOrderResult, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	Update(ctx context.Context, id string, update domain.OrderUpdate) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
	// ProcessPayment asks the server to capture the order's payment.
	ProcessPayment(ctx context.Context, id string) (*domain.Order, error)
	// AwaitPayment polls the order until its payment settles (completed or
	// failed) or ctx is done.
	AwaitPayment(ctx context.Context, id string, interval time.Duration) (domain.PaymentStatus, error)
}
