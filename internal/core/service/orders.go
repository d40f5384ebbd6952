package service

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/damilolajohn6/trendora-admin/internal/core/domain"
	"github.com/damilolajohn6/trendora-admin/internal/core/ports"
	"github.com/damilolajohn6/trendora-admin/internal/infrastructure/api"
)

const defaultPollInterval = 2 * time.Second

// OrderService manages orders and the card payment flow: order creation
// returns the payment widget's client secret, and AwaitPayment polls until
// the processor settles. The processor itself stays opaque — this service
// only hands the secret over and watches paymentStatus.
type OrderService struct {
	client ports.Requester
	log    zerolog.Logger
}

func NewOrderService(client ports.Requester, log zerolog.Logger) *OrderService {
	return &OrderService{client: client, log: log}
}

func (s *OrderService) List(ctx context.Context, params ports.OrderListParams) ([]domain.Order, ports.Pagination, error) {
	var resp pagedResponse[domain.Order]
	if err := s.client.Get(ctx, "/orders", params.Values(), &resp); err != nil {
		return nil, ports.Pagination{}, err
	}
	return resp.Data, resp.Pagination, nil
}

type createOrderResponse struct {
	Data         *domain.Order `json:"data"`
	ClientSecret string        `json:"clientSecret"`
}

// Create places an order. An Idempotency-Key header makes retries after a
// transport failure safe: the server replays the original order instead of
// charging twice.
func (s *OrderService) Create(ctx context.Context, input ports.CreateOrderInput) (*ports.CreateOrderResult, error) {
	key := uuid.NewString()
	header := http.Header{"Idempotency-Key": []string{key}}

	var resp createOrderResponse
	if err := s.client.Do(ctx, http.MethodPost, "/orders", nil, input, &resp, header); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, &api.APIError{Kind: api.FailureUnknown, Message: "create order response missing order"}
	}
	s.log.Info().
		Str("order_id", resp.Data.ID).
		Str("invoice", resp.Data.InvoiceNumber).
		Str("idempotency_key", key).
		Msg("order created")

	return &ports.CreateOrderResult{Order: resp.Data, ClientSecret: resp.ClientSecret}, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	var resp dataResponse[domain.Order]
	if err := s.client.Get(ctx, "/orders/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Update applies changes to an order. Status changes are checked against the
// transition table first, so a doomed request never leaves the client.
func (s *OrderService) Update(ctx context.Context, id string, update domain.OrderUpdate) (*domain.Order, error) {
	if update.Status != "" {
		current, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if !current.Status.CanTransitionTo(update.Status) {
			return nil, domain.ErrInvalidTransition
		}
	}

	var resp dataResponse[domain.Order]
	if err := s.client.Put(ctx, "/orders/"+id, update, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, "/orders/"+id); err != nil {
		return err
	}
	s.log.Info().Str("order_id", id).Msg("order deleted")
	return nil
}

func (s *OrderService) ProcessPayment(ctx context.Context, id string) (*domain.Order, error) {
	var resp dataResponse[domain.Order]
	if err := s.client.Post(ctx, "/orders/"+id+"/process-payment", nil, &resp); err != nil {
		return nil, err
	}
	s.log.Info().Str("order_id", id).Str("payment_status", string(resp.Data.PaymentStatus)).Msg("payment processed")
	return &resp.Data, nil
}

// AwaitPayment polls the order until its payment leaves the pending state or
// ctx is done. interval <= 0 uses a sensible default.
func (s *OrderService) AwaitPayment(ctx context.Context, id string, interval time.Duration) (domain.PaymentStatus, error) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		order, err := s.Get(ctx, id)
		if err != nil {
			return "", err
		}
		if order.PaymentStatus != domain.PaymentPending {
			return order.PaymentStatus, nil
		}

		select {
		case <-ctx.Done():
			return domain.PaymentPending, ctx.Err()
		case <-ticker.C:
		}
	}
}

var _ ports.OrderService = (*OrderService)(nil)
