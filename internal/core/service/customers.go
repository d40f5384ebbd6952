package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/damilolajohn6/trendora-admin/internal/core/domain"
	"github.com/damilolajohn6/trendora-admin/internal/core/ports"
)

// CustomerService manages shopper accounts through the remote API. It holds
// no state of its own: every call fetches fresh data, and pagination, search
// and sort parameters pass straight through as query strings.
type CustomerService struct {
	client ports.Requester
	log    zerolog.Logger
}

func NewCustomerService(client ports.Requester, log zerolog.Logger) *CustomerService {
	return &CustomerService{client: client, log: log}
}

func (s *CustomerService) List(ctx context.Context, params ports.CustomerListParams) ([]domain.Customer, ports.Pagination, error) {
	var resp pagedResponse[domain.Customer]
	if err := s.client.Get(ctx, "/customers", params.Values(), &resp); err != nil {
		return nil, ports.Pagination{}, err
	}
	return resp.Data, resp.Pagination, nil
}

func (s *CustomerService) Get(ctx context.Context, id string) (*domain.Customer, error) {
	var resp dataResponse[domain.Customer]
	if err := s.client.Get(ctx, "/customers/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *CustomerService) Update(ctx context.Context, id string, changes map[string]any) (*domain.Customer, error) {
	var resp dataResponse[domain.Customer]
	if err := s.client.Put(ctx, "/customers/"+id, changes, &resp); err != nil {
		return nil, err
	}
	s.log.Debug().Str("customer_id", id).Msg("customer updated")
	return &resp.Data, nil
}

func (s *CustomerService) Delete(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, "/customers/"+id); err != nil {
		return err
	}
	s.log.Info().Str("customer_id", id).Msg("customer deleted")
	return nil
}

var _ ports.CustomerService = (*CustomerService)(nil)
