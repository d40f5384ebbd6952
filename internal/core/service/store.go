package service

import (
	"context"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/damilolajohn6/trendora-admin/internal/core/domain"
	"github.com/damilolajohn6/trendora-admin/internal/core/ports"
)

// DashboardService fetches the aggregated overview figures.
type DashboardService struct {
	client ports.Requester
}

func NewDashboardService(client ports.Requester) *DashboardService {
	return &DashboardService{client: client}
}

func (s *DashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	var resp dataResponse[domain.DashboardStats]
	if err := s.client.Get(ctx, "/dashboard/stats", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *DashboardService) SalesTrends(ctx context.Context, period string) ([]domain.SalesTrendPoint, error) {
	var query url.Values
	if period != "" {
		query = url.Values{"period": []string{period}}
	}
	var resp dataResponse[[]domain.SalesTrendPoint]
	if err := s.client.Get(ctx, "/dashboard/sales-trends", query, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// SettingsService reads and writes the storefront configuration.
type SettingsService struct {
	client ports.Requester
	log    zerolog.Logger
}

func NewSettingsService(client ports.Requester, log zerolog.Logger) *SettingsService {
	return &SettingsService{client: client, log: log}
}

func (s *SettingsService) Get(ctx context.Context) (*domain.StoreSettings, error) {
	var resp dataResponse[domain.StoreSettings]
	if err := s.client.Get(ctx, "/settings", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *SettingsService) Update(ctx context.Context, settings domain.StoreSettings) (*domain.StoreSettings, error) {
	var resp dataResponse[domain.StoreSettings]
	if err := s.client.Put(ctx, "/settings", settings, &resp); err != nil {
		return nil, err
	}
	s.log.Info().Str("store", resp.Data.StoreName).Msg("store settings updated")
	return &resp.Data, nil
}

var (
	_ ports.DashboardService = (*DashboardService)(nil)
	_ ports.SettingsService  = (*SettingsService)(nil)
)
