package ports

import (
	"context"

	"github.com/damilolajohn6/trendora-admin/internal/core/domain"
)

// DashboardService exposes the aggregated figures shown on the overview page.
type DashboardService interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
	SalesTrends(ctx context.Context, period string) ([]domain.SalesTrendPoint, error)
}

// SettingsService reads and writes the storefront configuration.
type SettingsService interface {
	Get(ctx context.Context) (*domain.StoreSettings, error)
	Update(ctx context.Context, settings domain.StoreSettings) (*domain.StoreSettings, error)
}
