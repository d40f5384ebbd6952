package ports

import (
	"context"

	"github.com/damilolajohn6/trendora-admin/internal/core/domain"
)

type CustomerService interface {
	List(ctx context.Context, params CustomerListParams) ([]domain.Customer, Pagination, error)
	Get(ctx context.Context, id string) (*domain.Customer, error)
	Update(ctx context.Context, id string, changes map[string]any) (*domain.Customer, error)
	Delete(ctx context.Context, id string) error
}
