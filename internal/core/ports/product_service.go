package ports

import (
	"context"

	"github.com/damilolajohn6/trendora-admin/internal/core/domain"
)

// BulkDeleteResult reports the outcome of a bulk product deletion.
type BulkDeleteResult struct {
	Deleted []string
	// Failed maps product IDs to the error that stopped their deletion.
	Failed map[string]error
}

type ProductService interface {
	List(ctx context.Context, params ProductListParams) ([]domain.Product, Pagination, error)
	Create(ctx context.Context, input domain.ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, input domain.ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	// BulkDelete removes products concurrently with bounded parallelism and
	// reports per-product failures instead of stopping at the first one.
	BulkDelete(ctx context.Context, ids []string) (*BulkDeleteResult, error)
}
