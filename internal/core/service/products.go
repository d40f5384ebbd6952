package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/damilolajohn6/trendora-admin/internal/core/domain"
	"github.com/damilolajohn6/trendora-admin/internal/core/ports"
)

const bulkDeleteWorkers = 4

// ProductService manages the catalogue through the remote API.
type ProductService struct {
	client  ports.Requester
	log     zerolog.Logger
	workers int
}

func NewProductService(client ports.Requester, log zerolog.Logger) *ProductService {
	return &ProductService{client: client, log: log, workers: bulkDeleteWorkers}
}

func (s *ProductService) List(ctx context.Context, params ports.ProductListParams) ([]domain.Product, ports.Pagination, error) {
	var resp pagedResponse[domain.Product]
	if err := s.client.Get(ctx, "/products", params.Values(), &resp); err != nil {
		return nil, ports.Pagination{}, err
	}
	return resp.Data, resp.Pagination, nil
}

func (s *ProductService) Create(ctx context.Context, input domain.ProductInput) (*domain.Product, error) {
	var resp dataResponse[domain.Product]
	if err := s.client.Post(ctx, "/products", input, &resp); err != nil {
		return nil, err
	}
	s.log.Info().Str("product_id", resp.Data.ID).Str("sku", resp.Data.SKU).Msg("product created")
	return &resp.Data, nil
}

func (s *ProductService) Update(ctx context.Context, id string, input domain.ProductInput) (*domain.Product, error) {
	var resp dataResponse[domain.Product]
	if err := s.client.Put(ctx, "/products/"+id, input, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, "/products/"+id); err != nil {
		return err
	}
	s.log.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

// BulkDelete removes products through a fixed pool of workers, bounding the
// number of in-flight requests. Failures are collected per product instead
// of aborting the batch, so one stubborn product does not strand the rest.
func (s *ProductService) BulkDelete(ctx context.Context, ids []string) (*ports.BulkDeleteResult, error) {
	if len(ids) == 0 {
		return &ports.BulkDeleteResult{Failed: map[string]error{}}, nil
	}

	jobs := make(chan string)
	result := &ports.BulkDeleteResult{Failed: make(map[string]error)}

	var mu sync.Mutex
	var wg sync.WaitGroup

	workers := s.workers
	if workers > len(ids) {
		workers = len(ids)
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range jobs {
				err := s.Delete(ctx, id)
				mu.Lock()
				if err != nil {
					result.Failed[id] = err
				} else {
					result.Deleted = append(result.Deleted, id)
				}
				mu.Unlock()
			}
		}()
	}

	for _, id := range ids {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return result, ctx.Err()
		case jobs <- id:
		}
	}
	close(jobs)
	wg.Wait()

	s.log.Info().
		Int("deleted", len(result.Deleted)).
		Int("failed", len(result.Failed)).
		Msg("bulk delete finished")
	return result, nil
}

var _ ports.ProductService = (*ProductService)(nil)
