package ports

import (
	"context"

	"github.com/damilolajohn6/trendora-admin/internal/core/domain"
)

// UserService manages back-office accounts (staff, admin, manager).
type UserService interface {
	List(ctx context.Context, params UserListParams) ([]domain.StaffUser, Pagination, error)
	Delete(ctx context.Context, id string) error
}
