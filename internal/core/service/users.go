package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/damilolajohn6/trendora-admin/internal/core/domain"
	"github.com/damilolajohn6/trendora-admin/internal/core/ports"
)

// UserService manages back-office accounts (staff, admin, manager).
type UserService struct {
	client ports.Requester
	log    zerolog.Logger
}

func NewUserService(client ports.Requester, log zerolog.Logger) *UserService {
	return &UserService{client: client, log: log}
}

func (s *UserService) List(ctx context.Context, params ports.UserListParams) ([]domain.StaffUser, ports.Pagination, error) {
	var resp pagedResponse[domain.StaffUser]
	if err := s.client.Get(ctx, "/auth/users", params.Values(), &resp); err != nil {
		return nil, ports.Pagination{}, err
	}
	return resp.Data, resp.Pagination, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, "/auth/users/"+id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("staff account deleted")
	return nil
}

var _ ports.UserService = (*UserService)(nil)
