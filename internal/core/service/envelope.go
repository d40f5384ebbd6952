package service

import "github.com/damilolajohn6/trendora-admin/internal/core/ports"

// pagedResponse is the server's listing envelope.
type pagedResponse[T any] struct {
	Data       []T              `json:"data"`
	Pagination ports.Pagination `json:"pagination"`
}

// dataResponse is the server's single-resource envelope.
type dataResponse[T any] struct {
	Data T `json:"data"`
}
