package ports

import (
	"net/url"
	"strconv"
)

// Pagination mirrors the server's paged-response envelope.
type Pagination struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	TotalItems  int `json:"totalItems"`
}

// CustomerListParams are passed straight through as query parameters; zero
// values are omitted from the query string.
type CustomerListParams struct {
	Page      int
	Limit     int
	Search    string
	Status    string
	StartDate string
	EndDate   string
	SortBy    string
	SortOrder string
}

func (p CustomerListParams) Values() url.Values {
	v := url.Values{}
	setInt(v, "page", p.Page)
	setInt(v, "limit", p.Limit)
	setStr(v, "search", p.Search)
	setStr(v, "status", p.Status)
	setStr(v, "startDate", p.StartDate)
	setStr(v, "endDate", p.EndDate)
	setStr(v, "sortBy", p.SortBy)
	setStr(v, "sortOrder", p.SortOrder)
	return v
}

type OrderListParams struct {
	Page   int
	Limit  int
	Status string
	Search string
}

func (p OrderListParams) Values() url.Values {
	v := url.Values{}
	setInt(v, "page", p.Page)
	setInt(v, "limit", p.Limit)
	setStr(v, "status", p.Status)
	setStr(v, "search", p.Search)
	return v
}

type ProductListParams struct {
	Page      int
	Limit     int
	Search    string
	Category  string
	MinPrice  float64
	MaxPrice  float64
	SortBy    string
	Published *bool
}

func (p ProductListParams) Values() url.Values {
	v := url.Values{}
	setInt(v, "page", p.Page)
	setInt(v, "limit", p.Limit)
	setStr(v, "search", p.Search)
	setStr(v, "category", p.Category)
	if p.MinPrice > 0 {
		v.Set("minPrice", strconv.FormatFloat(p.MinPrice, 'f', -1, 64))
	}
	if p.MaxPrice > 0 {
		v.Set("maxPrice", strconv.FormatFloat(p.MaxPrice, 'f', -1, 64))
	}
	setStr(v, "sortBy", p.SortBy)
	if p.Published != nil {
		v.Set("published", strconv.FormatBool(*p.Published))
	}
	return v
}

type UserListParams struct {
	Page      int
	Limit     int
	Search    string
	Role      string
	Status    string
	SortBy    string
	SortOrder string
}

func (p UserListParams) Values() url.Values {
	v := url.Values{}
	setInt(v, "page", p.Page)
	setInt(v, "limit", p.Limit)
	setStr(v, "search", p.Search)
	setStr(v, "role", p.Role)
	setStr(v, "status", p.Status)
	setStr(v, "sortBy", p.SortBy)
	setStr(v, "sortOrder", p.SortOrder)
	return v
}

func setStr(v url.Values, key, val string) {
	if val != "" {
		v.Set(key, val)
	}
}

func setInt(v url.Values, key string, val int) {
	if val > 0 {
		v.Set(key, strconv.Itoa(val))
	}
}
