package pagination

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Params represents pagination parameters
type Params struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Meta represents pagination metadata in the mobile API wire format
type Meta struct {
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	TotalCount  int  `json:"total_count"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// DefaultLimit is the default number of items per page
const DefaultLimit = 20

// MaxLimit is the maximum number of items per page
const MaxLimit = 100

// GetParams extracts pagination parameters from request
func GetParams(c *fiber.Ctx) *Params {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", strconv.Itoa(DefaultLimit)))
	return New(page, limit)
}

// New builds validated pagination parameters
func New(page, limit int) *Params {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return &Params{Page: page, Limit: limit}
}

// Paginate windows an already-filtered collection. Filtering must happen
// before this call so the metadata reflects the filtered set.
//
// HasPrevious is true whenever page > 1, even when page 1 itself is past
// the end of the collection. Mobile clients depend on that exact behavior.
func Paginate[T any](items []T, params *Params) ([]T, *Meta) {
	total := len(items)

	totalPages := total / params.Limit
	if total%params.Limit > 0 {
		totalPages++
	}

	start := (params.Page - 1) * params.Limit
	end := start + params.Limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return items[start:end], &Meta{
		CurrentPage: params.Page,
		TotalPages:  totalPages,
		TotalCount:  total,
		HasNext:     end < total,
		HasPrevious: params.Page > 1,
	}
}
