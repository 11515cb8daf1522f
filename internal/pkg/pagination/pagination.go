// Package pagination slices in-memory collections for list endpoints.
// The dashboard normally consumes lists whole; pagination only kicks in
// when the caller sends page or size query parameters.
package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage = 1
	DefaultSize = 20
	MaxSize     = 100
)

// Query holds parsed pagination parameters.
type Query struct {
	Page int
	Size int
}

// Meta describes the position of a page inside the full collection.
type Meta struct {
	Total       int  `json:"total"`
	CurrentPage int  `json:"current_page"`
	TotalPage   int  `json:"total_page"`
	Size        int  `json:"size"`
	HasNextPage bool `json:"has_next_page"`
}

// Requested reports whether the caller asked for a paginated response.
func Requested(c *gin.Context) bool {
	return c.Query("page") != "" || c.Query("size") != ""
}

// FromContext extracts and validates pagination params from the request.
func FromContext(c *gin.Context) Query {
	page := parseIntOr(c.DefaultQuery("page", "1"), DefaultPage)
	size := parseIntOr(c.DefaultQuery("size", "20"), DefaultSize)

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}

	return Query{Page: page, Size: size}
}

// Slice returns the requested page of items plus the page metadata.
// Collections live in memory, so pagination is plain slicing rather
// than a database query.
func Slice[T any](items []T, q Query) ([]T, Meta) {
	total := len(items)
	totalPage := (total + q.Size - 1) / q.Size

	meta := Meta{
		Total:       total,
		CurrentPage: q.Page,
		TotalPage:   totalPage,
		Size:        q.Size,
		HasNextPage: q.Page < totalPage,
	}

	start := (q.Page - 1) * q.Size
	if start >= total {
		return []T{}, meta
	}
	end := start + q.Size
	if end > total {
		end = total
	}
	return items[start:end], meta
}

func parseIntOr(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
