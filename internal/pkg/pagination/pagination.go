package pagination

import (
	"strconv"

	"github.com/firstpost/journal/internal/pkg/response"
	"github.com/firstpost/journal/internal/repository"
	"github.com/gin-gonic/gin"
)

const (
	DefaultPage = 1
	// PublicPageSize is the fixed page size of the public article listing.
	PublicPageSize = 6
	DefaultSize    = 10
	MaxSize        = 100
)

// FromContext extracts and validates pagination params from the request.
func FromContext(c *gin.Context) repository.Page {
	page := parseIntOr(c.DefaultQuery("page", "1"), DefaultPage)
	size := parseIntOr(c.DefaultQuery("size", "10"), DefaultSize)

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}
	return repository.Page{Page: page, Size: size}
}

// PublicFromContext reads only the page number; the public listing page
// size is fixed.
func PublicFromContext(c *gin.Context) repository.Page {
	page := parseIntOr(c.DefaultQuery("page", "1"), DefaultPage)
	if page < 1 {
		page = 1
	}
	return repository.Page{Page: page, Size: PublicPageSize}
}

// Meta derives response pagination from a total row count. TotalPage is
// never below 1: an empty result set still renders as one (empty) page.
func Meta(total int64, page repository.Page) response.Pagination {
	totalPage := int((total + int64(page.Size) - 1) / int64(page.Size))
	if totalPage < 1 {
		totalPage = 1
	}
	return response.Pagination{
		Total:       total,
		CurrentPage: page.Page,
		TotalPage:   totalPage,
		Size:        page.Size,
		HasNextPage: page.Page < totalPage,
	}
}

func parseIntOr(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
