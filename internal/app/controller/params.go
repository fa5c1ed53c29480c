package controller

import (
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	defaultPage  = 1
	defaultLimit = 12
	maxLimit     = 100
)

// Pagination echoes the applied paging plus derived totals
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

func newPagination(page, limit int, total int64) Pagination {
	return Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: int(math.Ceil(float64(total) / float64(limit))),
	}
}

// parsePagination reads page and limit leniently: anything unparsable or out
// of range falls back to the defaults instead of failing the request.
func parsePagination(c *gin.Context) (page, limit, offset int) {
	page = defaultPage
	if raw := c.Query("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			page = v
		}
	}
	limit = defaultLimit
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 && v <= maxLimit {
			limit = v
		}
	}
	return page, limit, (page - 1) * limit
}

// queryList splits a comma-separated multi-select parameter into its values
func queryList(c *gin.Context, name string) []string {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

// queryFloat returns the parameter as a float, or nil when absent or
// malformed. A bad numeric filter is simply not applied.
func queryFloat(c *gin.Context, name string) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func queryInt(c *gin.Context, name string) *int {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}
