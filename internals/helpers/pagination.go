package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Pagination type & defaults
=================================*/

type Pagination struct {
	CurrentPage  int   `json:"current_page"`
	ItemsPerPage int   `json:"items_per_page"`
	TotalItems   int64 `json:"total_items"`
	TotalPages   int   `json:"total_pages"`
	HasNext      bool  `json:"has_next"`
	HasPrev      bool  `json:"has_prev"`
}

const MaxPerPage = 100

/* ===============================
   Paging resolver (query → page/limit/offset)
=================================*/

type Paging struct {
	Page   int
	Limit  int
	Offset int
}

// ResolvePaging reads ?page= & ?limit= (or the ?per_page= alias) and normalizes them.
// Non-numeric or non-positive values fall back to page 1 / defaultLimit; limit is capped at maxLimit.
func ResolvePaging(c *fiber.Ctx, defaultLimit, maxLimit int) Paging {
	page, err := strconv.Atoi(strings.TrimSpace(c.Query("page", "1")))
	if err != nil || page < 1 {
		page = 1
	}

	limitStr := strings.TrimSpace(c.Query("limit"))
	if limitStr == "" {
		limitStr = strings.TrimSpace(c.Query("per_page"))
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}

	return Paging{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

/* ===============================
   Pagination builders
=================================*/

func BuildPagination(total int64, p Paging) *Pagination {
	limit := p.Limit
	if limit <= 0 {
		limit = 10
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit)) // ceil
	return &Pagination{
		CurrentPage:  p.Page,
		ItemsPerPage: limit,
		TotalItems:   total,
		TotalPages:   totalPages,
		HasNext:      p.Page < totalPages,
		HasPrev:      p.Page > 1,
	}
}
