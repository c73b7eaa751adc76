package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// PageMeta is the uniform pagination metadata attached to list responses.
// start/end are 1-based positions of the returned page within the full
// result set; both are 0 when the page is empty.
type PageMeta struct {
	Total int64 `json:"total"`
	Skip  int   `json:"skip"`
	Limit int   `json:"limit"`
	Start int   `json:"start"`
	End   int   `json:"end"`
}

// parsePagination reads skip/limit query params, enforcing skip >= 0 and
// 1 <= limit <= 100 (default 20). Writes a 422 and returns ok=false on
// violation.
func parsePagination(c *gin.Context) (skip, limit int, ok bool) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "skip must be a non-negative integer"})
		return 0, 0, false
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "limit must be between 1 and 100"})
		return 0, 0, false
	}
	return skip, limit, true
}

func pageMeta(total int64, skip, limit, count int) PageMeta {
	meta := PageMeta{Total: total, Skip: skip, Limit: limit}
	if count > 0 {
		meta.Start = skip + 1
		meta.End = skip + count
	}
	return meta
}
