package handler

import (
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/opsfolio/internal/service"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// filterStateFromQuery builds a fresh filter state for this request only.
// A missing sort parameter keeps the default ordering.
func filterStateFromQuery(c *gin.Context) service.FilterState {
	state := service.DefaultFilterState()
	state.Query = strings.TrimSpace(c.Query("q"))
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		state.Category = category
	}
	if raw, ok := c.GetQuery("sort"); ok {
		state.Sort = service.SortKey(raw)
	}
	return state.Normalize()
}

// buildQueryParams encodes a filter state back into a query string,
// leaving out values equal to the defaults.
func buildQueryParams(state service.FilterState) string {
	values := url.Values{}
	if state.Query != "" {
		values.Set("q", state.Query)
	}
	if state.Category != service.AllCategories {
		values.Set("category", state.Category)
	}
	if state.Sort != service.SortDate {
		values.Set("sort", string(state.Sort))
	}
	encoded := values.Encode()
	if encoded == "" {
		return ""
	}
	return "?" + encoded
}
