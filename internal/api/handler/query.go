package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/techbridge/events-api/internal/core/ports"
)

// listOptions parses the pagination and sorting parameters shared by the
// listing routes. Unparseable numbers fall back to the defaults rather than
// failing the request.
func listOptions(c echo.Context, defaultSort string) ports.ListOptions {
	opts := ports.ListOptions{SortBy: defaultSort, SortOrder: "asc"}

	if v := c.QueryParam("skip"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			opts.Skip = n
		}
	}
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			opts.Limit = n
		}
	}
	if v := c.QueryParam("sort_by"); v != "" {
		opts.SortBy = v
	}
	if c.QueryParam("sort_order") == "desc" {
		opts.SortOrder = "desc"
	}
	return opts
}

// queryBool parses an optional boolean query parameter. Returns nil when the
// parameter is absent or not a boolean.
func queryBool(c echo.Context, name string) *bool {
	v := c.QueryParam(name)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(strings.ToLower(v))
	if err != nil {
		return nil
	}
	return &b
}

// queryTime parses an optional RFC 3339 (or date-only) query parameter.
// A malformed value is a client error.
func queryTime(c echo.Context, name string) (*time.Time, error) {
	v := c.QueryParam(name)
	if v == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return &t, nil
		}
	}
	return nil, echo.NewHTTPError(http.StatusUnprocessableEntity, name+" must be an ISO 8601 datetime")
}

// queryList collects a repeatable query parameter (?tags=a&tags=b).
func queryList(c echo.Context, name string) []string {
	values := c.QueryParams()[name]
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
