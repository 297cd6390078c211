package handler // handler defines http handlers

import (
	"strconv" // strconv converts query parameters to numeric types

	"github.com/labstack/echo/v4" // echo defines request context types
)

// Pagination defaults and bounds for list endpoints.  Page numbers are
// 1-based; a page size outside [1, 100] is rejected with 400.
const (
	defaultPageNumber = 1
	defaultPageSize   = 10
	maxPageSize       = 100
)

// currentIdentity extracts the identity claims stored in the context by the
// JWT middleware.  Empty strings are returned for anything missing so
// handlers can respond 401 uniformly.
func currentIdentity(c echo.Context) (userID, username, role string) {
	if v, ok := c.Get("user_id").(string); ok {
		userID = v
	}
	if v, ok := c.Get("username").(string); ok {
		username = v
	}
	if v, ok := c.Get("role").(string); ok {
		role = v
	}
	return userID, username, role
}

// parsePagination reads the pageNumber and pageSize query parameters,
// applying defaults when they are absent.  It returns ok=false when either
// value is present but malformed or outside the allowed bounds.
func parsePagination(c echo.Context) (pageNumber, pageSize int, ok bool) {
	pageNumber, pageSize = defaultPageNumber, defaultPageSize
	if raw := c.QueryParam("pageNumber"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, false
		}
		pageNumber = n
	}
	if raw := c.QueryParam("pageSize"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, false
		}
		pageSize = n
	}
	if pageNumber < 1 || pageSize < 1 || pageSize > maxPageSize {
		return 0, 0, false
	}
	return pageNumber, pageSize, true
}
