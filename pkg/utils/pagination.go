package utils

import (
	"net/url"
	"strconv"
)

const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// ParsePaginationParams reads 1-based page and limit query parameters,
// applying the 1..MaxLimit bound on limit. Invalid values fall back to
// the defaults instead of failing the request.
func ParsePaginationParams(values url.Values) (page int, limit int) {
	page = 1
	limit = DefaultLimit

	if limitStr := values.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			if l > MaxLimit {
				limit = MaxLimit
			} else {
				limit = l
			}
		}
	}

	if pageStr := values.Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	return page, limit
}

// TotalPages is ceil(total/limit), 0 when there are no rows.
func TotalPages(total int, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
