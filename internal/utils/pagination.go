package utils

import (
	"fmt"
	"strings"

	"Recipe-Share-Backend/domain"
)

const (
	DefaultPageSize  = 10
	MaxPageSize      = 100
	DefaultSortBy    = "created_at"
	DefaultDirection = "desc"
)

// SanitizePageRequest normalizes a page request the same way for every listing
// operation: page clamps to 0, size clamps to [1, MaxPageSize], a blank or
// unknown sort field falls back to created_at and an unknown direction falls
// back to desc. It never returns an error.
func SanitizePageRequest(req domain.PageRequest, sortable ...string) domain.PageRequest {
	if req.Page < 0 {
		req.Page = 0
	}
	if req.Size < 1 {
		req.Size = DefaultPageSize
	}
	if req.Size > MaxPageSize {
		req.Size = MaxPageSize
	}

	req.SortBy = strings.TrimSpace(req.SortBy)
	if req.SortBy == "" || !contains(sortable, req.SortBy) {
		req.SortBy = DefaultSortBy
	}

	switch strings.ToLower(req.Direction) {
	case "asc", "desc":
		req.Direction = strings.ToLower(req.Direction)
	default:
		req.Direction = DefaultDirection
	}

	return req
}

// Offset assumes the request has already been sanitized. Pages are 0-indexed.
func Offset(req domain.PageRequest) int {
	return req.Page * req.Size
}

// OrderClause is only ever built from a sanitized request, so the sort column
// is guaranteed to come from the caller's whitelist.
func OrderClause(req domain.PageRequest) string {
	return fmt.Sprintf("%s %s", req.SortBy, req.Direction)
}

func NewPageMeta(req domain.PageRequest, total int64) domain.PageMeta {
	totalPages := int(total) / req.Size
	if int(total)%req.Size != 0 {
		totalPages++
	}
	return domain.PageMeta{
		Page:       req.Page,
		Size:       req.Size,
		TotalItems: total,
		TotalPages: totalPages,
	}
}

func contains(fields []string, field string) bool {
	for _, f := range fields {
		if f == field {
			return true
		}
	}
	return false
}
