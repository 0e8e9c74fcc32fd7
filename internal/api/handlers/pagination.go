package handlers

import (
	"Recipe-Share-Backend/domain"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// parsePageRequest reads paging parameters from the query string. Malformed
// values fall back to defaults, the service layer clamps the rest.
func parsePageRequest(c *fiber.Ctx) domain.PageRequest {
	page, err := strconv.Atoi(c.Query("page", "0"))
	if err != nil {
		page = 0
	}

	size, err := strconv.Atoi(c.Query("size", "10"))
	if err != nil {
		size = 10
	}

	return domain.PageRequest{
		Page:      page,
		Size:      size,
		SortBy:    c.Query("sort_by"),
		Direction: c.Query("direction"),
	}
}
