package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// PaginationParams represents pagination parameters
type PaginationParams struct {
	Page     int
	PageSize int
	Offset   int
}

// GetPaginationParams extracts pagination parameters from request.
// The storefront asks for the full catalog with a very large limit, so
// limits above the default cap are allowed up to maxPageSize.
func GetPaginationParams(c echo.Context) PaginationParams {
	const maxPageSize = 100000

	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("limit"))

	if page <= 0 {
		if offset, err := strconv.Atoi(c.QueryParam("offset")); err == nil && offset > 0 && pageSize > 0 {
			page = offset/pageSize + 1
		} else {
			page = 1
		}
	}

	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	offset := (page - 1) * pageSize

	return PaginationParams{
		Page:     page,
		PageSize: pageSize,
		Offset:   offset,
	}
}
