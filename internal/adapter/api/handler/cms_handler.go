package handler

import (
	"rackline/internal/usecase"
	"rackline/pkg/errors"
	"rackline/pkg/response"

	"github.com/labstack/echo/v4"
)

// CMSHandler forwards asset uploads and redirect imports to the
// upstream CMS.
type CMSHandler struct {
	api usecase.CMSAPI
}

func NewCMSHandler(api usecase.CMSAPI) *CMSHandler {
	return &CMSHandler{api: api}
}

func (h *CMSHandler) Upload(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("File is required", err))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.BadRequest("Unable to open uploaded file", err))
	}
	defer src.Close()

	url, err := h.api.UploadFile(c.Request().Context(), file.Filename, src)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"url": url})
}

func (h *CMSHandler) ImportRedirects(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("CSV file is required", err))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.BadRequest("Unable to open uploaded file", err))
	}
	defer src.Close()

	result, err := h.api.ImportRedirects(c.Request().Context(), file.Filename, src)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]int{
		"imported": result.Imported,
		"skipped":  result.Skipped,
	})
}
