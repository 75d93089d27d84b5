package handler

import (
	"encoding/json"
	"io"

	"rackline/internal/domain/entity"
	"rackline/internal/usecase"
	"rackline/pkg/errors"
	"rackline/pkg/response"

	"github.com/labstack/echo/v4"
)

type ContentHandler struct {
	contentUseCase *usecase.ContentUseCase
}

func NewContentHandler(contentUseCase *usecase.ContentUseCase) *ContentHandler {
	return &ContentHandler{contentUseCase: contentUseCase}
}

// GetContent serves the merged content document.
func (h *ContentHandler) GetContent(c echo.Context) error {
	return response.Success(c, h.contentUseCase.State())
}

// UpdateSection applies one top-level section from the request body.
// The local write happens before the upstream push; a push failure is
// reported to the caller but the local state already reflects the edit.
func (h *ContentHandler) UpdateSection(c echo.Context) error {
	section := c.Param("section")

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.Error(c, errors.BadRequest("Unable to read request body", err))
	}
	if !json.Valid(body) {
		return response.Error(c, errors.BadRequest("Request body must be valid JSON", nil))
	}

	state, err := h.contentUseCase.Update(
		c.Request().Context(),
		entity.ContentPatch{section: json.RawMessage(body)},
	)
	if err != nil {
		return response.Error(c, err)
	}

	value, _ := state.Section(section)
	return response.Success(c, value)
}
