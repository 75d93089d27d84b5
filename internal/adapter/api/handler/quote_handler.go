package handler

import (
	"rackline/internal/domain/entity"
	"rackline/internal/usecase"
	"rackline/pkg/response"

	"github.com/labstack/echo/v4"
)

type QuoteHandler struct {
	quoteUseCase *usecase.QuoteUseCase
}

func NewQuoteHandler(quoteUseCase *usecase.QuoteUseCase) *QuoteHandler {
	return &QuoteHandler{quoteUseCase: quoteUseCase}
}

type createQuoteRequest struct {
	Email   string             `json:"email" validate:"required,email"`
	Company string             `json:"company"`
	Items   []orderItemRequest `json:"items" validate:"required,min=1,dive"`
	Message string             `json:"message"`
}

type updateQuoteRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *QuoteHandler) ListQuotes(c echo.Context) error {
	quotes, offline, err := h.quoteUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"quotes":  quotes,
		"offline": offline,
	})
}

// CreateQuote is the unauthenticated request-a-quote endpoint.
func (h *QuoteHandler) CreateQuote(c echo.Context) error {
	var req createQuoteRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	items := make([]entity.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = entity.OrderItem{
			Name:     item.Name,
			SKU:      item.SKU,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}

	quote, offline, err := h.quoteUseCase.Create(c.Request().Context(), usecase.CreateQuoteInput{
		Email:   req.Email,
		Company: req.Company,
		Items:   items,
		Message: req.Message,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]interface{}{
		"quote":   quote,
		"offline": offline,
	})
}

func (h *QuoteHandler) UpdateQuote(c echo.Context) error {
	var req updateQuoteRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	quote, err := h.quoteUseCase.UpdateStatus(
		c.Request().Context(),
		c.Param("id"),
		entity.QuoteStatus(req.Status),
	)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, quote)
}
