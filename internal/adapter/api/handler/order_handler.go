package handler

import (
	"rackline/internal/domain/entity"
	"rackline/internal/usecase"
	"rackline/pkg/errors"
	"rackline/pkg/response"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{orderUseCase: orderUseCase}
}

type orderItemRequest struct {
	Name     string  `json:"name" validate:"required"`
	SKU      string  `json:"sku" validate:"required"`
	Quantity int     `json:"quantity" validate:"required,gt=0"`
	Price    float64 `json:"price" validate:"gte=0"`
}

type createOrderRequest struct {
	Email           string             `json:"email" validate:"required,email"`
	Items           []orderItemRequest `json:"items" validate:"required,min=1,dive"`
	ShippingAddress entity.Address     `json:"shippingAddress"`
	BillingAddress  entity.Address     `json:"billingAddress"`
	PaymentMethod   string             `json:"paymentMethod" validate:"required"`
	Notes           string             `json:"notes"`
}

type updateOrderRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, offline, err := h.orderUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"orders":  orders,
		"offline": offline,
	})
}

// MyOrders lists the authenticated customer's own orders. The identity
// comes from the token's email claim, so no admin gate is needed.
func (h *OrderHandler) MyOrders(c echo.Context) error {
	email, _ := c.Get("email").(string)
	if email == "" {
		return response.Error(c, errors.Unauthorized("Token does not carry an email", nil))
	}

	orders, offline, err := h.orderUseCase.ListByEmail(c.Request().Context(), email)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"orders":  orders,
		"offline": offline,
	})
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
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

	order, offline, err := h.orderUseCase.Create(c.Request().Context(), usecase.CreateOrderInput{
		Email:           req.Email,
		Items:           items,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		PaymentMethod:   req.PaymentMethod,
		Notes:           req.Notes,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]interface{}{
		"order":   order,
		"offline": offline,
	})
}

func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	var req updateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.UpdateStatus(
		c.Request().Context(),
		c.Param("id"),
		entity.OrderStatus(req.Status),
	)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, order)
}

func (h *OrderHandler) SyncAirtable(c echo.Context) error {
	order, err := h.orderUseCase.SyncAirtable(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, order)
}

func (h *OrderHandler) SyncXero(c echo.Context) error {
	order, err := h.orderUseCase.SyncXero(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, order)
}
