package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"rackline/internal/domain/entity"
	"rackline/internal/domain/repository"
	"rackline/pkg/errors"
	"rackline/pkg/logger"
)

// StatusNotifier receives order status changes, e.g. the websocket hub
// pushing live updates to tracking pages.
type StatusNotifier interface {
	NotifyOrderStatus(reference string, status entity.OrderStatus)
}

// OrderUseCase manages orders against the upstream API with the local
// store as offline fallback. Status changes go through an explicit
// transition graph instead of a free-form enum field.
type OrderUseCase struct {
	api       OrderAPI
	orderRepo repository.OrderRepository
	notifier  StatusNotifier
}

func NewOrderUseCase(api OrderAPI, orderRepo repository.OrderRepository, notifier StatusNotifier) *OrderUseCase {
	return &OrderUseCase{
		api:       api,
		orderRepo: orderRepo,
		notifier:  notifier,
	}
}

type CreateOrderInput struct {
	Email           string
	Items           []entity.OrderItem
	ShippingAddress entity.Address
	BillingAddress  entity.Address
	PaymentMethod   string
	Notes           string
}

func newOrderReference() string {
	return "RL-" + strings.ToUpper(uuid.NewString()[:8])
}

// List returns all orders. When the upstream is unreachable the local
// mirror is served instead and offline=true tells the caller to show
// the disconnected banner.
func (uc *OrderUseCase) List(ctx context.Context) ([]entity.Order, bool, error) {
	orders, err := uc.api.FetchOrders(ctx)
	if err != nil {
		logger.Warn("orders: upstream list failed, serving local mirror: %v", err)
		return uc.orderRepo.GetAll(), true, nil
	}
	return orders, false, nil
}

// ListByEmail returns the orders belonging to one customer, with the
// same offline-mirror fallback as List. The filter runs here rather
// than upstream so the mirror path behaves identically.
func (uc *OrderUseCase) ListByEmail(ctx context.Context, email string) ([]entity.Order, bool, error) {
	orders, offline, err := uc.List(ctx)
	if err != nil {
		return nil, offline, err
	}
	mine := make([]entity.Order, 0, len(orders))
	for _, order := range orders {
		if strings.EqualFold(order.Email, email) {
			mine = append(mine, order)
		}
	}
	return mine, offline, nil
}

func (uc *OrderUseCase) find(ctx context.Context, id string) (*entity.Order, error) {
	orders, err := uc.api.FetchOrders(ctx)
	if err != nil {
		orders = uc.orderRepo.GetAll()
	}
	for i := range orders {
		if orders[i].ID == id || orders[i].Reference == id {
			return &orders[i], nil
		}
	}
	return nil, errors.NotFound("Order", nil)
}

// Create captures a new order. Line items are snapshots of the product
// at order time; later product edits do not affect them.
func (uc *OrderUseCase) Create(ctx context.Context, input CreateOrderInput) (*entity.Order, bool, error) {
	if len(input.Items) == 0 {
		return nil, false, errors.BadRequest("Order must contain at least one item", nil)
	}

	var total float64
	for _, item := range input.Items {
		total += item.Price * float64(item.Quantity)
	}

	now := time.Now()
	order := entity.Order{
		ID:              uuid.NewString(),
		Reference:       newOrderReference(),
		Email:           input.Email,
		Items:           input.Items,
		ShippingAddress: input.ShippingAddress,
		BillingAddress:  input.BillingAddress,
		PaymentMethod:   input.PaymentMethod,
		Total:           total,
		Status:          entity.OrderPendingApproval,
		Notes:           input.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.api.CreateOrder(ctx, &order); err != nil {
		logger.Warn("orders: upstream create failed, saving locally: %v", err)
		if storeErr := uc.orderRepo.Add(&order); storeErr != nil {
			return nil, false, storeErr
		}
		return &order, true, nil
	}
	return &order, false, nil
}

// UpdateStatus moves an order through the transition graph. The local
// mirror and the live subscribers are updated optimistically before the
// upstream push; a push failure propagates without rolling either back.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id string, to entity.OrderStatus) (*entity.Order, error) {
	if !entity.ValidOrderStatus(to) {
		return nil, errors.BadRequest("Unknown order status: "+string(to), nil)
	}

	order, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !entity.CanTransition(order.Status, to) {
		return nil, errors.Conflict("Order cannot move from " + string(order.Status) + " to " + string(to))
	}
	if order.Status == to {
		return order, nil
	}

	order.Status = to
	order.UpdatedAt = time.Now()

	if err := uc.orderRepo.Save(*order); err != nil {
		return nil, err
	}
	if uc.notifier != nil {
		uc.notifier.NotifyOrderStatus(order.Reference, order.Status)
	}

	if err := uc.api.UpdateOrder(ctx, *order); err != nil {
		return order, errors.Upstream("Order status saved locally but failed to sync", err)
	}
	return order, nil
}

// SyncAirtable pushes the order to Airtable once. A non-empty record id
// marks the order as already synced and the call becomes a no-op.
func (uc *OrderUseCase) SyncAirtable(ctx context.Context, id string) (*entity.Order, error) {
	order, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.AirtableRecordID != "" {
		return order, nil
	}

	recordID, err := uc.api.SyncOrderAirtable(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.AirtableRecordID = recordID
	order.UpdatedAt = time.Now()
	if err := uc.orderRepo.Save(*order); err != nil {
		logger.Warn("orders: failed to mirror airtable marker: %v", err)
	}
	return order, nil
}

// SyncXero pushes the order to Xero once, same contract as SyncAirtable.
func (uc *OrderUseCase) SyncXero(ctx context.Context, id string) (*entity.Order, error) {
	order, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.XeroInvoiceID != "" {
		return order, nil
	}

	invoiceID, err := uc.api.SyncOrderXero(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.XeroInvoiceID = invoiceID
	order.UpdatedAt = time.Now()
	if err := uc.orderRepo.Save(*order); err != nil {
		logger.Warn("orders: failed to mirror xero marker: %v", err)
	}
	return order, nil
}
