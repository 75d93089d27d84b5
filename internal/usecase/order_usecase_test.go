package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rackline/internal/domain/entity"
	"rackline/pkg/errors"
)

type fakeOrderAPI struct {
	orders        []entity.Order
	fetchErr      error
	createErr     error
	updateErr     error
	updated       []entity.Order
	airtableCalls int
	xeroCalls     int
}

func (f *fakeOrderAPI) FetchOrders(ctx context.Context) ([]entity.Order, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return append([]entity.Order(nil), f.orders...), nil
}

func (f *fakeOrderAPI) CreateOrder(ctx context.Context, order *entity.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.orders = append(f.orders, *order)
	return nil
}

func (f *fakeOrderAPI) UpdateOrder(ctx context.Context, order entity.Order) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, order)
	return nil
}

func (f *fakeOrderAPI) SyncOrderAirtable(ctx context.Context, id string) (string, error) {
	f.airtableCalls++
	return "rec123", nil
}

func (f *fakeOrderAPI) SyncOrderXero(ctx context.Context, id string) (string, error) {
	f.xeroCalls++
	return "inv456", nil
}

type fakeOrderRepo struct {
	orders []entity.Order
}

func (f *fakeOrderRepo) GetAll() []entity.Order {
	return append([]entity.Order(nil), f.orders...)
}

func (f *fakeOrderRepo) Get(id string) (entity.Order, bool) {
	for _, o := range f.orders {
		if o.ID == id {
			return o, true
		}
	}
	return entity.Order{}, false
}

func (f *fakeOrderRepo) Add(order *entity.Order) error {
	f.orders = append(f.orders, *order)
	return nil
}

func (f *fakeOrderRepo) Save(order entity.Order) error {
	for i := range f.orders {
		if f.orders[i].ID == order.ID {
			f.orders[i] = order
			return nil
		}
	}
	f.orders = append(f.orders, order)
	return nil
}

type fakeNotifier struct {
	notifications []string
}

func (f *fakeNotifier) NotifyOrderStatus(reference string, status entity.OrderStatus) {
	f.notifications = append(f.notifications, reference+":"+string(status))
}

func pendingOrder() entity.Order {
	return entity.Order{
		ID:        "ord-1",
		Reference: "RL-ABCD1234",
		Email:     "buyer@example.com",
		Status:    entity.OrderPendingApproval,
		Items:     []entity.OrderItem{{Name: "Dell R740", SKU: "R740-64", Quantity: 1, Price: 1899}},
	}
}

func TestOrderCreateComputesTotalAndReference(t *testing.T) {
	api := &fakeOrderAPI{}
	uc := NewOrderUseCase(api, &fakeOrderRepo{}, nil)

	order, offline, err := uc.Create(context.Background(), CreateOrderInput{
		Email: "buyer@example.com",
		Items: []entity.OrderItem{
			{Name: "Dell R740", SKU: "R740-64", Quantity: 2, Price: 1899},
			{Name: "Rails", SKU: "RAILS-1", Quantity: 1, Price: 49},
		},
	})
	require.NoError(t, err)
	assert.False(t, offline)
	assert.Equal(t, entity.OrderPendingApproval, order.Status)
	assert.Equal(t, 3847.0, order.Total)
	assert.Regexp(t, `^RL-[0-9A-F]{8}$`, order.Reference)
	assert.NotEmpty(t, order.ID)
}

func TestOrderCreateRequiresItems(t *testing.T) {
	uc := NewOrderUseCase(&fakeOrderAPI{}, &fakeOrderRepo{}, nil)

	_, _, err := uc.Create(context.Background(), CreateOrderInput{Email: "buyer@example.com"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestOrderCreateFallsBackToLocalStore(t *testing.T) {
	api := &fakeOrderAPI{createErr: fmt.Errorf("upstream down")}
	repo := &fakeOrderRepo{}
	uc := NewOrderUseCase(api, repo, nil)

	order, offline, err := uc.Create(context.Background(), CreateOrderInput{
		Email: "buyer@example.com",
		Items: []entity.OrderItem{{Name: "Switch", SKU: "SW-1", Quantity: 1, Price: 100}},
	})
	require.NoError(t, err)
	assert.True(t, offline)
	require.Len(t, repo.orders, 1)
	assert.Equal(t, order.ID, repo.orders[0].ID)
}

func TestOrderListServesMirrorWhenOffline(t *testing.T) {
	api := &fakeOrderAPI{fetchErr: fmt.Errorf("upstream down")}
	repo := &fakeOrderRepo{orders: []entity.Order{pendingOrder()}}
	uc := NewOrderUseCase(api, repo, nil)

	orders, offline, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.True(t, offline)
	require.Len(t, orders, 1)
	assert.Equal(t, "ord-1", orders[0].ID)
}

func TestListByEmailFiltersToCaller(t *testing.T) {
	other := pendingOrder()
	other.ID = "ord-2"
	other.Reference = "RL-EFGH5678"
	other.Email = "someone@else.example"
	api := &fakeOrderAPI{orders: []entity.Order{pendingOrder(), other}}
	uc := NewOrderUseCase(api, &fakeOrderRepo{}, nil)

	orders, offline, err := uc.ListByEmail(context.Background(), "Buyer@Example.com")
	require.NoError(t, err)
	assert.False(t, offline)
	require.Len(t, orders, 1)
	assert.Equal(t, "ord-1", orders[0].ID)
}

func TestListByEmailServesMirrorWhenOffline(t *testing.T) {
	api := &fakeOrderAPI{fetchErr: fmt.Errorf("upstream down")}
	repo := &fakeOrderRepo{orders: []entity.Order{pendingOrder()}}
	uc := NewOrderUseCase(api, repo, nil)

	orders, offline, err := uc.ListByEmail(context.Background(), "buyer@example.com")
	require.NoError(t, err)
	assert.True(t, offline)
	require.Len(t, orders, 1)
	assert.Equal(t, "RL-ABCD1234", orders[0].Reference)
}

func TestUpdateStatusLegalTransition(t *testing.T) {
	api := &fakeOrderAPI{orders: []entity.Order{pendingOrder()}}
	repo := &fakeOrderRepo{}
	notifier := &fakeNotifier{}
	uc := NewOrderUseCase(api, repo, notifier)

	order, err := uc.UpdateStatus(context.Background(), "ord-1", entity.OrderProcessing)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderProcessing, order.Status)

	require.Len(t, repo.orders, 1)
	assert.Equal(t, entity.OrderProcessing, repo.orders[0].Status)
	assert.Equal(t, []string{"RL-ABCD1234:PROCESSING"}, notifier.notifications)
	require.Len(t, api.updated, 1)
}

func TestUpdateStatusIllegalTransitionRejected(t *testing.T) {
	api := &fakeOrderAPI{orders: []entity.Order{pendingOrder()}}
	uc := NewOrderUseCase(api, &fakeOrderRepo{}, nil)

	_, err := uc.UpdateStatus(context.Background(), "ord-1", entity.OrderDelivered)
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestUpdateStatusUnknownStatusRejected(t *testing.T) {
	uc := NewOrderUseCase(&fakeOrderAPI{}, &fakeOrderRepo{}, nil)

	_, err := uc.UpdateStatus(context.Background(), "ord-1", "ARCHIVED")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestUpdateStatusSameStatusIsNoop(t *testing.T) {
	api := &fakeOrderAPI{orders: []entity.Order{pendingOrder()}}
	notifier := &fakeNotifier{}
	uc := NewOrderUseCase(api, &fakeOrderRepo{}, notifier)

	order, err := uc.UpdateStatus(context.Background(), "ord-1", entity.OrderPendingApproval)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPendingApproval, order.Status)
	assert.Empty(t, notifier.notifications)
	assert.Empty(t, api.updated)
}

func TestUpdateStatusFindsByReference(t *testing.T) {
	api := &fakeOrderAPI{orders: []entity.Order{pendingOrder()}}
	uc := NewOrderUseCase(api, &fakeOrderRepo{}, nil)

	order, err := uc.UpdateStatus(context.Background(), "RL-ABCD1234", entity.OrderProcessing)
	require.NoError(t, err)
	assert.Equal(t, "ord-1", order.ID)
}

func TestUpdateStatusKeepsLocalStateOnPushFailure(t *testing.T) {
	api := &fakeOrderAPI{
		orders:    []entity.Order{pendingOrder()},
		updateErr: fmt.Errorf("upstream down"),
	}
	repo := &fakeOrderRepo{}
	uc := NewOrderUseCase(api, repo, nil)

	order, err := uc.UpdateStatus(context.Background(), "ord-1", entity.OrderProcessing)
	assert.True(t, errors.Is(err, "UPSTREAM_ERROR"))

	// The mirror keeps the new status; there is no rollback.
	require.NotNil(t, order)
	assert.Equal(t, entity.OrderProcessing, order.Status)
	require.Len(t, repo.orders, 1)
	assert.Equal(t, entity.OrderProcessing, repo.orders[0].Status)
}

func TestSyncAirtableOnlyOnce(t *testing.T) {
	api := &fakeOrderAPI{orders: []entity.Order{pendingOrder()}}
	repo := &fakeOrderRepo{}
	uc := NewOrderUseCase(api, repo, nil)

	order, err := uc.SyncAirtable(context.Background(), "ord-1")
	require.NoError(t, err)
	assert.Equal(t, "rec123", order.AirtableRecordID)
	assert.Equal(t, 1, api.airtableCalls)

	// The marker now lives in the mirror; with the upstream copy still
	// blank the mirror has to win for the no-op to hold.
	api.fetchErr = fmt.Errorf("upstream down")
	order, err = uc.SyncAirtable(context.Background(), "ord-1")
	require.NoError(t, err)
	assert.Equal(t, "rec123", order.AirtableRecordID)
	assert.Equal(t, 1, api.airtableCalls)
}

func TestSyncXeroNoopWhenAlreadySynced(t *testing.T) {
	synced := pendingOrder()
	synced.XeroInvoiceID = "inv-existing"
	api := &fakeOrderAPI{orders: []entity.Order{synced}}
	uc := NewOrderUseCase(api, &fakeOrderRepo{}, nil)

	order, err := uc.SyncXero(context.Background(), "ord-1")
	require.NoError(t, err)
	assert.Equal(t, "inv-existing", order.XeroInvoiceID)
	assert.Equal(t, 0, api.xeroCalls)
}

func TestUpdateStatusOrderNotFound(t *testing.T) {
	uc := NewOrderUseCase(&fakeOrderAPI{}, &fakeOrderRepo{}, nil)

	_, err := uc.UpdateStatus(context.Background(), "missing", entity.OrderProcessing)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
