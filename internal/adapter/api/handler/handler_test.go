package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rackline/internal/adapter/api"
	"rackline/internal/domain/entity"
	"rackline/internal/usecase"
	"rackline/pkg/response"
)

type stubTrackingAPI struct {
	order *entity.Order
}

func (s *stubTrackingAPI) TrackOrder(ctx context.Context, reference, email string) (*entity.Order, bool, error) {
	if s.order != nil && s.order.Reference == reference && s.order.Email == email {
		return s.order, true, nil
	}
	return nil, false, nil
}

func (s *stubTrackingAPI) TrackQuote(ctx context.Context, reference, email string) (*entity.Submission, bool, error) {
	return nil, false, nil
}

type stubOrderAPI struct {
	orders []entity.Order
}

func (s *stubOrderAPI) FetchOrders(ctx context.Context) ([]entity.Order, error) {
	return append([]entity.Order(nil), s.orders...), nil
}

func (s *stubOrderAPI) CreateOrder(ctx context.Context, order *entity.Order) error { return nil }
func (s *stubOrderAPI) UpdateOrder(ctx context.Context, order entity.Order) error  { return nil }

func (s *stubOrderAPI) SyncOrderAirtable(ctx context.Context, id string) (string, error) {
	return "", nil
}

func (s *stubOrderAPI) SyncOrderXero(ctx context.Context, id string) (string, error) {
	return "", nil
}

type stubOrderRepo struct{}

func (stubOrderRepo) GetAll() []entity.Order             { return nil }
func (stubOrderRepo) Get(id string) (entity.Order, bool) { return entity.Order{}, false }
func (stubOrderRepo) Add(order *entity.Order) error      { return nil }
func (stubOrderRepo) Save(order entity.Order) error      { return nil }

type stubContentRepo struct{}

func (stubContentRepo) Load(defaults entity.ContentState) entity.ContentState { return defaults }
func (stubContentRepo) Save(state entity.ContentState) error                  { return nil }

type stubContentAPI struct{}

func (stubContentAPI) FetchContent(ctx context.Context) (entity.ContentPatch, error) {
	return entity.ContentPatch{}, nil
}

func (stubContentAPI) SaveSection(ctx context.Context, section string, payload interface{}) error {
	return nil
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = api.NewValidator()
	return e
}

func doJSON(e *echo.Echo, h echo.HandlerFunc, method, target, body string) (*httptest.ResponseRecorder, response.Response) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	var envelope response.Response
	_ = json.Unmarshal(rec.Body.Bytes(), &envelope)
	return rec, envelope
}

func TestTrackEndpointFindsOrder(t *testing.T) {
	h := NewTrackingHandler(usecase.NewTrackingUseCase(&stubTrackingAPI{order: &entity.Order{
		Reference: "RL-ABCD1234",
		Email:     "buyer@example.com",
		Status:    entity.OrderShipped,
	}}))
	e := newEcho()

	rec, envelope := doJSON(e, h.Track, http.MethodPost, "/v1/orders/track",
		`{"reference":"RL-ABCD1234","email":"buyer@example.com"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, envelope.Success)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "order", data["type"])
	assert.Equal(t, "SHIPPED", data["status"])
}

func TestTrackEndpointUnknownReference(t *testing.T) {
	h := NewTrackingHandler(usecase.NewTrackingUseCase(&stubTrackingAPI{}))
	e := newEcho()

	rec, envelope := doJSON(e, h.Track, http.MethodPost, "/v1/orders/track",
		`{"reference":"RL-NOPE","email":"buyer@example.com"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "NOT_FOUND", envelope.Error.Code)
}

func TestTrackEndpointValidatesEmail(t *testing.T) {
	h := NewTrackingHandler(usecase.NewTrackingUseCase(&stubTrackingAPI{}))
	e := newEcho()

	rec, envelope := doJSON(e, h.Track, http.MethodPost, "/v1/orders/track",
		`{"reference":"RL-ABCD1234","email":"not-an-email"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
}

func TestMyOrdersFiltersToTokenEmail(t *testing.T) {
	orderAPI := &stubOrderAPI{orders: []entity.Order{
		{ID: "ord-1", Reference: "RL-ABCD1234", Email: "buyer@example.com", Status: entity.OrderProcessing},
		{ID: "ord-2", Reference: "RL-EFGH5678", Email: "someone@else.example", Status: entity.OrderShipped},
	}}
	h := NewOrderHandler(usecase.NewOrderUseCase(orderAPI, stubOrderRepo{}, nil))
	e := newEcho()

	req := httptest.NewRequest(http.MethodGet, "/v1/orders/my-orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("email", "buyer@example.com")

	require.NoError(t, h.MyOrders(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	orders, ok := data["orders"].([]interface{})
	require.True(t, ok)
	require.Len(t, orders, 1)
	order, ok := orders[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "RL-ABCD1234", order["reference"])
}

func TestMyOrdersRequiresEmailClaim(t *testing.T) {
	h := NewOrderHandler(usecase.NewOrderUseCase(&stubOrderAPI{}, stubOrderRepo{}, nil))
	e := newEcho()

	req := httptest.NewRequest(http.MethodGet, "/v1/orders/my-orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.MyOrders(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetContentServesCurrentState(t *testing.T) {
	contentUseCase := usecase.NewContentUseCase(stubContentRepo{}, stubContentAPI{})
	h := NewContentHandler(contentUseCase)
	e := newEcho()

	rec, envelope := doJSON(e, h.GetContent, http.MethodGet, "/v1/content", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, envelope.Success)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	general, ok := data["general"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Rackline Systems", general["companyName"])
}

func TestUpdateSectionRejectsInvalidJSON(t *testing.T) {
	contentUseCase := usecase.NewContentUseCase(stubContentRepo{}, stubContentAPI{})
	h := NewContentHandler(contentUseCase)
	e := newEcho()

	req := httptest.NewRequest(http.MethodPost, "/v1/content/general", strings.NewReader("{broken"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("section")
	c.SetParamValues("general")

	require.NoError(t, h.UpdateSection(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateSectionAppliesPatch(t *testing.T) {
	contentUseCase := usecase.NewContentUseCase(stubContentRepo{}, stubContentAPI{})
	h := NewContentHandler(contentUseCase)
	e := newEcho()

	req := httptest.NewRequest(http.MethodPost, "/v1/content/general",
		strings.NewReader(`{"companyName":"Northgrid BV"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("section")
	c.SetParamValues("general")

	require.NoError(t, h.UpdateSection(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	state := contentUseCase.State()
	assert.Equal(t, "Northgrid BV", state.General.CompanyName)
	assert.Equal(t, "RACKLINE", state.General.LogoText)
}
