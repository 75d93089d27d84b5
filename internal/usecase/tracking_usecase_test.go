package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rackline/internal/domain/entity"
	"rackline/pkg/errors"
)

type fakeTrackingAPI struct {
	mu    sync.Mutex
	order *entity.Order
	quote *entity.Submission
	err   error
}

func (f *fakeTrackingAPI) setOrderStatus(status entity.OrderStatus) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.order.Status = status
}

func (f *fakeTrackingAPI) TrackOrder(ctx context.Context, reference, email string) (*entity.Order, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, false, f.err
	}
	if f.order != nil && f.order.Reference == reference && f.order.Email == email {
		copied := *f.order
		return &copied, true, nil
	}
	return nil, false, nil
}

func (f *fakeTrackingAPI) TrackQuote(ctx context.Context, reference, email string) (*entity.Submission, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, false, f.err
	}
	if f.quote != nil && f.quote.Reference == reference && f.quote.Email == email {
		copied := *f.quote
		return &copied, true, nil
	}
	return nil, false, nil
}

func TestTrackFindsOrder(t *testing.T) {
	api := &fakeTrackingAPI{order: &entity.Order{
		Reference: "RL-ABCD1234",
		Email:     "buyer@example.com",
		Status:    entity.OrderShipped,
	}}
	uc := NewTrackingUseCase(api)

	result, err := uc.Track(context.Background(), "RL-ABCD1234", "buyer@example.com")
	require.NoError(t, err)
	assert.Equal(t, "order", result.Type)
	assert.Equal(t, "SHIPPED", result.Status)
	assert.Equal(t, 1, result.Step)
	assert.False(t, result.Cancelled)
}

func TestTrackCancelledOrder(t *testing.T) {
	api := &fakeTrackingAPI{order: &entity.Order{
		Reference: "RL-ABCD1234",
		Email:     "buyer@example.com",
		Status:    entity.OrderCancelled,
	}}
	uc := NewTrackingUseCase(api)

	result, err := uc.Track(context.Background(), "RL-ABCD1234", "buyer@example.com")
	require.NoError(t, err)
	assert.True(t, result.Cancelled)
	assert.Equal(t, -1, result.Step)
}

func TestTrackFallsThroughToQuote(t *testing.T) {
	api := &fakeTrackingAPI{quote: &entity.Submission{
		Reference: "RL-QUOTE01",
		Email:     "buyer@example.com",
		Status:    entity.QuoteQuoted,
	}}
	uc := NewTrackingUseCase(api)

	result, err := uc.Track(context.Background(), "RL-QUOTE01", "buyer@example.com")
	require.NoError(t, err)
	assert.Equal(t, "quote", result.Type)
	assert.Equal(t, "QUOTED", result.Status)
	assert.Equal(t, 1, result.Step)
}

func TestTrackNeitherFoundIsGenericNotFound(t *testing.T) {
	uc := NewTrackingUseCase(&fakeTrackingAPI{})

	_, err := uc.Track(context.Background(), "RL-NOPE", "buyer@example.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
	// The message must not reveal which input was wrong.
	assert.NotContains(t, err.Error(), "email")
	assert.NotContains(t, err.Error(), "reference")
}

func TestTrackWrongEmailIsNotFound(t *testing.T) {
	api := &fakeTrackingAPI{order: &entity.Order{
		Reference: "RL-ABCD1234",
		Email:     "buyer@example.com",
		Status:    entity.OrderShipped,
	}}
	uc := NewTrackingUseCase(api)

	_, err := uc.Track(context.Background(), "RL-ABCD1234", "someone-else@example.com")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestTrackRequiresBothInputs(t *testing.T) {
	uc := NewTrackingUseCase(&fakeTrackingAPI{})

	_, err := uc.Track(context.Background(), "", "buyer@example.com")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.Track(context.Background(), "RL-ABCD1234", "")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestTrackLookupErrorFallsThrough(t *testing.T) {
	api := &fakeTrackingAPI{err: fmt.Errorf("upstream down")}
	uc := NewTrackingUseCase(api)

	// Lookup errors are swallowed; the caller still sees not-found.
	_, err := uc.Track(context.Background(), "RL-ABCD1234", "buyer@example.com")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestWatcherFiresOnStatusChange(t *testing.T) {
	api := &fakeTrackingAPI{order: &entity.Order{
		Reference: "RL-ABCD1234",
		Email:     "buyer@example.com",
		Status:    entity.OrderProcessing,
	}}
	uc := NewTrackingUseCase(api)

	updates := make(chan TrackResult, 4)
	watcher := uc.Watch(context.Background(), "RL-ABCD1234", "buyer@example.com",
		2*time.Millisecond, func(r TrackResult) { updates <- r })
	defer watcher.Stop()

	// The first poll seeds the comparison without firing.
	time.Sleep(10 * time.Millisecond)
	select {
	case r := <-updates:
		t.Fatalf("unexpected update before any change: %+v", r)
	default:
	}

	api.setOrderStatus(entity.OrderShipped)

	select {
	case r := <-updates:
		assert.Equal(t, "SHIPPED", r.Status)
		assert.Equal(t, 1, r.Step)
	case <-time.After(time.Second):
		t.Fatal("no update after status change")
	}
}

func TestWatcherStopTerminatesLoop(t *testing.T) {
	api := &fakeTrackingAPI{order: &entity.Order{
		Reference: "RL-ABCD1234",
		Email:     "buyer@example.com",
		Status:    entity.OrderProcessing,
	}}
	uc := NewTrackingUseCase(api)

	watcher := uc.Watch(context.Background(), "RL-ABCD1234", "buyer@example.com",
		time.Millisecond, func(TrackResult) {})

	done := make(chan struct{})
	go func() {
		watcher.Stop()
		watcher.Stop() // idempotent
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}
}
