package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderPendingApproval, OrderProcessing, true},
		{OrderPendingApproval, OrderCancelled, true},
		{OrderPendingApproval, OrderShipped, false},
		{OrderPendingApproval, OrderDelivered, false},
		{OrderProcessing, OrderShipped, true},
		{OrderProcessing, OrderCancelled, true},
		{OrderProcessing, OrderPendingApproval, false},
		{OrderShipped, OrderDelivered, true},
		{OrderShipped, OrderCancelled, false},
		{OrderDelivered, OrderShipped, false},
		{OrderDelivered, OrderCancelled, false},
		{OrderCancelled, OrderPendingApproval, false},
		{OrderCancelled, OrderProcessing, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestCanTransitionSameStatusIsNoop(t *testing.T) {
	for status := range orderTransitions {
		assert.True(t, CanTransition(status, status), "%s -> itself", status)
	}
}

func TestValidOrderStatus(t *testing.T) {
	assert.True(t, ValidOrderStatus(OrderProcessing))
	assert.False(t, ValidOrderStatus("ARCHIVED"))
	assert.False(t, ValidOrderStatus(""))
}

func TestTrackingStep(t *testing.T) {
	assert.Equal(t, 0, OrderPendingApproval.TrackingStep())
	assert.Equal(t, 0, OrderProcessing.TrackingStep())
	assert.Equal(t, 1, OrderShipped.TrackingStep())
	assert.Equal(t, 2, OrderDelivered.TrackingStep())
	assert.Equal(t, -1, OrderCancelled.TrackingStep())
}
