package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOrder_TotalsAreConsistent(t *testing.T) {
	now := time.Date(2024, time.February, 1, 12, 0, 0, 0, time.UTC)
	lines := []CartLine{
		{Product: Product{ID: "a", Name: "Product A", Price: 50}, Quantity: 2},
		{Product: Product{ID: "b", Name: "Product B", Price: 30}, Quantity: 1},
	}

	order := BuildOrder("o1", "r1", "w1", lines, now)

	assert.Equal(t, float64(130), order.Total)
	require.Len(t, order.Items, 2)
	for _, item := range order.Items {
		assert.Equal(t, item.Price*float64(item.Quantity), item.Total)
	}
	assert.Equal(t, OrderStatusPending, order.Status)
	assert.Equal(t, PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, "Product A", order.Items[0].ProductName, "item snapshots the product name")
}

func TestOrderStatus_Transitions(t *testing.T) {
	assert.True(t, OrderStatusPending.CanTransitionTo(OrderStatusAccepted))
	assert.True(t, OrderStatusAccepted.CanTransitionTo(OrderStatusReady))
	assert.True(t, OrderStatusReady.CanTransitionTo(OrderStatusCompleted))
	assert.True(t, OrderStatusPending.CanTransitionTo(OrderStatusCancelled))

	assert.False(t, OrderStatusPending.CanTransitionTo(OrderStatusReady))
	assert.False(t, OrderStatusCompleted.CanTransitionTo(OrderStatusCancelled))
	assert.False(t, OrderStatusCancelled.CanTransitionTo(OrderStatusPending))
}
