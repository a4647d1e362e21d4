package changefeed

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"bazaar/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBus(t *testing.T) *LocalBus {
	t.Helper()

	bus := NewLocalBus(0, slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() { _ = bus.Close() })

	return bus
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestLocalBus_DeliversToEverySubscriber(t *testing.T) {
	bus := newTestBus(t)

	var first, second atomic.Int32
	bus.Subscribe(func(*service.ChangeEvent) { first.Add(1) })
	bus.Subscribe(func(*service.ChangeEvent) { second.Add(1) })

	require.NoError(t, bus.PublishChange(context.Background(), &service.ChangeEvent{
		Table: service.TableProducts,
		Op:    "update",
	}))

	waitFor(t, func() bool { return first.Load() == 1 && second.Load() == 1 })
}

func TestLocalBus_UnsubscribeStopsDelivery(t *testing.T) {
	bus := newTestBus(t)

	var kept, dropped atomic.Int32
	bus.Subscribe(func(*service.ChangeEvent) { kept.Add(1) })
	unsubscribe := bus.Subscribe(func(*service.ChangeEvent) { dropped.Add(1) })
	unsubscribe()

	require.NoError(t, bus.PublishChange(context.Background(), &service.ChangeEvent{Table: service.TableUsers, Op: "insert"}))

	waitFor(t, func() bool { return kept.Load() == 1 })
	assert.Equal(t, int32(0), dropped.Load())
}

func TestLocalBus_PublishAfterCloseDoesNotBlock(t *testing.T) {
	bus := newTestBus(t)
	require.NoError(t, bus.Close())
	require.NoError(t, bus.Close(), "close is idempotent")

	// The delivery loop is gone; publishing must still return immediately,
	// filling and then dropping on the buffered queue.
	for range 70 {
		assert.NoError(t, bus.PublishChange(context.Background(), &service.ChangeEvent{Table: service.TableOrders, Op: "update"}))
	}
}
