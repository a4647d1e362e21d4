// Package changefeed contains the concrete change event transports behind the
// service.ChangePublisher and service.ChangeFeed contracts.
package changefeed

import (
	"context"
	"log/slog"
	"sync"

	"bazaar/internal/domain/service"
)

// LocalBus is an in-process transport implementing both ChangePublisher and
// ChangeFeed. Events published on one side are delivered asynchronously to
// every subscriber through a buffered queue, so a single-instance deployment
// behaves like a distributed one.
type LocalBus struct {
	logger *slog.Logger

	mu       sync.Mutex
	nextID   int
	handlers map[int]func(event *service.ChangeEvent)
	queue    chan *service.ChangeEvent
	done     chan struct{}
	closed   bool
}

const defaultLocalBuffer = 64

// NewLocalBus creates the in-process change bus and starts its delivery loop.
func NewLocalBus(buffer int, logger *slog.Logger) *LocalBus {
	if buffer <= 0 {
		buffer = defaultLocalBuffer
	}

	bus := &LocalBus{
		logger:   logger,
		handlers: make(map[int]func(event *service.ChangeEvent)),
		queue:    make(chan *service.ChangeEvent, buffer),
		done:     make(chan struct{}),
	}
	go bus.deliver()

	return bus
}

// PublishChange enqueues an event for delivery. A full queue drops the event;
// the consumer refreshes everything on the next event anyway.
func (b *LocalBus) PublishChange(_ context.Context, event *service.ChangeEvent) error {
	select {
	case b.queue <- event:
	default:
		b.logger.Warn("[LocalBus] Queue full, dropping change event",
			slog.String("table", event.Table),
			slog.String("op", event.Op),
		)
	}

	return nil
}

// Subscribe registers a handler and returns its unsubscribe function.
func (b *LocalBus) Subscribe(handler func(event *service.ChangeEvent)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[id] = handler

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers, id)
	}
}

func (b *LocalBus) deliver() {
	for {
		select {
		case event := <-b.queue:
			b.mu.Lock()
			handlers := make([]func(event *service.ChangeEvent), 0, len(b.handlers))
			for _, handler := range b.handlers {
				handlers = append(handlers, handler)
			}
			b.mu.Unlock()

			for _, handler := range handlers {
				handler(event)
			}
		case <-b.done:
			return
		}
	}
}

// Close stops the delivery loop. Pending events in the queue are discarded.
func (b *LocalBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	close(b.done)

	return nil
}
