package changefeed

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"bazaar/internal/domain/service"

	"github.com/lib/pq"
	"github.com/pkg/errors"
)

// PostgresBus implements ChangePublisher and ChangeFeed on top of PostgreSQL
// LISTEN/NOTIFY. Publishing calls pg_notify on the shared database, so every
// instance listening on the same channel converges without extra brokers.
type PostgresBus struct {
	channel  string
	listener *pq.Listener
	logger   *slog.Logger

	mu       sync.Mutex
	nextID   int
	handlers map[int]func(event *service.ChangeEvent)
	done     chan struct{}
	closed   bool

	notify func(ctx context.Context, channel, payload string) error
}

const (
	listenerMinReconnect = time.Second
	listenerMaxReconnect = time.Minute
)

// NewPostgresBus opens a dedicated LISTEN session on the given channel and
// starts the dispatch loop.
func NewPostgresBus(dsn, channel string, notify func(ctx context.Context, channel, payload string) error, logger *slog.Logger) (*PostgresBus, error) {
	listener := pq.NewListener(dsn, listenerMinReconnect, listenerMaxReconnect, func(event pq.ListenerEventType, err error) {
		if err != nil {
			logger.Warn("[PostgresBus] Listener connection event",
				slog.Int("event", int(event)),
				slog.Any("error", err),
			)
		}
	})

	if err := listener.Listen(channel); err != nil {
		listener.Close()

		return nil, errors.Wrapf(err, "failed to listen on channel %s", channel)
	}

	bus := &PostgresBus{
		channel:  channel,
		listener: listener,
		logger:   logger,
		handlers: make(map[int]func(event *service.ChangeEvent)),
		done:     make(chan struct{}),
		notify:   notify,
	}
	go bus.dispatch()

	return bus, nil
}

// PublishChange sends the event through pg_notify on the bus channel.
func (b *PostgresBus) PublishChange(ctx context.Context, event *service.ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := b.notify(ctx, b.channel, string(payload)); err != nil {
		return errors.Wrap(err, "failed to notify change event")
	}

	return nil
}

// Subscribe registers a handler and returns its unsubscribe function.
func (b *PostgresBus) Subscribe(handler func(event *service.ChangeEvent)) func() {
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

func (b *PostgresBus) dispatch() {
	for {
		select {
		case notification := <-b.listener.Notify:
			// A nil notification signals a reconnect; remote state may have
			// changed meanwhile, so fan out a synthetic event.
			event := &service.ChangeEvent{Op: "reconnect"}
			if notification != nil {
				event = &service.ChangeEvent{}
				if err := json.Unmarshal([]byte(notification.Extra), event); err != nil {
					b.logger.Warn("[PostgresBus] Dropping malformed notification payload",
						slog.Any("error", err),
					)

					continue
				}
			}

			b.fanOut(event)
		case <-b.done:
			return
		}
	}
}

func (b *PostgresBus) fanOut(event *service.ChangeEvent) {
	b.mu.Lock()
	handlers := make([]func(event *service.ChangeEvent), 0, len(b.handlers))
	for _, handler := range b.handlers {
		handlers = append(handlers, handler)
	}
	b.mu.Unlock()

	for _, handler := range handlers {
		handler(event)
	}
}

// Close stops the dispatch loop and closes the LISTEN session.
func (b *PostgresBus) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()

		return nil
	}
	b.closed = true
	close(b.done)
	b.mu.Unlock()

	return errors.WithStack(b.listener.Close())
}
