package changefeed

import (
	"context"
	"log/slog"

	"bazaar/config"
	"bazaar/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Provider names accepted in the changeFeed configuration section.
const (
	ProviderLocal    = "local"
	ProviderPostgres = "postgres"
	ProviderGoogle   = "google"
)

// Transport bundles the change event sides a deployment needs. Publisher
// carries events out after remote writes. Feed delivers incoming events to
// subscribers. PushSink accepts events handed over from outside the process,
// such as the Pub/Sub push endpoint, and forwards them into Feed.
type Transport struct {
	Publisher service.ChangePublisher
	Feed      service.ChangeFeed
	PushSink  service.ChangePublisher
}

// TransportParams holds dependencies for Transport, injected by Fx
type TransportParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// NewTransport creates the change event transport based on configuration. An
// absent section falls back to the in-process bus.
func NewTransport(params TransportParams) (*Transport, error) {
	cfg := params.Config.ChangeFeed
	logger := params.Logger

	var transport *Transport
	var closers []func() error

	switch {
	case cfg == nil || cfg.Provider == "" || cfg.Provider == ProviderLocal:
		logger.Info("Using in-process change bus")

		var buffer int
		if cfg != nil {
			buffer = cfg.LocalBuffer
		}
		bus := NewLocalBus(buffer, logger)
		transport = &Transport{Publisher: bus, Feed: bus, PushSink: bus}
		closers = append(closers, bus.Close)

	case cfg.Provider == ProviderPostgres:
		if cfg.Channel == "" {
			return nil, errors.New("channel is required for postgres provider")
		}
		if cfg.DSN == "" {
			return nil, errors.New("dsn is required for postgres provider")
		}
		logger.Info("Using PostgreSQL LISTEN/NOTIFY change bus",
			slog.String("channel", cfg.Channel),
		)

		db := params.DB
		notify := func(ctx context.Context, channel, payload string) error {
			return db.WithContext(ctx).Exec("SELECT pg_notify(?, ?)", channel, payload).Error
		}
		bus, err := NewPostgresBus(cfg.DSN, cfg.Channel, notify, logger)
		if err != nil {
			return nil, err
		}
		transport = &Transport{Publisher: bus, Feed: bus, PushSink: bus}
		closers = append(closers, bus.Close)

	case cfg.Provider == ProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub change publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err := NewGooglePublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

		// Incoming events arrive through the push subscription endpoint,
		// which writes into the in-process bus.
		bus := NewLocalBus(cfg.LocalBuffer, logger)
		transport = &Transport{Publisher: publisher, Feed: bus, PushSink: bus}
		closers = append(closers, publisher.Close, bus.Close)

	default:
		return nil, errors.Errorf("unknown changefeed provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close the transport on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing change transport")

			for _, closeFn := range closers {
				if err := closeFn(); err != nil {
					return err
				}
			}

			return nil
		},
	})

	return transport, nil
}

// Module provides the changefeed FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewTransport,
		func(t *Transport) service.ChangePublisher { return t.Publisher },
		func(t *Transport) service.ChangeFeed { return t.Feed },
	),
)
