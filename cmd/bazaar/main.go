package main

import (
	"context"
	"log/slog"
	"os"

	"bazaar/config"
	"bazaar/internal/delivery"
	"bazaar/internal/delivery/http"
	"bazaar/internal/delivery/http/router/handler"
	"bazaar/internal/infra/changefeed"
	logs "bazaar/internal/infra/log"
	"bazaar/internal/infra/persistence/postgres"
	"bazaar/internal/state"
	"bazaar/internal/usecase"
	"bazaar/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Ctx        context.Context
	Sync       usecase.SyncUsecase
	Dispatch   usecase.DispatchUsecase
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			newSeededStore,
		),
		changefeed.Module,
	)
}

// newSeededStore builds the local store preloaded with demo data so the
// instance can serve before the first remote refresh lands.
func newSeededStore() *state.Store {
	return state.NewStore(state.Seed())
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewPendingUserRepository,
			postgres.NewProductRepository,
			postgres.NewOrderRepository,
			postgres.NewTicketRepository,
			postgres.NewPromotionRepository,
			postgres.NewReturnRepository,
			postgres.NewSettingsRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSyncService,
			impl.NewDispatchService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewStateHandler,
			handler.NewUserHandler,
			handler.NewCatalogHandler,
			handler.NewOrderHandler,
			handler.NewSupportHandler,
			handler.NewPromotionHandler,
			handler.NewSettingsHandler,
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return params.Sync.Start(params.Ctx)
		},
		OnStop: func(ctx context.Context) error {
			params.Sync.Stop()
			// Let scheduled remote writes settle before the process exits.
			params.Dispatch.Wait()

			return nil
		},
	})

	for _, d := range params.Deliveries {
		go func() {
			if err := d.Serve(params.Ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
