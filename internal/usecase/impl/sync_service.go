// Package impl contains the concrete use case implementations.
package impl

import (
	"context"
	"log/slog"

	"bazaar/config"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/state"
	"bazaar/internal/usecase"

	"golang.org/x/sync/errgroup"
)

type syncService struct {
	store *state.Store
	feed  service.ChangeFeed
	cfg   *config.Config
	log   *slog.Logger

	userRepo    repository.UserRepository
	pendingRepo repository.PendingUserRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	ticketRepo  repository.TicketRepository
	promoRepo   repository.PromotionRepository
	returnRepo  repository.ReturnRepository
	settingRepo repository.SettingsRepository

	unsubscribe func()
}

// NewSyncService creates a new sync service instance
func NewSyncService(
	store *state.Store,
	feed service.ChangeFeed,
	cfg *config.Config,
	logger *slog.Logger,
	userRepo repository.UserRepository,
	pendingRepo repository.PendingUserRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	ticketRepo repository.TicketRepository,
	promoRepo repository.PromotionRepository,
	returnRepo repository.ReturnRepository,
	settingRepo repository.SettingsRepository,
) usecase.SyncUsecase {
	return &syncService{
		store:       store,
		feed:        feed,
		cfg:         cfg,
		log:         logger,
		userRepo:    userRepo,
		pendingRepo: pendingRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		ticketRepo:  ticketRepo,
		promoRepo:   promoRepo,
		returnRepo:  returnRepo,
		settingRepo: settingRepo,
	}
}

// Refresh reads every remote table in one parallel batch. A single read
// failure aborts the batch: the error flag is set and the store keeps serving
// whatever it currently holds. On success the whole result is overlaid in one
// step, with orders and returns arriving from their repositories with child
// rows already joined.
func (s *syncService) Refresh(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Sync.RefreshTimeout)
	defer cancel()

	var remote state.RemoteData

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		remote.Users, err = s.userRepo.ListAll(groupCtx)

		return err
	})
	group.Go(func() (err error) {
		remote.PendingUsers, err = s.pendingRepo.ListAll(groupCtx)

		return err
	})
	group.Go(func() (err error) {
		remote.Products, err = s.productRepo.ListAll(groupCtx)

		return err
	})
	group.Go(func() (err error) {
		remote.Orders, err = s.orderRepo.ListAll(groupCtx)

		return err
	})
	group.Go(func() (err error) {
		remote.Tickets, err = s.ticketRepo.ListAll(groupCtx)

		return err
	})
	group.Go(func() (err error) {
		remote.Promotions, err = s.promoRepo.ListAll(groupCtx)

		return err
	})
	group.Go(func() (err error) {
		remote.ReturnRequests, err = s.returnRepo.ListAll(groupCtx)

		return err
	})
	group.Go(func() error {
		settings, err := s.settingRepo.Load(groupCtx)
		if err != nil {
			return err
		}
		remote.Settings = &settings

		return nil
	})

	if err := group.Wait(); err != nil {
		s.log.Error("Batch refresh failed, keeping current state",
			slog.Any("error", err),
		)
		s.store.SetError(err)

		return err
	}

	s.store.Overlay(remote, s.cfg.Sync.KeepSeedOnEmpty)
	s.log.Debug("State refreshed from remote store")

	return nil
}

// Start performs the initial refresh and wires the change feed. Every event,
// regardless of which table it names, triggers one full refresh.
func (s *syncService) Start(ctx context.Context) error {
	if err := s.Refresh(ctx); err != nil {
		// Startup continues on seeded data; a later change event or write
		// will trigger another attempt.
		s.log.Warn("Initial refresh failed, serving seeded data")
	}

	s.unsubscribe = s.feed.Subscribe(func(event *service.ChangeEvent) {
		s.log.Debug("Change event received",
			slog.String("table", event.Table),
			slog.String("op", event.Op),
		)
		// Failures are already flagged on the store.
		_ = s.Refresh(context.WithoutCancel(ctx))
	})

	return nil
}

// Stop cancels the change feed subscription.
func (s *syncService) Stop() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}
