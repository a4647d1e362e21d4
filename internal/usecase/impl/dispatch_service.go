package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/state"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
)

type dispatchService struct {
	store     *state.Store
	publisher service.ChangePublisher
	log       *slog.Logger

	userRepo    repository.UserRepository
	pendingRepo repository.PendingUserRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	ticketRepo  repository.TicketRepository
	promoRepo   repository.PromotionRepository
	returnRepo  repository.ReturnRepository
	settingRepo repository.SettingsRepository
	txManager   repository.TransactionManager

	inflight sync.WaitGroup

	now   func() time.Time
	newID func() string
}

// NewDispatchService creates a new dispatch service instance
func NewDispatchService(
	store *state.Store,
	publisher service.ChangePublisher,
	logger *slog.Logger,
	userRepo repository.UserRepository,
	pendingRepo repository.PendingUserRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	ticketRepo repository.TicketRepository,
	promoRepo repository.PromotionRepository,
	returnRepo repository.ReturnRepository,
	settingRepo repository.SettingsRepository,
	txManager repository.TransactionManager,
) usecase.DispatchUsecase {
	return &dispatchService{
		store:       store,
		publisher:   publisher,
		log:         logger,
		userRepo:    userRepo,
		pendingRepo: pendingRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		ticketRepo:  ticketRepo,
		promoRepo:   promoRepo,
		returnRepo:  returnRepo,
		settingRepo: settingRepo,
		txManager:   txManager,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// Dispatch applies the action to the local store synchronously, then persists
// the remote counterpart in the background. A failed remote write is logged
// and the optimistic local mutation stays in place; there is no retry and no
// rollback.
func (s *dispatchService) Dispatch(ctx context.Context, action state.Action) {
	action = s.stamp(action)
	s.store.Dispatch(action)

	remote := s.remoteCall(action)
	if remote == nil {
		return
	}

	s.inflight.Add(1)
	writeCtx := context.WithoutCancel(ctx)
	go func() {
		defer s.inflight.Done()

		table, rowID, err := remote(writeCtx)
		if err != nil {
			s.log.Error("Remote write failed, local state keeps the optimistic change",
				slog.String("action", actionName(action)),
				slog.Any("error", err),
			)

			return
		}

		if err := s.publisher.PublishChange(writeCtx, &service.ChangeEvent{
			Table: table,
			Op:    actionOp(action),
			RowID: rowID,
		}); err != nil {
			s.log.Warn("Change event publish failed",
				slog.String("table", table),
				slog.Any("error", err),
			)
		}
	}()
}

// Snapshot returns the current local state.
func (s *dispatchService) Snapshot() state.State {
	return s.store.Snapshot()
}

// Wait blocks until every scheduled remote write has settled.
func (s *dispatchService) Wait() {
	s.inflight.Wait()
}

// stamp fills generated ids and timestamps on actions that carry them, so the
// reducer itself stays deterministic.
func (s *dispatchService) stamp(action state.Action) state.Action {
	switch a := action.(type) {
	case state.ApproveUser:
		if a.NewUserID == "" {
			a.NewUserID = s.newID()
		}
		if a.Now.IsZero() {
			a.Now = s.now()
		}

		return a
	case state.ApprovePromotion:
		if a.Now.IsZero() {
			a.Now = s.now()
		}

		return a
	case state.RejectPromotion:
		if a.Now.IsZero() {
			a.Now = s.now()
		}

		return a
	case state.ApproveReturnRequest:
		if a.Now.IsZero() {
			a.Now = s.now()
		}

		return a
	case state.RejectReturnRequest:
		if a.Now.IsZero() {
			a.Now = s.now()
		}

		return a
	default:
		return action
	}
}

// remoteCall maps an action to its persistence call, or nil when the action
// is local-only. Compound approve/reject calls re-read the just-updated
// record from local state to build the remote payload, so the write reflects
// local state at dispatch time rather than the action payload alone.
//
//nolint:cyclop,funlen // One arm per action variant.
func (s *dispatchService) remoteCall(action state.Action) func(ctx context.Context) (table, rowID string, err error) {
	switch a := action.(type) {
	case state.AddUser:
		return func(ctx context.Context) (string, string, error) {
			user := a.User

			return service.TableUsers, user.ID, s.userRepo.Create(ctx, &user)
		}

	case state.AddPendingUser:
		return func(ctx context.Context) (string, string, error) {
			pending := a.PendingUser

			return service.TablePendingUsers, pending.ID, s.pendingRepo.Create(ctx, &pending)
		}

	case state.ApproveUser:
		return func(ctx context.Context) (string, string, error) {
			err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
				pendingRepo := txRepoFactory.NewPendingUserRepository()
				pending, err := pendingRepo.FindByID(ctx, a.PendingUserID)
				if err != nil {
					return err
				}

				user := pending.Promote(a.NewUserID, a.Now)
				if err := txRepoFactory.NewUserRepository().Create(ctx, &user); err != nil {
					return err
				}

				return pendingRepo.MarkApproved(ctx, a.PendingUserID, a.AdminID, a.Now)
			})

			return service.TableUsers, a.NewUserID, err
		}

	case state.RejectUser:
		return func(ctx context.Context) (string, string, error) {
			return service.TablePendingUsers, a.PendingUserID,
				s.pendingRepo.MarkRejected(ctx, a.PendingUserID, a.AdminID, a.Reason, s.now())
		}

	case state.BulkVerifyUsers:
		return func(ctx context.Context) (string, string, error) {
			for _, user := range s.lookupUsers(a.UserIDs) {
				if err := s.userRepo.Update(ctx, &user); err != nil {
					return service.TableUsers, user.ID, err
				}
			}

			return service.TableUsers, "", nil
		}

	case state.SuspendUser:
		return func(ctx context.Context) (string, string, error) {
			users := s.lookupUsers([]string{a.UserID})
			if len(users) == 0 {
				return service.TableUsers, a.UserID, nil
			}

			return service.TableUsers, a.UserID, s.userRepo.Update(ctx, &users[0])
		}

	case state.UpdatePlatformSettings, state.ResetSettings:
		return func(ctx context.Context) (string, string, error) {
			snap := s.store.Snapshot()

			return service.TableSettings, "", s.settingRepo.Save(ctx, snap.PlatformSettings, currentUserID(snap))
		}

	case state.AddProduct:
		return func(ctx context.Context) (string, string, error) {
			product := a.Product

			return service.TableProducts, product.ID, s.productRepo.Create(ctx, &product)
		}

	case state.UpdateProduct:
		return func(ctx context.Context) (string, string, error) {
			product := a.Product

			return service.TableProducts, product.ID, s.productRepo.Update(ctx, &product)
		}

	case state.DeleteProduct:
		return func(ctx context.Context) (string, string, error) {
			return service.TableProducts, a.ProductID, s.productRepo.Delete(ctx, a.ProductID)
		}

	case state.AddOrder:
		return func(ctx context.Context) (string, string, error) {
			order := a.Order

			return service.TableOrders, order.ID, s.orderRepo.Create(ctx, &order)
		}

	case state.UpdateOrder:
		return func(ctx context.Context) (string, string, error) {
			order := a.Order

			return service.TableOrders, order.ID, s.orderRepo.Update(ctx, &order)
		}

	case state.AddTicket:
		return func(ctx context.Context) (string, string, error) {
			ticket := a.Ticket

			return service.TableSupportTickets, ticket.ID, s.ticketRepo.Create(ctx, &ticket)
		}

	case state.UpdateTicket:
		return func(ctx context.Context) (string, string, error) {
			ticket := a.Ticket

			return service.TableSupportTickets, ticket.ID, s.ticketRepo.Update(ctx, &ticket)
		}

	case state.AddPromotion:
		return func(ctx context.Context) (string, string, error) {
			promotion := a.Promotion

			return service.TablePromotions, promotion.ID, s.promoRepo.Create(ctx, &promotion)
		}

	case state.UpdatePromotion:
		return func(ctx context.Context) (string, string, error) {
			promotion := a.Promotion

			return service.TablePromotions, promotion.ID, s.promoRepo.Update(ctx, &promotion)
		}

	case state.ApprovePromotion:
		return s.promotionWriteBack(a.PromotionID)

	case state.RejectPromotion:
		return s.promotionWriteBack(a.PromotionID)

	case state.AddReturnRequest:
		return func(ctx context.Context) (string, string, error) {
			request := a.Request

			return service.TableReturnRequests, request.ID, s.returnRepo.Create(ctx, &request)
		}

	case state.UpdateReturnRequest:
		return func(ctx context.Context) (string, string, error) {
			request := a.Request

			return service.TableReturnRequests, request.ID, s.returnRepo.Update(ctx, &request)
		}

	case state.ApproveReturnRequest:
		return s.returnWriteBack(a.RequestID)

	case state.RejectReturnRequest:
		return s.returnWriteBack(a.RequestID)

	case state.BroadcastAnnouncement:
		s.log.Info("Broadcasting announcement",
			slog.String("type", a.Type),
			slog.String("message", a.Message),
		)

		return nil

	default:
		// SetUser and any other local-only action.
		return nil
	}
}

// promotionWriteBack persists the promotion as it now stands in local state.
func (s *dispatchService) promotionWriteBack(id string) func(ctx context.Context) (string, string, error) {
	return func(ctx context.Context) (string, string, error) {
		snap := s.store.Snapshot()
		for _, promotion := range snap.Promotions {
			if promotion.ID == id {
				return service.TablePromotions, id, s.promoRepo.Update(ctx, &promotion)
			}
		}

		// Reviewed record vanished from local state; nothing to persist.
		return service.TablePromotions, id, nil
	}
}

// returnWriteBack persists the return request as it now stands in local state.
func (s *dispatchService) returnWriteBack(id string) func(ctx context.Context) (string, string, error) {
	return func(ctx context.Context) (string, string, error) {
		snap := s.store.Snapshot()
		for _, request := range snap.ReturnRequests {
			if request.ID == id {
				return service.TableReturnRequests, id, s.returnRepo.Update(ctx, &request)
			}
		}

		return service.TableReturnRequests, id, nil
	}
}

// lookupUsers re-reads users from the post-dispatch local state.
func (s *dispatchService) lookupUsers(ids []string) []entity.User {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	var users []entity.User
	for _, user := range s.store.Snapshot().Users {
		if _, ok := wanted[user.ID]; ok {
			users = append(users, user)
		}
	}

	return users
}

func currentUserID(snap state.State) string {
	if snap.CurrentUser == nil {
		return ""
	}

	return snap.CurrentUser.ID
}

func actionName(action state.Action) string {
	switch action.(type) {
	case state.SetUser:
		return "set_user"
	case state.AddUser:
		return "add_user"
	case state.AddPendingUser:
		return "add_pending_user"
	case state.ApproveUser:
		return "approve_user"
	case state.RejectUser:
		return "reject_user"
	case state.UpdatePlatformSettings:
		return "update_platform_settings"
	case state.BulkVerifyUsers:
		return "bulk_verify_users"
	case state.SuspendUser:
		return "suspend_user"
	case state.BroadcastAnnouncement:
		return "broadcast_announcement"
	case state.ResetSettings:
		return "reset_settings"
	case state.AddProduct:
		return "add_product"
	case state.UpdateProduct:
		return "update_product"
	case state.DeleteProduct:
		return "delete_product"
	case state.AddOrder:
		return "add_order"
	case state.UpdateOrder:
		return "update_order"
	case state.AddTicket:
		return "add_ticket"
	case state.UpdateTicket:
		return "update_ticket"
	case state.AddPromotion:
		return "add_promotion"
	case state.UpdatePromotion:
		return "update_promotion"
	case state.ApprovePromotion:
		return "approve_promotion"
	case state.RejectPromotion:
		return "reject_promotion"
	case state.AddReturnRequest:
		return "add_return_request"
	case state.UpdateReturnRequest:
		return "update_return_request"
	case state.ApproveReturnRequest:
		return "approve_return_request"
	case state.RejectReturnRequest:
		return "reject_return_request"
	default:
		return "unknown"
	}
}

func actionOp(action state.Action) string {
	switch action.(type) {
	case state.AddUser, state.AddPendingUser, state.AddProduct, state.AddOrder,
		state.AddTicket, state.AddPromotion, state.AddReturnRequest, state.ApproveUser:
		return "insert"
	case state.DeleteProduct, state.RejectUser:
		return "delete"
	default:
		return "update"
	}
}
