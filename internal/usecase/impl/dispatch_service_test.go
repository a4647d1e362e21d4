package impl

import (
	"context"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/state"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatchFixture struct {
	store       *state.Store
	publisher   *mockSvc.MockChangePublisher
	userRepo    *mockRepo.MockUserRepository
	pendingRepo *mockRepo.MockPendingUserRepository
	productRepo *mockRepo.MockProductRepository
	orderRepo   *mockRepo.MockOrderRepository
	ticketRepo  *mockRepo.MockTicketRepository
	promoRepo   *mockRepo.MockPromotionRepository
	returnRepo  *mockRepo.MockReturnRepository
	settingRepo *mockRepo.MockSettingsRepository
	txManager   *mockRepo.MockTransactionManager
	service     *dispatchService
}

func newDispatchFixture(t *testing.T) *dispatchFixture {
	t.Helper()

	f := &dispatchFixture{
		store:       state.NewStore(state.Seed()),
		publisher:   mockSvc.NewMockChangePublisher(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		pendingRepo: mockRepo.NewMockPendingUserRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		ticketRepo:  mockRepo.NewMockTicketRepository(t),
		promoRepo:   mockRepo.NewMockPromotionRepository(t),
		returnRepo:  mockRepo.NewMockReturnRepository(t),
		settingRepo: mockRepo.NewMockSettingsRepository(t),
		txManager:   mockRepo.NewMockTransactionManager(t),
	}

	svc := NewDispatchService(
		f.store, f.publisher, testLogger(),
		f.userRepo, f.pendingRepo, f.productRepo, f.orderRepo,
		f.ticketRepo, f.promoRepo, f.returnRepo, f.settingRepo, f.txManager,
	)

	f.service = svc.(*dispatchService)
	f.service.now = func() time.Time {
		return time.Date(2024, time.February, 1, 12, 0, 0, 0, time.UTC)
	}
	f.service.newID = func() string { return "generated-id" }

	return f
}

func TestDispatchService_OptimisticUpdateSurvivesRemoteFailure(t *testing.T) {
	f := newDispatchFixture(t)

	updated := f.store.Snapshot().Products[0]
	updated.Price = 999

	f.productRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *entity.Product) bool {
		return p.ID == updated.ID && p.Price == 999
	})).Return(errors.New("connection reset"))

	f.service.Dispatch(context.Background(), state.UpdateProduct{Product: updated})
	f.service.Wait()

	// Local state keeps the optimistic change even though the remote write
	// failed, and no change event is published for the failed write.
	snap := f.service.Snapshot()
	assert.Equal(t, float64(999), snap.Products[0].Price)
	f.publisher.AssertNotCalled(t, "PublishChange", mock.Anything, mock.Anything)
}

func TestDispatchService_AddProductPublishesInsertEvent(t *testing.T) {
	f := newDispatchFixture(t)

	product := entity.Product{ID: "99", WholesalerID: "1", Name: "Rooibos Tea 40s", Price: 55}

	f.productRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Product")).Return(nil)
	f.publisher.On("PublishChange", mock.Anything, mock.MatchedBy(func(e *service.ChangeEvent) bool {
		return e.Table == service.TableProducts && e.Op == "insert" && e.RowID == "99"
	})).Return(nil)

	f.service.Dispatch(context.Background(), state.AddProduct{Product: product})
	f.service.Wait()

	assert.Len(t, f.service.Snapshot().Products, 9)
}

func TestDispatchService_AddIsNotIdempotentRemotely(t *testing.T) {
	f := newDispatchFixture(t)

	ticket := entity.SupportTicket{ID: "t9", UserID: "2", UserName: "Mary Retailer", Subject: "dup"}

	f.ticketRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.SupportTicket")).Return(nil).Times(2)
	f.publisher.On("PublishChange", mock.Anything, mock.Anything).Return(nil).Times(2)

	f.service.Dispatch(context.Background(), state.AddTicket{Ticket: ticket})
	f.service.Dispatch(context.Background(), state.AddTicket{Ticket: ticket})
	f.service.Wait()

	assert.Len(t, f.service.Snapshot().Tickets, 5, "double dispatch appends twice")
}

func TestDispatchService_ApprovePromotionWritesStateDerivedPayload(t *testing.T) {
	f := newDispatchFixture(t)

	f.promoRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *entity.Promotion) bool {
		return p.ID == "3" &&
			p.Status == entity.PromotionStatusApproved &&
			p.Active &&
			p.ReviewedBy == "3" &&
			p.ReviewedAt != nil
	})).Return(nil)
	f.publisher.On("PublishChange", mock.Anything, mock.MatchedBy(func(e *service.ChangeEvent) bool {
		return e.Table == service.TablePromotions && e.Op == "update"
	})).Return(nil)

	f.service.Dispatch(context.Background(), state.ApprovePromotion{PromotionID: "3", AdminID: "3"})
	f.service.Wait()
}

func TestDispatchService_ApproveUserRunsInTransaction(t *testing.T) {
	f := newDispatchFixture(t)

	f.txManager.On("Execute", mock.Anything, mock.Anything).Return(nil)
	f.publisher.On("PublishChange", mock.Anything, mock.MatchedBy(func(e *service.ChangeEvent) bool {
		return e.Table == service.TableUsers && e.Op == "insert" && e.RowID == "generated-id"
	})).Return(nil)

	f.service.Dispatch(context.Background(), state.ApproveUser{PendingUserID: "p1", AdminID: "3"})
	f.service.Wait()

	snap := f.service.Snapshot()
	assert.Len(t, snap.PendingUsers, 2)
	require.Len(t, snap.Users, 5)
	assert.Equal(t, "generated-id", snap.Users[4].ID)
}

func TestDispatchService_SetUserHasNoRemoteCounterpart(t *testing.T) {
	f := newDispatchFixture(t)

	user := f.store.Snapshot().Users[2]
	f.service.Dispatch(context.Background(), state.SetUser{User: &user})
	f.service.Wait()

	assert.Equal(t, &user, f.service.Snapshot().CurrentUser)
	f.publisher.AssertNotCalled(t, "PublishChange", mock.Anything, mock.Anything)
}

func TestDispatchService_SettingsWriteStampsCurrentUser(t *testing.T) {
	f := newDispatchFixture(t)

	admin := f.store.Snapshot().Users[2]
	f.service.Dispatch(context.Background(), state.SetUser{User: &admin})

	maintenance := true
	f.settingRepo.On("Save", mock.Anything, mock.MatchedBy(func(s entity.PlatformSettings) bool {
		return s.MaintenanceMode
	}), admin.ID).Return(nil)
	f.publisher.On("PublishChange", mock.Anything, mock.MatchedBy(func(e *service.ChangeEvent) bool {
		return e.Table == service.TableSettings
	})).Return(nil)

	f.service.Dispatch(context.Background(), state.UpdatePlatformSettings{
		Patch: entity.SettingsPatch{MaintenanceMode: &maintenance},
	})
	f.service.Wait()

	assert.True(t, f.service.Snapshot().PlatformSettings.MaintenanceMode)
}

func TestDispatchService_RejectReturnRequestKeepsApprovedAmountUnset(t *testing.T) {
	f := newDispatchFixture(t)

	f.returnRepo.On("Update", mock.Anything, mock.MatchedBy(func(r *entity.ReturnRequest) bool {
		return r.ID == "1" &&
			r.Status == entity.ReturnStatusRejected &&
			r.RejectionReason == "bad" &&
			r.ApprovedAmount == nil
	})).Return(nil)
	f.publisher.On("PublishChange", mock.Anything, mock.Anything).Return(nil)

	f.service.Dispatch(context.Background(), state.RejectReturnRequest{RequestID: "1", SupportID: "4", Reason: "bad"})
	f.service.Wait()
}
