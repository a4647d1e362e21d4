package impl

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"bazaar/config"
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

type syncFixture struct {
	store       *state.Store
	feed        *mockSvc.MockChangeFeed
	userRepo    *mockRepo.MockUserRepository
	pendingRepo *mockRepo.MockPendingUserRepository
	productRepo *mockRepo.MockProductRepository
	orderRepo   *mockRepo.MockOrderRepository
	ticketRepo  *mockRepo.MockTicketRepository
	promoRepo   *mockRepo.MockPromotionRepository
	returnRepo  *mockRepo.MockReturnRepository
	settingRepo *mockRepo.MockSettingsRepository
	service     *syncService
}

func newSyncFixture(t *testing.T, keepSeedOnEmpty bool) *syncFixture {
	t.Helper()

	f := &syncFixture{
		store:       state.NewStore(state.Seed()),
		feed:        mockSvc.NewMockChangeFeed(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		pendingRepo: mockRepo.NewMockPendingUserRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		ticketRepo:  mockRepo.NewMockTicketRepository(t),
		promoRepo:   mockRepo.NewMockPromotionRepository(t),
		returnRepo:  mockRepo.NewMockReturnRepository(t),
		settingRepo: mockRepo.NewMockSettingsRepository(t),
	}

	cfg := &config.Config{
		Sync: config.SyncConfig{
			KeepSeedOnEmpty: keepSeedOnEmpty,
			RefreshTimeout:  5 * time.Second,
		},
	}

	svc := NewSyncService(
		f.store, f.feed, cfg, testLogger(),
		f.userRepo, f.pendingRepo, f.productRepo, f.orderRepo,
		f.ticketRepo, f.promoRepo, f.returnRepo, f.settingRepo,
	)
	f.service = svc.(*syncService)

	return f
}

// expectEmptyReads wires every repository to return an empty result.
func (f *syncFixture) expectEmptyReads() {
	f.userRepo.On("ListAll", mock.Anything).Return([]entity.User{}, nil)
	f.pendingRepo.On("ListAll", mock.Anything).Return([]entity.PendingUser{}, nil)
	f.productRepo.On("ListAll", mock.Anything).Return([]entity.Product{}, nil)
	f.orderRepo.On("ListAll", mock.Anything).Return([]entity.Order{}, nil)
	f.ticketRepo.On("ListAll", mock.Anything).Return([]entity.SupportTicket{}, nil)
	f.promoRepo.On("ListAll", mock.Anything).Return([]entity.Promotion{}, nil)
	f.returnRepo.On("ListAll", mock.Anything).Return([]entity.ReturnRequest{}, nil)
	f.settingRepo.On("Load", mock.Anything).Return(entity.DefaultPlatformSettings(), nil)
}

func TestSyncService_RefreshOverlaysRemoteData(t *testing.T) {
	f := newSyncFixture(t, true)

	remoteUsers := []entity.User{{ID: "u-100", Name: "Remote User", Role: entity.RoleRetailer}}
	remoteProducts := []entity.Product{{ID: "pr-100", Name: "Remote Product", Price: 10}}
	settings := entity.DefaultPlatformSettings()
	settings.CommissionRate = 9.5

	f.userRepo.On("ListAll", mock.Anything).Return(remoteUsers, nil)
	f.productRepo.On("ListAll", mock.Anything).Return(remoteProducts, nil)
	f.pendingRepo.On("ListAll", mock.Anything).Return([]entity.PendingUser{}, nil)
	f.orderRepo.On("ListAll", mock.Anything).Return([]entity.Order{}, nil)
	f.ticketRepo.On("ListAll", mock.Anything).Return([]entity.SupportTicket{}, nil)
	f.promoRepo.On("ListAll", mock.Anything).Return([]entity.Promotion{}, nil)
	f.returnRepo.On("ListAll", mock.Anything).Return([]entity.ReturnRequest{}, nil)
	f.settingRepo.On("Load", mock.Anything).Return(settings, nil)

	require.NoError(t, f.service.Refresh(context.Background()))

	snap := f.store.Snapshot()
	assert.Equal(t, remoteUsers, snap.Users)
	assert.Equal(t, remoteProducts, snap.Products)
	assert.InDelta(t, 9.5, snap.PlatformSettings.CommissionRate, 0.001)
	assert.False(t, snap.Loading)
	assert.NoError(t, snap.Err)

	// Empty remote tables keep the seeded records under the default policy.
	assert.Len(t, snap.Orders, 3)
	assert.Len(t, snap.Tickets, 3)
}

func TestSyncService_RefreshReplacesSeedWhenPolicyDisabled(t *testing.T) {
	f := newSyncFixture(t, false)
	f.expectEmptyReads()

	require.NoError(t, f.service.Refresh(context.Background()))

	snap := f.store.Snapshot()
	assert.Empty(t, snap.Users)
	assert.Empty(t, snap.Products)
	assert.Empty(t, snap.Orders)
}

func TestSyncService_ReadFailureAbortsBatchAndKeepsState(t *testing.T) {
	f := newSyncFixture(t, true)

	f.orderRepo.On("ListAll", mock.Anything).Return(nil, errors.New("relation does not exist"))
	f.userRepo.On("ListAll", mock.Anything).Return([]entity.User{{ID: "u-100"}}, nil).Maybe()
	f.pendingRepo.On("ListAll", mock.Anything).Return([]entity.PendingUser{}, nil).Maybe()
	f.productRepo.On("ListAll", mock.Anything).Return([]entity.Product{}, nil).Maybe()
	f.ticketRepo.On("ListAll", mock.Anything).Return([]entity.SupportTicket{}, nil).Maybe()
	f.promoRepo.On("ListAll", mock.Anything).Return([]entity.Promotion{}, nil).Maybe()
	f.returnRepo.On("ListAll", mock.Anything).Return([]entity.ReturnRequest{}, nil).Maybe()
	f.settingRepo.On("Load", mock.Anything).Return(entity.DefaultPlatformSettings(), nil).Maybe()

	err := f.service.Refresh(context.Background())
	require.Error(t, err)

	// The partial batch is discarded wholesale: even the tables that read
	// successfully do not reach the store.
	snap := f.store.Snapshot()
	assert.Error(t, snap.Err)
	assert.Len(t, snap.Users, 4, "seeded users still serve")
	assert.Len(t, snap.Orders, 3)
}

func TestSyncService_ChangeEventTriggersFullRefresh(t *testing.T) {
	f := newSyncFixture(t, true)
	f.expectEmptyReads()

	var handler func(event *service.ChangeEvent)
	var unsubscribed atomic.Bool

	f.feed.On("Subscribe", mock.AnythingOfType("func(*service.ChangeEvent)")).
		Run(func(args mock.Arguments) {
			handler = args.Get(0).(func(event *service.ChangeEvent))
		}).
		Return(func() { unsubscribed.Store(true) })

	require.NoError(t, f.service.Start(context.Background()))
	require.NotNil(t, handler)

	handler(&service.ChangeEvent{Table: service.TableProducts, Op: "update", RowID: "1"})

	// One refresh at startup plus one per event, each reading every table.
	f.userRepo.AssertNumberOfCalls(t, "ListAll", 2)
	f.returnRepo.AssertNumberOfCalls(t, "ListAll", 2)
	f.settingRepo.AssertNumberOfCalls(t, "Load", 2)

	f.service.Stop()
	assert.True(t, unsubscribed.Load())
}

func TestSyncService_StartServesSeedWhenInitialRefreshFails(t *testing.T) {
	f := newSyncFixture(t, true)

	boom := errors.New("no route to host")
	f.userRepo.On("ListAll", mock.Anything).Return(nil, boom)
	f.pendingRepo.On("ListAll", mock.Anything).Return([]entity.PendingUser{}, nil).Maybe()
	f.productRepo.On("ListAll", mock.Anything).Return([]entity.Product{}, nil).Maybe()
	f.orderRepo.On("ListAll", mock.Anything).Return([]entity.Order{}, nil).Maybe()
	f.ticketRepo.On("ListAll", mock.Anything).Return([]entity.SupportTicket{}, nil).Maybe()
	f.promoRepo.On("ListAll", mock.Anything).Return([]entity.Promotion{}, nil).Maybe()
	f.returnRepo.On("ListAll", mock.Anything).Return([]entity.ReturnRequest{}, nil).Maybe()
	f.settingRepo.On("Load", mock.Anything).Return(entity.DefaultPlatformSettings(), nil).Maybe()
	f.feed.On("Subscribe", mock.Anything).Return(func() {})

	require.NoError(t, f.service.Start(context.Background()), "startup survives a failed initial refresh")

	snap := f.store.Snapshot()
	assert.Error(t, snap.Err)
	assert.Len(t, snap.Products, 8, "seeded catalog still serves")

	f.service.Stop()
}
