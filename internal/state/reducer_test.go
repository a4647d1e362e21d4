package state

import (
	"testing"
	"time"

	"bazaar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClock() time.Time {
	return time.Date(2024, time.February, 1, 12, 0, 0, 0, time.UTC)
}

func TestReduce_SetUser(t *testing.T) {
	s := Seed()
	user := s.Users[0]

	next := Reduce(s, SetUser{User: &user})
	assert.Equal(t, &user, next.CurrentUser)

	next = Reduce(next, SetUser{User: nil})
	assert.Nil(t, next.CurrentUser)
}

func TestReduce_AddIsNotIdempotent(t *testing.T) {
	s := Seed()
	product := entity.Product{ID: "99", WholesalerID: "1", Name: "Rooibos Tea 40s", Price: 55}

	next := Reduce(s, AddProduct{Product: product})
	next = Reduce(next, AddProduct{Product: product})

	assert.Len(t, next.Products, len(s.Products)+2, "double dispatch must append twice")
}

func TestReduce_UpdateWithAbsentIDIsNoOp(t *testing.T) {
	s := Seed()

	next := Reduce(s, UpdateProduct{Product: entity.Product{ID: "no-such-id", Name: "ghost"}})
	assert.Equal(t, s.Products, next.Products)

	next = Reduce(s, UpdateOrder{Order: entity.Order{ID: "no-such-id"}})
	assert.Equal(t, s.Orders, next.Orders)

	next = Reduce(s, UpdateTicket{Ticket: entity.SupportTicket{ID: "no-such-id"}})
	assert.Equal(t, s.Tickets, next.Tickets)

	next = Reduce(s, UpdatePromotion{Promotion: entity.Promotion{ID: "no-such-id"}})
	assert.Equal(t, s.Promotions, next.Promotions)

	next = Reduce(s, UpdateReturnRequest{Request: entity.ReturnRequest{ID: "no-such-id"}})
	assert.Equal(t, s.ReturnRequests, next.ReturnRequests)
}

func TestReduce_UpdateReplacesWholeRecord(t *testing.T) {
	s := Seed()
	updated := s.Products[0]
	updated.Price = 260
	updated.Stock = 450

	next := Reduce(s, UpdateProduct{Product: updated})

	assert.Equal(t, updated, next.Products[0])
	assert.Equal(t, float64(240), s.Products[0].Price, "previous snapshot must be untouched")
}

func TestReduce_UpdateIsIdempotent(t *testing.T) {
	s := Seed()
	updated := s.Products[0]
	updated.Price = 260

	once := Reduce(s, UpdateProduct{Product: updated})
	twice := Reduce(once, UpdateProduct{Product: updated})

	assert.Equal(t, once.Products, twice.Products)
}

func TestReduce_DeleteProduct(t *testing.T) {
	s := Seed()

	next := Reduce(s, DeleteProduct{ProductID: "1"})
	assert.Len(t, next.Products, len(s.Products)-1)

	// Deleting an absent id is a no-op.
	next = Reduce(next, DeleteProduct{ProductID: "1"})
	assert.Len(t, next.Products, len(s.Products)-1)
}

func TestReduce_ApprovePromotion(t *testing.T) {
	s := Seed()
	now := testClock()

	next := Reduce(s, ApprovePromotion{PromotionID: "3", AdminID: "3", Now: now})

	var approved entity.Promotion
	for _, p := range next.Promotions {
		if p.ID == "3" {
			approved = p
		}
	}

	assert.Equal(t, entity.PromotionStatusApproved, approved.Status)
	assert.True(t, approved.Active)
	assert.Equal(t, "3", approved.ReviewedBy)
	require.NotNil(t, approved.ReviewedAt)
	assert.Equal(t, now, *approved.ReviewedAt)

	// All other fields unchanged.
	assert.Equal(t, "Household Essentials Promo", approved.Title)
	assert.Equal(t, float64(20), approved.Discount)
	assert.Equal(t, []string{"4", "7"}, approved.ProductIDs)
}

func TestReduce_RejectPromotion(t *testing.T) {
	s := Seed()
	now := testClock()

	next := Reduce(s, RejectPromotion{PromotionID: "3", AdminID: "3", Reason: "overlapping campaign", Now: now})

	var rejected entity.Promotion
	for _, p := range next.Promotions {
		if p.ID == "3" {
			rejected = p
		}
	}

	assert.Equal(t, entity.PromotionStatusRejected, rejected.Status)
	assert.False(t, rejected.Active)
	assert.Equal(t, "overlapping campaign", rejected.RejectionReason)
	assert.Equal(t, "3", rejected.ReviewedBy)
}

func TestReduce_RejectReturnRequest(t *testing.T) {
	s := Seed()
	now := testClock()

	next := Reduce(s, RejectReturnRequest{RequestID: "1", SupportID: "4", Reason: "bad", Now: now})

	var rejected entity.ReturnRequest
	for _, r := range next.ReturnRequests {
		if r.ID == "1" {
			rejected = r
		}
	}

	assert.Equal(t, entity.ReturnStatusRejected, rejected.Status)
	assert.Equal(t, "bad", rejected.RejectionReason)
	assert.Nil(t, rejected.ApprovedAmount, "rejection must leave the approved amount unset")
	assert.Equal(t, "4", rejected.ProcessedBy)
	require.NotNil(t, rejected.ProcessedAt)
	assert.Equal(t, now, *rejected.ProcessedAt)
	assert.Equal(t, float64(90), rejected.RequestedAmount)
}

func TestReduce_ApproveReturnRequest(t *testing.T) {
	s := Seed()
	now := testClock()

	next := Reduce(s, ApproveReturnRequest{
		RequestID:      "1",
		SupportID:      "4",
		ApprovedAmount: 90,
		RefundMethod:   entity.RefundMethodStoreCredit,
		Now:            now,
	})

	var approved entity.ReturnRequest
	for _, r := range next.ReturnRequests {
		if r.ID == "1" {
			approved = r
		}
	}

	assert.Equal(t, entity.ReturnStatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedAmount)
	assert.Equal(t, float64(90), *approved.ApprovedAmount)
	assert.Equal(t, entity.RefundMethodStoreCredit, approved.RefundMethod)
	assert.Equal(t, now, approved.UpdatedAt)
}

func TestReduce_ApproveUser(t *testing.T) {
	s := Seed()
	now := testClock()

	next := Reduce(s, ApproveUser{PendingUserID: "p1", AdminID: "3", NewUserID: "u-new", Now: now})

	assert.Len(t, next.PendingUsers, len(s.PendingUsers)-1)
	require.Len(t, next.Users, len(s.Users)+1)

	promoted := next.Users[len(next.Users)-1]
	assert.Equal(t, "u-new", promoted.ID)
	assert.Equal(t, "Sarah Johnson", promoted.Name)
	assert.Equal(t, entity.RoleRetailer, promoted.Role)
	assert.True(t, promoted.Verified)
	assert.Equal(t, entity.UserStatusActive, promoted.Status)
}

func TestReduce_ApproveUserAbsentIDIsNoOp(t *testing.T) {
	s := Seed()

	next := Reduce(s, ApproveUser{PendingUserID: "nope", AdminID: "3", NewUserID: "u-new", Now: testClock()})

	assert.Equal(t, s.Users, next.Users)
	assert.Equal(t, s.PendingUsers, next.PendingUsers)
}

func TestReduce_RejectUser(t *testing.T) {
	s := Seed()

	next := Reduce(s, RejectUser{PendingUserID: "p2", AdminID: "3", Reason: "incomplete documents"})

	assert.Len(t, next.PendingUsers, len(s.PendingUsers)-1)
	assert.Equal(t, len(s.Users), len(next.Users), "rejection must not create a user")
}

func TestReduce_BulkVerifyUsers(t *testing.T) {
	s := Seed()
	s.Users[0].Verified = false
	s.Users[1].Verified = false

	next := Reduce(s, BulkVerifyUsers{UserIDs: []string{"1", "2"}})

	assert.True(t, next.Users[0].Verified)
	assert.True(t, next.Users[1].Verified)
}

func TestReduce_SuspendUserClearsVerifiedOnly(t *testing.T) {
	s := Seed()

	next := Reduce(s, SuspendUser{UserID: "1"})

	assert.False(t, next.Users[0].Verified)
	assert.Equal(t, entity.UserStatusActive, next.Users[0].Status, "suspension only clears the verified flag")
}

func TestReduce_SettingsPatchAndReset(t *testing.T) {
	s := Seed()
	maintenance := true
	rate := 7.5

	next := Reduce(s, UpdatePlatformSettings{Patch: entity.SettingsPatch{
		MaintenanceMode: &maintenance,
		CommissionRate:  &rate,
	}})

	assert.True(t, next.PlatformSettings.MaintenanceMode)
	assert.Equal(t, 7.5, next.PlatformSettings.CommissionRate)
	assert.True(t, next.PlatformSettings.UserRegistrationEnabled, "unpatched fields keep their value")

	next = Reduce(next, ResetSettings{})
	assert.Equal(t, entity.DefaultPlatformSettings(), next.PlatformSettings)
}

func TestReduce_BroadcastAnnouncementLeavesStateUnchanged(t *testing.T) {
	s := Seed()

	next := Reduce(s, BroadcastAnnouncement{Message: "maintenance window tonight", Type: "info"})

	assert.Equal(t, s, next)
}
