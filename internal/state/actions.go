package state

import (
	"time"

	"bazaar/internal/domain/entity"
)

// Action is the closed set of state mutations. Each variant carries its full
// payload; the reducer never reaches outside the action and the current state,
// so timestamps and generated ids are stamped by the dispatcher, keeping the
// reducer deterministic.
type Action interface {
	isAction()
}

// SetUser replaces the current session user. A nil User signs out.
type SetUser struct {
	User *entity.User
}

// AddUser appends a user record.
type AddUser struct {
	User entity.User
}

// AddPendingUser appends a registration application.
type AddPendingUser struct {
	PendingUser entity.PendingUser
}

// ApproveUser promotes the staging record to a full user and removes it from
// the pending list. NewUserID and Now are stamped by the dispatcher.
type ApproveUser struct {
	PendingUserID string
	AdminID       string
	NewUserID     string
	Now           time.Time
}

// RejectUser discards the staging record.
type RejectUser struct {
	PendingUserID string
	AdminID       string
	Reason        string
}

// UpdatePlatformSettings merges a partial settings patch.
type UpdatePlatformSettings struct {
	Patch entity.SettingsPatch
}

// BulkVerifyUsers marks every listed user as verified.
type BulkVerifyUsers struct {
	UserIDs []string
}

// SuspendUser clears the verified flag of one user. The account status is
// left untouched.
type SuspendUser struct {
	UserID string
}

// BroadcastAnnouncement carries an admin announcement. It does not change
// state; delivery is the dispatcher's concern.
type BroadcastAnnouncement struct {
	Message string
	Type    string
}

// ResetSettings restores the factory default platform settings.
type ResetSettings struct{}

// AddProduct appends a product listing.
type AddProduct struct {
	Product entity.Product
}

// UpdateProduct replaces the product with the matching id.
type UpdateProduct struct {
	Product entity.Product
}

// DeleteProduct removes the product with the given id.
type DeleteProduct struct {
	ProductID string
}

// AddOrder appends an order.
type AddOrder struct {
	Order entity.Order
}

// UpdateOrder replaces the order with the matching id.
type UpdateOrder struct {
	Order entity.Order
}

// AddTicket appends a support ticket.
type AddTicket struct {
	Ticket entity.SupportTicket
}

// UpdateTicket replaces the ticket with the matching id.
type UpdateTicket struct {
	Ticket entity.SupportTicket
}

// AddPromotion appends a promotion.
type AddPromotion struct {
	Promotion entity.Promotion
}

// UpdatePromotion replaces the promotion with the matching id.
type UpdatePromotion struct {
	Promotion entity.Promotion
}

// ApprovePromotion stamps the review verdict and activates the promotion in
// one atomic replacement.
type ApprovePromotion struct {
	PromotionID string
	AdminID     string
	Now         time.Time
}

// RejectPromotion stamps the review verdict and deactivates the promotion in
// one atomic replacement.
type RejectPromotion struct {
	PromotionID string
	AdminID     string
	Reason      string
	Now         time.Time
}

// AddReturnRequest appends a return request.
type AddReturnRequest struct {
	Request entity.ReturnRequest
}

// UpdateReturnRequest replaces the return request with the matching id.
type UpdateReturnRequest struct {
	Request entity.ReturnRequest
}

// ApproveReturnRequest stamps the processing verdict, approved amount and
// refund method in one atomic replacement.
type ApproveReturnRequest struct {
	RequestID      string
	SupportID      string
	ApprovedAmount float64
	RefundMethod   entity.RefundMethod
	Now            time.Time
}

// RejectReturnRequest stamps the processing verdict and rejection reason in
// one atomic replacement. The approved amount stays unset.
type RejectReturnRequest struct {
	RequestID string
	SupportID string
	Reason    string
	Now       time.Time
}

func (SetUser) isAction()                {}
func (AddUser) isAction()                {}
func (AddPendingUser) isAction()         {}
func (ApproveUser) isAction()            {}
func (RejectUser) isAction()             {}
func (UpdatePlatformSettings) isAction() {}
func (BulkVerifyUsers) isAction()        {}
func (SuspendUser) isAction()            {}
func (BroadcastAnnouncement) isAction()  {}
func (ResetSettings) isAction()          {}
func (AddProduct) isAction()             {}
func (UpdateProduct) isAction()          {}
func (DeleteProduct) isAction()          {}
func (AddOrder) isAction()               {}
func (UpdateOrder) isAction()            {}
func (AddTicket) isAction()              {}
func (UpdateTicket) isAction()           {}
func (AddPromotion) isAction()           {}
func (UpdatePromotion) isAction()        {}
func (ApprovePromotion) isAction()       {}
func (RejectPromotion) isAction()        {}
func (AddReturnRequest) isAction()       {}
func (UpdateReturnRequest) isAction()    {}
func (ApproveReturnRequest) isAction()   {}
func (RejectReturnRequest) isAction()    {}
