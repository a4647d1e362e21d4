package state

import "bazaar/internal/domain/entity"

// Reduce applies one action to a snapshot and returns the next snapshot. It
// is a total pure function: no variant fails, and update-by-id variants whose
// id is absent leave the collection unchanged. Add variants always append, so
// dispatching the same add twice duplicates the record.
func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case SetUser:
		s.CurrentUser = a.User

	case AddUser:
		s.Users = appendCopy(s.Users, a.User)

	case AddPendingUser:
		s.PendingUsers = appendCopy(s.PendingUsers, a.PendingUser)

	case ApproveUser:
		for _, pending := range s.PendingUsers {
			if pending.ID != a.PendingUserID {
				continue
			}
			s.Users = appendCopy(s.Users, pending.Promote(a.NewUserID, a.Now))
			s.PendingUsers = removePendingUser(s.PendingUsers, a.PendingUserID)

			break
		}

	case RejectUser:
		s.PendingUsers = removePendingUser(s.PendingUsers, a.PendingUserID)

	case UpdatePlatformSettings:
		s.PlatformSettings = s.PlatformSettings.Apply(a.Patch)

	case BulkVerifyUsers:
		ids := make(map[string]struct{}, len(a.UserIDs))
		for _, id := range a.UserIDs {
			ids[id] = struct{}{}
		}
		s.Users = mapUsers(s.Users, func(user entity.User) entity.User {
			if _, ok := ids[user.ID]; ok {
				user.Verified = true
			}

			return user
		})

	case SuspendUser:
		s.Users = mapUsers(s.Users, func(user entity.User) entity.User {
			if user.ID == a.UserID {
				user.Verified = false
			}

			return user
		})

	case BroadcastAnnouncement:
		// Delivery happens outside the reducer; state is unchanged.

	case ResetSettings:
		s.PlatformSettings = entity.DefaultPlatformSettings()

	case AddProduct:
		s.Products = appendCopy(s.Products, a.Product)

	case UpdateProduct:
		s.Products = replaceByID(s.Products, a.Product.ID, func(p entity.Product) string { return p.ID }, a.Product)

	case DeleteProduct:
		s.Products = filterOut(s.Products, func(p entity.Product) bool { return p.ID == a.ProductID })

	case AddOrder:
		s.Orders = appendCopy(s.Orders, a.Order)

	case UpdateOrder:
		s.Orders = replaceByID(s.Orders, a.Order.ID, func(o entity.Order) string { return o.ID }, a.Order)

	case AddTicket:
		s.Tickets = appendCopy(s.Tickets, a.Ticket)

	case UpdateTicket:
		s.Tickets = replaceByID(s.Tickets, a.Ticket.ID, func(t entity.SupportTicket) string { return t.ID }, a.Ticket)

	case AddPromotion:
		s.Promotions = appendCopy(s.Promotions, a.Promotion)

	case UpdatePromotion:
		s.Promotions = replaceByID(s.Promotions, a.Promotion.ID, func(p entity.Promotion) string { return p.ID }, a.Promotion)

	case ApprovePromotion:
		s.Promotions = mapPromotions(s.Promotions, func(p entity.Promotion) entity.Promotion {
			if p.ID == a.PromotionID {
				now := a.Now
				p.Status = entity.PromotionStatusApproved
				p.Active = true
				p.ReviewedAt = &now
				p.ReviewedBy = a.AdminID
			}

			return p
		})

	case RejectPromotion:
		s.Promotions = mapPromotions(s.Promotions, func(p entity.Promotion) entity.Promotion {
			if p.ID == a.PromotionID {
				now := a.Now
				p.Status = entity.PromotionStatusRejected
				p.Active = false
				p.ReviewedAt = &now
				p.ReviewedBy = a.AdminID
				p.RejectionReason = a.Reason
			}

			return p
		})

	case AddReturnRequest:
		s.ReturnRequests = appendCopy(s.ReturnRequests, a.Request)

	case UpdateReturnRequest:
		s.ReturnRequests = replaceByID(s.ReturnRequests, a.Request.ID, func(r entity.ReturnRequest) string { return r.ID }, a.Request)

	case ApproveReturnRequest:
		s.ReturnRequests = mapReturns(s.ReturnRequests, func(r entity.ReturnRequest) entity.ReturnRequest {
			if r.ID == a.RequestID {
				now := a.Now
				amount := a.ApprovedAmount
				r.Status = entity.ReturnStatusApproved
				r.ApprovedAmount = &amount
				r.RefundMethod = a.RefundMethod
				r.ProcessedBy = a.SupportID
				r.ProcessedAt = &now
				r.UpdatedAt = now
			}

			return r
		})

	case RejectReturnRequest:
		s.ReturnRequests = mapReturns(s.ReturnRequests, func(r entity.ReturnRequest) entity.ReturnRequest {
			if r.ID == a.RequestID {
				now := a.Now
				r.Status = entity.ReturnStatusRejected
				r.RejectionReason = a.Reason
				r.ProcessedBy = a.SupportID
				r.ProcessedAt = &now
				r.UpdatedAt = now
			}

			return r
		})
	}

	return s
}

// appendCopy appends without aliasing the previous snapshot's backing array.
func appendCopy[T any](items []T, item T) []T {
	next := make([]T, len(items), len(items)+1)
	copy(next, items)

	return append(next, item)
}

func replaceByID[T any](items []T, id string, idOf func(T) string, replacement T) []T {
	next := make([]T, len(items))
	copy(next, items)
	for i := range next {
		if idOf(next[i]) == id {
			next[i] = replacement
		}
	}

	return next
}

func filterOut[T any](items []T, drop func(T) bool) []T {
	next := make([]T, 0, len(items))
	for _, item := range items {
		if !drop(item) {
			next = append(next, item)
		}
	}

	return next
}

func removePendingUser(pending []entity.PendingUser, id string) []entity.PendingUser {
	return filterOut(pending, func(p entity.PendingUser) bool { return p.ID == id })
}

func mapUsers(users []entity.User, fn func(entity.User) entity.User) []entity.User {
	next := make([]entity.User, len(users))
	for i, user := range users {
		next[i] = fn(user)
	}

	return next
}

func mapPromotions(promotions []entity.Promotion, fn func(entity.Promotion) entity.Promotion) []entity.Promotion {
	next := make([]entity.Promotion, len(promotions))
	for i, promotion := range promotions {
		next[i] = fn(promotion)
	}

	return next
}

func mapReturns(requests []entity.ReturnRequest, fn func(entity.ReturnRequest) entity.ReturnRequest) []entity.ReturnRequest {
	next := make([]entity.ReturnRequest, len(requests))
	for i, request := range requests {
		next[i] = fn(request)
	}

	return next
}
