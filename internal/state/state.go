// Package state holds the in-memory marketplace state and the reducer that is
// its only mutation path.
package state

import "bazaar/internal/domain/entity"

// State is one immutable snapshot of the full marketplace state. Reducers
// return a new snapshot; collections are never mutated in place.
type State struct {
	CurrentUser *entity.User

	Users          []entity.User
	PendingUsers   []entity.PendingUser
	Products       []entity.Product
	Orders         []entity.Order
	Tickets        []entity.SupportTicket
	Promotions     []entity.Promotion
	ReturnRequests []entity.ReturnRequest

	PlatformSettings entity.PlatformSettings

	// Demo-seeded aggregates with no remote table behind them.
	Analytics           entity.Analytics
	WholesalerAnalytics []entity.WholesalerAnalytics
	SystemStats         entity.SystemStats

	// Loading is true from startup until the first refresh settles. Err holds
	// the last batch-read failure; while set, the seeded data keeps serving.
	Loading bool
	Err     error
}
