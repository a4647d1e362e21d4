package state

import (
	"sync"

	"bazaar/internal/domain/entity"
)

// Store is the single-writer state container. It is constructed once at
// startup and passed to consumers explicitly; there is no package-level
// instance. All access goes through the mutex, and readers receive value
// snapshots, so a snapshot taken before a dispatch never changes under the
// caller.
type Store struct {
	mu    sync.Mutex
	state State
}

// NewStore creates a store holding the given initial snapshot. Use Seed() for
// the demonstration dataset.
func NewStore(initial State) *Store {
	return &Store{state: initial}
}

// Dispatch applies one action through the reducer.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, action)
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// RemoteData is one batch-read result across every remote table, ready to be
// overlaid onto the store.
type RemoteData struct {
	Users          []entity.User
	PendingUsers   []entity.PendingUser
	Products       []entity.Product
	Orders         []entity.Order
	Tickets        []entity.SupportTicket
	Promotions     []entity.Promotion
	ReturnRequests []entity.ReturnRequest
	Settings       *entity.PlatformSettings
}

// Overlay folds a successful batch read into the state. Each collection is
// replaced by its remote list; when a remote table comes back empty and
// keepSeedOnEmpty is set, the existing (seeded) collection is kept instead,
// which makes an intentionally empty table indistinguishable from one that
// never loaded. The error flag is cleared and loading ends.
func (s *Store) Overlay(remote RemoteData, keepSeedOnEmpty bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Users = overlayList(s.state.Users, remote.Users, keepSeedOnEmpty)
	s.state.PendingUsers = overlayList(s.state.PendingUsers, remote.PendingUsers, keepSeedOnEmpty)
	s.state.Products = overlayList(s.state.Products, remote.Products, keepSeedOnEmpty)
	s.state.Orders = overlayList(s.state.Orders, remote.Orders, keepSeedOnEmpty)
	s.state.Tickets = overlayList(s.state.Tickets, remote.Tickets, keepSeedOnEmpty)
	s.state.Promotions = overlayList(s.state.Promotions, remote.Promotions, keepSeedOnEmpty)
	s.state.ReturnRequests = overlayList(s.state.ReturnRequests, remote.ReturnRequests, keepSeedOnEmpty)
	if remote.Settings != nil {
		s.state.PlatformSettings = *remote.Settings
	}

	s.state.Loading = false
	s.state.Err = nil
}

// SetError records a batch-read failure. The current (possibly seeded) data
// keeps serving until a later refresh succeeds.
func (s *Store) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = false
	s.state.Err = err
}

func overlayList[T any](current, remote []T, keepSeedOnEmpty bool) []T {
	if len(remote) == 0 && keepSeedOnEmpty {
		return current
	}

	return remote
}
