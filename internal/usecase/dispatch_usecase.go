package usecase

import (
	"context"

	"bazaar/internal/state"
)

// DispatchUsecase is the single entry point for state mutations. Every action
// first updates the local store synchronously, then the mapped subset of
// actions is persisted remotely in the background. Remote failures are logged
// and never rolled back, so local state can run ahead of the remote store.
type DispatchUsecase interface {
	// Dispatch applies the action locally and schedules the remote write.
	// Zero-valued timestamps and generated ids on the action are stamped
	// before the reducer runs.
	Dispatch(ctx context.Context, action state.Action)

	// Snapshot returns the current local state.
	Snapshot() state.State

	// Wait blocks until every scheduled remote write has settled. Used on
	// shutdown and by tests.
	Wait()
}
