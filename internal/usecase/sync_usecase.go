// Package usecase defines the application-level contracts between the
// delivery layer and the business logic implementations.
package usecase

import "context"

// SyncUsecase keeps the local state store converged with the remote tables.
type SyncUsecase interface {
	// Refresh fetches every remote table in one parallel batch and overlays
	// the result onto the local store. Any read failure aborts the whole
	// batch and flags the store instead.
	Refresh(ctx context.Context) error

	// Start runs the initial refresh and subscribes to the change feed so
	// that any change event triggers a full refresh.
	Start(ctx context.Context) error

	// Stop cancels the change feed subscription.
	Stop()
}
