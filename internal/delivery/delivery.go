// Package delivery defines the contract every transport entrypoint fulfils.
package delivery

import "context"

// Delivery is a long-running transport server, started by the application
// entrypoint and stopped through the Fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
