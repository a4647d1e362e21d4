// Package lifecycle holds shared constants for fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown work done inside lifecycle hooks.
const DefaultTimeout = 15 * time.Second
