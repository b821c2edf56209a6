// Package lifecycle holds shared timing constants for component startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds fx start/stop hooks such as DB pings and HTTP shutdown.
const DefaultTimeout = 10 * time.Second
