// Package lifecycle holds shared shutdown constants.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of deliveries and infra clients.
const DefaultTimeout = 10 * time.Second
