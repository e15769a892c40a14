// Package delivery defines the transport-facing contract the app runs.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the app runner.
type Delivery interface {
	// Serve blocks until the server stops or ctx is cancelled.
	Serve(ctx context.Context) error
}
