// Package delivery defines the contract shared by every transport serving
// the application core.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker) started by
// the application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
