// Package delivery defines the contract shared by the serving surfaces.
package delivery

import "context"

// Delivery is a long-running serving component (HTTP server, worker, ...).
type Delivery interface {
	Serve(ctx context.Context) error
}
