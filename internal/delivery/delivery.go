// Package delivery defines the contract for inbound adapters started by the application.
package delivery

import "context"

// Delivery is a long-running inbound adapter such as the HTTP server.
type Delivery interface {
	Serve(ctx context.Context) error
}
