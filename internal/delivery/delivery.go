// Package delivery defines the inbound transports that expose the
// application's use cases.
package delivery

import "context"

// Delivery is a long-running inbound transport, such as the HTTP server.
// Implementations block in Serve until the transport is shut down.
type Delivery interface {
	Serve(ctx context.Context) error
}
