// Package transport defines the interface for pluggable request transports.
//
// Each transport implements this interface and hands incoming interaction
// requests to the pipeline. The pipeline doesn't care how requests arrive —
// it only works with the Transport contract.
package transport

import (
	"context"

	"github.com/subrinSheikh/Medical-Language-System/internal/message"
)

// Handler processes one interaction request and returns its result.
// The pipeline provides this handler to each transport. It never fails:
// every degraded path is reported inside the result.
type Handler func(ctx context.Context, req *message.Request) *message.Result

// Transport is the interface that every transport adapter must implement.
type Transport interface {
	// Name returns the transport identifier (e.g., "http").
	Name() string

	// Listen starts accepting incoming requests and hands them to the handler.
	// It blocks until the context is cancelled.
	Listen(ctx context.Context, handler Handler) error

	// Close gracefully shuts down the transport, draining in-flight work.
	Close() error
}
