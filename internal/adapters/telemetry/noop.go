// Package telemetry provides progress recording implementations.
package telemetry

import (
	"context"
	"io"

	"github.com/hotpatchkit/dexopt/internal/core/ports"
)

// NoOp is a no-op implementation of ports.Telemetry, used when no progress
// display is attached.
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns a vertex that discards everything.
func (n *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, &noOpVertex{}
}

// Close does nothing.
func (n *NoOp) Close() error { return nil }

type noOpVertex struct{}

func (v *noOpVertex) Stdout() io.Writer { return io.Discard }
func (v *noOpVertex) Log(string)        {}
func (v *noOpVertex) Complete(error)    {}
func (v *noOpVertex) Cached()           {}
