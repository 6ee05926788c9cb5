package ports

import (
	"context"
	"io"
)

// Telemetry records per-module progress vertices.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Record starts a vertex for one unit of work.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one unit of work on the progress display.
type Vertex interface {
	// Stdout returns a writer for output attributed to the vertex.
	Stdout() io.Writer
	// Log records a message associated with this vertex.
	Log(msg string)
	// Complete marks the vertex as finished, with err carrying the failure.
	Complete(err error)
	// Cached marks the vertex as satisfied without doing work.
	Cached()
}

type vertexContextKey struct{}

// ContextWithVertex attaches the vertex to the context.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexContextKey{}, v)
}

// VertexFromContext returns the attached vertex, or nil.
func VertexFromContext(ctx context.Context) Vertex {
	v, _ := ctx.Value(vertexContextKey{}).(Vertex)
	return v
}
