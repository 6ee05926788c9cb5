package telemetry_test

import (
	"context"
	"testing"

	"github.com/hotpatchkit/dexopt/internal/adapters/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoOp(t *testing.T) {
	n := telemetry.NewNoOp()

	ctx, vertex := n.Record(context.Background(), "anything")
	require.NotNil(t, ctx)
	require.NotNil(t, vertex)

	_, err := vertex.Stdout().Write([]byte("discarded"))
	assert.NoError(t, err)

	vertex.Log("discarded")
	vertex.Cached()
	vertex.Complete(nil)

	assert.NoError(t, n.Close())
}
