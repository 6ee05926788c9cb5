package progrock_test

import (
	"context"
	"testing"

	"github.com/hotpatchkit/dexopt/internal/adapters/telemetry/progrock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
}

func TestRecorder_VertexLifecycle(t *testing.T) {
	recorder := progrock.New()

	ctx := context.Background()
	_, vertex := recorder.Record(ctx, "compile /p/classes.dex")

	_, err := vertex.Stdout().Write([]byte("dex2oat: starting\n"))
	require.NoError(t, err)

	vertex.Log("artifact written")
	vertex.Complete(nil)

	require.NoError(t, recorder.Close())
}

func TestRecorder_CachedVertex(t *testing.T) {
	recorder := progrock.New()

	_, vertex := recorder.Record(context.Background(), "compile /p/classes.dex")
	vertex.Cached()
	vertex.Complete(nil)

	require.NoError(t, recorder.Close())
}
