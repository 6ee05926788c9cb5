package lockfile

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/hotpatchkit/dexopt/internal/core/ports"
)

// NodeID is the unique identifier for the locker Graft node.
const NodeID graft.ID = "adapter.lockfile"

func init() {
	graft.Register(graft.Node[ports.DirLocker]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DirLocker, error) {
			return NewLocker(), nil
		},
	})
}
