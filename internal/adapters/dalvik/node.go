package dalvik

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/hotpatchkit/dexopt/internal/adapters/config"
	"github.com/hotpatchkit/dexopt/internal/adapters/shell"
	"github.com/hotpatchkit/dexopt/internal/core/domain"
	"github.com/hotpatchkit/dexopt/internal/core/ports"
)

// NodeID is the unique identifier for the loader Graft node.
const NodeID graft.ID = "adapter.dalvik"

func init() {
	graft.Register(graft.Node[ports.DexLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID, shell.NodeID},
		Run: func(ctx context.Context) (ports.DexLoader, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[*shell.Runner](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(cfg.LoaderPath, runner), nil
		},
	})
}
