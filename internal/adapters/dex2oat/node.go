package dex2oat

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/hotpatchkit/dexopt/internal/adapters/config"
	"github.com/hotpatchkit/dexopt/internal/adapters/lockfile"
	"github.com/hotpatchkit/dexopt/internal/adapters/logger"
	"github.com/hotpatchkit/dexopt/internal/adapters/sysprop"
	"github.com/hotpatchkit/dexopt/internal/core/domain"
	"github.com/hotpatchkit/dexopt/internal/core/ports"
)

// NodeID is the unique identifier for the compiler Graft node.
const NodeID graft.ID = "adapter.dex2oat"

func init() {
	graft.Register(graft.Node[ports.OatCompiler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.ConfigNodeID,
			lockfile.NodeID,
			logger.NodeID,
			sysprop.NodeID,
		},
		Run: func(ctx context.Context) (ports.OatCompiler, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			locker, err := graft.Dep[ports.DirLocker](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			probe, err := graft.Dep[ports.PlatformProbe](ctx)
			if err != nil {
				return nil, err
			}
			profile, err := probe.Profile(ctx)
			if err != nil {
				return nil, err
			}
			return NewCompiler(cfg.CompilerPath, profile, locker, log), nil
		},
	})
}
