package optimizer

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/hotpatchkit/dexopt/internal/adapters/binder"
	"github.com/hotpatchkit/dexopt/internal/adapters/config"
	"github.com/hotpatchkit/dexopt/internal/adapters/dalvik"
	"github.com/hotpatchkit/dexopt/internal/adapters/dex2oat"
	"github.com/hotpatchkit/dexopt/internal/adapters/fs"
	"github.com/hotpatchkit/dexopt/internal/adapters/logger"
	"github.com/hotpatchkit/dexopt/internal/adapters/record"
	"github.com/hotpatchkit/dexopt/internal/adapters/sysprop"
	"github.com/hotpatchkit/dexopt/internal/core/domain"
	"github.com/hotpatchkit/dexopt/internal/core/ports"
)

// NodeID is the unique identifier for the optimizer engine Graft node.
const NodeID graft.ID = "engine.optimizer"

func init() {
	graft.Register(graft.Node[*Optimizer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.ConfigNodeID,
			fs.VerifierNodeID,
			fs.MapperNodeID,
			fs.HasherNodeID,
			dex2oat.NodeID,
			dalvik.NodeID,
			binder.NodeID,
			sysprop.NodeID,
			record.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Optimizer, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			verifier, err := graft.Dep[ports.ModuleVerifier](ctx)
			if err != nil {
				return nil, err
			}
			mapper, err := graft.Dep[ports.ArtifactMapper](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.ModuleHasher](ctx)
			if err != nil {
				return nil, err
			}
			compiler, err := graft.Dep[ports.OatCompiler](ctx)
			if err != nil {
				return nil, err
			}
			loader, err := graft.Dep[ports.DexLoader](ctx)
			if err != nil {
				return nil, err
			}
			channel, err := graft.Dep[ports.PrivilegedChannel](ctx)
			if err != nil {
				return nil, err
			}
			probe, err := graft.Dep[ports.PlatformProbe](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.RecordStore](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(verifier, mapper, hasher, compiler, loader, channel, probe, store, log,
				cfg.PackageName, cfg.CompileFilter), nil
		},
	})
}
