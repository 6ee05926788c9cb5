package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/hotpatchkit/dexopt/internal/core/ports"
)

const (
	// VerifierNodeID is the Graft node for the module verifier.
	VerifierNodeID graft.ID = "adapter.fs.verifier"
	// MapperNodeID is the Graft node for the artifact path mapper.
	MapperNodeID graft.ID = "adapter.fs.mapper"
	// HasherNodeID is the Graft node for the module content hasher.
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	graft.Register(graft.Node[ports.ModuleVerifier]{
		ID:        VerifierNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ModuleVerifier, error) {
			return NewVerifier(), nil
		},
	})

	graft.Register(graft.Node[ports.ArtifactMapper]{
		ID:        MapperNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArtifactMapper, error) {
			return NewMapper(), nil
		},
	})

	graft.Register(graft.Node[ports.ModuleHasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ModuleHasher, error) {
			return NewHasher(), nil
		},
	})
}
