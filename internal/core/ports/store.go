package ports

import "github.com/hotpatchkit/dexopt/internal/core/domain"

// RecordStore persists per-module optimization results under a target
// directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RecordStore interface {
	// Get retrieves the record for a module within targetDir.
	// Returns nil, nil if not found.
	Get(targetDir, modulePath string) (*domain.OptimizeRecord, error)

	// Put stores the record under targetDir.
	Put(targetDir string, record domain.OptimizeRecord) error
}
