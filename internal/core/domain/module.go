package domain

import (
	"sort"
	"time"
)

// CodeModule identifies one compilable code archive enumerated for a batch.
// The size is captured at enumeration time and used only for ordering; the
// module is immutable once the batch starts.
type CodeModule struct {
	Path string
	Size int64
}

// SortBySize returns the modules ordered by descending byte length. Larger
// modules carry the highest compilation latency and failure risk, so they go
// first and surface fatal errors before time is spent on small ones.
// Equal-length modules keep their original relative order.
func SortBySize(modules []CodeModule) []CodeModule {
	sorted := make([]CodeModule, len(modules))
	copy(sorted, modules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Size > sorted[j].Size
	})
	return sorted
}

// OptimizeRecord is the persisted result of one successful module
// optimization, keyed by module path within a target directory.
type OptimizeRecord struct {
	ModulePath    string    `json:"module_path"`
	ArtifactPath  string    `json:"artifact_path"`
	ModuleHash    string    `json:"module_hash"`
	CompileFilter string    `json:"compile_filter"`
	CompletedAt   time.Time `json:"completed_at"`
}
