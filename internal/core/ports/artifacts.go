package ports

// ModuleVerifier rejects inputs that cannot be compiled and probes for
// produced artifacts.
//
//go:generate go run go.uber.org/mock/mockgen -source=artifacts.go -destination=mocks/mock_artifacts.go -package=mocks
type ModuleVerifier interface {
	// IsLegalFile reports whether path names an existing, non-empty regular
	// file.
	IsLegalFile(path string) bool

	// ArtifactExists reports whether an artifact is present at path.
	ArtifactExists(path string) bool
}

// ArtifactMapper derives the artifact path for a module. The mapping is
// deterministic and collision-free: one module identity always yields the
// same artifact path within a target directory.
type ArtifactMapper interface {
	OptimizedPathFor(modulePath, targetDir string) (string, error)
}

// ModuleHasher computes a stable content hash of a module file, used to
// detect stale optimization records.
type ModuleHasher interface {
	HashFile(path string) (string, error)
}
