package fs

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/hotpatchkit/dexopt/internal/core/domain"
	"github.com/hotpatchkit/dexopt/internal/core/ports"
	"go.trai.ch/zerr"
)

const artifactSuffix = ".odex"

var _ ports.ArtifactMapper = (*Mapper)(nil)

// Mapper derives artifact paths from module identities. The mapping hashes
// the absolute module path, so two modules with the same base name never
// collide within one target directory, and the same module always maps to
// the same artifact.
type Mapper struct{}

// NewMapper creates a new Mapper.
func NewMapper() *Mapper {
	return &Mapper{}
}

// OptimizedPathFor returns the artifact path for the module within
// targetDir.
func (m *Mapper) OptimizedPathFor(modulePath, targetDir string) (string, error) {
	if targetDir == "" {
		return "", domain.ErrNoTargetDir
	}

	abs, err := filepath.Abs(modulePath)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve module path"), "path", modulePath)
	}

	base := filepath.Base(abs)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}

	name := fmt.Sprintf("%s-%016x%s", base, xxhash.Sum64String(abs), artifactSuffix)
	return filepath.Join(targetDir, name), nil
}
