// Package fs provides filesystem adapters for module verification, artifact
// path derivation and content hashing.
package fs

import (
	"os"

	"github.com/hotpatchkit/dexopt/internal/core/ports"
)

var _ ports.ModuleVerifier = (*Verifier)(nil)

// Verifier implements ports.ModuleVerifier against the local filesystem.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// IsLegalFile reports whether path names an existing, non-empty regular
// file. Missing and zero-length inputs are rejected before any compilation
// tier is attempted.
func (v *Verifier) IsLegalFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Size() > 0
}

// ArtifactExists reports whether an artifact file is present at path.
func (v *Verifier) ArtifactExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
