package fs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hotpatchkit/dexopt/internal/adapters/fs"
	"github.com/stretchr/testify/require"
)

func TestVerifier_IsLegalFile(t *testing.T) {
	tmpDir := t.TempDir()
	v := fs.NewVerifier()

	missing := filepath.Join(tmpDir, "missing.dex")
	require.False(t, v.IsLegalFile(missing))

	empty := filepath.Join(tmpDir, "empty.dex")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	require.False(t, v.IsLegalFile(empty))

	require.False(t, v.IsLegalFile(tmpDir), "directories are not legal modules")

	legal := filepath.Join(tmpDir, "classes.dex")
	require.NoError(t, os.WriteFile(legal, []byte("dex\n035"), 0o644))
	require.True(t, v.IsLegalFile(legal))
}

func TestVerifier_ArtifactExists(t *testing.T) {
	tmpDir := t.TempDir()
	v := fs.NewVerifier()

	artifact := filepath.Join(tmpDir, "classes.odex")
	require.False(t, v.ArtifactExists(artifact))

	require.NoError(t, os.WriteFile(artifact, []byte("oat"), 0o644))
	require.True(t, v.ArtifactExists(artifact))
}

func TestMapper_Deterministic(t *testing.T) {
	m := fs.NewMapper()

	first, err := m.OptimizedPathFor("/data/patch/classes.dex", "/data/odex")
	require.NoError(t, err)
	second, err := m.OptimizedPathFor("/data/patch/classes.dex", "/data/odex")
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.True(t, strings.HasPrefix(first, filepath.Join("/data/odex", "classes-")))
	require.True(t, strings.HasSuffix(first, ".odex"))
}

func TestMapper_SameBaseNameDifferentDirsDoNotCollide(t *testing.T) {
	m := fs.NewMapper()

	a, err := m.OptimizedPathFor("/data/patch-a/classes.dex", "/data/odex")
	require.NoError(t, err)
	b, err := m.OptimizedPathFor("/data/patch-b/classes.dex", "/data/odex")
	require.NoError(t, err)

	require.NotEqual(t, a, b)
}

func TestMapper_EmptyTargetDir(t *testing.T) {
	m := fs.NewMapper()

	_, err := m.OptimizedPathFor("/data/patch/classes.dex", "")
	require.Error(t, err)
}

func TestHasher_HashFile(t *testing.T) {
	tmpDir := t.TempDir()
	h := fs.NewHasher()

	path := filepath.Join(tmpDir, "mod.dex")
	require.NoError(t, os.WriteFile(path, []byte("content-v1"), 0o644))

	first, err := h.HashFile(path)
	require.NoError(t, err)
	require.Len(t, first, 16)

	again, err := h.HashFile(path)
	require.NoError(t, err)
	require.Equal(t, first, again)

	require.NoError(t, os.WriteFile(path, []byte("content-v2"), 0o644))
	changed, err := h.HashFile(path)
	require.NoError(t, err)
	require.NotEqual(t, first, changed)
}

func TestHasher_MissingFile(t *testing.T) {
	h := fs.NewHasher()

	_, err := h.HashFile(filepath.Join(t.TempDir(), "nope.dex"))
	require.Error(t, err)
}
