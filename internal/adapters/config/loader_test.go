package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hotpatchkit/dexopt/internal/adapters/config"
	"github.com/hotpatchkit/dexopt/internal/core/domain"
	"github.com/hotpatchkit/dexopt/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	return config.NewLoader(log)
}

func TestLoad_FullFile(t *testing.T) {
	content := `
package: "com.example.host"
compiler: "/system/bin/dex2oat"
loader: "/system/bin/dalvikvm"
service: "package"
filter: "speed-profile"
recordFile: "records.json"
vendorCodes:
  oneplus:
    compilePackage: 0x7a
    registerModule: 0x7b
platform:
  apiLevel: 29
  manufacturer: "HUAWEI"
`
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, config.Filename), []byte(content), 0o600))

	cfg, err := newLoader(t).Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "com.example.host", cfg.PackageName)
	assert.Equal(t, "/system/bin/dex2oat", cfg.CompilerPath)
	assert.Equal(t, "/system/bin/dalvikvm", cfg.LoaderPath)
	assert.Equal(t, "speed-profile", cfg.CompileFilter)
	assert.Equal(t, "records.json", cfg.RecordFile)
	require.Contains(t, cfg.VendorCodes, "oneplus")
	assert.Equal(t, uint32(0x7a), cfg.VendorCodes["oneplus"].CompilePackage)
	assert.Equal(t, uint32(0x7b), cfg.VendorCodes["oneplus"].RegisterModule)
	require.NotNil(t, cfg.Platform)
	assert.Equal(t, 29, cfg.Platform.APILevel)
	assert.Equal(t, "HUAWEI", cfg.Platform.Manufacturer)
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := newLoader(t).Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultCompilerPath, cfg.CompilerPath)
	assert.Equal(t, domain.DefaultLoaderPath, cfg.LoaderPath)
	assert.Equal(t, domain.DefaultServiceName, cfg.ServiceName)
	assert.Equal(t, domain.DefaultCompileFilter, cfg.CompileFilter)
	assert.Equal(t, domain.DefaultRecordFile, cfg.RecordFile)
	assert.Nil(t, cfg.Platform)
}

func TestLoad_PartialFileFillsDefaults(t *testing.T) {
	content := `
package: "com.example.host"
filter: "everything"
`
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, config.Filename), []byte(content), 0o600))

	cfg, err := newLoader(t).Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "com.example.host", cfg.PackageName)
	assert.Equal(t, "everything", cfg.CompileFilter)
	assert.Equal(t, domain.DefaultCompilerPath, cfg.CompilerPath)
	assert.Equal(t, domain.DefaultRecordFile, cfg.RecordFile)
}

func TestLoad_UpwardDiscovery(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
package: "com.example.host"
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, config.Filename), []byte(content), 0o600))

	nested := filepath.Join(tmpDir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	cfg, err := newLoader(t).Load(nested)
	require.NoError(t, err)
	assert.Equal(t, "com.example.host", cfg.PackageName)
}

func TestLoad_MalformedFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, config.Filename), []byte("package: [unclosed"), 0o600))

	_, err := newLoader(t).Load(tmpDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}
