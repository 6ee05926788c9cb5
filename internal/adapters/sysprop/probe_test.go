//go:build unix

package sysprop

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hotpatchkit/dexopt/internal/core/domain"
	"github.com/hotpatchkit/dexopt/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeGetprop installs a shell script answering property reads from a fixed
// table.
func fakeGetprop(t *testing.T, props map[string]string) string {
	t.Helper()
	script := "#!/bin/sh\ncase \"$1\" in\n"
	for key, value := range props {
		script += key + ") echo '" + value + "' ;;\n"
	}
	script += "*) echo '' ;;\nesac\n"

	path := filepath.Join(t.TempDir(), "getprop")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	return log
}

func TestProfile_ReadsDeviceProperties(t *testing.T) {
	p := NewProbe(nil, quietLogger(t))
	p.getprop = fakeGetprop(t, map[string]string{
		"ro.build.version.sdk":         "25",
		"ro.build.version.preview_sdk": "1",
		"ro.product.manufacturer":      "HUAWEI",
	})

	profile, err := p.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 25, profile.APILevel)
	assert.True(t, profile.PreviewAPI)
	assert.Equal(t, "HUAWEI", profile.Manufacturer)
}

func TestProfile_EmptyPreviewMeansFinalRelease(t *testing.T) {
	p := NewProbe(nil, quietLogger(t))
	p.getprop = fakeGetprop(t, map[string]string{
		"ro.build.version.sdk":    "26",
		"ro.product.manufacturer": "Google",
	})

	profile, err := p.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 26, profile.APILevel)
	assert.False(t, profile.PreviewAPI)
}

func TestProfile_PinnedProfileSkipsProbe(t *testing.T) {
	pinned := &domain.PlatformProfile{APILevel: 29, Manufacturer: "XIAOMI"}
	p := NewProbe(pinned, quietLogger(t))
	p.getprop = "/nonexistent/getprop"

	profile, err := p.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, *pinned, profile)
}

func TestProfile_UnparsableAPILevel(t *testing.T) {
	p := NewProbe(nil, quietLogger(t))
	p.getprop = fakeGetprop(t, map[string]string{
		"ro.build.version.sdk": "REL",
	})

	_, err := p.Profile(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse platform API level")
}

func TestAlternateEngineActive(t *testing.T) {
	t.Run("property enabled", func(t *testing.T) {
		p := NewProbe(nil, quietLogger(t))
		p.getprop = fakeGetprop(t, map[string]string{"ro.maple.enable": "1"})
		p.arkLibs = nil
		assert.True(t, p.AlternateEngineActive(context.Background()))
	})

	t.Run("runtime library present", func(t *testing.T) {
		lib := filepath.Join(t.TempDir(), "libmapleart.so")
		require.NoError(t, os.WriteFile(lib, []byte{0x7f}, 0o600))

		p := NewProbe(nil, quietLogger(t))
		p.getprop = fakeGetprop(t, nil)
		p.arkLibs = []string{lib}
		assert.True(t, p.AlternateEngineActive(context.Background()))
	})

	t.Run("inactive", func(t *testing.T) {
		p := NewProbe(nil, quietLogger(t))
		p.getprop = fakeGetprop(t, nil)
		p.arkLibs = []string{filepath.Join(t.TempDir(), "missing.so")}
		assert.False(t, p.AlternateEngineActive(context.Background()))
	})
}
