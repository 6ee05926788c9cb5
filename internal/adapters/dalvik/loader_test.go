//go:build unix

package dalvik_test

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/hotpatchkit/dexopt/internal/adapters/dalvik"
	"github.com/hotpatchkit/dexopt/internal/adapters/shell"
	"github.com/hotpatchkit/dexopt/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeRuntime installs a script that records its arguments and exits with the
// given code.
func fakeRuntime(t *testing.T, exitCode int) (binary, argsFile string) {
	t.Helper()
	dir := t.TempDir()
	argsFile = filepath.Join(dir, "args.txt")
	binary = filepath.Join(dir, "fake-dalvikvm")
	script := "#!/bin/sh\nprintf '%s\\n' \"$@\" > " + argsFile + "\nexit " + strconv.Itoa(exitCode) + "\n"
	require.NoError(t, os.WriteFile(binary, []byte(script), 0o755))
	return binary, argsFile
}

func newRunner(t *testing.T) *shell.Runner {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	return shell.NewRunner(log)
}

func recordedArgs(t *testing.T, argsFile string) []string {
	t.Helper()
	raw, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	return strings.Split(strings.TrimSpace(string(raw)), "\n")
}

func TestTriggerCompile(t *testing.T) {
	binary, argsFile := fakeRuntime(t, 0)
	l := dalvik.NewLoader(binary, newRunner(t))

	require.NoError(t, l.TriggerCompile(context.Background(), "/p/classes.dex", "/p/oat"))

	args := recordedArgs(t, argsFile)
	assert.Contains(t, args, "-cp")
	assert.Contains(t, args, "/p/classes.dex")
	assert.Contains(t, args, "-Djava.io.tmpdir=/p/oat")
}

func TestLoad_FailurePropagates(t *testing.T) {
	binary, _ := fakeRuntime(t, 1)
	l := dalvik.NewLoader(binary, newRunner(t))

	err := l.Load(context.Background(), "/p/classes.dex")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "class loader load failed")
}

func TestLoadLegacy(t *testing.T) {
	binary, argsFile := fakeRuntime(t, 0)
	l := dalvik.NewLoader(binary, newRunner(t))

	require.NoError(t, l.LoadLegacy(context.Background(), "/p/classes.dex", "/p/classes.odex"))

	args := recordedArgs(t, argsFile)
	assert.Contains(t, args, "-Xdexopt:all")
	assert.Contains(t, args, "-Xdexopt-output:/p/classes.odex")
}
