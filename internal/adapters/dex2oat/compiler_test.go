//go:build unix

package dex2oat_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/hotpatchkit/dexopt/internal/adapters/dex2oat"
	"github.com/hotpatchkit/dexopt/internal/adapters/lockfile"
	"github.com/hotpatchkit/dexopt/internal/core/domain"
	"github.com/hotpatchkit/dexopt/internal/core/ports/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// writeScript installs an executable shell script standing in for the
// dex2oat binary.
func writeScript(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "fake-dex2oat")
	script := "#!/bin/sh\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return log
}

func TestCompiler_Success(t *testing.T) {
	tmpDir := t.TempDir()
	oatPath := filepath.Join(tmpDir, "out", "classes.odex")

	// The fake compiler parses --oat-file and writes the artifact.
	bin := writeScript(t, tmpDir, `
for arg in "$@"; do
  case "$arg" in
    --oat-file=*) echo oat > "${arg#--oat-file=}" ;;
  esac
done`)

	c := dex2oat.NewCompiler(bin, domain.PlatformProfile{APILevel: 29}, lockfile.NewLocker(), quietLogger(t))

	err := c.Compile(context.Background(), filepath.Join(tmpDir, "classes.dex"), oatPath, "arm64")
	require.NoError(t, err)
	require.FileExists(t, oatPath)
}

func TestCompiler_NonZeroExitReportsCode(t *testing.T) {
	tmpDir := t.TempDir()
	bin := writeScript(t, tmpDir, "exit 1")

	c := dex2oat.NewCompiler(bin, domain.PlatformProfile{APILevel: 29}, lockfile.NewLocker(), quietLogger(t))

	err := c.Compile(context.Background(), "in.dex", filepath.Join(tmpDir, "out", "a.odex"), "arm64")
	require.Error(t, err)
	require.Contains(t, err.Error(), "exit code: 1")
}

func TestCompiler_ArgumentGrammarModernPlatform(t *testing.T) {
	tmpDir := t.TempDir()
	argsFile := filepath.Join(tmpDir, "args.txt")
	bin := writeScript(t, tmpDir, `printf '%s\n' "$@" > `+argsFile)

	c := dex2oat.NewCompiler(bin, domain.PlatformProfile{APILevel: 29}, lockfile.NewLocker(), quietLogger(t))

	require.NoError(t, c.Compile(context.Background(), "/p/classes.dex", filepath.Join(tmpDir, "out", "a.odex"), "arm64"))

	raw, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	args := strings.Split(strings.TrimSpace(string(raw)), "\n")

	require.Equal(t, []string{
		"--runtime-arg", "-classpath", "--runtime-arg", "&",
		"--dex-file=/p/classes.dex",
		"--oat-file=" + filepath.Join(tmpDir, "out", "a.odex"),
		"--instruction-set=arm64",
		"--compiler-filter=quicken",
	}, args)
}

func TestCompiler_ArgumentGrammarLegacyPlatform(t *testing.T) {
	tmpDir := t.TempDir()
	argsFile := filepath.Join(tmpDir, "args.txt")
	bin := writeScript(t, tmpDir, `printf '%s\n' "$@" > `+argsFile)

	c := dex2oat.NewCompiler(bin, domain.PlatformProfile{APILevel: 21}, lockfile.NewLocker(), quietLogger(t))

	require.NoError(t, c.Compile(context.Background(), "/p/classes.dex", filepath.Join(tmpDir, "out", "a.odex"), "arm"))

	raw, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	args := strings.Split(strings.TrimSpace(string(raw)), "\n")

	require.Equal(t, []string{
		"--dex-file=/p/classes.dex",
		"--oat-file=" + filepath.Join(tmpDir, "out", "a.odex"),
		"--instruction-set=arm",
		"--compiler-filter=interpret-only",
	}, args)
}

func TestCompiler_ConcurrentInvocationsAreSerialized(t *testing.T) {
	tmpDir := t.TempDir()
	outDir := filepath.Join(tmpDir, "out")
	traceFile := filepath.Join(tmpDir, "trace.txt")

	// Each invocation appends an enter marker, dwells, then appends a leave
	// marker. Interleaved subprocesses would produce enter-enter sequences.
	bin := writeScript(t, tmpDir, `
echo enter >> `+traceFile+`
sleep 0.2
echo leave >> `+traceFile)

	locker := lockfile.NewLocker()
	newCompiler := func() *dex2oat.Compiler {
		return dex2oat.NewCompiler(bin, domain.PlatformProfile{APILevel: 29}, locker, quietLogger(t))
	}

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := newCompiler()
			_ = c.Compile(context.Background(), "in.dex", filepath.Join(outDir, "a.odex"), "arm64")
		}()
	}
	wg.Wait()

	raw, err := os.ReadFile(traceFile)
	require.NoError(t, err)
	require.Equal(t, []string{"enter", "leave", "enter", "leave"},
		strings.Split(strings.TrimSpace(string(raw)), "\n"))
}

func TestCompiler_LockReleasedAfterFailure(t *testing.T) {
	tmpDir := t.TempDir()
	outDir := filepath.Join(tmpDir, "out")
	bin := writeScript(t, tmpDir, "exit 7")

	locker := lockfile.NewLocker()
	c := dex2oat.NewCompiler(bin, domain.PlatformProfile{APILevel: 29}, locker, quietLogger(t))

	require.Error(t, c.Compile(context.Background(), "in.dex", filepath.Join(outDir, "a.odex"), "arm64"))

	// The lock must be free again even though the compiler failed.
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	h, err := locker.Acquire(ctx, filepath.Join(outDir, "interpret.lock"))
	require.NoError(t, err)
	require.NoError(t, h.Release())
}
