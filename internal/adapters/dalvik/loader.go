// Package dalvik drives the platform runtime binary for class-loader based
// compilation and loading.
package dalvik

import (
	"context"

	"github.com/hotpatchkit/dexopt/internal/adapters/shell"
	"github.com/hotpatchkit/dexopt/internal/core/ports"
	"go.trai.ch/zerr"
)

// noopEntrypoint is a class every runtime image ships; loading it forces
// class-loader initialization of the classpath without executing module code.
const noopEntrypoint = "java.lang.Object"

var _ ports.DexLoader = (*Loader)(nil)

// Loader implements ports.DexLoader by launching the runtime binary with the
// module on its classpath. Creating the class loader is what makes the
// runtime emit, or schedule, the artifact; the subprocess exiting means the
// wrapped compiler invocation has finished.
type Loader struct {
	binary string
	runner *shell.Runner
}

// NewLoader creates a Loader around the given runtime binary.
func NewLoader(binary string, runner *shell.Runner) *Loader {
	return &Loader{binary: binary, runner: runner}
}

// TriggerCompile loads the module through a fresh class loader with the
// artifact directory pinned, blocking until the runtime's compiler run
// finishes.
func (l *Loader) TriggerCompile(ctx context.Context, dexPath, targetDir string) error {
	argv := []string{
		l.binary,
		"-Xdexopt:all",
		"-Xdeadlockpredict:off",
		"-Djava.io.tmpdir=" + targetDir,
		"-cp", dexPath,
		noopEntrypoint,
	}
	if err := l.runner.Run(ctx, argv); err != nil {
		return zerr.With(zerr.Wrap(err, "class loader compile trigger failed"), "module", dexPath)
	}
	return nil
}

// Load performs a plain class-loader load of the module.
func (l *Loader) Load(ctx context.Context, dexPath string) error {
	argv := []string{l.binary, "-cp", dexPath, noopEntrypoint}
	if err := l.runner.Run(ctx, argv); err != nil {
		return zerr.With(zerr.Wrap(err, "class loader load failed"), "module", dexPath)
	}
	return nil
}

// LoadLegacy performs the direct load-and-optimize call used on platforms
// that predate the class-loader trigger.
func (l *Loader) LoadLegacy(ctx context.Context, dexPath, oatPath string) error {
	argv := []string{
		l.binary,
		"-Xdexopt:all",
		"-Xdexopt-output:" + oatPath,
		"-cp", dexPath,
		noopEntrypoint,
	}
	if err := l.runner.Run(ctx, argv); err != nil {
		return zerr.With(zerr.Wrap(err, "legacy load failed"), "module", dexPath)
	}
	return nil
}
