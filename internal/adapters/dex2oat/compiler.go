// Package dex2oat runs the external AOT compiler as a subprocess under a
// cross-process lock.
package dex2oat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/hotpatchkit/dexopt/internal/core/domain"
	"github.com/hotpatchkit/dexopt/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// interpretLockName is the lock file created in the artifact's parent
// directory; it serializes manual compilations of that directory across
// processes.
const interpretLockName = "interpret.lock"

// Compiler filters keyed by platform generation.
const (
	filterQuicken       = "quicken"
	filterInterpretOnly = "interpret-only"
)

var _ ports.OatCompiler = (*Compiler)(nil)

// Compiler implements ports.OatCompiler by invoking the platform's dex2oat
// binary. Two concurrent invocations targeting the same output directory
// never interleave: the interpret lock serializes them.
type Compiler struct {
	binary  string
	profile domain.PlatformProfile
	locker  ports.DirLocker
	logger  ports.Logger
}

// NewCompiler creates a new Compiler for the given platform profile.
func NewCompiler(binary string, profile domain.PlatformProfile, locker ports.DirLocker, logger ports.Logger) *Compiler {
	return &Compiler{
		binary:  binary,
		profile: profile,
		locker:  locker,
		logger:  logger,
	}
}

// Compile transforms dexPath into an artifact at oatPath, holding the
// interpret lock for the artifact's directory for the whole invocation.
func (c *Compiler) Compile(ctx context.Context, dexPath, oatPath, instructionSet string) error {
	oatDir := filepath.Dir(oatPath)
	if err := os.MkdirAll(oatDir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create artifact directory"), "path", oatDir)
	}

	lock, err := c.locker.Acquire(ctx, filepath.Join(oatDir, interpretLockName))
	if err != nil {
		return zerr.Wrap(err, "failed to acquire interpret lock")
	}
	defer func() {
		if relErr := lock.Release(); relErr != nil {
			c.logger.Warn("release interpret lock error: " + relErr.Error())
		}
	}()

	return c.run(ctx, c.arguments(dexPath, oatPath, instructionSet))
}

// arguments builds the fixed dex2oat command line for the platform.
func (c *Compiler) arguments(dexPath, oatPath, instructionSet string) []string {
	argv := []string{c.binary}
	if c.profile.APILevel >= domain.APINougat {
		// Neutralize the inherited classpath to dodge the duplicate-class
		// fault on 7.x runtimes.
		argv = append(argv, "--runtime-arg", "-classpath", "--runtime-arg", "&")
	}
	argv = append(argv,
		"--dex-file="+dexPath,
		"--oat-file="+oatPath,
		"--instruction-set="+instructionSet,
	)
	if c.profile.APILevel > domain.APINougatMR1 {
		argv = append(argv, "--compiler-filter="+filterQuicken)
	} else {
		argv = append(argv, "--compiler-filter="+filterInterpretOnly)
	}
	return argv
}

// run launches the compiler and blocks until it exits. Both output streams
// are drained on background goroutines before the wait starts, and both
// have hit EOF before run returns, so the lock is never released with a
// drain still in flight.
func (c *Compiler) run(ctx context.Context, argv []string) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // compiler binary comes from configuration

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return zerr.Wrap(err, "failed to open compiler stdout")
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return zerr.Wrap(err, "failed to open compiler stderr")
	}

	if err := cmd.Start(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to start compiler"), "binary", argv[0])
	}

	var drains errgroup.Group
	drains.Go(func() error { return c.drain(stdout) })
	drains.Go(func() error { return c.drain(stderr) })

	waitErr := cmd.Wait()
	_ = drains.Wait()

	if waitErr == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(ctxErr, context.Canceled) {
		return zerr.Wrap(domain.ErrCompileInterrupted, waitErr.Error())
	}
	if exitErr, ok := waitErr.(*exec.ExitError); ok {
		return zerr.With(
			zerr.Wrap(waitErr, fmt.Sprintf("compiler exited unsuccessfully, exit code: %d", exitErr.ExitCode())),
			"exit_code", exitErr.ExitCode(),
		)
	}
	return zerr.Wrap(waitErr, "compiler wait failed")
}

func (c *Compiler) drain(stream io.Reader) error {
	scanner := bufio.NewScanner(stream)
	for scanner.Scan() {
		c.logger.Info("dex2oat: " + scanner.Text())
	}
	return scanner.Err()
}
