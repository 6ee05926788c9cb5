// Package shell provides a subprocess runner with drained output streams.
package shell

import (
	"bufio"
	"context"
	"io"
	"os/exec"

	"github.com/hotpatchkit/dexopt/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Runner executes external commands. Both output streams are drained
// concurrently while the command runs, so a chatty subprocess can never
// block on a full, unread pipe buffer.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run starts argv[0] with the remaining arguments and blocks until it
// exits. All output lines are forwarded to the logger. A non-zero exit code
// is returned as an error carrying the code.
func (r *Runner) Run(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return zerr.New("empty command")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // argv is built from configuration

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return zerr.Wrap(err, "failed to open stdout pipe")
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return zerr.Wrap(err, "failed to open stderr pipe")
	}

	if err := cmd.Start(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to start command"), "command", argv[0])
	}

	// Drains must be running before Wait: Wait closes the pipes once the
	// process exits, and the process may stall on back-pressure until then.
	var drains errgroup.Group
	drains.Go(func() error { return r.drain(stdout) })
	drains.Go(func() error { return r.drain(stderr) })

	waitErr := cmd.Wait()
	_ = drains.Wait()

	if waitErr != nil {
		if exitErr, ok := waitErr.(*exec.ExitError); ok {
			return zerr.With(zerr.Wrap(waitErr, "command failed"), "exit_code", exitErr.ExitCode())
		}
		return zerr.With(zerr.Wrap(waitErr, "command failed"), "command", argv[0])
	}
	return nil
}

func (r *Runner) drain(stream io.Reader) error {
	scanner := bufio.NewScanner(stream)
	for scanner.Scan() {
		r.logger.Info(scanner.Text())
	}
	// Scanner errors include the pipe being closed by Wait; nothing useful
	// to do with them beyond stopping.
	return scanner.Err()
}
