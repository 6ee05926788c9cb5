// Package app implements the application layer for dexopt.
package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/hotpatchkit/dexopt/internal/adapters/telemetry/progrock"
	"github.com/hotpatchkit/dexopt/internal/core/domain"
	"github.com/hotpatchkit/dexopt/internal/core/ports"
	"github.com/hotpatchkit/dexopt/internal/engine/optimizer"
	"github.com/hotpatchkit/dexopt/internal/tui"
	"go.trai.ch/zerr"
)

// moduleExtensions are the archive types accepted when a directory is
// scanned for modules.
var moduleExtensions = map[string]bool{
	".dex": true,
	".jar": true,
	".apk": true,
	".zip": true,
}

// App represents the main application logic.
type App struct {
	optimizer  *optimizer.Optimizer
	telemetry  ports.Telemetry
	logger     ports.Logger
	teaOptions []tea.ProgramOption
}

// New creates a new App instance.
func New(opt *optimizer.Optimizer, tel ports.Telemetry, log ports.Logger) *App {
	return &App{
		optimizer: opt,
		telemetry: tel,
		logger:    log,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// OptimizeOptions configuration for the Optimize method.
type OptimizeOptions struct {
	TargetDir      string
	InstructionSet string
	Interpret      bool
	UI             bool
}

// Optimize compiles the given modules into the target directory. Paths may
// name module files directly or directories to scan for module archives.
func (a *App) Optimize(ctx context.Context, modulePaths []string, opts OptimizeOptions) error {
	if len(modulePaths) == 0 {
		return domain.ErrNoModules
	}
	if opts.TargetDir == "" {
		return domain.ErrNoTargetDir
	}
	if opts.InstructionSet == "" {
		opts.InstructionSet = domain.DefaultInstructionSet
	}

	modules, err := enumerateModules(modulePaths)
	if err != nil {
		return zerr.Wrap(err, "failed to enumerate modules")
	}
	if len(modules) == 0 {
		return domain.ErrNoModules
	}

	if err := os.MkdirAll(opts.TargetDir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create target directory")
	}

	if opts.UI {
		return a.optimizeWithUI(ctx, modules, opts)
	}

	cb := newProgressCallback(ctx, a.telemetry, a.logger)
	if !a.optimizer.OptimizeAll(ctx, modules, opts.TargetDir, opts.Interpret, opts.InstructionSet, cb) {
		return domain.ErrOptimizationFailed
	}
	return nil
}

// optimizeWithUI runs the batch alongside a progress view. The view consumes
// vertex updates from the recorder and terminates once the tape is closed.
func (a *App) optimizeWithUI(ctx context.Context, modules []domain.CodeModule, opts OptimizeOptions) error {
	source := tui.NewSource()
	recorder := progrock.NewRecorder(source)

	programOpts := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.teaOptions...)
	program := tea.NewProgram(tui.NewModel(source), programOpts...)

	var ok bool
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if _, err := program.Run(); err != nil {
			return zerr.Wrap(err, "progress view failed")
		}
		return nil
	})

	g.Go(func() error {
		// Closing the recorder ends the tape and quits the view.
		defer func() { _ = recorder.Close() }()

		cb := newProgressCallback(ctx, recorder, a.logger)
		ok = a.optimizer.OptimizeAll(ctx, modules, opts.TargetDir, opts.Interpret, opts.InstructionSet, cb)
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	if !ok {
		return domain.ErrOptimizationFailed
	}
	return nil
}

// enumerateModules expands the given paths into code modules. Directories
// are scanned one level deep for module archives; files are taken verbatim.
func enumerateModules(paths []string) ([]domain.CodeModule, error) {
	var modules []domain.CodeModule

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, zerr.Wrap(err, "cannot stat module path "+path)
		}

		if !info.IsDir() {
			modules = append(modules, domain.CodeModule{Path: path, Size: info.Size()})
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, zerr.Wrap(err, "cannot scan module directory "+path)
		}
		for _, entry := range entries {
			if entry.IsDir() || !moduleExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
				continue
			}
			entryInfo, err := entry.Info()
			if err != nil {
				return nil, zerr.Wrap(err, "cannot stat module "+entry.Name())
			}
			modules = append(modules, domain.CodeModule{
				Path: filepath.Join(path, entry.Name()),
				Size: entryInfo.Size(),
			})
		}
	}

	return modules, nil
}
