// Package optimizer implements the batch optimization engine: module
// ordering, the tiered compilation strategy, and the privileged trigger
// protocol.
package optimizer

import (
	"context"

	"github.com/hotpatchkit/dexopt/internal/core/domain"
	"github.com/hotpatchkit/dexopt/internal/core/ports"
)

// Callback receives per-module lifecycle events. Exactly one of OnSuccess or
// OnFailed follows each OnStart; skipped modules report through OnSuccess
// carrying a skipped outcome.
type Callback interface {
	OnStart(module domain.CodeModule, targetDir string)
	OnSuccess(module domain.CodeModule, targetDir string, outcome domain.Outcome)
	OnFailed(module domain.CodeModule, targetDir string, cause error)
}

// Optimizer compiles batches of code modules. Modules are processed strictly
// sequentially; artifact generation for one module must not race with the
// I/O of the next, and the legacy path is not safe to run concurrently with
// class-loader activity.
type Optimizer struct {
	verifier ports.ModuleVerifier
	mapper   ports.ArtifactMapper
	hasher   ports.ModuleHasher
	compiler ports.OatCompiler
	loader   ports.DexLoader
	channel  ports.PrivilegedChannel
	probe    ports.PlatformProbe
	store    ports.RecordStore
	logger   ports.Logger

	packageName   string
	compileFilter string
}

// New creates an Optimizer with all of its collaborators.
func New(
	verifier ports.ModuleVerifier,
	mapper ports.ArtifactMapper,
	hasher ports.ModuleHasher,
	compiler ports.OatCompiler,
	loader ports.DexLoader,
	channel ports.PrivilegedChannel,
	probe ports.PlatformProbe,
	store ports.RecordStore,
	log ports.Logger,
	packageName, compileFilter string,
) *Optimizer {
	return &Optimizer{
		verifier:      verifier,
		mapper:        mapper,
		hasher:        hasher,
		compiler:      compiler,
		loader:        loader,
		channel:       channel,
		probe:         probe,
		store:         store,
		logger:        log,
		packageName:   packageName,
		compileFilter: compileFilter,
	}
}

// OptimizeAll compiles the modules in descending order of byte length,
// stopping at the first failure. It returns true only when every module
// succeeded or was skipped; detailed causes flow through the callback, never
// through the return value.
func (o *Optimizer) OptimizeAll(
	ctx context.Context,
	modules []domain.CodeModule,
	targetDir string,
	useInterpretMode bool,
	instructionSet string,
	cb Callback,
) bool {
	for _, module := range domain.SortBySize(modules) {
		cb.OnStart(module, targetDir)

		outcome := o.optimizeModule(ctx, module, targetDir, useInterpretMode, instructionSet)
		if !outcome.OK() {
			cb.OnFailed(module, targetDir, outcome.Cause)
			return false
		}
		if outcome.Status == domain.StatusSkipped {
			o.logger.Info("skipping " + module.Path + ": " + outcome.Reason)
		}
		cb.OnSuccess(module, targetDir, outcome)
	}
	return true
}
