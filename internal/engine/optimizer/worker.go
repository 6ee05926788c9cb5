package optimizer

import (
	"context"
	"time"

	"github.com/hotpatchkit/dexopt/internal/core/domain"
	"go.trai.ch/zerr"
)

// optimizeModule runs one module through its selected strategy tiers. Tiers
// run strictly sequentially; a later tier assumes the earlier one either
// completed or left no partial artifact. Faults are converted into a Failure
// outcome carrying the original cause.
func (o *Optimizer) optimizeModule(
	ctx context.Context,
	module domain.CodeModule,
	targetDir string,
	useInterpretMode bool,
	instructionSet string,
) domain.Outcome {
	if !o.verifier.IsLegalFile(module.Path) {
		return domain.FailedOutcome(zerr.With(domain.ErrIllegalModule, "module", module.Path))
	}

	artifactPath, err := o.mapper.OptimizedPathFor(module.Path, targetDir)
	if err != nil {
		return domain.FailedOutcome(err)
	}

	if outcome, done := o.recordedOutcome(module, targetDir, artifactPath); done {
		return outcome
	}

	profile, err := o.probe.Profile(ctx)
	if err != nil {
		return domain.FailedOutcome(err)
	}

	tiers := domain.SelectStrategy(profile, useInterpretMode, o.probe.AlternateEngineActive(ctx))
	if len(tiers) == 0 {
		return domain.SkippedOutcome(artifactPath, "alternate execution engine active")
	}

	for _, tier := range tiers {
		err := o.runTier(ctx, tier, module, artifactPath, targetDir, instructionSet, profile)
		if err == nil {
			continue
		}
		if tier.BestEffort {
			o.logger.Warn("best-effort " + tier.Kind.String() + " step failed for " + module.Path + ": " + err.Error())
			continue
		}
		return domain.FailedOutcome(err)
	}

	o.saveRecord(module, targetDir, artifactPath)
	return domain.SuccessOutcome(artifactPath)
}

// runTier executes one strategy tier for the module.
func (o *Optimizer) runTier(
	ctx context.Context,
	tier domain.Tier,
	module domain.CodeModule,
	artifactPath, targetDir, instructionSet string,
	profile domain.PlatformProfile,
) error {
	o.logger.Info("compiling " + module.Path + " via " + tier.Kind.String())

	switch tier.Kind {
	case domain.TierInterpret:
		return o.compiler.Compile(ctx, module.Path, artifactPath, instructionSet)
	case domain.TierClassLoader:
		return o.loader.TriggerCompile(ctx, module.Path, targetDir)
	case domain.TierServiceTrigger:
		return o.triggerOnDemand(ctx, module.Path, artifactPath, profile)
	case domain.TierLegacy:
		return o.loader.LoadLegacy(ctx, module.Path, artifactPath)
	default:
		return zerr.With(zerr.New("unknown strategy tier"), "tier", int(tier.Kind))
	}
}

// recordedOutcome reports whether a previous run already optimized this
// exact module content and the artifact is still present.
func (o *Optimizer) recordedOutcome(module domain.CodeModule, targetDir, artifactPath string) (domain.Outcome, bool) {
	rec, err := o.store.Get(targetDir, module.Path)
	if err != nil {
		o.logger.Warn("record lookup failed for " + module.Path + ": " + err.Error())
		return domain.Outcome{}, false
	}
	if rec == nil || !o.verifier.ArtifactExists(rec.ArtifactPath) {
		return domain.Outcome{}, false
	}

	hash, err := o.hasher.HashFile(module.Path)
	if err != nil || hash != rec.ModuleHash {
		return domain.Outcome{}, false
	}

	return domain.SkippedOutcome(artifactPath, "already compiled"), true
}

// saveRecord persists the completed optimization. Persistence failures cost
// only a future cache hit, so they are logged and swallowed.
func (o *Optimizer) saveRecord(module domain.CodeModule, targetDir, artifactPath string) {
	hash, err := o.hasher.HashFile(module.Path)
	if err != nil {
		o.logger.Warn("hashing " + module.Path + " failed: " + err.Error())
		return
	}
	err = o.store.Put(targetDir, domain.OptimizeRecord{
		ModulePath:    module.Path,
		ArtifactPath:  artifactPath,
		ModuleHash:    hash,
		CompileFilter: o.compileFilter,
		CompletedAt:   time.Now(),
	})
	if err != nil {
		o.logger.Warn("recording " + module.Path + " failed: " + err.Error())
	}
}
