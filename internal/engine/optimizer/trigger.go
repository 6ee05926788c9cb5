package optimizer

import (
	"context"

	"github.com/hotpatchkit/dexopt/internal/core/domain"
	"go.trai.ch/zerr"
)

// triggerOnDemand coaxes the privileged package service into compiling the
// module. This is a narrowly-scoped vendor workaround: it only runs on the
// one platform release and manufacturer where the class-loader path is known
// to silently drop artifacts; every other combination is a logged no-op.
//
// The protocol never falls back to the manual compiler from here; that
// escalation belongs to the caller.
func (o *Optimizer) triggerOnDemand(ctx context.Context, dexPath, oatPath string, profile domain.PlatformProfile) error {
	if profile.APILevel != domain.APIQ || !profile.IsManufacturer(domain.ManufacturerHuawei) {
		o.logger.Info("privileged trigger not applicable on this platform, skipping")
		return nil
	}

	// Best-effort primary attempt: a plain class-loader load is sometimes
	// enough to make the runtime emit the artifact.
	if err := o.loader.Load(ctx, dexPath); err != nil {
		o.logger.Warn("primary load attempt failed for " + dexPath + ": " + err.Error())
	}
	if o.verifier.ArtifactExists(oatPath) {
		return nil
	}

	// A failing compile-package call does not end the protocol: the
	// register-module shape can still produce the artifact, so the error is
	// logged and the escalation runs regardless.
	if err := o.retryOnce(func() error {
		return o.channel.CompilePackage(ctx, o.packageName, o.compileFilter, true)
	}); err != nil {
		o.logger.Warn("compile-package call failed for " + dexPath + ", escalating: " + err.Error())
	}
	if o.verifier.ArtifactExists(oatPath) {
		return nil
	}

	// Secondary shape: register the module path so the service's next
	// background pass picks it up.
	if err := o.retryOnce(func() error {
		return o.channel.RegisterModule(ctx, o.packageName, dexPath)
	}); err != nil {
		return err
	}
	if o.verifier.ArtifactExists(oatPath) {
		return nil
	}

	return zerr.With(
		zerr.With(
			zerr.Wrap(domain.ErrNoArtifact, "privileged trigger produced no artifact"),
			"module", dexPath,
		),
		"artifact", oatPath,
	)
}

// retryOnce issues the call twice, ignoring the first failure. The first
// invocation of the privileged call fails structurally on the affected
// builds; only the second failure is real. This is a compatibility
// heuristic, not a verified protocol guarantee.
func (o *Optimizer) retryOnce(call func() error) error {
	if err := call(); err != nil {
		o.logger.Warn("first privileged invocation failed, retrying: " + err.Error())
	}
	return call()
}
