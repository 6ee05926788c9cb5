package domain

import "go.trai.ch/zerr"

var (
	// ErrIllegalModule is returned when a module file is missing or empty.
	ErrIllegalModule = zerr.New("module file is missing or empty")

	// ErrNoArtifact is returned when a compilation tier finished without
	// producing the expected artifact.
	ErrNoArtifact = zerr.New("no artifact was generated")

	// ErrServiceUnavailable is returned when the privileged service handle
	// cannot be resolved.
	ErrServiceUnavailable = zerr.New("privileged service is unavailable")

	// ErrTransactionFailure is returned when a privileged transaction is
	// rejected by the transport before the remote side ran.
	ErrTransactionFailure = zerr.New("binder transaction failure")

	// ErrRemoteFault is returned when the privileged service reports a fault
	// in its reply parcel.
	ErrRemoteFault = zerr.New("remote service reported a fault")

	// ErrCompileInterrupted is returned when waiting on the external compiler
	// is interrupted before it exits.
	ErrCompileInterrupted = zerr.New("compiler wait interrupted")

	// ErrNoTargetDir is returned when a batch is started without a target
	// directory for artifacts.
	ErrNoTargetDir = zerr.New("no target directory specified")

	// ErrNoModules is returned when a batch is started without any modules.
	ErrNoModules = zerr.New("no modules specified")

	// ErrOptimizationFailed is returned when a batch stopped on a failed
	// module.
	ErrOptimizationFailed = zerr.New("module optimization failed")
)
