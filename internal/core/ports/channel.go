package ports

import "context"

// PrivilegedChannel issues transactions against the platform package
// service. There is one method per transaction shape; implementations must
// serialize arguments in the declared field order, invoke the transaction
// synchronously with no special flags, surface any remote fault as an
// error, and release transport buffers and elevated calling identity on
// every exit path.
//
// The channel performs exactly one transaction per call. The retry-once
// policy around the known first-invocation failure belongs to the caller.
//
//go:generate go run go.uber.org/mock/mockgen -source=channel.go -destination=mocks/mock_channel.go -package=mocks
type PrivilegedChannel interface {
	// CompilePackage requests background compilation of the package with the
	// given compile filter, optionally forcing recompilation.
	CompilePackage(ctx context.Context, packageName, compileFilter string, force bool) error

	// RegisterModule registers the module path with the package service so
	// its next background pass compiles it.
	RegisterModule(ctx context.Context, packageName, modulePath string) error
}
