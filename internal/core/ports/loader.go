package ports

import "context"

// DexLoader drives the platform runtime's class-loader based compilation
// paths.
//
//go:generate go run go.uber.org/mock/mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks
type DexLoader interface {
	// TriggerCompile loads the module through a fresh class loader so the
	// runtime emits an artifact under targetDir. It blocks until the
	// underlying compiler invocation finishes.
	TriggerCompile(ctx context.Context, dexPath, targetDir string) error

	// Load performs a plain class-loader load of the module. Used as the
	// best-effort primary attempt of the privileged trigger protocol.
	Load(ctx context.Context, dexPath string) error

	// LoadLegacy performs the direct load-and-optimize call used on
	// platforms that predate the class-loader trigger, writing the artifact
	// to oatPath.
	LoadLegacy(ctx context.Context, dexPath, oatPath string) error
}
