package ports

import "context"

// OatCompiler produces an artifact by running the external AOT compiler.
// Implementations hold the cross-process lock for the artifact's directory
// for the whole invocation and must not leave a partial artifact behind a
// released lock.
//
//go:generate go run go.uber.org/mock/mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type OatCompiler interface {
	// Compile transforms the module at dexPath into an artifact at oatPath
	// for the given instruction set. It blocks until the compiler exits.
	Compile(ctx context.Context, dexPath, oatPath, instructionSet string) error
}
