package domain

// Default values applied when the configuration file omits a field.
const (
	DefaultCompilerPath  = "dex2oat"
	DefaultLoaderPath    = "dalvikvm"
	DefaultServiceName   = "package"
	DefaultCompileFilter = "speed"
	DefaultRecordFile    = "dexopt_records.json"

	// DefaultInstructionSet is the target architecture assumed when the
	// caller does not name one.
	DefaultInstructionSet = "arm64"
)

// Config holds the runtime configuration of the optimization agent. It is
// loaded once at startup and treated as immutable afterwards.
type Config struct {
	// PackageName is the application package on whose behalf privileged
	// compilation is requested.
	PackageName string
	// CompilerPath is the external AOT compiler binary.
	CompilerPath string
	// LoaderPath is the runtime binary used to load a module through a fresh
	// class loader.
	LoaderPath string
	// ServiceName is the privileged service resolved for trigger calls.
	ServiceName string
	// CompileFilter names the compilation aggressiveness profile requested
	// from the privileged service.
	CompileFilter string
	// RecordFile is the per-target-directory file recording completed
	// optimizations.
	RecordFile string
	// VendorCodes overrides transaction codes per manufacturer.
	VendorCodes map[string]VendorCodes
	// Platform optionally pins the platform profile instead of probing the
	// device. Used on host builds and in tests.
	Platform *PlatformProfile
}

// ApplyDefaults fills unset fields with their defaults.
func (c *Config) ApplyDefaults() {
	if c.CompilerPath == "" {
		c.CompilerPath = DefaultCompilerPath
	}
	if c.LoaderPath == "" {
		c.LoaderPath = DefaultLoaderPath
	}
	if c.ServiceName == "" {
		c.ServiceName = DefaultServiceName
	}
	if c.CompileFilter == "" {
		c.CompileFilter = DefaultCompileFilter
	}
	if c.RecordFile == "" {
		c.RecordFile = DefaultRecordFile
	}
}
