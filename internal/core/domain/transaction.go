package domain

// TransactionShape selects the argument layout of a privileged call.
type TransactionShape int

const (
	// ShapeCompilePackage carries {package name, compile-filter, force flag}.
	ShapeCompilePackage TransactionShape = iota + 1
	// ShapeRegisterModule carries {package name, module path, two reserved
	// zero fields}.
	ShapeRegisterModule
)

// TransactionDescriptor is the immutable (code, shape) pair selecting which
// privileged-service operation a call invokes.
type TransactionDescriptor struct {
	Code  uint32
	Shape TransactionShape
}

// Transaction codes observed on the targeted vendor builds. The codes are
// undocumented and differ per manufacturer.
const (
	codeCompilePackage       uint32 = 0x78
	codeCompilePackageXiaomi uint32 = 0x79
	codeRegisterModule       uint32 = 0x76
	codeRegisterModuleXiaomi uint32 = 0x77
)

// VendorCodes overrides the built-in transaction codes for one manufacturer.
type VendorCodes struct {
	CompilePackage uint32 `yaml:"compilePackage"`
	RegisterModule uint32 `yaml:"registerModule"`
}

// DescriptorFor resolves the transaction descriptor for a shape on the given
// manufacturer. Configured overrides win over the built-in table.
func DescriptorFor(shape TransactionShape, manufacturer string, overrides map[string]VendorCodes) TransactionDescriptor {
	profile := PlatformProfile{Manufacturer: manufacturer}

	for vendor, codes := range overrides {
		if !profile.IsManufacturer(vendor) {
			continue
		}
		switch shape {
		case ShapeCompilePackage:
			if codes.CompilePackage != 0 {
				return TransactionDescriptor{Code: codes.CompilePackage, Shape: shape}
			}
		case ShapeRegisterModule:
			if codes.RegisterModule != 0 {
				return TransactionDescriptor{Code: codes.RegisterModule, Shape: shape}
			}
		}
	}

	xiaomi := profile.IsManufacturer(ManufacturerXiaomi)
	switch shape {
	case ShapeRegisterModule:
		if xiaomi {
			return TransactionDescriptor{Code: codeRegisterModuleXiaomi, Shape: shape}
		}
		return TransactionDescriptor{Code: codeRegisterModule, Shape: shape}
	default:
		if xiaomi {
			return TransactionDescriptor{Code: codeCompilePackageXiaomi, Shape: shape}
		}
		return TransactionDescriptor{Code: codeCompilePackage, Shape: shape}
	}
}
