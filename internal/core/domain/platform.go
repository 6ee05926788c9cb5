package domain

import "strings"

// PlatformProfile captures read-only facts about the executing device. It is
// supplied once per batch and never mutated.
type PlatformProfile struct {
	// APILevel is the platform API level (Build.VERSION.SDK_INT equivalent).
	APILevel int
	// PreviewAPI is set when the device runs a preview build of the next
	// platform release.
	PreviewAPI bool
	// Manufacturer is the raw device manufacturer string.
	Manufacturer string
}

// API levels that gate strategy selection and compiler arguments.
const (
	APINougat    = 24
	APINougatMR1 = 25
	APIOreo      = 26
	APIQ         = 29
)

// Manufacturers with known platform quirks handled by the optimizer.
const (
	ManufacturerHuawei = "huawei"
	ManufacturerXiaomi = "xiaomi"
)

// IsManufacturer reports whether the profile's manufacturer matches name,
// ignoring case the way platform manufacturer strings must be compared.
func (p PlatformProfile) IsManufacturer(name string) bool {
	return strings.EqualFold(p.Manufacturer, name)
}
