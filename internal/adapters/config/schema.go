package config

import "github.com/hotpatchkit/dexopt/internal/core/domain"

// File represents the structure of the dexopt.yaml configuration file.
type File struct {
	Package     string                        `yaml:"package"`
	Compiler    string                        `yaml:"compiler"`
	Loader      string                        `yaml:"loader"`
	Service     string                        `yaml:"service"`
	Filter      string                        `yaml:"filter"`
	RecordFile  string                        `yaml:"recordFile"`
	VendorCodes map[string]domain.VendorCodes `yaml:"vendorCodes"`
	Platform    *PlatformDTO                  `yaml:"platform"`
}

// PlatformDTO pins the platform profile instead of probing the device.
type PlatformDTO struct {
	APILevel     int    `yaml:"apiLevel"`
	Preview      bool   `yaml:"preview"`
	Manufacturer string `yaml:"manufacturer"`
}
