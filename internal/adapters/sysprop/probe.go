// Package sysprop probes the device platform through system properties.
package sysprop

import (
	"context"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"github.com/hotpatchkit/dexopt/internal/core/domain"
	"github.com/hotpatchkit/dexopt/internal/core/ports"
	"go.trai.ch/zerr"
)

// System property keys read by the probe.
const (
	propAPILevel     = "ro.build.version.sdk"
	propPreviewAPI   = "ro.build.version.preview_sdk"
	propManufacturer = "ro.product.manufacturer"
	propMapleEnabled = "ro.maple.enable"
)

// getpropBinary is the property reader available on every device shell.
const getpropBinary = "getprop"

// arkRuntimeLibs are the runtime libraries whose presence marks an active
// alternate execution engine.
var arkRuntimeLibs = []string{
	"/system/lib64/libmapleart.so",
	"/system/lib/libmapleart.so",
}

var _ ports.PlatformProbe = (*Probe)(nil)

// Probe implements ports.PlatformProbe by shelling out to getprop. A pinned
// profile from the configuration bypasses the device entirely, which is how
// host builds and tests run. Probing happens once; the result is cached.
type Probe struct {
	getprop string
	arkLibs []string
	pinned  *domain.PlatformProfile
	logger  ports.Logger

	once       sync.Once
	profile    domain.PlatformProfile
	profileErr error
}

// NewProbe creates a probe that reads the device configuration. A non-nil
// pinned profile is returned verbatim instead of probing.
func NewProbe(pinned *domain.PlatformProfile, log ports.Logger) *Probe {
	return &Probe{
		getprop: getpropBinary,
		arkLibs: arkRuntimeLibs,
		pinned:  pinned,
		logger:  log,
	}
}

// Profile returns the platform profile of the device.
func (p *Probe) Profile(ctx context.Context) (domain.PlatformProfile, error) {
	if p.pinned != nil {
		return *p.pinned, nil
	}
	p.once.Do(func() {
		p.profile, p.profileErr = p.read(ctx)
	})
	return p.profile, p.profileErr
}

func (p *Probe) read(ctx context.Context) (domain.PlatformProfile, error) {
	sdk, err := p.property(ctx, propAPILevel)
	if err != nil {
		return domain.PlatformProfile{}, err
	}
	apiLevel, err := strconv.Atoi(sdk)
	if err != nil {
		return domain.PlatformProfile{}, zerr.With(zerr.Wrap(err, "failed to parse platform API level"), "value", sdk)
	}

	preview, err := p.property(ctx, propPreviewAPI)
	if err != nil {
		return domain.PlatformProfile{}, err
	}
	previewAPI, _ := strconv.Atoi(preview)

	manufacturer, err := p.property(ctx, propManufacturer)
	if err != nil {
		return domain.PlatformProfile{}, err
	}

	return domain.PlatformProfile{
		APILevel:     apiLevel,
		PreviewAPI:   previewAPI > 0,
		Manufacturer: manufacturer,
	}, nil
}

// AlternateEngineActive reports whether an alternate execution engine owns
// the process's compiled code.
func (p *Probe) AlternateEngineActive(ctx context.Context) bool {
	if value, err := p.property(ctx, propMapleEnabled); err == nil && value == "1" {
		return true
	}
	for _, lib := range p.arkLibs {
		if _, err := os.Stat(lib); err == nil {
			p.logger.Info("alternate engine runtime present: " + lib)
			return true
		}
	}
	return false
}

func (p *Probe) property(ctx context.Context, key string) (string, error) {
	out, err := exec.CommandContext(ctx, p.getprop, key).Output()
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read system property"), "key", key)
	}
	return strings.TrimSpace(string(out)), nil
}
