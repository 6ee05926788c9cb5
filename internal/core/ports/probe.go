package ports

import (
	"context"

	"github.com/hotpatchkit/dexopt/internal/core/domain"
)

// PlatformProbe reports read-only facts about the executing device.
//
//go:generate go run go.uber.org/mock/mockgen -source=probe.go -destination=mocks/mock_probe.go -package=mocks
type PlatformProbe interface {
	// Profile returns the device's platform profile. Implementations may
	// cache: the profile cannot change while the process runs.
	Profile(ctx context.Context) (domain.PlatformProfile, error)

	// AlternateEngineActive reports whether an alternate execution engine is
	// running in place of the standard runtime.
	AlternateEngineActive(ctx context.Context) bool
}
