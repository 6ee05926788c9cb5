package binder

import (
	"context"
	"sync"

	"github.com/grindlemire/graft"
	"github.com/hotpatchkit/dexopt/internal/adapters/config"
	"github.com/hotpatchkit/dexopt/internal/adapters/logger"
	"github.com/hotpatchkit/dexopt/internal/adapters/sysprop"
	"github.com/hotpatchkit/dexopt/internal/core/domain"
	"github.com/hotpatchkit/dexopt/internal/core/ports"
)

// NodeID is the unique identifier for the privileged channel Graft node.
const NodeID graft.ID = "adapter.binder"

func init() {
	graft.Register(graft.Node[ports.PrivilegedChannel]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID, logger.NodeID, sysprop.NodeID},
		Run: func(ctx context.Context) (ports.PrivilegedChannel, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			probe, err := graft.Dep[ports.PlatformProbe](ctx)
			if err != nil {
				return nil, err
			}
			profile, err := probe.Profile(ctx)
			if err != nil {
				return nil, err
			}
			return NewChannel(&lazyDevice{}, cfg.ServiceName, profile.Manufacturer, cfg.VendorCodes, log), nil
		},
	})
}

// lazyDevice defers opening the transport device until the first privileged
// call, so runs that never escalate work on hosts without the device.
type lazyDevice struct {
	once   sync.Once
	device *Device
	err    error
}

var _ ServiceResolver = (*lazyDevice)(nil)

func (l *lazyDevice) Resolve(name string) (Transactor, error) {
	l.once.Do(func() {
		l.device, l.err = OpenDevice()
	})
	if l.err != nil {
		return nil, l.err
	}
	return l.device.Resolve(name)
}
