package binder

import (
	"context"
	"os"
	"sync"
	"sync/atomic"

	"github.com/hotpatchkit/dexopt/internal/core/domain"
	"github.com/hotpatchkit/dexopt/internal/core/ports"
	"go.trai.ch/zerr"
)

// packageManagerDescriptor is the remote interface every trigger transaction
// addresses.
const packageManagerDescriptor = "android.content.pm.IPackageManager"

var _ ports.PrivilegedChannel = (*Channel)(nil)

// Channel implements ports.PrivilegedChannel. Each method performs exactly
// one transaction: parcels are obtained from the pool and recycled on every
// exit path, and the calling work source is cleared for the duration of the
// call and restored in a deferred cleanup.
type Channel struct {
	resolver     ServiceResolver
	service      string
	manufacturer string
	overrides    map[string]domain.VendorCodes
	logger       ports.Logger
	workSource   atomic.Int32

	resolveOnce sync.Once
	transactor  Transactor
	resolveErr  error
}

// NewChannel creates a channel that resolves the named service lazily on
// first use.
func NewChannel(resolver ServiceResolver, service, manufacturer string, overrides map[string]domain.VendorCodes, log ports.Logger) *Channel {
	c := &Channel{
		resolver:     resolver,
		service:      service,
		manufacturer: manufacturer,
		overrides:    overrides,
		logger:       log,
	}
	c.workSource.Store(int32(os.Getuid()))
	return c
}

// CompilePackage requests background compilation of the package.
func (c *Channel) CompilePackage(ctx context.Context, packageName, compileFilter string, force bool) error {
	restore := c.clearWorkSource()
	defer restore()

	data := Obtain()
	reply := Obtain()
	defer data.Recycle()
	defer reply.Recycle()

	data.WriteInterfaceToken(packageManagerDescriptor, c.workSource.Load())
	data.WriteString16(packageName)
	data.WriteString16(compileFilter)
	data.WriteInt32(boolWord(force))

	descriptor := domain.DescriptorFor(domain.ShapeCompilePackage, c.manufacturer, c.overrides)
	if err := c.call(ctx, descriptor.Code, data, reply); err != nil {
		return err
	}

	// The remote answers a boolean word. A false answer is not a transport
	// failure; the service merely declined to schedule the package.
	result, err := reply.ReadInt32()
	if err != nil {
		return zerr.Wrap(err, "malformed compile reply")
	}
	if result == 0 {
		c.logger.Warn("package service declined compilation of " + packageName)
	}
	return nil
}

// RegisterModule registers the module path with the package service.
func (c *Channel) RegisterModule(ctx context.Context, packageName, modulePath string) error {
	restore := c.clearWorkSource()
	defer restore()

	data := Obtain()
	reply := Obtain()
	defer data.Recycle()
	defer reply.Recycle()

	data.WriteInterfaceToken(packageManagerDescriptor, c.workSource.Load())
	data.WriteString16(packageName)
	data.WriteString16(modulePath)
	data.WriteInt32(0)
	data.WriteInt32(0)

	descriptor := domain.DescriptorFor(domain.ShapeRegisterModule, c.manufacturer, c.overrides)
	return c.call(ctx, descriptor.Code, data, reply)
}

// call resolves the service once and issues the transaction with no special
// flags, surfacing any remote fault from the reply header.
func (c *Channel) call(ctx context.Context, code uint32, data, reply *Parcel) error {
	c.resolveOnce.Do(func() {
		c.transactor, c.resolveErr = c.resolver.Resolve(c.service)
	})
	if c.resolveErr != nil {
		return zerr.With(zerr.Wrap(domain.ErrServiceUnavailable, c.resolveErr.Error()), "service", c.service)
	}

	if err := c.transactor.Transact(ctx, code, data, reply, 0); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrTransactionFailure, err.Error()), "code", code)
	}
	return reply.ReadException()
}

// clearWorkSource drops the calling work source for the duration of a call.
// The returned func restores the previous identity.
func (c *Channel) clearWorkSource() func() {
	previous := c.workSource.Swap(noWorkSource)
	return func() { c.workSource.Store(previous) }
}

func boolWord(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
