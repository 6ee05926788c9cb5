package binder

import (
	"context"
	"testing"

	"github.com/hotpatchkit/dexopt/internal/core/domain"
	"github.com/hotpatchkit/dexopt/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// recordedCall captures one transaction as seen by the fake transport.
type recordedCall struct {
	code  uint32
	flags uint32
	words []any // decoded payload: descriptor header + arguments
}

// fakeTransactor records transactions and answers from a scripted queue of
// reply builders.
type fakeTransactor struct {
	calls   []recordedCall
	replies []func(reply *Parcel)
	err     error
}

func (f *fakeTransactor) Transact(_ context.Context, code uint32, data, reply *Parcel, flags uint32) error {
	call := recordedCall{code: code, flags: flags}

	data.SetBytes(data.Bytes())
	policy, _ := data.ReadInt32()
	uid, _ := data.ReadInt32()
	descriptor, _ := data.ReadString16()
	call.words = append(call.words, policy, uid, descriptor)
	f.calls = append(f.calls, call)

	if f.err != nil {
		return f.err
	}
	if len(f.replies) > 0 {
		f.replies[0](reply)
		f.replies = f.replies[1:]
	} else {
		reply.WriteInt32(0) // no fault
		reply.WriteInt32(1) // boolean true
		reply.SetBytes(reply.Bytes())
	}
	return nil
}

type fakeResolver struct {
	transactor Transactor
	err        error
	resolved   []string
}

func (f *fakeResolver) Resolve(name string) (Transactor, error) {
	f.resolved = append(f.resolved, name)
	if f.err != nil {
		return nil, f.err
	}
	return f.transactor, nil
}

func newChannel(t *testing.T, transactor Transactor, manufacturer string) (*Channel, *fakeResolver) {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	resolver := &fakeResolver{transactor: transactor}
	return NewChannel(resolver, "package", manufacturer, nil, log), resolver
}

func TestCompilePackage_TransactionShape(t *testing.T) {
	fake := &fakeTransactor{}
	c, resolver := newChannel(t, fake, "Google")

	require.NoError(t, c.CompilePackage(context.Background(), "com.example", "speed", true))

	require.Equal(t, []string{"package"}, resolver.resolved)
	require.Len(t, fake.calls, 1)
	call := fake.calls[0]
	assert.Equal(t, uint32(0x78), call.code)
	assert.Equal(t, uint32(0), call.flags)
	assert.Equal(t, int32(strictModePenaltyGather), call.words[0])
	assert.Equal(t, "android.content.pm.IPackageManager", call.words[2])
}

func TestCompilePackage_XiaomiCode(t *testing.T) {
	fake := &fakeTransactor{}
	c, _ := newChannel(t, fake, "Xiaomi")

	require.NoError(t, c.CompilePackage(context.Background(), "com.example", "speed", false))
	require.Len(t, fake.calls, 1)
	assert.Equal(t, uint32(0x79), fake.calls[0].code)
}

func TestRegisterModule_Code(t *testing.T) {
	fake := &fakeTransactor{replies: []func(*Parcel){func(reply *Parcel) {
		reply.WriteInt32(0)
		reply.SetBytes(reply.Bytes())
	}}}
	c, _ := newChannel(t, fake, "Google")

	require.NoError(t, c.RegisterModule(context.Background(), "com.example", "/p/classes.dex"))
	require.Len(t, fake.calls, 1)
	assert.Equal(t, uint32(0x76), fake.calls[0].code)
}

func TestCompilePackage_WorkSourceClearedDuringCall(t *testing.T) {
	fake := &fakeTransactor{}
	c, _ := newChannel(t, fake, "Google")
	c.workSource.Store(1234)

	require.NoError(t, c.CompilePackage(context.Background(), "com.example", "speed", false))

	// The serialized uid must be the cleared marker, and the previous
	// identity must be restored after the call returns.
	assert.Equal(t, noWorkSource, fake.calls[0].words[1])
	assert.Equal(t, int32(1234), c.workSource.Load())
}

func TestCompilePackage_WorkSourceRestoredOnFault(t *testing.T) {
	fake := &fakeTransactor{err: assert.AnError}
	c, _ := newChannel(t, fake, "Google")
	c.workSource.Store(1234)

	err := c.CompilePackage(context.Background(), "com.example", "speed", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransactionFailure)
	assert.Equal(t, int32(1234), c.workSource.Load())
}

func TestCompilePackage_RemoteFaultSurfaces(t *testing.T) {
	fake := &fakeTransactor{replies: []func(*Parcel){func(reply *Parcel) {
		reply.WriteInt32(-1)
		reply.WriteString16("permission denial")
		reply.SetBytes(reply.Bytes())
	}}}
	c, _ := newChannel(t, fake, "Google")

	err := c.CompilePackage(context.Background(), "com.example", "speed", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRemoteFault)
}

func TestCompilePackage_ResolverFailure(t *testing.T) {
	log := mocks.NewMockLogger(gomock.NewController(t))
	resolver := &fakeResolver{err: assert.AnError}
	c := NewChannel(resolver, "package", "Google", nil, log)

	err := c.CompilePackage(context.Background(), "com.example", "speed", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrServiceUnavailable)
}

func TestCompilePackage_ConfiguredOverrideWins(t *testing.T) {
	fake := &fakeTransactor{}
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	overrides := map[string]domain.VendorCodes{"oneplus": {CompilePackage: 0x7a}}
	c := NewChannel(&fakeResolver{transactor: fake}, "package", "OnePlus", overrides, log)

	require.NoError(t, c.CompilePackage(context.Background(), "com.example", "speed", false))
	require.Len(t, fake.calls, 1)
	assert.Equal(t, uint32(0x7a), fake.calls[0].code)
}
