//go:build linux

package binder

import (
	"context"
	"encoding/binary"
	"sync"
	"unsafe"

	"github.com/hotpatchkit/dexopt/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

const (
	binderDevice = "/dev/binder"

	// mappedSize is the receive arena shared with the driver. The driver
	// caps per-process mappings at 1MB minus two guard pages.
	mappedSize = 1<<20 - 2*4096

	// contextManagerHandle is the fixed handle of the service manager.
	contextManagerHandle = 0

	serviceManagerDescriptor = "android.os.IServiceManager"

	// checkServiceTransaction is FIRST_CALL_TRANSACTION + 1.
	checkServiceTransaction = 2

	// binderTypeHandle tags a flat object carrying a remote handle.
	binderTypeHandle = 0x73682a85
)

// Driver protocol words for the 64-bit ABI.
const (
	ioctlWriteRead = 0xc0306201 // _IOWR('b', 1, binder_write_read)
	ioctlVersion   = 0xc0046209 // _IOWR('b', 9, s32)

	cmdTransaction = 0x40406300 // _IOW('c', 0, binder_transaction_data)
	cmdFreeBuffer  = 0x40086303 // _IOW('c', 3, ptr)

	retError               = 0x80047200 // _IOR('r', 0, s32)
	retTransactionComplete = 0x00007206
	retDeadReply           = 0x00007210
	retFailedReply         = 0x00007211
	retNoop                = 0x0000720c
	retReply               = 0x80407203 // _IOR('r', 3, binder_transaction_data)
)

// protocolVersion is the driver ABI this client speaks.
const protocolVersion = 8

type binderWriteRead struct {
	writeSize     uint64
	writeConsumed uint64
	writeBuffer   uint64
	readSize      uint64
	readConsumed  uint64
	readBuffer    uint64
}

type binderTransactionData struct {
	target      uint64
	cookie      uint64
	code        uint32
	flags       uint32
	senderPID   int32
	senderEUID  uint32
	dataSize    uint64
	offsetsSize uint64
	buffer      uint64
	offsets     uint64
}

type flatBinderObject struct {
	objectType uint32
	flags      uint32
	handle     uint64
	cookie     uint64
}

// Device is a client session against the kernel transport. One transaction
// is in flight at a time; the session mutex serializes callers.
type Device struct {
	mu     sync.Mutex
	fd     int
	mapped []byte
}

// OpenDevice opens the transport device and maps the receive arena.
func OpenDevice() (*Device, error) {
	fd, err := unix.Open(binderDevice, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open transport device"), "device", binderDevice)
	}

	var version int32
	if err := ioctlPtr(fd, ioctlVersion, unsafe.Pointer(&version)); err != nil {
		_ = unix.Close(fd)
		return nil, zerr.Wrap(err, "failed to read transport protocol version")
	}
	if version != protocolVersion {
		_ = unix.Close(fd)
		return nil, zerr.With(zerr.New("unsupported transport protocol version"), "version", version)
	}

	mapped, err := unix.Mmap(fd, 0, mappedSize, unix.PROT_READ, unix.MAP_PRIVATE|unix.MAP_NORESERVE)
	if err != nil {
		_ = unix.Close(fd)
		return nil, zerr.Wrap(err, "failed to map transport receive arena")
	}

	return &Device{fd: fd, mapped: mapped}, nil
}

// Close releases the session.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.mapped != nil {
		_ = unix.Munmap(d.mapped)
		d.mapped = nil
	}
	if d.fd >= 0 {
		err := unix.Close(d.fd)
		d.fd = -1
		return err
	}
	return nil
}

var _ ServiceResolver = (*Device)(nil)

// Resolve looks the service up at the context manager and returns a
// transactor bound to its handle.
func (d *Device) Resolve(name string) (Transactor, error) {
	data := Obtain()
	reply := Obtain()
	defer data.Recycle()
	defer reply.Recycle()

	data.WriteInterfaceToken(serviceManagerDescriptor, noWorkSource)
	data.WriteString16(name)

	if err := d.transact(contextManagerHandle, checkServiceTransaction, data, reply, 0); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "service lookup failed"), "service", name)
	}
	if err := reply.ReadException(); err != nil {
		return nil, err
	}

	raw := reply.Bytes()
	if len(raw) < int(unsafe.Sizeof(flatBinderObject{}))+4 {
		return nil, zerr.With(zerr.Wrap(domain.ErrServiceUnavailable, "service not registered"), "service", name)
	}
	obj := (*flatBinderObject)(unsafe.Pointer(&raw[4]))
	if obj.objectType != binderTypeHandle {
		return nil, zerr.With(zerr.Wrap(domain.ErrServiceUnavailable, "lookup returned no remote handle"), "service", name)
	}

	return &handleTransactor{device: d, handle: uint32(obj.handle)}, nil
}

// handleTransactor routes transactions to one resolved service handle.
type handleTransactor struct {
	device *Device
	handle uint32
}

var _ Transactor = (*handleTransactor)(nil)

func (t *handleTransactor) Transact(ctx context.Context, code uint32, data, reply *Parcel, flags uint32) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return t.device.transact(t.handle, code, data, reply, flags)
}

// transact performs one synchronous round trip: write the transaction
// command, then drive the read loop until the reply, a failure word, or a
// driver error arrives. The reply payload lives in the mapped arena and is
// copied out before the buffer is returned to the driver.
func (d *Device) transact(handle, code uint32, data, reply *Parcel, flags uint32) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.fd < 0 {
		return zerr.Wrap(domain.ErrServiceUnavailable, "transport session closed")
	}

	payload := data.Bytes()
	td := binderTransactionData{
		target:   uint64(handle),
		code:     code,
		flags:    flags,
		dataSize: uint64(len(payload)),
	}
	if len(payload) > 0 {
		td.buffer = uint64(uintptr(unsafe.Pointer(&payload[0])))
	}

	writeBuf := make([]byte, 0, 4+unsafe.Sizeof(td))
	writeBuf = binary.LittleEndian.AppendUint32(writeBuf, cmdTransaction)
	writeBuf = append(writeBuf, unsafe.Slice((*byte)(unsafe.Pointer(&td)), unsafe.Sizeof(td))...)

	readBuf := make([]byte, 32*1024)
	bwr := binderWriteRead{
		writeSize:   uint64(len(writeBuf)),
		writeBuffer: uint64(uintptr(unsafe.Pointer(&writeBuf[0]))),
	}

	for {
		bwr.readSize = uint64(len(readBuf))
		bwr.readConsumed = 0
		bwr.readBuffer = uint64(uintptr(unsafe.Pointer(&readBuf[0])))

		if err := ioctlPtr(d.fd, ioctlWriteRead, unsafe.Pointer(&bwr)); err != nil {
			return zerr.Wrap(err, "transport ioctl failed")
		}
		bwr.writeSize = 0

		done, err := d.consumeReturns(readBuf[:bwr.readConsumed], reply)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// consumeReturns walks the driver's return stream. It reports true once the
// reply has been copied into the parcel.
func (d *Device) consumeReturns(stream []byte, reply *Parcel) (bool, error) {
	for len(stream) >= 4 {
		cmd := binary.LittleEndian.Uint32(stream)
		stream = stream[4:]
		// low byte of the size field in the command encoding
		payloadSize := int(cmd>>16) & 0x3fff

		switch cmd {
		case retNoop, retTransactionComplete:
			// keep reading until the reply arrives
		case retDeadReply:
			return false, zerr.Wrap(domain.ErrTransactionFailure, "remote process died")
		case retFailedReply:
			return false, zerr.Wrap(domain.ErrTransactionFailure, "transaction rejected by driver")
		case retError:
			errno := int32(binary.LittleEndian.Uint32(stream))
			return false, zerr.With(zerr.Wrap(domain.ErrTransactionFailure, "driver reported error"), "errno", errno)
		case retReply:
			if len(stream) < int(unsafe.Sizeof(binderTransactionData{})) {
				return false, zerr.Wrap(domain.ErrTransactionFailure, "truncated driver return stream")
			}
			td := (*binderTransactionData)(unsafe.Pointer(&stream[0]))
			if td.dataSize > 0 {
				payload := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(td.buffer))), td.dataSize)
				reply.SetBytes(payload)
			} else {
				reply.SetBytes(nil)
			}
			d.freeBuffer(td.buffer)
			return true, nil
		}

		if payloadSize > len(stream) {
			return false, zerr.Wrap(domain.ErrTransactionFailure, "truncated driver return stream")
		}
		stream = stream[payloadSize:]
	}
	return false, nil
}

// freeBuffer returns a reply buffer in the mapped arena to the driver.
func (d *Device) freeBuffer(buffer uint64) {
	writeBuf := make([]byte, 12)
	binary.LittleEndian.PutUint32(writeBuf, cmdFreeBuffer)
	binary.LittleEndian.PutUint64(writeBuf[4:], buffer)

	bwr := binderWriteRead{
		writeSize:   uint64(len(writeBuf)),
		writeBuffer: uint64(uintptr(unsafe.Pointer(&writeBuf[0]))),
	}
	_ = ioctlPtr(d.fd, ioctlWriteRead, unsafe.Pointer(&bwr))
}

func ioctlPtr(fd int, req uint, arg unsafe.Pointer) error {
	for {
		_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(req), uintptr(arg))
		if errno == 0 {
			return nil
		}
		if errno == unix.EINTR {
			continue
		}
		return errno
	}
}
