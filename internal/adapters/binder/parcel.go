// Package binder implements the privileged-service transport: parcel
// serialization, the device transactor, and the channel issuing trigger
// transactions.
package binder

import (
	"encoding/binary"
	"sync"
	"unicode/utf16"

	"github.com/hotpatchkit/dexopt/internal/core/domain"
	"go.trai.ch/zerr"
)

// strictModePenaltyGather is OR-ed into the strict-mode policy word of every
// interface token so the remote gathers violations instead of dying on them.
const strictModePenaltyGather = 0x40 << 16

// noWorkSource marks the calling work source as cleared.
const noWorkSource int32 = -1

var parcelPool = sync.Pool{
	New: func() any {
		return &Parcel{buf: make([]byte, 0, 256)}
	},
}

// Parcel is a serialization buffer in the platform's container format:
// little-endian int32 words, UTF-16 strings with a length prefix and 4-byte
// padding. Parcels are pooled; every Obtain must be paired with Recycle on
// all exit paths.
type Parcel struct {
	buf []byte
	pos int
}

// Obtain returns an empty parcel from the pool.
func Obtain() *Parcel {
	p := parcelPool.Get().(*Parcel) //nolint:forcetypeassert // pool is homogeneous
	p.buf = p.buf[:0]
	p.pos = 0
	return p
}

// Recycle resets the parcel and returns it to the pool. The parcel must not
// be used afterwards.
func (p *Parcel) Recycle() {
	p.buf = p.buf[:0]
	p.pos = 0
	parcelPool.Put(p)
}

// Bytes returns the serialized payload.
func (p *Parcel) Bytes() []byte {
	return p.buf
}

// SetBytes loads a received payload for reading and resets the read cursor.
func (p *Parcel) SetBytes(data []byte) {
	p.buf = append(p.buf[:0], data...)
	p.pos = 0
}

// WriteInt32 appends one little-endian word.
func (p *Parcel) WriteInt32(v int32) {
	p.buf = binary.LittleEndian.AppendUint32(p.buf, uint32(v))
}

// WriteString16 appends a UTF-16 string: a word holding the code-unit count,
// the code units, a terminating zero unit, padded out to a word boundary.
func (p *Parcel) WriteString16(s string) {
	units := utf16.Encode([]rune(s))
	p.WriteInt32(int32(len(units)))
	for _, u := range units {
		p.buf = binary.LittleEndian.AppendUint16(p.buf, u)
	}
	p.buf = binary.LittleEndian.AppendUint16(p.buf, 0)
	for len(p.buf)%4 != 0 {
		p.buf = append(p.buf, 0)
	}
}

// WriteInterfaceToken appends the RPC header preceding every transaction:
// the strict-mode policy word, the calling work-source UID, and the remote
// interface descriptor.
func (p *Parcel) WriteInterfaceToken(descriptor string, workSourceUID int32) {
	p.WriteInt32(strictModePenaltyGather)
	p.WriteInt32(workSourceUID)
	p.WriteString16(descriptor)
}

// ReadInt32 consumes one word.
func (p *Parcel) ReadInt32() (int32, error) {
	if p.pos+4 > len(p.buf) {
		return 0, zerr.New("parcel underrun")
	}
	v := int32(binary.LittleEndian.Uint32(p.buf[p.pos:]))
	p.pos += 4
	return v, nil
}

// ReadString16 consumes a UTF-16 string written by WriteString16.
func (p *Parcel) ReadString16() (string, error) {
	n, err := p.ReadInt32()
	if err != nil {
		return "", err
	}
	if n < 0 {
		return "", nil
	}
	// code units + terminator, padded to a word boundary
	byteLen := ((int(n)+1)*2 + 3) &^ 3
	if p.pos+byteLen > len(p.buf) {
		return "", zerr.New("parcel underrun")
	}
	units := make([]uint16, n)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(p.buf[p.pos+2*i:])
	}
	p.pos += byteLen
	return string(utf16.Decode(units)), nil
}

// ReadException consumes the reply's fault header. A zero code means the
// remote completed; any other code carries a message and surfaces as
// domain.ErrRemoteFault.
func (p *Parcel) ReadException() error {
	code, err := p.ReadInt32()
	if err != nil {
		return err
	}
	if code == 0 {
		return nil
	}
	message, _ := p.ReadString16()
	return zerr.With(
		zerr.Wrap(domain.ErrRemoteFault, "remote reported fault: "+message),
		"fault_code", code,
	)
}
