package reader

import (
	"github.com/dato-io/dato/endian"
	"github.com/dato-io/dato/errs"
	"github.com/dato-io/dato/lenenc"
)

// String8Accessor is a read-only view over a String8 value: an 8-bit byte
// string with no alignment padding (spec.md §4.3).
type String8Accessor struct {
	data []byte
}

func newString8Accessor[C lenenc.Config](r *Reader[C], pos uint32) (String8Accessor, error) {
	n, consumed, err := r.cfg.ValueLength().Read(r.buf, int(pos), r.engine)
	if err != nil {
		return String8Accessor{}, err
	}

	start := pos + uint32(consumed)
	if err := r.checkBounds(int(start), int(n)); err != nil {
		return String8Accessor{}, err
	}

	return String8Accessor{data: r.buf[start : start+n]}, nil
}

// Len returns the number of bytes.
func (a String8Accessor) Len() int { return len(a.data) }

// Bytes returns the raw byte string, without the trailing NUL the writer
// appends.
func (a String8Accessor) Bytes() []byte { return a.data }

// String16Accessor is a read-only view over a String16 value: an array of
// 16-bit code units, body-aligned to 2 bytes (spec.md §4.3).
type String16Accessor struct {
	data   []byte
	engine endian.EndianEngine
	n      int
}

func newString16Accessor[C lenenc.Config](r *Reader[C], pos uint32) (String16Accessor, error) {
	n, consumed, err := r.cfg.ValueLength().Read(r.buf, int(pos), r.engine)
	if err != nil {
		return String16Accessor{}, err
	}

	start := pos + uint32(consumed)
	byteLen := 2 * n
	if err := r.checkBounds(int(start), int(byteLen)); err != nil {
		return String16Accessor{}, err
	}

	return String16Accessor{data: r.buf[start : start+byteLen], engine: r.engine, n: int(n)}, nil
}

// Len returns the number of code units.
func (a String16Accessor) Len() int { return a.n }

// At returns the code unit at index i.
func (a String16Accessor) At(i int) (uint16, error) {
	if i < 0 || i >= a.n {
		return 0, errs.ErrMalformedBuffer
	}

	return a.engine.Uint16(a.data[2*i:]), nil
}

// String32Accessor is a read-only view over a String32 value: an array of
// 32-bit code units, body-aligned to 4 bytes (spec.md §4.3).
type String32Accessor struct {
	data   []byte
	engine endian.EndianEngine
	n      int
}

func newString32Accessor[C lenenc.Config](r *Reader[C], pos uint32) (String32Accessor, error) {
	n, consumed, err := r.cfg.ValueLength().Read(r.buf, int(pos), r.engine)
	if err != nil {
		return String32Accessor{}, err
	}

	start := pos + uint32(consumed)
	byteLen := 4 * n
	if err := r.checkBounds(int(start), int(byteLen)); err != nil {
		return String32Accessor{}, err
	}

	return String32Accessor{data: r.buf[start : start+byteLen], engine: r.engine, n: int(n)}, nil
}

// Len returns the number of code units.
func (a String32Accessor) Len() int { return a.n }

// At returns the code unit at index i.
func (a String32Accessor) At(i int) (uint32, error) {
	if i < 0 || i >= a.n {
		return 0, errs.ErrMalformedBuffer
	}

	return a.engine.Uint32(a.data[4*i:]), nil
}

// ByteArrayAccessor is a read-only view over a ByteArray value: raw bytes
// under a caller-chosen alignment (spec.md §4.3).
type ByteArrayAccessor struct {
	data []byte
}

func newByteArrayAccessor[C lenenc.Config](r *Reader[C], pos uint32) (ByteArrayAccessor, error) {
	n, consumed, err := r.cfg.ValueLength().Read(r.buf, int(pos), r.engine)
	if err != nil {
		return ByteArrayAccessor{}, err
	}

	start := pos + uint32(consumed)
	if err := r.checkBounds(int(start), int(n)); err != nil {
		return ByteArrayAccessor{}, err
	}

	return ByteArrayAccessor{data: r.buf[start : start+n]}, nil
}

// Len returns the number of bytes.
func (a ByteArrayAccessor) Len() int { return len(a.data) }

// Bytes returns the raw bytes.
func (a ByteArrayAccessor) Bytes() []byte { return a.data }
