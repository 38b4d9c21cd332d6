// Package lenenc implements the four length encodings spec.md §4.2 defines
// for an unsigned 32-bit count (U8, U16, U32, U8X32), and the per-field-class
// Config presets (0..4) that pick one encoding per length field.
package lenenc

import (
	"github.com/dato-io/dato/endian"
	"github.com/dato-io/dato/errs"
	"github.com/dato-io/dato/internal/pool"
)

// Encoding reads and writes an unsigned 32-bit count using one of the four
// wire representations. Implementations are stateless and safe for
// concurrent use.
type Encoding interface {
	// Read decodes a count starting at buf[pos:] and returns the value and
	// the number of bytes consumed.
	Read(buf []byte, pos int, engine endian.EndianEngine) (value uint32, consumed int, err error)

	// Write appends v to bu in this encoding. Returns errs.ErrValueOutOfRange
	// if v cannot be represented (U8 above 0xFF, U16 above 0xFFFF).
	Write(bu *pool.Builder, v uint32, engine endian.EndianEngine) error

	// Width returns the number of bytes Write(v) would append, without
	// writing anything. Used by the alignment helpers in align.go, which
	// must know a length field's width before emitting any padding.
	Width(v uint32) (int, error)
}

type u8Encoding struct{}
type u16Encoding struct{}
type u32Encoding struct{}
type u8x32Encoding struct{}

// U8, U16, U32, and U8X32 are the four stateless encoding singletons named
// in spec.md §4.2.
var (
	U8    Encoding = u8Encoding{}
	U16   Encoding = u16Encoding{}
	U32   Encoding = u32Encoding{}
	U8X32 Encoding = u8x32Encoding{}
)

func (u8Encoding) Read(buf []byte, pos int, _ endian.EndianEngine) (uint32, int, error) {
	if pos+1 > len(buf) {
		return 0, 0, errs.ErrBufferTooShort
	}

	return uint32(buf[pos]), 1, nil
}

func (u8Encoding) Write(bu *pool.Builder, v uint32, _ endian.EndianEngine) error {
	if v > 0xFF {
		return errs.ErrValueOutOfRange
	}
	bu.AddByte(byte(v))

	return nil
}

func (u8Encoding) Width(v uint32) (int, error) {
	if v > 0xFF {
		return 0, errs.ErrValueOutOfRange
	}

	return 1, nil
}

func (u16Encoding) Read(buf []byte, pos int, engine endian.EndianEngine) (uint32, int, error) {
	if pos+2 > len(buf) {
		return 0, 0, errs.ErrBufferTooShort
	}

	return uint32(engine.Uint16(buf[pos : pos+2])), 2, nil
}

func (u16Encoding) Write(bu *pool.Builder, v uint32, engine endian.EndianEngine) error {
	if v > 0xFFFF {
		return errs.ErrValueOutOfRange
	}

	var b [2]byte
	engine.PutUint16(b[:], uint16(v))
	bu.AddMem(b[:])

	return nil
}

func (u16Encoding) Width(v uint32) (int, error) {
	if v > 0xFFFF {
		return 0, errs.ErrValueOutOfRange
	}

	return 2, nil
}

func (u32Encoding) Read(buf []byte, pos int, engine endian.EndianEngine) (uint32, int, error) {
	if pos+4 > len(buf) {
		return 0, 0, errs.ErrBufferTooShort
	}

	return engine.Uint32(buf[pos : pos+4]), 4, nil
}

func (u32Encoding) Write(bu *pool.Builder, v uint32, engine endian.EndianEngine) error {
	var b [4]byte
	engine.PutUint32(b[:], v)
	bu.AddMem(b[:])

	return nil
}

func (u32Encoding) Width(uint32) (int, error) {
	return 4, nil
}

// u8x32SentinelByte marks "the true value follows as four little-endian
// bytes" in the U8X32 encoding (spec.md §4.2).
const u8x32SentinelByte = 0xFF

func (u8x32Encoding) Read(buf []byte, pos int, engine endian.EndianEngine) (uint32, int, error) {
	if pos+1 > len(buf) {
		return 0, 0, errs.ErrBufferTooShort
	}

	b := buf[pos]
	if b != u8x32SentinelByte {
		return uint32(b), 1, nil
	}

	if pos+5 > len(buf) {
		return 0, 0, errs.ErrBufferTooShort
	}

	return engine.Uint32(buf[pos+1 : pos+5]), 5, nil
}

func (u8x32Encoding) Write(bu *pool.Builder, v uint32, engine endian.EndianEngine) error {
	if v < u8x32SentinelByte {
		bu.AddByte(byte(v))

		return nil
	}

	bu.AddByte(u8x32SentinelByte)
	var b [4]byte
	engine.PutUint32(b[:], v)
	bu.AddMem(b[:])

	return nil
}

func (u8x32Encoding) Width(v uint32) (int, error) {
	if v < u8x32SentinelByte {
		return 1, nil
	}

	return 5, nil
}
