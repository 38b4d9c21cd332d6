package section

import (
	"bytes"

	"github.com/dato-io/dato/endian"
	"github.com/dato-io/dato/errs"
	"github.com/dato-io/dato/format"
	"github.com/dato-io/dato/internal/pool"
)

// DefaultPrefix is the conventional four-byte magic prefix (spec.md §3.3).
var DefaultPrefix = []byte("DATO")

// Header is the parsed form of a buffer's fixed header section
// (spec.md §3.3, §6.1):
//
//	prefix bytes | config-id (1B) | flags (1B) | root type (1B) | padding (0..3B) | root offset (u32 LE)
type Header struct {
	ConfigID    uint8
	Flags       Flags
	RootType    format.Type
	RootOffset  uint32
	RootSlotPos int // absolute byte offset of the root-offset u32, for SetRoot
}

// RootSlotPos computes the absolute byte offset of the root-offset slot:
// right after prefix+configID+flags+rootType, padded up to a multiple of 4
// when aligned is true (spec.md §4.5 step 5).
func RootSlotPos(prefixLen int, aligned bool) int {
	pos := prefixLen + 3
	if aligned {
		pos = format.Align(pos, 4)
	}

	return pos
}

// Size returns the total header size in bytes (through the root-offset
// slot) for the given prefix length and alignment.
func Size(prefixLen int, aligned bool) int {
	return RootSlotPos(prefixLen, aligned) + 4
}

// WriteHeader appends a complete header to bu: the prefix, config-id byte,
// flags byte, root type byte, alignment padding, and a zeroed 4-byte root
// slot. It returns the root slot's absolute position, to be patched later
// by SetRoot.
func WriteHeader(bu *pool.Builder, prefix []byte, configID uint8, flags Flags, rootType format.Type) int {
	bu.AddMem(prefix)
	bu.AddByte(configID)
	bu.AddByte(byte(flags))
	bu.AddByte(byte(rootType))

	if flags.Aligned() {
		bu.AlignTo(4)
	}

	rootSlotPos := bu.GetSize()
	bu.AddZeroes(4)

	return rootSlotPos
}

// ParseHeader validates and decodes the header at the start of data.
//
// ignoreFlags masks out flag bits the caller doesn't want validated or
// honored (spec.md §6.3's ignoreFlags reader option); bits outside
// KnownFlagsMask that remain set after masking are rejected.
func ParseHeader(data []byte, prefix []byte, ignoreFlags Flags) (Header, error) {
	prefixLen := len(prefix)
	if prefixLen+3 > len(data) {
		return Header{}, errs.ErrBufferTooShort
	}

	if !bytes.Equal(data[:prefixLen], prefix) {
		return Header{}, errs.ErrInvalidPrefix
	}

	configID := data[prefixLen]
	flags := Flags(data[prefixLen+1]) &^ ignoreFlags
	if flags&^KnownFlagsMask != 0 {
		return Header{}, errs.ErrInvalidHeaderFlags
	}

	rootType := format.Type(data[prefixLen+2])
	if !format.IsValid(rootType) {
		return Header{}, errs.ErrUnknownValueType
	}

	slotPos := RootSlotPos(prefixLen, flags.Aligned())
	if slotPos+4 > len(data) {
		return Header{}, errs.ErrBufferTooShort
	}

	engine := endian.GetLittleEndianEngine()
	rootOffset := engine.Uint32(data[slotPos : slotPos+4])

	return Header{
		ConfigID:    configID,
		Flags:       flags,
		RootType:    rootType,
		RootOffset:  rootOffset,
		RootSlotPos: slotPos,
	}, nil
}
