package section

import (
	"testing"

	"github.com/dato-io/dato/errs"
	"github.com/dato-io/dato/format"
	"github.com/dato-io/dato/internal/pool"
	"github.com/stretchr/testify/require"
)

func TestWriteHeader_Unaligned(t *testing.T) {
	bu := pool.NewBuilder(0)
	slotPos := WriteHeader(bu, DefaultPrefix, 0, 0, format.Null)

	require.Equal(t, 7, slotPos) // "DATO"(4) + configID + flags + rootType
	require.Equal(t, 11, bu.GetSize())
}

func TestWriteHeader_AlignedPadsRootSlotTo4(t *testing.T) {
	bu := pool.NewBuilder(0)
	slotPos := WriteHeader(bu, DefaultPrefix, 0, FlagAligned, format.Null)

	require.Equal(t, 8, slotPos)
	require.Equal(t, 0, slotPos%4)
}

func TestParseHeader_RoundTrip(t *testing.T) {
	bu := pool.NewBuilder(0)
	flags := FlagAligned | FlagSortedKeys
	slotPos := WriteHeader(bu, DefaultPrefix, 2, flags, format.U32)
	bu.OverwriteUint32LE(slotPos, 123456789)

	h, err := ParseHeader(bu.Bytes(), DefaultPrefix, 0)
	require.NoError(t, err)
	require.Equal(t, uint8(2), h.ConfigID)
	require.Equal(t, flags, h.Flags)
	require.Equal(t, format.U32, h.RootType)
	require.Equal(t, uint32(123456789), h.RootOffset)
	require.Equal(t, slotPos, h.RootSlotPos)
}

func TestParseHeader_TooShort(t *testing.T) {
	_, err := ParseHeader([]byte{'D', 'A'}, DefaultPrefix, 0)
	require.ErrorIs(t, err, errs.ErrBufferTooShort)
}

func TestParseHeader_BadPrefix(t *testing.T) {
	bu := pool.NewBuilder(0)
	WriteHeader(bu, []byte("NOPE"), 0, 0, format.Null)

	_, err := ParseHeader(bu.Bytes(), DefaultPrefix, 0)
	require.ErrorIs(t, err, errs.ErrInvalidPrefix)
}

func TestParseHeader_UnknownFlagBitsRejected(t *testing.T) {
	bu := pool.NewBuilder(0)
	WriteHeader(bu, DefaultPrefix, 0, 0x80, format.Null)

	_, err := ParseHeader(bu.Bytes(), DefaultPrefix, 0)
	require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
}

func TestParseHeader_IgnoreFlagsMasksBitsOut(t *testing.T) {
	bu := pool.NewBuilder(0)
	WriteHeader(bu, DefaultPrefix, 0, 0x80, format.Null)

	h, err := ParseHeader(bu.Bytes(), DefaultPrefix, 0x80)
	require.NoError(t, err)
	require.Equal(t, Flags(0), h.Flags)
}

func TestParseHeader_InvalidRootTypeRejected(t *testing.T) {
	bu := pool.NewBuilder(0)
	bu.AddMem(DefaultPrefix)
	bu.AddByte(0)
	bu.AddByte(0)
	bu.AddByte(200) // not a valid type tag
	bu.AddZeroes(4)

	_, err := ParseHeader(bu.Bytes(), DefaultPrefix, 0)
	require.ErrorIs(t, err, errs.ErrUnknownValueType)
}

func TestFlags_Accessors(t *testing.T) {
	f := Flags(0)
	require.False(t, f.Aligned())

	f = f.WithAligned(true).WithSortedKeys(true)
	require.True(t, f.Aligned())
	require.True(t, f.SortedKeys())
	require.False(t, f.RelContValRefs())

	f = f.WithAligned(false)
	require.False(t, f.Aligned())
}
