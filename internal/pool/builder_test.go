package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilder_AddByteAndMem(t *testing.T) {
	bu := NewBuilder(4)
	bu.AddByte(0x01)
	bu.AddMem([]byte{0x02, 0x03})

	require.Equal(t, []byte{0x01, 0x02, 0x03}, bu.Bytes())
	require.Equal(t, 3, bu.GetSize())
}

func TestBuilder_AddZeroes(t *testing.T) {
	bu := NewBuilder(0)
	bu.AddByte(0xFF)
	bu.AddZeroes(3)

	require.Equal(t, []byte{0xFF, 0, 0, 0}, bu.Bytes())
}

func TestBuilder_AddZeroesUntil(t *testing.T) {
	bu := NewBuilder(0)
	bu.AddByte(0xFF)
	bu.AddZeroesUntil(4)
	require.Equal(t, 4, bu.GetSize())

	// No-op when already past pos.
	bu.AddZeroesUntil(2)
	require.Equal(t, 4, bu.GetSize())
}

func TestBuilder_AlignTo(t *testing.T) {
	bu := NewBuilder(0)
	bu.AddByte(0x01)
	size := bu.AlignTo(8)

	require.Equal(t, 8, size)
	require.Equal(t, 8, bu.GetSize())
	require.Equal(t, byte(0x01), bu.Bytes()[0])
	for _, b := range bu.Bytes()[1:] {
		require.Equal(t, byte(0), b)
	}
}

func TestBuilder_GrowsPastDefaultChunk(t *testing.T) {
	bu := NewBuilder(0)
	bu.AddZeroes(DefaultBuilderSize*4 + 1)
	require.Equal(t, DefaultBuilderSize*4+1, bu.GetSize())

	// One more growth should use the 25%-of-capacity strategy, not panic.
	bu.AddByte(0x7F)
	require.Equal(t, DefaultBuilderSize*4+2, bu.GetSize())
}

func TestBuilder_OverwriteUint32LE(t *testing.T) {
	bu := NewBuilder(0)
	bu.AddZeroes(4)
	bu.OverwriteUint32LE(0, 0x01020304)

	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, bu.Bytes())
}

func TestBuilder_ResetRetainsCapacity(t *testing.T) {
	bu := NewBuilder(16)
	bu.AddMem([]byte{1, 2, 3, 4})
	capBefore := cap(bu.Bytes())

	bu.Reset()

	require.Equal(t, 0, bu.GetSize())
	require.Equal(t, capBefore, cap(bu.Bytes()))
}

func TestBuilderPool_GetPut(t *testing.T) {
	bu := GetBuilder()
	require.NotNil(t, bu)
	require.Equal(t, 0, bu.GetSize())

	bu.AddByte(1)
	PutBuilder(bu)

	bu2 := GetBuilder()
	require.Equal(t, 0, bu2.GetSize())
}
