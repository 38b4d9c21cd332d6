package writer_test

import (
	"testing"

	"github.com/dato-io/dato/format"
	"github.com/dato-io/dato/section"
	"github.com/stretchr/testify/require"
)

func TestWriteString8_NoAlignmentEvenWhenAligned(t *testing.T) {
	w := newWriter(t, section.FlagAligned)
	_ = w.WriteU32(1) // unrelated inline write, shouldn't shift anything

	ref, err := w.WriteString8([]byte("x"))
	require.NoError(t, err)
	require.NoError(t, w.SetRoot(ref))

	data := w.GetData()
	require.Equal(t, uint32(1), leU32(data[ref.Pos:ref.Pos+4]))
	require.Equal(t, byte('x'), data[ref.Pos+4])
}

func TestWriteString16_BodyAlignedTo2(t *testing.T) {
	w := newWriter(t, section.FlagAligned)

	ref, err := w.WriteString16([]uint16{'h', 'i'})
	require.NoError(t, err)
	require.NoError(t, w.SetRoot(ref))

	data := w.GetData()
	width := 4 // U32 ValueLength under Config0
	bodyStart := int(ref.Pos) + width
	require.Equal(t, 0, bodyStart%2)
	require.Equal(t, byte('h'), data[bodyStart])
	require.Equal(t, byte(0), data[bodyStart+1])
	// trailing zero code unit
	require.Equal(t, []byte{0, 0}, data[bodyStart+4:bodyStart+6])
}

func TestWriteString32_BodyAlignedTo4(t *testing.T) {
	w := newWriter(t, section.FlagAligned)

	ref, err := w.WriteString32([]uint32{65})
	require.NoError(t, err)
	require.NoError(t, w.SetRoot(ref))

	data := w.GetData()
	width := 4
	bodyStart := int(ref.Pos) + width
	require.Equal(t, 0, bodyStart%4)
	require.Equal(t, uint32(65), leU32(data[bodyStart:bodyStart+4]))
	require.Equal(t, format.String32, ref.Type)
}

func TestWriteByteArray_CallerChosenAlignment(t *testing.T) {
	w := newWriter(t, section.FlagAligned)

	ref, err := w.WriteByteArray([]byte{1, 2, 3, 4, 5, 6, 7, 8}, 8)
	require.NoError(t, err)
	require.NoError(t, w.SetRoot(ref))

	data := w.GetData()
	width := 4
	bodyStart := int(ref.Pos) + width
	require.Equal(t, 0, bodyStart%8)
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, data[bodyStart:bodyStart+8])
}
