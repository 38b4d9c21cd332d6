package reader_test

import (
	"testing"

	"github.com/dato-io/dato/errs"
	"github.com/dato-io/dato/format"
	"github.com/dato-io/dato/lenenc"
	"github.com/dato-io/dato/reader"
	"github.com/dato-io/dato/section"
	"github.com/dato-io/dato/writer"
	"github.com/stretchr/testify/require"
)

const allFlags = section.FlagAligned | section.FlagSortedKeys | section.FlagRelContValRefs

func newWriter(t *testing.T, flags section.Flags) *writer.Writer[lenenc.Config0] {
	t.Helper()
	w, err := writer.New(lenenc.Config0{}, writer.WithFlags(flags))
	require.NoError(t, err)
	return w
}

func openReader(t *testing.T, data []byte) *reader.Reader[lenenc.Config0] {
	t.Helper()
	r, err := reader.New(data, lenenc.Config0{})
	require.NoError(t, err)
	return r
}

func TestRoundTrip_ScalarRoots(t *testing.T) {
	w := newWriter(t, 0)
	require.NoError(t, w.SetRoot(w.WriteU32(123456789)))

	r := openReader(t, w.GetData())
	root := r.GetRoot()
	require.Equal(t, format.U32, root.GetType())
	v, err := root.AsU32()
	require.NoError(t, err)
	require.Equal(t, uint32(123456789), v)
}

func TestRoundTrip_NullRoot(t *testing.T) {
	w := newWriter(t, 0)
	require.NoError(t, w.SetRoot(w.WriteNull()))

	r := openReader(t, w.GetData())
	require.True(t, r.GetRoot().IsNull())
}

func TestRoundTrip_F64Root(t *testing.T) {
	w := newWriter(t, allFlags)
	require.NoError(t, w.SetRoot(w.WriteF64(0.123456789)))

	r := openReader(t, w.GetData())
	v, err := r.GetRoot().AsF64()
	require.NoError(t, err)
	require.InDelta(t, 0.123456789, v, 1e-12)
}

func TestRoundTrip_ArrayOfScalars(t *testing.T) {
	w := newWriter(t, allFlags)
	elems := []writer.ValueRef{w.WriteU32(1), w.WriteU32(2), w.WriteS64(-7)}
	arr, err := w.WriteArray(elems)
	require.NoError(t, err)
	require.NoError(t, w.SetRoot(arr))

	r := openReader(t, w.GetData())
	a, err := r.GetRoot().AsArray()
	require.NoError(t, err)
	require.Equal(t, 3, a.GetSize())

	v0, err := a.GetValueByIndex(0).AsU32()
	require.NoError(t, err)
	require.Equal(t, uint32(1), v0)

	v2, err := a.GetValueByIndex(2).AsS64()
	require.NoError(t, err)
	require.Equal(t, int64(-7), v2)
}

func TestRoundTrip_StringMapLookup_Sorted(t *testing.T) {
	w := newWriter(t, allFlags)
	var entries []writer.EntryRef
	for _, kv := range []struct {
		k string
		v uint32
	}{{"zed", 1}, {"abc", 2}, {"mno", 3}} {
		key, err := w.WriteStringKey([]byte(kv.k))
		require.NoError(t, err)
		entries = append(entries, writer.EntryRef{Key: key, Value: w.WriteU32(kv.v)})
	}
	m, err := w.WriteStringMap(entries)
	require.NoError(t, err)
	require.NoError(t, w.SetRoot(m))

	r := openReader(t, w.GetData())
	sm, err := r.GetRoot().AsStringMap()
	require.NoError(t, err)
	require.Equal(t, 3, sm.GetSize())

	found := sm.FindValueByKey([]byte("mno"))
	require.True(t, found.IsValid())
	v, err := found.AsU32()
	require.NoError(t, err)
	require.Equal(t, uint32(3), v)

	missing := sm.FindValueByKey([]byte("nope"))
	require.False(t, missing.IsValid())

	// sorted order: abc, mno, zed
	k0, err := sm.GetKeyCStr(0)
	require.NoError(t, err)
	require.Equal(t, "abc", k0)
}

func TestRoundTrip_IntMapLookup_Unsorted(t *testing.T) {
	w := newWriter(t, 0)
	key1 := writer.KeyRef{Pos: 100}
	key2 := writer.KeyRef{Pos: 7}
	entries := []writer.EntryRef{
		{Key: key1, Value: w.WriteU32(1)},
		{Key: key2, Value: w.WriteU32(2)},
	}
	m, err := w.WriteIntMap(entries)
	require.NoError(t, err)
	require.NoError(t, w.SetRoot(m))

	r := openReader(t, w.GetData())
	im, err := r.GetRoot().AsIntMap()
	require.NoError(t, err)

	found := im.FindValueByKey(7)
	require.True(t, found.IsValid())
	v, err := found.AsU32()
	require.NoError(t, err)
	require.Equal(t, uint32(2), v)

	require.False(t, im.FindValueByKey(999).IsValid())
}

func TestRoundTrip_RelContValRefs_StringMap(t *testing.T) {
	w := newWriter(t, section.FlagRelContValRefs)
	key, err := w.WriteStringKey([]byte("k"))
	require.NoError(t, err)
	val := w.WriteS64(-99)
	m, err := w.WriteStringMap([]writer.EntryRef{{Key: key, Value: val}})
	require.NoError(t, err)
	require.NoError(t, w.SetRoot(m))

	r := openReader(t, w.GetData())
	sm, err := r.GetRoot().AsStringMap()
	require.NoError(t, err)
	v, err := sm.GetValueByIndex(0).AsS64()
	require.NoError(t, err)
	require.Equal(t, int64(-99), v)
}

func TestRoundTrip_VectorAndVectorArray(t *testing.T) {
	w := newWriter(t, allFlags)
	vref, err := w.WriteVectorF32([]float32{0.0125, -1.5, 2048.0})
	require.NoError(t, err)
	require.NoError(t, w.SetRoot(vref))

	r := openReader(t, w.GetData())
	v, err := r.GetRoot().AsVector()
	require.NoError(t, err)
	require.Equal(t, format.SubtypeF32, v.Subtype())
	require.Equal(t, 3, v.ElemCount())

	f0, err := v.Float(0)
	require.NoError(t, err)
	require.InDelta(t, 0.0125, f0, 1e-6)

	f2, err := v.Float(2)
	require.NoError(t, err)
	require.InDelta(t, 2048.0, f2, 1e-6)

	require.True(t, r.GetRoot().IsVector(format.SubtypeF32, 3))
	require.False(t, r.GetRoot().IsVector(format.SubtypeF64, 3))
}

func TestRoundTrip_VectorArrayTuples(t *testing.T) {
	w := newWriter(t, allFlags)
	data := make([]byte, 2*2*4)
	for i := range data {
		data[i] = byte(i)
	}
	vref, err := w.WriteVectorArray(format.SubtypeU32, 2, 2, data)
	require.NoError(t, err)
	require.NoError(t, w.SetRoot(vref))

	r := openReader(t, w.GetData())
	va, err := r.GetRoot().AsVectorArray()
	require.NoError(t, err)
	require.Equal(t, 2, va.Len())
	require.Equal(t, 2, va.ElemCount())

	tuple0, err := va.Tuple(0)
	require.NoError(t, err)
	require.Equal(t, data[:8], tuple0)
}

func TestRoundTrip_Strings(t *testing.T) {
	w := newWriter(t, allFlags)
	s8, err := w.WriteString8([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, w.SetRoot(s8))

	r := openReader(t, w.GetData())
	got, err := r.GetRoot().AsString8()
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), got.Bytes())
}

func TestRoundTrip_String16(t *testing.T) {
	w := newWriter(t, allFlags)
	ref, err := w.WriteString16([]uint16{'h', 'i'})
	require.NoError(t, err)
	require.NoError(t, w.SetRoot(ref))

	r := openReader(t, w.GetData())
	got, err := r.GetRoot().AsString16()
	require.NoError(t, err)
	require.Equal(t, 2, got.Len())
	u0, err := got.At(0)
	require.NoError(t, err)
	require.Equal(t, uint16('h'), u0)
}

func TestRoundTrip_ByteArray(t *testing.T) {
	w := newWriter(t, allFlags)
	ref, err := w.WriteByteArray([]byte{1, 2, 3, 4}, 4)
	require.NoError(t, err)
	require.NoError(t, w.SetRoot(ref))

	r := openReader(t, w.GetData())
	got, err := r.GetRoot().AsByteArray()
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4}, got.Bytes())
}

func TestRoundTrip_WrongConfigRejected(t *testing.T) {
	w, err := writer.New(lenenc.Config1{})
	require.NoError(t, err)
	require.NoError(t, w.SetRoot(w.WriteU32(1)))

	_, err = reader.New(w.GetData(), lenenc.Config0{})
	require.ErrorIs(t, err, errs.ErrInvalidConfigID)
}

func TestRoundTrip_AdaptiveReader(t *testing.T) {
	w, err := writer.New(lenenc.Config3{})
	require.NoError(t, err)
	require.NoError(t, w.SetRoot(w.WriteU32(42)))

	r, err := reader.NewAdaptive(w.GetData())
	require.NoError(t, err)
	v, err := r.GetRoot().AsU32()
	require.NoError(t, err)
	require.Equal(t, uint32(42), v)
}

func TestRoundTrip_TruncatedBufferIsMalformed(t *testing.T) {
	w := newWriter(t, allFlags)
	key, err := w.WriteStringKey([]byte("abc"))
	require.NoError(t, err)
	m, err := w.WriteStringMap([]writer.EntryRef{{Key: key, Value: w.WriteU32(1234)}})
	require.NoError(t, err)
	require.NoError(t, w.SetRoot(m))

	data := w.GetData()
	truncated := data[:len(data)-4]

	r, err := reader.New(truncated, lenenc.Config0{})
	require.NoError(t, err)

	// The header is intact, but cutting 4 bytes removes the type byte and
	// part of the value table, so the map's table bounds check fails on
	// first access.
	_, err = r.GetRoot().AsStringMap()
	require.ErrorIs(t, err, errs.ErrMalformedBuffer)
}

func TestRoundTrip_TypeMismatch(t *testing.T) {
	w := newWriter(t, 0)
	require.NoError(t, w.SetRoot(w.WriteU32(1)))

	r := openReader(t, w.GetData())
	_, err := r.GetRoot().AsArray()
	require.ErrorIs(t, err, errs.ErrTypeMismatch)
}

func TestRoundTrip_CastToNumberWidensAcrossKinds(t *testing.T) {
	w := newWriter(t, 0)
	require.NoError(t, w.SetRoot(w.WriteF32(2.5)))

	r := openReader(t, w.GetData())
	v, err := reader.CastToNumber[float64](r.GetRoot())
	require.NoError(t, err)
	require.InDelta(t, 2.5, v, 1e-9)
}
