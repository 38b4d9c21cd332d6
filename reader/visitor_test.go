package reader_test

import (
	"testing"

	"github.com/dato-io/dato/format"
	"github.com/dato-io/dato/lenenc"
	"github.com/dato-io/dato/reader"
	"github.com/dato-io/dato/writer"
	"github.com/stretchr/testify/require"
)

// recordingVisitor appends a terse event name per call, enough to assert
// ordering and pairing without asserting every payload.
type recordingVisitor struct {
	events []string
}

func (v *recordingVisitor) BeginMap(size int)          { v.events = append(v.events, "BeginMap") }
func (v *recordingVisitor) EndMap()                    { v.events = append(v.events, "EndMap") }
func (v *recordingVisitor) BeginStringKey(key []byte)  { v.events = append(v.events, "BeginStringKey:"+string(key)) }
func (v *recordingVisitor) EndStringKey()              { v.events = append(v.events, "EndStringKey") }
func (v *recordingVisitor) BeginIntKey(key uint32)      { v.events = append(v.events, "BeginIntKey") }
func (v *recordingVisitor) EndIntKey()                  { v.events = append(v.events, "EndIntKey") }
func (v *recordingVisitor) BeginArray(size int)         { v.events = append(v.events, "BeginArray") }
func (v *recordingVisitor) EndArray()                   { v.events = append(v.events, "EndArray") }
func (v *recordingVisitor) BeginArrayIndex(i int)       { v.events = append(v.events, "BeginArrayIndex") }
func (v *recordingVisitor) EndArrayIndex()              { v.events = append(v.events, "EndArrayIndex") }
func (v *recordingVisitor) OnValueNull()                { v.events = append(v.events, "Null") }
func (v *recordingVisitor) OnValueBool(bool)            { v.events = append(v.events, "Bool") }
func (v *recordingVisitor) OnValueS32(int32)            { v.events = append(v.events, "S32") }
func (v *recordingVisitor) OnValueU32(uint32)           { v.events = append(v.events, "U32") }
func (v *recordingVisitor) OnValueF32(float32)          { v.events = append(v.events, "F32") }
func (v *recordingVisitor) OnValueS64(int64)            { v.events = append(v.events, "S64") }
func (v *recordingVisitor) OnValueU64(uint64)           { v.events = append(v.events, "U64") }
func (v *recordingVisitor) OnValueF64(float64)          { v.events = append(v.events, "F64") }
func (v *recordingVisitor) OnValueString8([]byte)       { v.events = append(v.events, "String8") }
func (v *recordingVisitor) OnValueString16([]uint16)    { v.events = append(v.events, "String16") }
func (v *recordingVisitor) OnValueString32([]uint32)    { v.events = append(v.events, "String32") }
func (v *recordingVisitor) OnValueByteArray([]byte)     { v.events = append(v.events, "ByteArray") }
func (v *recordingVisitor) OnValueVector(reader.VectorAccessor) {
	v.events = append(v.events, "Vector")
}
func (v *recordingVisitor) OnValueVectorArray(reader.VectorArrayAccessor) {
	v.events = append(v.events, "VectorArray")
}
func (v *recordingVisitor) OnUnknownValue(format.Type) { v.events = append(v.events, "Unknown") }

var _ reader.Visitor = (*recordingVisitor)(nil)

func TestIterate_NestedArrayInMap(t *testing.T) {
	w := newWriter(t, allFlags)

	inner, err := w.WriteArray([]writer.ValueRef{w.WriteU32(1), w.WriteU32(2)})
	require.NoError(t, err)

	key, err := w.WriteStringKey([]byte("nums"))
	require.NoError(t, err)
	m, err := w.WriteStringMap([]writer.EntryRef{{Key: key, Value: inner}})
	require.NoError(t, err)
	require.NoError(t, w.SetRoot(m))

	r := openReader(t, w.GetData())
	rv := &recordingVisitor{}
	require.NoError(t, r.GetRoot().Iterate(rv))

	require.Equal(t, []string{
		"BeginMap",
		"BeginStringKey:nums",
		"BeginArray",
		"BeginArrayIndex", "U32", "EndArrayIndex",
		"BeginArrayIndex", "U32", "EndArrayIndex",
		"EndArray",
		"EndStringKey",
		"EndMap",
	}, rv.events)
}
