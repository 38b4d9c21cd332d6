package writer

import (
	"math"

	"github.com/dato-io/dato/format"
)

// WriteVectorF32 is a convenience wrapper over WriteVector for a slice of
// float32, encoding each element in the writer's byte order.
func (w *Writer[C]) WriteVectorF32(values []float32) (ValueRef, error) {
	data := make([]byte, len(values)*4)
	for i, v := range values {
		w.engine.PutUint32(data[i*4:], math.Float32bits(v))
	}
	return w.WriteVector(format.SubtypeF32, len(values), data)
}

// WriteVectorF64 is a convenience wrapper over WriteVector for a slice of
// float64, encoding each element in the writer's byte order.
func (w *Writer[C]) WriteVectorF64(values []float64) (ValueRef, error) {
	data := make([]byte, len(values)*8)
	for i, v := range values {
		w.engine.PutUint64(data[i*8:], math.Float64bits(v))
	}
	return w.WriteVector(format.SubtypeF64, len(values), data)
}

// WriteVectorS32 is a convenience wrapper over WriteVector for a slice of
// int32, encoding each element in the writer's byte order.
func (w *Writer[C]) WriteVectorS32(values []int32) (ValueRef, error) {
	data := make([]byte, len(values)*4)
	for i, v := range values {
		w.engine.PutUint32(data[i*4:], uint32(v))
	}
	return w.WriteVector(format.SubtypeS32, len(values), data)
}

// WriteVectorU32 is a convenience wrapper over WriteVector for a slice of
// uint32, encoding each element in the writer's byte order.
func (w *Writer[C]) WriteVectorU32(values []uint32) (ValueRef, error) {
	data := make([]byte, len(values)*4)
	for i, v := range values {
		w.engine.PutUint32(data[i*4:], v)
	}
	return w.WriteVector(format.SubtypeU32, len(values), data)
}
