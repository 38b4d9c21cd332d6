package writer

import (
	"math"

	"github.com/dato-io/dato/format"
)

// WriteS64 writes a referenced signed 64-bit value, 8-byte aligned when the
// Aligned flag is set.
func (w *Writer[C]) WriteS64(v int64) ValueRef {
	return ValueRef{Type: format.S64, Pos: uint32(w.writeUint64Body(uint64(v)))}
}

// WriteU64 writes a referenced unsigned 64-bit value, 8-byte aligned when
// the Aligned flag is set.
func (w *Writer[C]) WriteU64(v uint64) ValueRef {
	return ValueRef{Type: format.U64, Pos: uint32(w.writeUint64Body(v))}
}

// WriteF64 writes a referenced 64-bit float value, 8-byte aligned when the
// Aligned flag is set.
func (w *Writer[C]) WriteF64(v float64) ValueRef {
	return ValueRef{Type: format.F64, Pos: uint32(w.writeUint64Body(math.Float64bits(v)))}
}

func (w *Writer[C]) writeUint64Body(bits uint64) int {
	w.align(8)
	pos := w.bu.GetSize()

	var buf [8]byte
	w.engine.PutUint64(buf[:], bits)
	w.bu.AddMem(buf[:])

	return pos
}
