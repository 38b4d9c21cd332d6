package writer

import (
	"github.com/dato-io/dato/errs"
	"github.com/dato-io/dato/format"
)

// WriteVector writes a referenced homogeneous numeric array: a subtype
// byte, an element-count byte (elemCount, max 255), then elemCount *
// subtype.Size() raw bytes, already encoded by the caller in the writer's
// byte order. The two prefix bytes are accounted for when the Aligned flag
// requires the first element to land on its subtype's natural alignment
// (spec.md §4.3, §6.1).
func (w *Writer[C]) WriteVector(subtype format.Subtype, elemCount int, data []byte) (ValueRef, error) {
	if err := checkVectorSize(subtype, elemCount, len(data)); err != nil {
		return ValueRef{}, err
	}
	if elemCount > 0xFF {
		return ValueRef{}, errs.ErrVectorElemCount
	}

	w.padFixedPrefix(2, w.alignOf(subtype.Align()))

	pos := w.bu.GetSize()
	w.bu.AddByte(byte(subtype))
	w.bu.AddByte(byte(elemCount))
	w.bu.AddMem(data)

	return ValueRef{Type: format.Vector, Pos: uint32(pos)}, nil
}

// WriteVectorArray writes a referenced array of fixed-width numeric
// tuples: a subtype byte, an element-count-per-tuple byte, a ValueLength
// field holding the tuple count, then length*elemCount*subtype.Size() raw
// bytes. The subtype+elemCount prefix and the length field are both
// accounted for when aligning the first element to the subtype's natural
// alignment.
func (w *Writer[C]) WriteVectorArray(subtype format.Subtype, elemCount int, length int, data []byte) (ValueRef, error) {
	if err := checkVectorSize(subtype, elemCount*length, len(data)); err != nil {
		return ValueRef{}, err
	}
	if elemCount > 0xFF {
		return ValueRef{}, errs.ErrVectorElemCount
	}

	enc := w.cfg.ValueLength()
	width, err := enc.Width(uint32(length))
	if err != nil {
		return ValueRef{}, err
	}

	w.padFixedPrefix(2+width, w.alignOf(subtype.Align()))

	pos := w.bu.GetSize()
	w.bu.AddByte(byte(subtype))
	w.bu.AddByte(byte(elemCount))
	if err := enc.Write(w.bu, uint32(length), w.engine); err != nil {
		return ValueRef{}, err
	}
	w.bu.AddMem(data)

	return ValueRef{Type: format.VectorArray, Pos: uint32(pos)}, nil
}

// padFixedPrefix zero-pads so that the builder's position plus
// fixedPrefixLen lands on a multiple of align. It is a no-op when align is
// 1, matching lenenc.WriteAligned's convention for the "Aligned flag
// unset" case.
func (w *Writer[C]) padFixedPrefix(fixedPrefixLen int, align int) {
	if align <= 1 {
		return
	}

	target := w.bu.GetSize() + fixedPrefixLen
	pad := (align - target%align) % align
	w.bu.AddZeroes(pad)
}

func checkVectorSize(subtype format.Subtype, elemCount, byteLen int) error {
	want := elemCount * int(subtype.Size())
	if want != byteLen {
		return errs.ErrVectorElemCount
	}
	return nil
}
