package reader

import (
	"github.com/dato-io/dato/format"
	"github.com/dato-io/dato/lenenc"
)

// ArrayAccessor is a read-only view over an Array value: a length-encoded
// element count followed by a value table and a parallel type-tag table
// (spec.md §4.4), the same layout as a map minus the key column.
type ArrayAccessor[C lenenc.Config] struct {
	r       *Reader[C]
	n       int
	bodyPos uint32
}

func newArrayAccessor[C lenenc.Config](r *Reader[C], pos uint32) (ArrayAccessor[C], error) {
	if err := r.checkBounds(int(pos), 0); err != nil {
		return ArrayAccessor[C]{}, err
	}

	n, consumed, err := r.cfg.ArrayLength().Read(r.buf, int(pos), r.engine)
	if err != nil {
		return ArrayAccessor[C]{}, err
	}

	bodyPos := pos + uint32(consumed)
	tableBytes := 4*uint64(n) + uint64(n)
	if err := r.checkBounds(int(bodyPos), int(tableBytes)); err != nil {
		return ArrayAccessor[C]{}, err
	}

	return ArrayAccessor[C]{r: r, n: int(n), bodyPos: bodyPos}, nil
}

// GetSize returns the number of elements.
func (a ArrayAccessor[C]) GetSize() int { return a.n }

func (a ArrayAccessor[C]) valueTypeAt(i int) format.Type {
	return format.Type(a.r.buf[a.bodyPos+4*uint32(a.n)+uint32(i)])
}

// GetValueByIndex returns the element at index i.
func (a ArrayAccessor[C]) GetValueByIndex(i int) DynamicAccessor[C] {
	raw := a.r.engine.Uint32(a.r.buf[a.bodyPos+4*uint32(i):])
	typ := a.valueTypeAt(i)

	pos := raw
	if a.r.flags.RelContValRefs() && format.IsReferenced(typ) {
		pos = a.bodyPos - raw
	}

	return DynamicAccessor[C]{r: a.r, typ: typ, pos: pos}
}
