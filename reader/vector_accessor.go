package reader

import (
	"math"

	"github.com/dato-io/dato/endian"
	"github.com/dato-io/dato/errs"
	"github.com/dato-io/dato/format"
	"github.com/dato-io/dato/lenenc"
)

// VectorAccessor is a read-only view over a Vector value: a subtype byte,
// an element-count byte, then the raw element bytes, in the writer's byte
// order (spec.md §4.3).
type VectorAccessor struct {
	subtype format.Subtype
	elemN   int
	data    []byte
	engine  endian.EndianEngine
}

func newVectorAccessor[C lenenc.Config](r *Reader[C], pos uint32) (VectorAccessor, error) {
	if err := r.checkBounds(int(pos), 2); err != nil {
		return VectorAccessor{}, err
	}

	subtype := format.Subtype(r.buf[pos])
	if !subtype.IsValid() {
		return VectorAccessor{}, errs.ErrMalformedBuffer
	}
	elemN := int(r.buf[pos+1])

	start := pos + 2
	byteLen := elemN * subtype.Size()
	if err := r.checkBounds(int(start), byteLen); err != nil {
		return VectorAccessor{}, err
	}

	return VectorAccessor{
		subtype: subtype,
		elemN:   elemN,
		data:    r.buf[start : int(start)+byteLen],
		engine:  r.engine,
	}, nil
}

// Subtype returns the element kind.
func (v VectorAccessor) Subtype() format.Subtype { return v.subtype }

// ElemCount returns the number of elements.
func (v VectorAccessor) ElemCount() int { return v.elemN }

// Bytes returns the raw element bytes, in this reader's byte order.
func (v VectorAccessor) Bytes() []byte { return v.data }

// Int returns element i widened to int64, for any signed or unsigned
// integer subtype.
func (v VectorAccessor) Int(i int) (int64, error) {
	u, err := v.Uint(i)
	if err != nil {
		return 0, err
	}

	switch v.subtype {
	case format.SubtypeS8:
		return int64(int8(u)), nil
	case format.SubtypeS16:
		return int64(int16(u)), nil
	case format.SubtypeS32:
		return int64(int32(u)), nil
	default:
		return int64(u), nil
	}
}

// Uint returns element i widened to uint64, for any signed or unsigned
// integer subtype.
func (v VectorAccessor) Uint(i int) (uint64, error) {
	if i < 0 || i >= v.elemN {
		return 0, errs.ErrMalformedBuffer
	}

	off := i * v.subtype.Size()
	switch v.subtype {
	case format.SubtypeS8, format.SubtypeU8:
		return uint64(v.data[off]), nil
	case format.SubtypeS16, format.SubtypeU16:
		return uint64(v.engine.Uint16(v.data[off:])), nil
	case format.SubtypeS32, format.SubtypeU32:
		return uint64(v.engine.Uint32(v.data[off:])), nil
	case format.SubtypeS64, format.SubtypeU64:
		return v.engine.Uint64(v.data[off:]), nil
	default:
		return 0, errs.ErrTypeMismatch
	}
}

// Float returns element i widened to float64, for the F32/F64 subtypes.
func (v VectorAccessor) Float(i int) (float64, error) {
	if i < 0 || i >= v.elemN {
		return 0, errs.ErrMalformedBuffer
	}

	off := i * v.subtype.Size()
	switch v.subtype {
	case format.SubtypeF32:
		return float64(math.Float32frombits(v.engine.Uint32(v.data[off:]))), nil
	case format.SubtypeF64:
		return math.Float64frombits(v.engine.Uint64(v.data[off:])), nil
	default:
		return 0, errs.ErrTypeMismatch
	}
}

// VectorArrayAccessor is a read-only view over a VectorArray value: a
// subtype byte, a per-tuple element-count byte, a length field, then
// length*elemCount raw elements laid out tuple-major (spec.md §4.3).
type VectorArrayAccessor struct {
	subtype format.Subtype
	elemN   int
	length  int
	data    []byte
	engine  endian.EndianEngine
}

func newVectorArrayAccessor[C lenenc.Config](r *Reader[C], pos uint32) (VectorArrayAccessor, error) {
	if err := r.checkBounds(int(pos), 2); err != nil {
		return VectorArrayAccessor{}, err
	}

	subtype := format.Subtype(r.buf[pos])
	if !subtype.IsValid() {
		return VectorArrayAccessor{}, errs.ErrMalformedBuffer
	}
	elemN := int(r.buf[pos+1])

	lenPos := pos + 2
	length, consumed, err := r.cfg.ValueLength().Read(r.buf, int(lenPos), r.engine)
	if err != nil {
		return VectorArrayAccessor{}, err
	}

	start := lenPos + uint32(consumed)
	byteLen := int(length) * elemN * subtype.Size()
	if err := r.checkBounds(int(start), byteLen); err != nil {
		return VectorArrayAccessor{}, err
	}

	return VectorArrayAccessor{
		subtype: subtype,
		elemN:   elemN,
		length:  int(length),
		data:    r.buf[start : int(start)+byteLen],
		engine:  r.engine,
	}, nil
}

// Subtype returns the element kind.
func (v VectorArrayAccessor) Subtype() format.Subtype { return v.subtype }

// ElemCount returns the per-tuple element count.
func (v VectorArrayAccessor) ElemCount() int { return v.elemN }

// Len returns the number of tuples.
func (v VectorArrayAccessor) Len() int { return v.length }

// Tuple returns the raw bytes of tuple i, without copying.
func (v VectorArrayAccessor) Tuple(i int) ([]byte, error) {
	if i < 0 || i >= v.length {
		return nil, errs.ErrMalformedBuffer
	}

	width := v.elemN * v.subtype.Size()
	off := i * width

	return v.data[off : off+width], nil
}

// Uint returns tuple t's element i widened to uint64.
func (v VectorArrayAccessor) Uint(t, i int) (uint64, error) {
	tuple, err := v.Tuple(t)
	if err != nil {
		return 0, err
	}

	elem := VectorAccessor{subtype: v.subtype, elemN: v.elemN, data: tuple, engine: v.engine}
	return elem.Uint(i)
}

// Int returns tuple t's element i widened to int64.
func (v VectorArrayAccessor) Int(t, i int) (int64, error) {
	tuple, err := v.Tuple(t)
	if err != nil {
		return 0, err
	}

	elem := VectorAccessor{subtype: v.subtype, elemN: v.elemN, data: tuple, engine: v.engine}
	return elem.Int(i)
}

// Float returns tuple t's element i widened to float64.
func (v VectorArrayAccessor) Float(t, i int) (float64, error) {
	tuple, err := v.Tuple(t)
	if err != nil {
		return 0, err
	}

	elem := VectorAccessor{subtype: v.subtype, elemN: v.elemN, data: tuple, engine: v.engine}
	return elem.Float(i)
}
