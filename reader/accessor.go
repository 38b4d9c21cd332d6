package reader

import (
	"math"

	"github.com/dato-io/dato/errs"
	"github.com/dato-io/dato/format"
	"github.com/dato-io/dato/lenenc"
)

// DynamicAccessor is a tagged, by-value reference into a buffer owned by a
// Reader: a type tag plus either an inline payload or a body offset. It
// never copies; every coercion below re-derives its view from the
// underlying buffer on demand (spec.md §4.5).
type DynamicAccessor[C lenenc.Config] struct {
	r   *Reader[C]
	typ format.Type
	pos uint32
}

// GetType returns the stored value's type tag.
func (a DynamicAccessor[C]) GetType() format.Type { return a.typ }

// IsNull reports whether the value is format.Null.
func (a DynamicAccessor[C]) IsNull() bool { return a.typ == format.Null }

// IsValid reports whether a refers to an actual value rather than the
// "not found" sentinel returned by a missed map lookup.
func (a DynamicAccessor[C]) IsValid() bool { return a.r != nil }

// AsBool coerces a Bool value. pos holds 0 or 1 in the inline cell.
func (a DynamicAccessor[C]) AsBool() (bool, error) {
	if a.typ != format.Bool {
		return false, errs.ErrTypeMismatch
	}

	return a.pos != 0, nil
}

// AsS32 coerces an S32 value from its inline cell.
func (a DynamicAccessor[C]) AsS32() (int32, error) {
	if a.typ != format.S32 {
		return 0, errs.ErrTypeMismatch
	}

	return int32(a.pos), nil
}

// AsU32 coerces a U32 value from its inline cell.
func (a DynamicAccessor[C]) AsU32() (uint32, error) {
	if a.typ != format.U32 {
		return 0, errs.ErrTypeMismatch
	}

	return a.pos, nil
}

// AsF32 coerces an F32 value from its inline cell.
func (a DynamicAccessor[C]) AsF32() (float32, error) {
	if a.typ != format.F32 {
		return 0, errs.ErrTypeMismatch
	}

	return math.Float32frombits(a.pos), nil
}

// AsS64 coerces a referenced S64 value.
func (a DynamicAccessor[C]) AsS64() (int64, error) {
	if a.typ != format.S64 {
		return 0, errs.ErrTypeMismatch
	}

	v, err := a.r.readUint64(a.pos)
	if err != nil {
		return 0, err
	}

	return int64(v), nil
}

// AsU64 coerces a referenced U64 value.
func (a DynamicAccessor[C]) AsU64() (uint64, error) {
	if a.typ != format.U64 {
		return 0, errs.ErrTypeMismatch
	}

	return a.r.readUint64(a.pos)
}

// AsF64 coerces a referenced F64 value.
func (a DynamicAccessor[C]) AsF64() (float64, error) {
	if a.typ != format.F64 {
		return 0, errs.ErrTypeMismatch
	}

	v, err := a.r.readUint64(a.pos)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(v), nil
}

func (r *Reader[C]) readUint64(pos uint32) (uint64, error) {
	if err := r.checkBounds(int(pos), 8); err != nil {
		return 0, err
	}

	return r.engine.Uint64(r.buf[pos : pos+8]), nil
}

// Number is the set of Go numeric types CastToNumber can widen into.
type Number interface {
	~int32 | ~int64 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// CastToNumber best-effort converts any numeric DynamicAccessor (Bool,
// S32, U32, F32, S64, U64, F64) into T, widening as needed. It returns
// errs.ErrTypeMismatch for any non-numeric value.
func CastToNumber[T Number, C lenenc.Config](a DynamicAccessor[C]) (T, error) {
	switch a.typ {
	case format.Bool:
		v, err := a.AsBool()
		if err != nil {
			return 0, err
		}
		if v {
			return 1, nil
		}
		return 0, nil
	case format.S32:
		v, err := a.AsS32()
		return T(v), err
	case format.U32:
		v, err := a.AsU32()
		return T(v), err
	case format.F32:
		v, err := a.AsF32()
		return T(v), err
	case format.S64:
		v, err := a.AsS64()
		return T(v), err
	case format.U64:
		v, err := a.AsU64()
		return T(v), err
	case format.F64:
		v, err := a.AsF64()
		return T(v), err
	default:
		return 0, errs.ErrTypeMismatch
	}
}

// AsArray coerces the value into an ArrayAccessor.
func (a DynamicAccessor[C]) AsArray() (ArrayAccessor[C], error) {
	if a.typ != format.Array {
		return ArrayAccessor[C]{}, errs.ErrTypeMismatch
	}

	return newArrayAccessor(a.r, a.pos)
}

// AsStringMap coerces the value into a StringMapAccessor.
func (a DynamicAccessor[C]) AsStringMap() (StringMapAccessor[C], error) {
	if a.typ != format.StringMap {
		return StringMapAccessor[C]{}, errs.ErrTypeMismatch
	}

	core, err := newMapCore(a.r, a.pos)
	return StringMapAccessor[C]{core}, err
}

// AsIntMap coerces the value into an IntMapAccessor.
func (a DynamicAccessor[C]) AsIntMap() (IntMapAccessor[C], error) {
	if a.typ != format.IntMap {
		return IntMapAccessor[C]{}, errs.ErrTypeMismatch
	}

	core, err := newMapCore(a.r, a.pos)
	return IntMapAccessor[C]{core}, err
}

// AsString8 coerces the value into a String8Accessor.
func (a DynamicAccessor[C]) AsString8() (String8Accessor, error) {
	if a.typ != format.String8 {
		return String8Accessor{}, errs.ErrTypeMismatch
	}

	return newString8Accessor(a.r, a.pos)
}

// AsString16 coerces the value into a String16Accessor.
func (a DynamicAccessor[C]) AsString16() (String16Accessor, error) {
	if a.typ != format.String16 {
		return String16Accessor{}, errs.ErrTypeMismatch
	}

	return newString16Accessor(a.r, a.pos)
}

// AsString32 coerces the value into a String32Accessor.
func (a DynamicAccessor[C]) AsString32() (String32Accessor, error) {
	if a.typ != format.String32 {
		return String32Accessor{}, errs.ErrTypeMismatch
	}

	return newString32Accessor(a.r, a.pos)
}

// AsByteArray coerces the value into a ByteArrayAccessor.
func (a DynamicAccessor[C]) AsByteArray() (ByteArrayAccessor, error) {
	if a.typ != format.ByteArray {
		return ByteArrayAccessor{}, errs.ErrTypeMismatch
	}

	return newByteArrayAccessor(a.r, a.pos)
}

// IsVector reports whether the value is a Vector of the given subtype and
// element count, without allocating an accessor.
func (a DynamicAccessor[C]) IsVector(subtype format.Subtype, elemCount int) bool {
	if a.typ != format.Vector {
		return false
	}

	v, err := newVectorAccessor(a.r, a.pos)
	if err != nil {
		return false
	}

	return v.Subtype() == subtype && v.ElemCount() == elemCount
}

// AsVector coerces the value into a VectorAccessor.
func (a DynamicAccessor[C]) AsVector() (VectorAccessor, error) {
	if a.typ != format.Vector {
		return VectorAccessor{}, errs.ErrTypeMismatch
	}

	return newVectorAccessor(a.r, a.pos)
}

// IsVectorArray reports whether the value is a VectorArray of the given
// subtype and per-tuple element count.
func (a DynamicAccessor[C]) IsVectorArray(subtype format.Subtype, elemCount int) bool {
	if a.typ != format.VectorArray {
		return false
	}

	v, err := newVectorArrayAccessor(a.r, a.pos)
	if err != nil {
		return false
	}

	return v.Subtype() == subtype && v.ElemCount() == elemCount
}

// AsVectorArray coerces the value into a VectorArrayAccessor.
func (a DynamicAccessor[C]) AsVectorArray() (VectorArrayAccessor, error) {
	if a.typ != format.VectorArray {
		return VectorArrayAccessor{}, errs.ErrTypeMismatch
	}

	return newVectorArrayAccessor(a.r, a.pos)
}
