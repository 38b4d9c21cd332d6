package reader

import "github.com/dato-io/dato/format"

// Visitor receives a depth-first walk of a DATO value tree
// (spec.md §4.7). Every Begin* call is matched by exactly one End* call;
// every leaf produces exactly one OnValue* call.
type Visitor interface {
	BeginMap(size int)
	EndMap()

	BeginStringKey(key []byte)
	EndStringKey()

	BeginIntKey(key uint32)
	EndIntKey()

	BeginArray(size int)
	EndArray()

	BeginArrayIndex(i int)
	EndArrayIndex()

	OnValueNull()
	OnValueBool(v bool)
	OnValueS32(v int32)
	OnValueU32(v uint32)
	OnValueF32(v float32)
	OnValueS64(v int64)
	OnValueU64(v uint64)
	OnValueF64(v float64)

	OnValueString8(s []byte)
	OnValueString16(units []uint16)
	OnValueString32(units []uint32)
	OnValueByteArray(b []byte)
	OnValueVector(v VectorAccessor)
	OnValueVectorArray(v VectorArrayAccessor)

	// OnUnknownValue fires for a stored type byte outside format.Null..
	// format.VectorArray. Reachable only against a foreign or corrupted
	// buffer, never one produced by this package's writer.
	OnUnknownValue(typ format.Type)
}

// Iterate walks a and its descendants, calling the matching Visitor
// methods. It returns the first error encountered decoding any node.
func (a DynamicAccessor[C]) Iterate(v Visitor) error {
	switch a.typ {
	case format.Null:
		v.OnValueNull()

	case format.Bool:
		b, err := a.AsBool()
		if err != nil {
			return err
		}
		v.OnValueBool(b)

	case format.S32:
		n, err := a.AsS32()
		if err != nil {
			return err
		}
		v.OnValueS32(n)

	case format.U32:
		n, err := a.AsU32()
		if err != nil {
			return err
		}
		v.OnValueU32(n)

	case format.F32:
		n, err := a.AsF32()
		if err != nil {
			return err
		}
		v.OnValueF32(n)

	case format.S64:
		n, err := a.AsS64()
		if err != nil {
			return err
		}
		v.OnValueS64(n)

	case format.U64:
		n, err := a.AsU64()
		if err != nil {
			return err
		}
		v.OnValueU64(n)

	case format.F64:
		n, err := a.AsF64()
		if err != nil {
			return err
		}
		v.OnValueF64(n)

	case format.String8:
		s, err := a.AsString8()
		if err != nil {
			return err
		}
		v.OnValueString8(s.Bytes())

	case format.String16:
		s, err := a.AsString16()
		if err != nil {
			return err
		}
		units := make([]uint16, s.Len())
		for i := range units {
			units[i], err = s.At(i)
			if err != nil {
				return err
			}
		}
		v.OnValueString16(units)

	case format.String32:
		s, err := a.AsString32()
		if err != nil {
			return err
		}
		units := make([]uint32, s.Len())
		for i := range units {
			units[i], err = s.At(i)
			if err != nil {
				return err
			}
		}
		v.OnValueString32(units)

	case format.ByteArray:
		b, err := a.AsByteArray()
		if err != nil {
			return err
		}
		v.OnValueByteArray(b.Bytes())

	case format.Vector:
		vec, err := a.AsVector()
		if err != nil {
			return err
		}
		v.OnValueVector(vec)

	case format.VectorArray:
		vec, err := a.AsVectorArray()
		if err != nil {
			return err
		}
		v.OnValueVectorArray(vec)

	case format.Array:
		arr, err := a.AsArray()
		if err != nil {
			return err
		}
		v.BeginArray(arr.GetSize())
		for i := 0; i < arr.GetSize(); i++ {
			v.BeginArrayIndex(i)
			if err := arr.GetValueByIndex(i).Iterate(v); err != nil {
				return err
			}
			v.EndArrayIndex()
		}
		v.EndArray()

	case format.StringMap:
		m, err := a.AsStringMap()
		if err != nil {
			return err
		}
		v.BeginMap(m.GetSize())
		for i := 0; i < m.GetSize(); i++ {
			key, err := m.GetKeyBytes(i)
			if err != nil {
				return err
			}
			v.BeginStringKey(key)
			if err := m.GetValueByIndex(i).Iterate(v); err != nil {
				return err
			}
			v.EndStringKey()
		}
		v.EndMap()

	case format.IntMap:
		m, err := a.AsIntMap()
		if err != nil {
			return err
		}
		v.BeginMap(m.GetSize())
		for i := 0; i < m.GetSize(); i++ {
			v.BeginIntKey(m.GetKeyInt(i))
			if err := m.GetValueByIndex(i).Iterate(v); err != nil {
				return err
			}
			v.EndIntKey()
		}
		v.EndMap()

	default:
		v.OnUnknownValue(a.typ)
	}

	return nil
}
