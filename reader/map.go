package reader

import (
	"bytes"

	"github.com/dato-io/dato/format"
	"github.com/dato-io/dato/lenenc"
)

// mapCore is the shared layout logic behind StringMapAccessor and
// IntMapAccessor: a length-encoded entry count followed by a key table, a
// value table, and a parallel type-tag table (spec.md §4.4). The key
// table's element is a position (StringMap: offset into the key data;
// IntMap: the raw key value itself) — either way, a plain u32.
type mapCore[C lenenc.Config] struct {
	r       *Reader[C]
	n       int
	bodyPos uint32
}

func newMapCore[C lenenc.Config](r *Reader[C], pos uint32) (mapCore[C], error) {
	if err := r.checkBounds(int(pos), 0); err != nil {
		return mapCore[C]{}, err
	}

	n, consumed, err := r.cfg.ObjectSize().Read(r.buf, int(pos), r.engine)
	if err != nil {
		return mapCore[C]{}, err
	}

	bodyPos := pos + uint32(consumed)
	tableBytes := 4*uint64(n) + 4*uint64(n) + uint64(n)
	if err := r.checkBounds(int(bodyPos), int(tableBytes)); err != nil {
		return mapCore[C]{}, err
	}

	return mapCore[C]{r: r, n: int(n), bodyPos: bodyPos}, nil
}

// GetSize returns the number of entries.
func (m mapCore[C]) GetSize() int { return m.n }

func (m mapCore[C]) keyRawAt(i int) uint32 {
	return m.r.engine.Uint32(m.r.buf[m.bodyPos+4*uint32(i):])
}

func (m mapCore[C]) valueTypeAt(i int) format.Type {
	return format.Type(m.r.buf[m.bodyPos+8*uint32(m.n)+uint32(i)])
}

func (m mapCore[C]) valueAt(i int) DynamicAccessor[C] {
	raw := m.r.engine.Uint32(m.r.buf[m.bodyPos+4*uint32(m.n)+4*uint32(i):])
	typ := m.valueTypeAt(i)

	pos := raw
	if m.r.flags.RelContValRefs() && format.IsReferenced(typ) {
		pos = m.bodyPos - raw
	}

	return DynamicAccessor[C]{r: m.r, typ: typ, pos: pos}
}

// StringMapAccessor is a read-only view over a StringMap value: entries
// keyed by a length-prefixed byte string, optionally binary-searchable
// when the buffer's SortedKeys flag is set.
type StringMapAccessor[C lenenc.Config] struct {
	mapCore[C]
}

// GetKeyBytes returns the raw key bytes at index i, without the trailing
// NUL terminator the writer appends.
func (m StringMapAccessor[C]) GetKeyBytes(i int) ([]byte, error) {
	kpos := m.keyRawAt(i)

	klen, consumed, err := m.r.cfg.KeyLength().Read(m.r.buf, int(kpos), m.r.engine)
	if err != nil {
		return nil, err
	}

	start := kpos + uint32(consumed)
	if err := m.r.checkBounds(int(start), int(klen)); err != nil {
		return nil, err
	}

	return m.r.buf[start : start+klen], nil
}

// GetKeyCStr returns the key at index i as a string.
func (m StringMapAccessor[C]) GetKeyCStr(i int) (string, error) {
	b, err := m.GetKeyBytes(i)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// GetValueByIndex returns the value at index i.
func (m StringMapAccessor[C]) GetValueByIndex(i int) DynamicAccessor[C] {
	return m.valueAt(i)
}

// FindValueByKey looks up key, binary-searching when the buffer's
// SortedKeys flag is set and scanning linearly otherwise. The returned
// accessor's IsValid is false when key is absent.
func (m StringMapAccessor[C]) FindValueByKey(key []byte) DynamicAccessor[C] {
	if m.r.flags.SortedKeys() {
		lo, hi := 0, m.n
		for lo < hi {
			mid := (lo + hi) / 2
			mk, err := m.GetKeyBytes(mid)
			if err != nil {
				return DynamicAccessor[C]{}
			}
			switch bytes.Compare(mk, key) {
			case 0:
				return m.valueAt(mid)
			case -1:
				lo = mid + 1
			default:
				hi = mid
			}
		}
		return DynamicAccessor[C]{}
	}

	for i := 0; i < m.n; i++ {
		mk, err := m.GetKeyBytes(i)
		if err != nil {
			return DynamicAccessor[C]{}
		}
		if bytes.Equal(mk, key) {
			return m.valueAt(i)
		}
	}

	return DynamicAccessor[C]{}
}

// IntMapAccessor is a read-only view over an IntMap value: entries keyed
// by a raw uint32, optionally binary-searchable when the buffer's
// SortedKeys flag is set.
type IntMapAccessor[C lenenc.Config] struct {
	mapCore[C]
}

// GetKeyInt returns the key at index i.
func (m IntMapAccessor[C]) GetKeyInt(i int) uint32 {
	return m.keyRawAt(i)
}

// GetValueByIndex returns the value at index i.
func (m IntMapAccessor[C]) GetValueByIndex(i int) DynamicAccessor[C] {
	return m.valueAt(i)
}

// FindValueByKey looks up key, binary-searching when the buffer's
// SortedKeys flag is set and scanning linearly otherwise. The returned
// accessor's IsValid is false when key is absent.
func (m IntMapAccessor[C]) FindValueByKey(key uint32) DynamicAccessor[C] {
	if m.r.flags.SortedKeys() {
		lo, hi := 0, m.n
		for lo < hi {
			mid := (lo + hi) / 2
			mk := m.keyRawAt(mid)
			switch {
			case mk == key:
				return m.valueAt(mid)
			case mk < key:
				lo = mid + 1
			default:
				hi = mid
			}
		}
		return DynamicAccessor[C]{}
	}

	for i := 0; i < m.n; i++ {
		if m.keyRawAt(i) == key {
			return m.valueAt(i)
		}
	}

	return DynamicAccessor[C]{}
}
