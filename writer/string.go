package writer

import "github.com/dato-io/dato/format"

// WriteStringKey writes a map key: a length prefix (via the config's
// KeyLength encoding), the raw bytes, and a single trailing zero byte. If
// deduplication is enabled and an identical key was already written, the
// existing KeyRef is returned and nothing new is appended (spec.md §4.4).
func (w *Writer[C]) WriteStringKey(data []byte) (KeyRef, error) {
	var h uint32
	if w.dedup != nil {
		h = w.keyHash(data)
		if ref, ok := w.dedup.lookup(w.bu, data, h); ok {
			return ref, nil
		}
	}

	pos := w.bu.GetSize()
	if err := w.cfg.KeyLength().Write(w.bu, uint32(len(data)), w.engine); err != nil {
		return KeyRef{}, err
	}

	dataPos := w.bu.GetSize()
	w.bu.AddMem(data)
	w.bu.AddByte(0)

	if w.dedup != nil {
		w.dedup.insert(h, uint32(pos), uint32(dataPos), uint32(len(data)))
	}

	return KeyRef{Pos: uint32(pos), DataPos: uint32(dataPos), DataLen: uint32(len(data))}, nil
}

// WriteString8 writes a referenced byte string: ValueLength(n) followed by
// n bytes, then a trailing zero byte (not counted in n). No alignment is
// applied regardless of the Aligned flag.
func (w *Writer[C]) WriteString8(data []byte) (ValueRef, error) {
	pos, err := w.writeValueLengthPrefixed(data, 1)
	if err != nil {
		return ValueRef{}, err
	}
	w.bu.AddByte(0)

	return ValueRef{Type: format.String8, Pos: uint32(pos)}, nil
}

// WriteString16 writes a referenced UTF-16 code-unit string: ValueLength(n)
// (n code units), then 2n bytes, then a trailing zero code unit. The body
// is 2-byte aligned when the Aligned flag is set.
func (w *Writer[C]) WriteString16(units []uint16) (ValueRef, error) {
	pos, err := w.padAndWriteValueLength(uint32(len(units)), w.alignOf(2))
	if err != nil {
		return ValueRef{}, err
	}

	for _, u := range units {
		var buf [2]byte
		w.engine.PutUint16(buf[:], u)
		w.bu.AddMem(buf[:])
	}
	w.bu.AddByte(0)
	w.bu.AddByte(0)

	return ValueRef{Type: format.String16, Pos: uint32(pos)}, nil
}

// WriteString32 writes a referenced UTF-32 code-unit string: ValueLength(n)
// (n code units), then 4n bytes, then a trailing zero code unit. The body
// is 4-byte aligned when the Aligned flag is set.
func (w *Writer[C]) WriteString32(units []uint32) (ValueRef, error) {
	pos, err := w.padAndWriteValueLength(uint32(len(units)), w.alignOf(4))
	if err != nil {
		return ValueRef{}, err
	}

	for _, u := range units {
		var buf [4]byte
		w.engine.PutUint32(buf[:], u)
		w.bu.AddMem(buf[:])
	}
	w.bu.AddZeroes(4)

	return ValueRef{Type: format.String32, Pos: uint32(pos)}, nil
}

// WriteByteArray writes a referenced opaque byte blob: ValueLength(n) then
// n bytes, with a caller-chosen alignment (use 1 for none).
func (w *Writer[C]) WriteByteArray(data []byte, align int) (ValueRef, error) {
	pos, err := w.writeValueLengthPrefixed(data, align)
	if err != nil {
		return ValueRef{}, err
	}

	return ValueRef{Type: format.ByteArray, Pos: uint32(pos)}, nil
}

// writeValueLengthPrefixed pads so the body (right after the length field)
// lands on align, writes ValueLength(len(data)), then copies data; it
// returns the position of the length field.
func (w *Writer[C]) writeValueLengthPrefixed(data []byte, align int) (int, error) {
	pos, err := w.padAndWriteValueLength(uint32(len(data)), align)
	if err != nil {
		return 0, err
	}

	w.bu.AddMem(data)

	return pos, nil
}

// padAndWriteValueLength pads so the body (right after the length field)
// lands on align, writes ValueLength(n), and returns the length field's
// position. Callers append the body themselves.
func (w *Writer[C]) padAndWriteValueLength(n uint32, align int) (int, error) {
	return w.padAndWriteLength(w.cfg.ValueLength(), n, align)
}
