package writer

import "github.com/dato-io/dato/lenenc"

// padAndWriteLength pads so the body (right after the length field) lands
// on align, writes enc.Write(n), and returns the length field's own
// position. Shared by the String/ByteArray writers (ValueLength) and the
// Map/Array writers (ObjectSize/ArrayLength).
func (w *Writer[C]) padAndWriteLength(enc lenenc.Encoding, n uint32, align int) (int, error) {
	width, err := enc.Width(n)
	if err != nil {
		return 0, err
	}

	if err := lenenc.WriteAligned(w.bu, enc, n, 0, align, w.engine); err != nil {
		return 0, err
	}

	return w.bu.GetSize() - width, nil
}
