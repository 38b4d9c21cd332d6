package writer

import (
	"github.com/dato-io/dato/format"
	"github.com/dato-io/dato/internal/sortutil"
	"github.com/dato-io/dato/lenenc"
)

// WriteArray writes a referenced ordered list of values: ArrayLength(n),
// 4-byte aligned when the Aligned flag is set, then n u32 value refs, then
// n type-tag bytes (spec.md §4.4, §6.1).
func (w *Writer[C]) WriteArray(values []ValueRef) (ValueRef, error) {
	lenPos, bodyPos, err := w.writeContainerLength(w.cfg.ArrayLength(), len(values))
	if err != nil {
		return ValueRef{}, err
	}

	for _, v := range values {
		w.appendU32(w.valueRefSlot(bodyPos, v))
	}
	for _, v := range values {
		w.bu.AddByte(byte(v.Type))
	}

	return ValueRef{Type: format.Array, Pos: uint32(lenPos)}, nil
}

// WriteStringMap writes a referenced map with byte-string keys:
// ObjectSize(n), 4-byte aligned when the Aligned flag is set, then n u32
// key refs (always absolute, regardless of RelContValRefs), then n u32
// value refs, then n type-tag bytes. When the writer's SortedKeys flag is
// set, entries are sorted lexicographically by key bytes before being
// emitted so the reader can binary-search them (spec.md §4.4).
func (w *Writer[C]) WriteStringMap(entries []EntryRef) (ValueRef, error) {
	entries = append([]EntryRef(nil), entries...)

	if w.flags.SortedKeys() {
		keys := make([][]byte, len(entries))
		for i, e := range entries {
			keys[i] = w.bu.Bytes()[e.Key.DataPos : e.Key.DataPos+e.Key.DataLen]
		}
		entries = reorderEntries(entries, sortutil.StringKeys, keys)
	}

	return w.writeMap(format.StringMap, entries)
}

// WriteIntMap writes a referenced map with unsigned-32-bit integer keys.
// When the writer's SortedKeys flag is set, entries are sorted numerically
// by key before being emitted so the reader can binary-search them
// (spec.md §4.4).
func (w *Writer[C]) WriteIntMap(entries []EntryRef) (ValueRef, error) {
	entries = append([]EntryRef(nil), entries...)

	if w.flags.SortedKeys() {
		keys := make([]uint32, len(entries))
		for i, e := range entries {
			keys[i] = e.Key.Pos
		}
		entries = reorderEntries(entries, sortutil.Uint32Keys, keys)
	}

	return w.writeMap(format.IntMap, entries)
}

// reorderEntries sorts keys in place via sortFn (which also permutes a
// parallel perm slice) and returns entries reordered the same way.
func reorderEntries[K any](entries []EntryRef, sortFn func(K, []int), keys K) []EntryRef {
	perm := make([]int, len(entries))
	for i := range perm {
		perm[i] = i
	}

	sortFn(keys, perm)

	sorted := make([]EntryRef, len(entries))
	for i, p := range perm {
		sorted[i] = entries[p]
	}

	return sorted
}

func (w *Writer[C]) writeMap(mapType format.Type, entries []EntryRef) (ValueRef, error) {
	lenPos, bodyPos, err := w.writeContainerLength(w.cfg.ObjectSize(), len(entries))
	if err != nil {
		return ValueRef{}, err
	}

	// key refs are always absolute: invariant 3.4 excludes them from the
	// RelContValRefs discipline.
	for _, e := range entries {
		w.appendU32(e.Key.Pos)
	}
	for _, e := range entries {
		w.appendU32(w.valueRefSlot(bodyPos, e.Value))
	}
	for _, e := range entries {
		w.bu.AddByte(byte(e.Value.Type))
	}

	return ValueRef{Type: mapType, Pos: uint32(lenPos)}, nil
}

// writeContainerLength pads, writes the length field, and returns both its
// own position (the ValueRef for the resulting container) and bodyPos,
// the position immediately after it -- spec.md's "objpos"/"arrpos", the
// base for relative value-ref arithmetic.
func (w *Writer[C]) writeContainerLength(enc lenenc.Encoding, n int) (lenPos int, bodyPos int, err error) {
	lenPos, err = w.padAndWriteLength(enc, uint32(n), w.alignOf(4))
	if err != nil {
		return 0, 0, err
	}

	return lenPos, w.bu.GetSize(), nil
}

// valueRefSlot computes the u32 to store in a map/array's value-ref table
// for v: container_offset - target_offset when RelContValRefs is set and
// v's type is referenced, else v's absolute Pos (spec.md §3.4).
func (w *Writer[C]) valueRefSlot(bodyPos int, v ValueRef) uint32 {
	if w.flags.RelContValRefs() && format.IsReferenced(v.Type) {
		return uint32(bodyPos) - v.Pos
	}
	return v.Pos
}

func (w *Writer[C]) appendU32(v uint32) {
	var buf [4]byte
	w.engine.PutUint32(buf[:], v)
	w.bu.AddMem(buf[:])
}
