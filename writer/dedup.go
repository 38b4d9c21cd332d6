package writer

import "github.com/dato-io/dato/internal/pool"

// dedupTable is an open-addressed hash set of previously-written string
// keys, keyed by internal/hash.Fingerprint. It never holds a copy of the
// key bytes: every lookup re-resolves the candidate's bytes from the
// builder by offset, since the builder's backing array can move on growth
// (spec.md §4.4, §9 "pointers into the builder's backing array are never
// held across a growth; offsets are always re-resolved").
type dedupTable struct {
	slots []dedupSlot
	count int
}

type dedupSlot struct {
	used    bool
	hash    uint32
	keyPos  uint32
	dataOff uint32
	length  uint32
}

const dedupInitialCap = 16

func newDedupTable() *dedupTable {
	return &dedupTable{slots: make([]dedupSlot, dedupInitialCap)}
}

// lookup returns the KeyRef of a previously-written key equal to data, if
// any, re-reading candidate bytes from bu for the comparison.
func (d *dedupTable) lookup(bu *pool.Builder, data []byte, h uint32) (KeyRef, bool) {
	n := len(d.slots)
	idx := int(h) % n

	for {
		s := d.slots[idx]
		if !s.used {
			return KeyRef{}, false
		}

		if s.hash == h && int(s.length) == len(data) {
			candidate := bu.Bytes()[s.dataOff : s.dataOff+s.length]
			if bytesEqual(candidate, data) {
				return KeyRef{Pos: s.keyPos, DataPos: s.dataOff, DataLen: s.length}, true
			}
		}

		idx = (idx + 1) % n
	}
}

// insert records a newly-written key. It must only be called after a
// lookup for the same key has already returned false.
func (d *dedupTable) insert(h, keyPos, dataOff, length uint32) {
	d.maybeGrow()

	n := len(d.slots)
	idx := int(h) % n
	for d.slots[idx].used {
		idx = (idx + 1) % n
	}

	d.slots[idx] = dedupSlot{used: true, hash: h, keyPos: keyPos, dataOff: dataOff, length: length}
	d.count++
}

func (d *dedupTable) maybeGrow() {
	// keep the load factor at or below 4/5
	if (d.count+1)*5 <= len(d.slots)*4 {
		return
	}

	old := d.slots
	d.slots = make([]dedupSlot, len(old)*2)

	for _, s := range old {
		if !s.used {
			continue
		}

		n := len(d.slots)
		idx := int(s.hash) % n
		for d.slots[idx].used {
			idx = (idx + 1) % n
		}
		d.slots[idx] = s
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
