package section

// Flags is the one-byte field in the header controlling alignment, key
// ordering, and the value-reference discipline inside maps/arrays
// (spec.md §3.3).
type Flags uint8

const (
	// FlagAligned pads multi-byte fields and container tables so their
	// natural alignment holds from the start of the buffer.
	FlagAligned Flags = 0x01

	// FlagSortedKeys means every map's key table is in sorted order and
	// may be binary-searched; unset means linear scan is required.
	FlagSortedKeys Flags = 0x02

	// FlagRelContValRefs means a referenced value's stored offset inside a
	// map/array is container_offset - target_offset rather than absolute.
	FlagRelContValRefs Flags = 0x04

	// reservedBit is reserved for future big-endian support and is not
	// honored by this implementation at read time (spec.md §1 Non-goals).
	reservedBit Flags = 0x08

	// KnownFlagsMask covers every bit this implementation understands.
	KnownFlagsMask = FlagAligned | FlagSortedKeys | FlagRelContValRefs | reservedBit
)

// Aligned reports whether FlagAligned is set.
func (f Flags) Aligned() bool { return f&FlagAligned != 0 }

// SortedKeys reports whether FlagSortedKeys is set.
func (f Flags) SortedKeys() bool { return f&FlagSortedKeys != 0 }

// RelContValRefs reports whether FlagRelContValRefs is set.
func (f Flags) RelContValRefs() bool { return f&FlagRelContValRefs != 0 }

// WithAligned returns f with FlagAligned set or cleared.
func (f Flags) WithAligned(v bool) Flags { return setBit(f, FlagAligned, v) }

// WithSortedKeys returns f with FlagSortedKeys set or cleared.
func (f Flags) WithSortedKeys(v bool) Flags { return setBit(f, FlagSortedKeys, v) }

// WithRelContValRefs returns f with FlagRelContValRefs set or cleared.
func (f Flags) WithRelContValRefs(v bool) Flags { return setBit(f, FlagRelContValRefs, v) }

func setBit(f, bit Flags, v bool) Flags {
	if v {
		return f | bit
	}

	return f &^ bit
}
