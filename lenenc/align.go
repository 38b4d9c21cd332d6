package lenenc

import (
	"github.com/dato-io/dato/endian"
	"github.com/dato-io/dato/internal/pool"
)

// WriteAligned emits a length field followed by pfxLen bytes of prefix
// (e.g. a Vector's subtype+elemCount pair, or zero for a plain length
// prefix), zero-padding in front of the length field so that the byte
// immediately after the prefix satisfies the given alignment.
//
// This is spec.md §4.2's "alignment contract of length writes": the pad
// goes only in front of the length field, never between the length field
// and the prefix, and the math for variable-width encodings (U8X32) must
// use the encoding's actual chosen width, not its worst case.
//
// align must be 1 to account for the no-alignment case; callers pass 1
// when the header's Aligned flag is unset.
func WriteAligned(bu *pool.Builder, enc Encoding, v uint32, pfxLen int, align int, engine endian.EndianEngine) error {
	if align <= 1 {
		return enc.Write(bu, v, engine)
	}

	width, err := enc.Width(v)
	if err != nil {
		return err
	}

	unpaddedEnd := bu.GetSize() + width + pfxLen
	pad := (align - unpaddedEnd%align) % align
	bu.AddZeroes(pad)

	return enc.Write(bu, v, engine)
}
