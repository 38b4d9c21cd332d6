// Package errs defines the sentinel errors returned by the dato packages.
//
// Callers should compare with errors.Is, since call sites wrap these with
// additional context via fmt.Errorf("...: %w", ...).
package errs

import "errors"

var (
	// ErrBufferTooShort is returned when a buffer is too small to contain
	// the prefix, header, or a value body being addressed.
	ErrBufferTooShort = errors.New("dato: buffer too short")

	// ErrInvalidPrefix is returned when the buffer's leading bytes don't
	// match the expected magic prefix.
	ErrInvalidPrefix = errors.New("dato: invalid magic prefix")

	// ErrInvalidConfigID is returned when the header's config-id byte does
	// not name a known length-encoding preset.
	ErrInvalidConfigID = errors.New("dato: invalid config id")

	// ErrInvalidHeaderFlags is returned when the header's flags byte
	// carries bits this reader does not understand and has not been told
	// to ignore.
	ErrInvalidHeaderFlags = errors.New("dato: invalid header flags")

	// ErrMalformedBuffer is the single failure kind spec.md §7 mandates
	// for all read-time bounds and structural violations in Checked mode.
	ErrMalformedBuffer = errors.New("dato: malformed buffer")

	// ErrTypeMismatch is returned by accessor coercions when the stored
	// type tag does not match the requested accessor kind.
	ErrTypeMismatch = errors.New("dato: value type mismatch")

	// ErrUnknownValueType is returned when a stored type byte falls
	// outside the 0..16 range defined by format.Type.
	ErrUnknownValueType = errors.New("dato: unknown value type")

	// ErrValueOutOfRange is a write-time error: a length or count could
	// not be represented by the active length encoding.
	ErrValueOutOfRange = errors.New("dato: value out of range for encoding")

	// ErrRootAlreadySet is returned by a second call to SetRoot.
	ErrRootAlreadySet = errors.New("dato: root already set")

	// ErrVectorElemCount is returned when a Vector/VectorArray write's
	// per-tuple element count exceeds the one-byte elemCount field (255),
	// or when the supplied raw bytes don't match elemCount*subtype.Size().
	ErrVectorElemCount = errors.New("dato: vector element count out of range")
)
