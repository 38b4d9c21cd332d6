package writer

import (
	"math"

	"github.com/dato-io/dato/endian"
	"github.com/dato-io/dato/errs"
	"github.com/dato-io/dato/format"
	"github.com/dato-io/dato/internal/hash"
	"github.com/dato-io/dato/internal/options"
	"github.com/dato-io/dato/internal/pool"
	"github.com/dato-io/dato/lenenc"
	"github.com/dato-io/dato/section"
)

// Writer builds a DATO buffer incrementally. C pins the length-encoding
// config at compile time (lenenc.Config0..Config4); use AdaptiveWriter when
// the config is only known at runtime.
//
// A Writer is single-use and not safe for concurrent use: values are
// appended to a single grow-only builder, and a value's ValueRef is only
// valid once written, never before.
type Writer[C lenenc.Config] struct {
	bu          *pool.Builder
	engine      endian.EndianEngine
	cfg         C
	flags       section.Flags
	dedup       *dedupTable
	rootTypePos int
	rootSlotPos int
	done        bool
}

// AdaptiveWriter is a Writer whose length-encoding config is resolved at
// construction time from a config-id byte rather than fixed by the type
// parameter (spec.md §4.3 "5 configs").
type AdaptiveWriter = Writer[lenenc.AdaptiveConfig]

// New creates a Writer using the length-encoding config cfg (one of
// lenenc.Config0..Config4, or lenenc.AdaptiveConfig for a runtime-selected
// config).
func New[C lenenc.Config](cfg C, opts ...Option) (*Writer[C], error) {
	st := defaultState()
	if err := options.Apply(st, opts...); err != nil {
		return nil, err
	}

	w := &Writer[C]{
		bu:     pool.NewBuilder(st.initialCapacity),
		engine: endian.GetLittleEndianEngine(),
		cfg:    cfg,
		flags:  st.flags,
	}

	if st.skipDuplicateKeys {
		w.dedup = newDedupTable()
	}

	w.rootTypePos = len(st.prefix) + 2
	w.rootSlotPos = section.WriteHeader(w.bu, st.prefix, cfg.ID(), st.flags, format.Null)

	return w, nil
}

// NewAdaptive creates an AdaptiveWriter for the given config-id (0..4).
func NewAdaptive(configID uint8, opts ...Option) (*AdaptiveWriter, error) {
	cfg, err := lenenc.NewAdaptiveConfig(configID)
	if err != nil {
		return nil, err
	}

	return New(cfg, opts...)
}

func (w *Writer[C]) align(n int) {
	if w.flags.Aligned() {
		w.bu.AlignTo(n)
	}
}

func (w *Writer[C]) alignOf(n int) int {
	if !w.flags.Aligned() {
		return 1
	}
	return n
}

// WriteNull writes the inline null value.
func (w *Writer[C]) WriteNull() ValueRef {
	return ValueRef{Type: format.Null, Pos: 0}
}

// WriteBool writes an inline boolean value.
func (w *Writer[C]) WriteBool(v bool) ValueRef {
	if v {
		return ValueRef{Type: format.Bool, Pos: 1}
	}
	return ValueRef{Type: format.Bool, Pos: 0}
}

// WriteS32 writes an inline signed 32-bit value.
func (w *Writer[C]) WriteS32(v int32) ValueRef {
	return ValueRef{Type: format.S32, Pos: uint32(v)}
}

// WriteU32 writes an inline unsigned 32-bit value.
func (w *Writer[C]) WriteU32(v uint32) ValueRef {
	return ValueRef{Type: format.U32, Pos: v}
}

// WriteF32 writes an inline 32-bit float value.
func (w *Writer[C]) WriteF32(v float32) ValueRef {
	return ValueRef{Type: format.F32, Pos: math.Float32bits(v)}
}

// SetRoot marks v as the buffer's root value, patching the header's root
// type byte and root-offset slot. It may only be called once.
func (w *Writer[C]) SetRoot(v ValueRef) error {
	if w.done {
		return errs.ErrRootAlreadySet
	}

	w.done = true
	w.bu.Bytes()[w.rootTypePos] = byte(v.Type)
	w.bu.OverwriteUint32LE(w.rootSlotPos, v.Pos)

	return nil
}

// GetData returns the completed buffer. Call only after SetRoot.
func (w *Writer[C]) GetData() []byte {
	return w.bu.Bytes()
}

func (w *Writer[C]) keyHash(data []byte) uint32 {
	return hash.Fingerprint(data)
}
