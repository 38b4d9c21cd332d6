// Package reader implements the DATO zero-parse reader: header parsing, a
// lazy DynamicAccessor tagged-union over every value kind, map/array
// accessors with linear-or-binary key search, and a visitor-driven full
// walk (spec.md §4.5-§4.7).
package reader

import (
	"github.com/dato-io/dato/endian"
	"github.com/dato-io/dato/errs"
	"github.com/dato-io/dato/internal/options"
	"github.com/dato-io/dato/lenenc"
	"github.com/dato-io/dato/section"
)

// Mode selects how much validation a Reader performs per accessor
// operation after Init (spec.md §4.6).
type Mode int

const (
	// Checked bounds-checks every dereference and asserts type/subtype
	// matches on every coercion; violations return errs.ErrMalformedBuffer
	// or errs.ErrTypeMismatch.
	Checked Mode = iota

	// Unchecked skips the Reader's bounds checks on value bodies and
	// container tables past Init, for buffers already known valid. Type-tag
	// checks on coercions, subtype validation, and the length decoders' own
	// bounds checks still apply. Violating the skipped checks is undefined
	// but memory-safe (a Go slice index panic, not memory corruption).
	Unchecked
)

// Reader opens an immutable byte buffer and exposes a tree of lazily
// constructed accessors into it. C pins the length-encoding config at
// compile time; use AdaptiveReader when the config is only known at
// runtime from the buffer's own header.
type Reader[C lenenc.Config] struct {
	buf    []byte
	engine endian.EndianEngine
	cfg    C
	flags  section.Flags
	mode   Mode
	root   DynamicAccessor[C]
}

// AdaptiveReader is a Reader whose length-encoding config is resolved at
// Init time from the buffer's own config-id byte.
type AdaptiveReader = Reader[lenenc.AdaptiveConfig]

type readerState struct {
	prefix      []byte
	ignoreFlags section.Flags
	mode        Mode
}

// Option configures a Reader at construction time.
type Option = options.Option[*readerState]

func defaultReaderState() *readerState {
	return &readerState{prefix: section.DefaultPrefix, mode: Checked}
}

// WithPrefix overrides the expected magic prefix. The default is
// section.DefaultPrefix ("DATO").
func WithPrefix(prefix []byte) Option {
	return options.New(func(s *readerState) error {
		s.prefix = prefix
		return nil
	})
}

// WithIgnoreFlags masks out header flag bits the caller doesn't want
// validated or honored.
func WithIgnoreFlags(flags section.Flags) Option {
	return options.New(func(s *readerState) error {
		s.ignoreFlags = flags
		return nil
	})
}

// WithMode selects Checked (default) or Unchecked validation.
func WithMode(m Mode) Option {
	return options.New(func(s *readerState) error {
		s.mode = m
		return nil
	})
}

// New opens buf for reading using the length-encoding config cfg (one of
// lenenc.Config0..Config4). It returns errs.ErrInvalidConfigID if the
// buffer's header names a different config than cfg.
func New[C lenenc.Config](buf []byte, cfg C, opts ...Option) (*Reader[C], error) {
	st := defaultReaderState()
	if err := options.Apply(st, opts...); err != nil {
		return nil, err
	}

	hdr, err := section.ParseHeader(buf, st.prefix, st.ignoreFlags)
	if err != nil {
		return nil, err
	}

	if hdr.ConfigID != cfg.ID() {
		return nil, errs.ErrInvalidConfigID
	}

	r := &Reader[C]{
		buf:    buf,
		engine: endian.GetLittleEndianEngine(),
		cfg:    cfg,
		flags:  hdr.Flags,
		mode:   st.mode,
	}
	r.root = DynamicAccessor[C]{r: r, typ: hdr.RootType, pos: hdr.RootOffset}

	return r, nil
}

// NewAdaptive opens buf for reading, resolving the length-encoding config
// at runtime from the buffer's own config-id byte.
func NewAdaptive(buf []byte, opts ...Option) (*AdaptiveReader, error) {
	st := defaultReaderState()
	if err := options.Apply(st, opts...); err != nil {
		return nil, err
	}

	hdr, err := section.ParseHeader(buf, st.prefix, st.ignoreFlags)
	if err != nil {
		return nil, err
	}

	cfg, err := lenenc.NewAdaptiveConfig(hdr.ConfigID)
	if err != nil {
		return nil, err
	}

	r := &Reader[lenenc.AdaptiveConfig]{
		buf:    buf,
		engine: endian.GetLittleEndianEngine(),
		cfg:    cfg,
		flags:  hdr.Flags,
		mode:   st.mode,
	}
	r.root = DynamicAccessor[lenenc.AdaptiveConfig]{r: r, typ: hdr.RootType, pos: hdr.RootOffset}

	return r, nil
}

// GetRoot returns the buffer's root value.
func (r *Reader[C]) GetRoot() DynamicAccessor[C] {
	return r.root
}

func (r *Reader[C]) checkBounds(pos, n int) error {
	if r.mode == Unchecked {
		return nil
	}
	if pos < 0 || n < 0 || pos+n > len(r.buf) {
		return errs.ErrMalformedBuffer
	}
	return nil
}
