package writer

import (
	"github.com/dato-io/dato/internal/options"
	"github.com/dato-io/dato/section"
)

type writerState struct {
	prefix            []byte
	flags             section.Flags
	skipDuplicateKeys bool
	initialCapacity   int
}

// Option configures a Writer at construction time.
type Option = options.Option[*writerState]

func defaultState() *writerState {
	return &writerState{
		prefix:            section.DefaultPrefix,
		skipDuplicateKeys: true,
		initialCapacity:   256,
	}
}

// WithPrefix overrides the magic prefix written at the start of the
// buffer. The default is section.DefaultPrefix ("DATO").
func WithPrefix(prefix []byte) Option {
	return options.New(func(s *writerState) error {
		s.prefix = prefix
		return nil
	})
}

// WithFlags sets the header flags byte (spec.md §3.3): whether the buffer
// is aligned, whether map keys are kept sorted, and whether in-container
// value references are relative.
func WithFlags(flags section.Flags) Option {
	return options.New(func(s *writerState) error {
		s.flags = flags
		return nil
	})
}

// WithSkipDuplicateKeys controls whether repeated string keys are
// deduplicated against previously-written keys (spec.md §4.4). Enabled by
// default.
func WithSkipDuplicateKeys(v bool) Option {
	return options.New(func(s *writerState) error {
		s.skipDuplicateKeys = v
		return nil
	})
}

// WithInitialCapacity sizes the builder's first allocation.
func WithInitialCapacity(n int) Option {
	return options.New(func(s *writerState) error {
		s.initialCapacity = n
		return nil
	})
}
