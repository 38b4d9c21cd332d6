// Package pool provides the Writer's grow-only byte builder, the scratch
// slice pools used by the sort routines, and a generic Resource pool for
// other expensive-to-construct values, all backed by sync.Pool to keep
// repeated use amortized allocation-free.
package pool

import "sync"

// Default and max-retained sizes for pooled Builders, mirroring the
// two-tier (small blob vs large blob-set) pooling split the teacher uses
// for its own byte buffers.
const (
	DefaultBuilderSize = 1024 * 4   // 4KiB: typical single-buffer DATO document
	MaxBuilderSize     = 1024 * 256 // 256KiB: discard pooled buffers larger than this
)

// Builder is the Writer's grow-only byte vector (spec.md §4.4). It never
// shrinks except via Reset, and every append is amortized O(1).
type Builder struct {
	b []byte
}

// NewBuilder creates a Builder with the given starting capacity.
func NewBuilder(capacity int) *Builder {
	return &Builder{b: make([]byte, 0, capacity)}
}

// GetSize returns the number of bytes written so far.
func (bu *Builder) GetSize() int {
	return len(bu.b)
}

// Bytes returns the builder's contents. The returned slice aliases the
// builder's storage and is invalidated by the next append.
func (bu *Builder) Bytes() []byte {
	return bu.b
}

// Reset empties the builder while retaining its allocated capacity.
func (bu *Builder) Reset() {
	bu.b = bu.b[:0]
}

// Reserve ensures at least n more bytes can be appended without a further
// reallocation, without changing GetSize().
func (bu *Builder) Reserve(n int) {
	if cap(bu.b)-len(bu.b) >= n {
		return
	}

	bu.grow(n)
}

// grow reallocates the backing array so at least n more bytes fit,
// following the teacher's amortized strategy: small buffers grow by a
// fixed chunk, large buffers by a fraction of their current capacity.
func (bu *Builder) grow(n int) {
	growBy := DefaultBuilderSize
	if cap(bu.b) > 4*DefaultBuilderSize {
		growBy = cap(bu.b) / 4
	}
	if growBy < n {
		growBy = n
	}

	newBuf := make([]byte, len(bu.b), len(bu.b)+growBy)
	copy(newBuf, bu.b)
	bu.b = newBuf
}

// AddByte appends a single byte.
func (bu *Builder) AddByte(v byte) {
	bu.Reserve(1)
	bu.b = append(bu.b, v)
}

// AddMem appends a copy of data.
func (bu *Builder) AddMem(data []byte) {
	if len(data) == 0 {
		return
	}
	bu.Reserve(len(data))
	bu.b = append(bu.b, data...)
}

// AddZeroes appends n zero bytes.
func (bu *Builder) AddZeroes(n int) {
	if n <= 0 {
		return
	}
	bu.Reserve(n)
	start := len(bu.b)
	bu.b = bu.b[:start+n]
	clear(bu.b[start:])
}

// AddZeroesUntil appends zero bytes until GetSize() == pos. It is a no-op
// if the builder is already at or past pos. Used for alignment padding,
// where the padding bytes themselves must read back as zero (spec.md §4.1).
func (bu *Builder) AddZeroesUntil(pos int) {
	if pos <= len(bu.b) {
		return
	}
	bu.AddZeroes(pos - len(bu.b))
}

// AlignTo pads the builder with zero bytes so GetSize() becomes a multiple
// of n (a small power of two), returning the resulting size.
func (bu *Builder) AlignTo(n int) int {
	target := (len(bu.b) + n - 1) &^ (n - 1)
	bu.AddZeroesUntil(target)

	return len(bu.b)
}

// OverwriteUint32LE patches 4 already-written bytes at pos, used exactly
// once by Writer.SetRoot to fill in the header's root-offset slot
// (spec.md §3.5 — the only permitted post-hoc mutation).
func (bu *Builder) OverwriteUint32LE(pos int, v uint32) {
	b := bu.b[pos : pos+4]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

// builderPool pools Builder instances to minimize allocations across
// repeated Writer construction/teardown, mirroring the teacher's
// ByteBufferPool.
type builderPool struct {
	pool sync.Pool
}

func newBuilderPool(defaultSize int) *builderPool {
	return &builderPool{
		pool: sync.Pool{
			New: func() any { return NewBuilder(defaultSize) },
		},
	}
}

func (p *builderPool) get() *Builder {
	bu, _ := p.pool.Get().(*Builder)
	return bu
}

func (p *builderPool) put(bu *Builder) {
	if bu == nil {
		return
	}
	if cap(bu.b) > MaxBuilderSize {
		return
	}
	bu.Reset()
	p.pool.Put(bu)
}

var defaultBuilderPool = newBuilderPool(DefaultBuilderSize)

// GetBuilder retrieves a reset Builder from the default pool.
func GetBuilder() *Builder {
	return defaultBuilderPool.get()
}

// PutBuilder returns a Builder to the default pool for reuse.
func PutBuilder(bu *Builder) {
	defaultBuilderPool.put(bu)
}
