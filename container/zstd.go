package container

// ZstdCodec compresses with Zstandard: the best compression ratio of the
// four codecs, at higher CPU cost than LZ4 or S2. Best suited to archival
// or network transport of a buffer that will be decompressed rarely
// relative to how often it is stored.
//
// Compress/Decompress are implemented in zstd_pure.go (pure Go, built when
// cgo is disabled) and zstd_cgo.go (gozstd, built whenever cgo is enabled).
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstdCodec returns a Zstd Codec.
func NewZstdCodec() ZstdCodec { return ZstdCodec{} }
