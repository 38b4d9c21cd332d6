// Package container wraps a complete DATO buffer in a compressed,
// checksummed envelope for storage or transport (spec.md §5): a short
// fixed header naming the compression codec and the uncompressed payload's
// length and xxHash64 checksum, followed by the (possibly compressed)
// payload bytes.
package container

import "fmt"

// Compressor compresses a byte slice.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a byte slice previously produced by the
// matching Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one compression algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionType names a payload compression algorithm, stored as the
// envelope's codec byte.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0
	CompressionZstd CompressionType = 1
	CompressionS2   CompressionType = 2
	CompressionLZ4  CompressionType = 3
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionS2:
		return "s2"
	case CompressionLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// CreateCodec is a factory returning the Codec for a CompressionType.
func CreateCodec(t CompressionType) (Codec, error) {
	switch t {
	case CompressionNone:
		return NewNoOpCodec(), nil
	case CompressionZstd:
		return NewZstdCodec(), nil
	case CompressionS2:
		return NewS2Codec(), nil
	case CompressionLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("container: invalid compression type %d", t)
	}
}
