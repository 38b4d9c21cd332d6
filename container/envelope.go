package container

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/dato-io/dato/endian"
)

// envelopeMagic marks the start of a container envelope.
var envelopeMagic = [4]byte{'D', 'T', 'C', '1'}

// headerSize is the fixed envelope header: magic(4) + codec(1) + reserved(1)
// + uncompressed length u32(4) + xxHash64 checksum u64(8).
const headerSize = 4 + 1 + 1 + 4 + 8

// Pack compresses payload with codec and wraps it in a checksummed
// envelope: magic, codec id, the uncompressed length, and the xxHash64 of
// the uncompressed bytes, followed by the compressed payload (spec.md §5).
func Pack(payload []byte, codecType CompressionType) ([]byte, error) {
	codec, err := CreateCodec(codecType)
	if err != nil {
		return nil, err
	}

	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("container: compress: %w", err)
	}

	engine := endian.GetLittleEndianEngine()
	out := make([]byte, 0, headerSize+len(compressed))
	out = append(out, envelopeMagic[:]...)
	out = append(out, byte(codecType), 0)
	out = engine.AppendUint32(out, uint32(len(payload)))
	out = engine.AppendUint64(out, xxhash.Sum64(payload))
	out = append(out, compressed...)

	return out, nil
}

// LooksLikeEnvelope reports whether data starts with the envelope magic,
// so a caller can distinguish a wrapped buffer from a bare DATO buffer
// without attempting a full Unpack.
func LooksLikeEnvelope(data []byte) bool {
	return len(data) >= headerSize && [4]byte(data[0:4]) == envelopeMagic
}

// Unpack validates an envelope's magic and checksum, decompresses its
// payload, and returns the original uncompressed bytes.
func Unpack(data []byte) ([]byte, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("container: envelope too short")
	}
	if [4]byte(data[0:4]) != envelopeMagic {
		return nil, fmt.Errorf("container: invalid envelope magic")
	}

	codecType := CompressionType(data[4])
	engine := endian.GetLittleEndianEngine()
	wantLen := engine.Uint32(data[6:10])
	wantSum := engine.Uint64(data[10:18])

	codec, err := CreateCodec(codecType)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(data[headerSize:])
	if err != nil {
		return nil, fmt.Errorf("container: decompress: %w", err)
	}

	if uint32(len(payload)) != wantLen {
		return nil, fmt.Errorf("container: decompressed length mismatch: got %d want %d", len(payload), wantLen)
	}
	if xxhash.Sum64(payload) != wantSum {
		return nil, fmt.Errorf("container: checksum mismatch")
	}

	return payload, nil
}
