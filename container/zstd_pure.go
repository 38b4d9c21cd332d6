//go:build !cgo

package container

import (
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/dato-io/dato/internal/pool"
)

// klauspost/compress/zstd documents its encoder/decoder as allocation-free
// after a warmup round, provided the same instance is reused — exactly
// what internal/pool.Resource is for.
var zstdEncoders = pool.NewResource(newPooledZstdEncoder)
var zstdDecoders = pool.NewResource(newPooledZstdDecoder)

func newPooledZstdEncoder() *zstd.Encoder {
	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
		zstd.WithEncoderCRC(false),
	)
	if err != nil {
		panic(fmt.Sprintf("container: zstd encoder init: %v", err))
	}

	return enc
}

func newPooledZstdDecoder() *zstd.Decoder {
	dec, err := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(false),
	)
	if err != nil {
		panic(fmt.Sprintf("container: zstd decoder init: %v", err))
	}

	return dec
}

func (ZstdCodec) Compress(data []byte) ([]byte, error) {
	enc, release := zstdEncoders.Acquire()
	defer release()

	return enc.EncodeAll(data, nil), nil
}

func (ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dec, release := zstdDecoders.Acquire()
	defer release()

	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("container: zstd decompress: %w", err)
	}

	return out, nil
}
