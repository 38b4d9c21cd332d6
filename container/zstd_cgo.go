//go:build cgo

package container

import "github.com/valyala/gozstd"

// zstdCgoLevel matches zstd.SpeedDefault's target ratio/speed tradeoff
// (the pure-Go build's level, see zstd_pure.go) so the two build variants
// produce comparably sized output.
const zstdCgoLevel = 3

func (ZstdCodec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, zstdCgoLevel), nil
}

func (ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
