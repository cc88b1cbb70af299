package lomc

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// EncodeZstd writes the same bit-exact LOMC container as Encode, wrapped in
// an outer zstd envelope, mirroring the teacher's own
// mustNewZstdEncoder/EncodeAll pattern of always zstd-wrapping its final
// bitstream. The LOMC container's own bytes (§6) are unchanged by this; the
// envelope is purely an outer layer for callers who want smaller files on
// disk. Use DecodeZstdEnvelope to recover the raw container before parsing
// its header.
func (e *Encoder) EncodeZstd(sink io.Writer, frames []Plane) error {
	var raw bytes.Buffer
	if err := e.Encode(&raw, frames); err != nil {
		return err
	}
	return WriteZstd(sink, raw.Bytes())
}

// WriteZstd wraps an already-built LOMC container (e.g. from
// Encoder.EncodeWithStats) in the same outer zstd envelope EncodeZstd uses,
// for callers that need the per-frame stats EncodeZstd doesn't return.
func WriteZstd(sink io.Writer, raw []byte) error {
	zw, err := zstd.NewWriter(sink,
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
		zstd.WithLowerEncoderMem(true),
	)
	if err != nil {
		return fmt.Errorf("lomc: zstd encoder: %w", err)
	}
	if _, err := zw.Write(raw); err != nil {
		zw.Close()
		return fmt.Errorf("lomc: zstd write: %w", err)
	}
	return zw.Close()
}

// DecodeZstdEnvelope reverses EncodeZstd's outer envelope, returning the raw
// LOMC container bytes. It does not parse the container itself (§1: no
// decoder is specified beyond the container grammar).
func DecodeZstdEnvelope(src io.Reader) ([]byte, error) {
	zr, err := zstd.NewReader(src, zstd.WithDecoderLowmem(true))
	if err != nil {
		return nil, fmt.Errorf("lomc: zstd decoder: %w", err)
	}
	defer zr.Close()
	return io.ReadAll(zr)
}
