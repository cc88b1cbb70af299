package lomc

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// checkFits verifies a residual byte, after any width offset, actually fits
// in w bits. This is the InternalInvariant check from §7: a violation means
// the classifier and the packer disagree about what a given width can hold,
// which is a codec bug, not a caller error.
func checkFits(v uint8, w Width) error {
	if w == Width8 {
		return nil
	}
	limit := uint8(1) << uint(w)
	if v >= limit {
		return fmt.Errorf("%w: value %d does not fit width %d", ErrInternalInvariant, v, w)
	}
	return nil
}

// packBlockRows appends the packed payload for one block's residual tile to
// dst, given the block's chosen kind/width and height. Row 0 of a row-delta
// block, and every row of a copy block, carries raw pixels and is always
// emitted at Width8 with no offset; every other row has valueOffset(width)
// added (mod 256) before packing (§4.2, §6).
func packBlockRows(dst *bytes.Buffer, tile *residualTile, kind blockKind, width Width, bh int) error {
	switch width {
	case Width0, Width1, Width2, Width4, Width8:
	default:
		return fmt.Errorf("%w: width %d is not one of 0, 1, 2, 4, 8", ErrInternalInvariant, width)
	}

	for y := 0; y < bh; y++ {
		rowWidth := width
		if kind == kindCopy || (kind == kindRowDelta && y == 0) {
			rowWidth = Width8
		}

		var buf [blockWidth]uint8
		copy(buf[:], tile.row(y))

		if rowWidth != Width8 {
			offset := valueOffset(rowWidth)
			for i := range buf {
				buf[i] += offset
				if err := checkFits(buf[i], rowWidth); err != nil {
					return err
				}
			}
		}

		if _, err := dst.Write(packRow(rowWidth, buf)); err != nil {
			return err
		}
	}
	return nil
}

// encodeFrame drives the block grid for one frame (§4.5): it iterates blocks
// in raster order, runs the block selector on each, and assembles the
// 4-byte size prefix, control array, and packed payload into a single frame
// record (§6).
func encodeFrame(cur, prev Plane, frameIdx int, tiles *[2]residualTile) ([]byte, error) {
	w, h := cur.Width(), cur.Height()
	blocksX := (w + blockWidth - 1) / blockWidth
	blocksY := (h + blockHeight - 1) / blockHeight
	numBlocks := blocksX * blocksY
	controlSize := roundUp(numBlocks, keyBlockPeriod)

	control := make([]byte, controlSize)
	var payload bytes.Buffer

	blockIdx := 0
	for by := 0; by < blocksY; by++ {
		y0 := by * blockHeight
		bh := blockHeight
		if y0+bh > h {
			bh = h - y0
		}
		for bx := 0; bx < blocksX; bx++ {
			x0 := bx * blockWidth
			bw := blockWidth
			if x0+bw > w {
				bw = w - x0
			}

			res := selectBlock(cur, prev, x0, y0, bw, bh, frameIdx, blockIdx, tiles)
			control[blockIdx] = controlByte(res.kind, res.width)

			if err := packBlockRows(&payload, &tiles[res.tileIdx], res.kind, res.width, bh); err != nil {
				return nil, err
			}

			blockIdx++
		}
	}

	frameSize := 4 + len(control) + payload.Len()
	out := make([]byte, frameSize)
	binary.LittleEndian.PutUint32(out[0:4], uint32(frameSize))
	copy(out[4:], control)
	copy(out[4+len(control):], payload.Bytes())
	return out, nil
}
