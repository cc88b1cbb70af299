package lomc

// residualTile is a 16x8 buffer of two's-complement byte deltas, laid out
// row-major at a fixed stride of blockWidth (§3's "residual tile"). Two are
// kept as a double-buffer per block so a candidate predictor's output can be
// discarded without touching the previously-best one (§9).
type residualTile struct {
	data [blockHeight * blockWidth]uint8
}

func (t *residualTile) row(y int) []uint8 {
	return t.data[y*blockWidth : y*blockWidth+blockWidth]
}

// predictCopy fills dst with the raw source pixels. Always reports Width8.
func predictCopy(src Plane, x0, y0, bw, bh int, dst *residualTile) Width {
	for y := 0; y < bh; y++ {
		row := dst.row(y)
		for x := 0; x < bw; x++ {
			row[x] = src.At(x0+x, y0+y)
		}
	}
	return Width8
}

// predictRowDelta fills row 0 with the raw source pixels and every
// subsequent row with the wrapping delta to the row above it. The reported
// width covers only rows 1..bh-1, since row 0 is always sent raw (§4.3).
func predictRowDelta(src Plane, x0, y0, bw, bh int, dst *residualTile) Width {
	row0 := dst.row(0)
	for x := 0; x < bw; x++ {
		row0[x] = src.At(x0+x, y0)
	}

	r := newDeltaRange()
	for y := 1; y < bh; y++ {
		row := dst.row(y)
		for x := 0; x < bw; x++ {
			d := src.At(x0+x, y0+y) - src.At(x0+x, y0+y-1)
			row[x] = d
			r.observe(d)
		}
	}
	return r.width()
}

// predictFrameDelta fills every row with the wrapping delta between the
// current and previous frame's pixels at the same block position. cur and
// prev must share dimensions (enforced by the caller, which only attempts
// this predictor when a same-sized previous plane exists); both are read
// through At, so their strides may differ.
func predictFrameDelta(cur, prev Plane, x0, y0, bw, bh int, dst *residualTile) Width {
	r := newDeltaRange()
	for y := 0; y < bh; y++ {
		row := dst.row(y)
		for x := 0; x < bw; x++ {
			d := cur.At(x0+x, y0+y) - prev.At(x0+x, y0+y)
			row[x] = d
			r.observe(d)
		}
	}
	return r.width()
}

// predict2DDelta is the dormant A+B-C neighbor predictor documented in §9 and
// present in original_source/src/demo.cpp as block_2d_delta. It is never
// selected by selectBlock and never appears in a control byte's kind field;
// it is kept only because the spec explicitly preserves it as dormant, and
// it is exercised solely by its own test.
func predict2DDelta(src Plane, x0, y0, bw, bh int, dst *residualTile) Width {
	r := newDeltaRange()
	for y := 0; y < bh; y++ {
		row := dst.row(y)
		for x := 0; x < bw; x++ {
			var predicted uint8
			switch {
			case x > 0 && y > 0:
				predicted = src.At(x0+x-1, y0+y) + src.At(x0+x, y0+y-1) - src.At(x0+x-1, y0+y-1)
			case x > 0:
				predicted = src.At(x0+x-1, y0+y)
			case y > 0:
				predicted = src.At(x0+x, y0+y-1)
			default:
				predicted = 0
			}
			d := src.At(x0+x, y0+y) - predicted
			row[x] = d
			if x > 0 || y > 0 {
				r.observe(d)
			}
		}
	}
	return r.width()
}
