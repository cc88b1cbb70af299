package lomc

import "testing"

// checkerPlane is a tiny Plane used across the predictor tests.
type checkerPlane struct {
	w, h, stride int
	pix          []uint8
}

func newCheckerPlane(w, h int, fn func(x, y int) uint8) *checkerPlane {
	p := &checkerPlane{w: w, h: h, stride: w, pix: make([]uint8, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p.pix[y*w+x] = fn(x, y)
		}
	}
	return p
}

func (p *checkerPlane) Width() int    { return p.w }
func (p *checkerPlane) Height() int   { return p.h }
func (p *checkerPlane) Stride() int   { return p.stride }
func (p *checkerPlane) At(x, y int) uint8 {
	return p.pix[y*p.stride+x]
}

// fitsWidth reports whether residual byte v (after the width's own offset)
// fits in w bits, the "reported width suffices" property from §8.
func fitsWidth(v uint8, w Width) bool {
	if w == Width8 {
		return true
	}
	return v < uint8(1)<<uint(w)
}

func TestPredictCopyReportsWidth8(t *testing.T) {
	plane := newCheckerPlane(16, 8, func(x, y int) uint8 { return uint8(x*13 + y*7) })
	var tile residualTile
	w := predictCopy(plane, 0, 0, 16, 8, &tile)
	if w != Width8 {
		t.Fatalf("predictCopy width = %d, want 8", w)
	}
	for y := 0; y < 8; y++ {
		row := tile.row(y)
		for x := 0; x < 16; x++ {
			if row[x] != plane.At(x, y) {
				t.Fatalf("copy mismatch at (%d,%d): got %d want %d", x, y, row[x], plane.At(x, y))
			}
		}
	}
}

func TestPredictRowDeltaSolidBlock(t *testing.T) {
	plane := newCheckerPlane(16, 8, func(x, y int) uint8 { return 128 })
	var tile residualTile
	w := predictRowDelta(plane, 0, 0, 16, 8, &tile)
	if w != Width0 {
		t.Fatalf("solid block row-delta width = %d, want 0", w)
	}
	row0 := tile.row(0)
	for x := 0; x < 16; x++ {
		if row0[x] != 128 {
			t.Fatalf("row 0 not raw: got %d want 128", row0[x])
		}
	}
}

func TestPredictRowDeltaWidthSuffices(t *testing.T) {
	plane := newCheckerPlane(16, 8, func(x, y int) uint8 { return uint8((x*31 + y*97) % 256) })
	var tile residualTile
	w := predictRowDelta(plane, 0, 0, 16, 8, &tile)
	offset := valueOffset(w)
	for y := 1; y < 8; y++ {
		row := tile.row(y)
		for x := 0; x < 16; x++ {
			v := row[x] + offset
			if !fitsWidth(v, w) {
				t.Fatalf("residual at (%d,%d)=%d (offset %d) does not fit reported width %d", x, y, row[x], offset, w)
			}
		}
	}
}

func TestPredictFrameDeltaConstantMinusOne(t *testing.T) {
	cur := newCheckerPlane(16, 8, func(x, y int) uint8 { return uint8(x + y) })
	prev := newCheckerPlane(16, 8, func(x, y int) uint8 { return uint8(x + y + 1) })
	var tile residualTile
	w := predictFrameDelta(cur, prev, 0, 0, 16, 8, &tile)
	if w != Width1 {
		t.Fatalf("constant -1 delta width = %d, want 1", w)
	}
	row := tile.row(0)
	for x := 0; x < 16; x++ {
		if row[x] != 0xFF {
			t.Fatalf("delta byte = %#x, want 0xff (-1)", row[x])
		}
	}
}

func TestPredict2DDeltaSolidBlock(t *testing.T) {
	// predict2DDelta itself must still behave (§9 "dormant" only means
	// selectBlock never calls it, not that it's broken).
	plane := newCheckerPlane(16, 8, func(x, y int) uint8 { return 50 })
	var tile residualTile
	w := predict2DDelta(plane, 0, 0, 16, 8, &tile)
	if w != Width0 {
		t.Fatalf("solid block 2D-delta width = %d, want 0", w)
	}
}
