package lomc

import (
	"image"
	"image/color"
)

// PlaneFromImage converts any decoded image.Image to a grayscale BytePlane,
// the same conversion the teacher's own CLI does on the way into its block
// codec (color.GrayModel.Convert per pixel).
func PlaneFromImage(img image.Image) *BytePlane {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	p := NewBytePlane(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gray := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			p.Pix[y*p.Strd+x] = gray.Y
		}
	}
	return p
}

// BlockMapImage renders FrameStats.ControlBytes as a block-grid debug
// image: one pixel per block, brightness encoding (kind, width), scaled up
// by px so it's visible at normal zoom. Stands in for the original source's
// per-frame debug PNG dump (see SPEC_FULL.md's supplemented features).
func BlockMapImage(stats FrameStats, px int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, stats.BlocksX*px, stats.BlocksY*px))
	for by := 0; by < stats.BlocksY; by++ {
		for bx := 0; bx < stats.BlocksX; bx++ {
			cb := stats.ControlBytes[by*stats.BlocksX+bx]
			kind := int(cb >> 4)
			width := int(cb & 0x0F)
			// Kind dominates the high bits so copy/row-delta/frame-delta
			// blocks are visually distinct bands; width modulates brightness
			// within a band.
			v := uint8(40 + kind*70 + width*3)
			for y := 0; y < px; y++ {
				for x := 0; x < px; x++ {
					img.SetGray(bx*px+x, by*px+y, color.Gray{Y: v})
				}
			}
		}
	}
	return img
}
