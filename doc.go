// Package lomc implements the encoder half of the LOMC v1 container: a
// block-based inter-frame delta codec for sequences of 8-bit grayscale
// images. Each 16x8 block is encoded independently as a frame-delta,
// row-delta, or raw copy, using whichever predictor fits the observed
// residuals in the fewest bits, with a forced key-block schedule so that any
// frame can be fully reconstructed within keyBlockPeriod frames regardless of
// earlier losses.
//
// The package consumes a read-only Plane (width, height, stride, byte
// accessor) and writes to an io.Writer; it does not load images from disk
// and does not decode the container it writes (see cmd/lomcenc for a
// PNG-backed driver, and DESIGN.md for why a decoder is out of scope).
package lomc
