package lomc

import "encoding/binary"

// packRow packs 16 unsigned bytes (already offset into [0, 2^w - 1]) into
// 2*w output bytes using the fixed bit-interleaving permutation from §4.2.
// For w == Width0 the output is empty; for w == Width8 it is the 16 input
// bytes verbatim.
func packRow(w Width, in [blockWidth]uint8) []byte {
	switch w {
	case Width0:
		return nil
	case Width1:
		return packBits1(in)
	case Width2:
		return packBits2(in)
	case Width4:
		return packBits4(in)
	default:
		return packBits8(in)
	}
}

// unpackRow is the inverse of packRow; it exists to validate the round-trip
// property from §8 and to give a future decoder a correct starting point
// (see DESIGN.md's Open Question on the bit permutation).
func unpackRow(w Width, packed []byte) [blockWidth]uint8 {
	switch w {
	case Width0:
		return [blockWidth]uint8{}
	case Width1:
		return unpackBits1(packed)
	case Width2:
		return unpackBits2(packed)
	case Width4:
		return unpackBits4(packed)
	default:
		return unpackBits8(packed)
	}
}

// The pack/unpack pairs below mirror original_source/src/demo.cpp's
// packbits_N: each reads 16 bytes as four little-endian 32-bit words and
// redistributes a fixed bit-plane of each byte into the output word(s).
//
// packBits1's second source word uses a >>6 shift where demo.cpp has >>8 (a
// transcription bug there that collides two input bits onto output bit 8 and
// leaves output bit 10 always zero, breaking the pack/unpack identity). Every
// other word in every width follows one consistent rule — each 32-bit source
// word contributes a contiguous group of output bits, ordered high word to
// low word and, within a word, high source byte to low source byte — and
// >>6 is the shift that rule predicts. See DESIGN.md.

func packBits1(in [blockWidth]uint8) []byte {
	s1 := binary.LittleEndian.Uint32(in[0:4])
	s2 := binary.LittleEndian.Uint32(in[4:8])
	s3 := binary.LittleEndian.Uint32(in[8:12])
	s4 := binary.LittleEndian.Uint32(in[12:16])

	const (
		mask1 = 0x01000000
		mask2 = 0x00010000
		mask3 = 0x00000100
		mask4 = 0x00000001
	)

	d := ((s1 & mask1) >> 9) | ((s1 & mask2) >> 2) | ((s1 & mask3) << 5) | ((s1 & mask4) << 12) |
		((s2 & mask1) >> 13) | ((s2 & mask2) >> 6) | ((s2 & mask3) << 1) | ((s2 & mask4) << 8) |
		((s3 & mask1) >> 17) | ((s3 & mask2) >> 10) | ((s3 & mask3) >> 3) | ((s3 & mask4) << 4) |
		((s4 & mask1) >> 21) | ((s4 & mask2) >> 14) | ((s4 & mask3) >> 7) | (s4 & mask4)

	out := make([]byte, 2)
	binary.LittleEndian.PutUint16(out, uint16(d))
	return out
}

func unpackBits1(packed []byte) [blockWidth]uint8 {
	d := uint32(binary.LittleEndian.Uint16(packed))
	var out [blockWidth]uint8
	bit := func(idx int, pos uint) {
		out[idx] = uint8((d >> pos) & 1)
	}
	bit(0, 12)
	bit(1, 13)
	bit(2, 14)
	bit(3, 15)
	bit(4, 8)
	bit(5, 9)
	bit(6, 10)
	bit(7, 11)
	bit(8, 4)
	bit(9, 5)
	bit(10, 6)
	bit(11, 7)
	bit(12, 0)
	bit(13, 1)
	bit(14, 2)
	bit(15, 3)
	return out
}

func packBits2(in [blockWidth]uint8) []byte {
	s1 := binary.LittleEndian.Uint32(in[0:4])
	s2 := binary.LittleEndian.Uint32(in[4:8])
	s3 := binary.LittleEndian.Uint32(in[8:12])
	s4 := binary.LittleEndian.Uint32(in[12:16])

	const (
		mask1 = 0x03000000
		mask2 = 0x00030000
		mask3 = 0x00000300
		mask4 = 0x00000003
	)

	d := ((s1 & mask1) << 6) | ((s1 & mask2) << 12) | ((s1 & mask3) << 18) | ((s1 & mask4) << 24) |
		((s2 & mask1) >> 2) | ((s2 & mask2) << 4) | ((s2 & mask3) << 10) | ((s2 & mask4) << 16) |
		((s3 & mask1) >> 10) | ((s3 & mask2) >> 4) | ((s3 & mask3) << 2) | ((s3 & mask4) << 8) |
		((s4 & mask1) >> 18) | ((s4 & mask2) >> 12) | ((s4 & mask3) >> 6) | (s4 & mask4)

	out := make([]byte, 4)
	binary.LittleEndian.PutUint32(out, d)
	return out
}

func unpackBits2(packed []byte) [blockWidth]uint8 {
	d := binary.LittleEndian.Uint32(packed)
	var out [blockWidth]uint8
	pos := [blockWidth]uint{24, 26, 28, 30, 16, 18, 20, 22, 8, 10, 12, 14, 0, 2, 4, 6}
	for i, p := range pos {
		out[i] = uint8((d >> p) & 0x3)
	}
	return out
}

func packBits4(in [blockWidth]uint8) []byte {
	s1 := binary.LittleEndian.Uint32(in[0:4])
	s2 := binary.LittleEndian.Uint32(in[4:8])
	s3 := binary.LittleEndian.Uint32(in[8:12])
	s4 := binary.LittleEndian.Uint32(in[12:16])

	const (
		mask1 = 0x0f000000
		mask2 = 0x000f0000
		mask3 = 0x00000f00
		mask4 = 0x0000000f
	)

	d1 := ((s1 & mask1) << 4) | ((s1 & mask2) << 8) | ((s1 & mask3) << 12) | ((s1 & mask4) << 16) |
		((s2 & mask1) >> 12) | ((s2 & mask2) >> 8) | ((s2 & mask3) >> 4) | (s2 & mask4)
	d2 := ((s3 & mask1) << 4) | ((s3 & mask2) << 8) | ((s3 & mask3) << 12) | ((s3 & mask4) << 16) |
		((s4 & mask1) >> 12) | ((s4 & mask2) >> 8) | ((s4 & mask3) >> 4) | (s4 & mask4)

	out := make([]byte, 8)
	binary.LittleEndian.PutUint32(out[0:4], d1)
	binary.LittleEndian.PutUint32(out[4:8], d2)
	return out
}

func unpackBits4(packed []byte) [blockWidth]uint8 {
	d1 := binary.LittleEndian.Uint32(packed[0:4])
	d2 := binary.LittleEndian.Uint32(packed[4:8])
	var out [blockWidth]uint8
	pos := [8]uint{16, 20, 24, 28, 0, 4, 8, 12}
	for i, p := range pos {
		out[i] = uint8((d1 >> p) & 0xf)
	}
	for i, p := range pos {
		out[8+i] = uint8((d2 >> p) & 0xf)
	}
	return out
}

func packBits8(in [blockWidth]uint8) []byte {
	out := make([]byte, blockWidth)
	copy(out, in[:])
	return out
}

func unpackBits8(packed []byte) [blockWidth]uint8 {
	var out [blockWidth]uint8
	copy(out[:], packed)
	return out
}
