package lomc

// blockKind is the 2-bit "kind" field of a control byte (§3).
type blockKind uint8

const (
	kindFrameDelta blockKind = 0
	kindRowDelta   blockKind = 1
	kindCopy       blockKind = 2
)

// controlByte packs (kind<<4)|width into the block's single header byte.
func controlByte(k blockKind, w Width) uint8 {
	return uint8(k)<<4 | uint8(w)
}

// isForcedKey reports whether block blockIdx in frame frameIdx must not be
// frame-delta encoded (§4.4's key-block rule). Every block is reconstructible
// within keyBlockPeriod frames regardless of predecessor losses.
func isForcedKey(frameIdx, blockIdx int) bool {
	return (frameIdx+blockIdx)%keyBlockPeriod == 0
}

// blockResult is the outcome of selectBlock: the chosen kind and width, and
// which of the two residual tiles holds the winning data.
type blockResult struct {
	kind    blockKind
	width   Width
	tileIdx int
}

// selectBlock implements §4.4: try frame-delta, then row-delta, then fall
// back to raw copy, keeping whichever candidate has the smallest width and
// breaking ties in that priority order, except that a best width of 8 is
// always replaced by raw copy. tiles is the caller's per-block
// double-buffer; selectBlock only ever writes a new candidate into the slot
// that isn't currently holding the incumbent, so the winner is never
// aliased by a later, rejected candidate.
func selectBlock(cur, prev Plane, x0, y0, bw, bh, frameIdx, blockIdx int, tiles *[2]residualTile) blockResult {
	const sentinelWidth = Width(9)
	best := blockResult{kind: kindCopy, width: sentinelWidth}
	scratch := 0

	if frameIdx > 0 && !isForcedKey(frameIdx, blockIdx) {
		w := predictFrameDelta(cur, prev, x0, y0, bw, bh, &tiles[scratch])
		if w < best.width {
			best = blockResult{kind: kindFrameDelta, width: w, tileIdx: scratch}
			scratch = 1 - scratch
		}
	}

	if best.width > Width2 {
		w := predictRowDelta(cur, x0, y0, bw, bh, &tiles[scratch])
		if w < best.width {
			best = blockResult{kind: kindRowDelta, width: w, tileIdx: scratch}
			scratch = 1 - scratch
		}
	}

	if best.width >= Width8 {
		w := predictCopy(cur, x0, y0, bw, bh, &tiles[scratch])
		best = blockResult{kind: kindCopy, width: w, tileIdx: scratch}
	}

	return best
}
