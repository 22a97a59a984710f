/*
DESCRIPTION
  reduce.go implements the frame reducer (C2): reduction of an arbitrary
  size luminance frame to a 32x32 grid of block means, scaled to a common
  integer denominator and converted into a summed-area table.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package signature

// BlockLCM is the least common multiple of the possible 32x32-grid block
// area products for resolutions the descriptor is defined over; used as
// the precision factor when exact-integer arithmetic is safe.
const BlockLCM = 476985600

// precisionFactor is the fixed-point scale used on the lossy (divide-flag
// set) path, where exactness is traded for guaranteed no-overflow.
const precisionFactor = 65536

// reducedFrame is the output of Reduce: a summed-area table over the
// rescaled 32x32 mean grid, plus the scaling metadata needed to interpret
// it (see signature.md §4.C2).
type reducedFrame struct {
	sat        [gridSize][gridSize]int64
	denom      int64
	precfactor int64
	divide     bool
}

// Reduce computes the 32x32 summed-area table for one planar 8-bit
// luminance frame of width w, height h. pix holds h rows of stride bytes
// each; only the first w bytes of each row are luminance samples.
func Reduce(w, h int, stride int, pix []byte) *reducedFrame {
	rf := &reducedFrame{}

	dh1 := h / gridSize
	dh2 := dh1
	if h%gridSize != 0 {
		dh2++
	}
	dw1 := w / gridSize
	dw2 := dw1
	if w%gridSize != 0 {
		dw2++
	}

	// Overflow check per spec.md §4.C2 step B.
	const maxSafe = int64(1<<63 - 1)
	lhs := int64(w/gridSize) * int64(w/gridSize+1) * (int64(h/gridSize)*int64(h/gridSize) + 1)
	rhs := maxSafe / (BlockLCM * 255)
	rf.divide = lhs > rhs

	commonDenom := int64(dh1) * int64(dh2) * int64(dw1) * int64(dw2)

	var grid [gridSize][gridSize]int64
	for i := 0; i < gridSize; i++ {
		y0 := i * h / gridSize
		y1 := (i + 1) * h / gridSize
		rowH := int64(y1 - y0)
		for j := 0; j < gridSize; j++ {
			x0 := j * w / gridSize
			x1 := (j + 1) * w / gridSize
			colW := int64(x1 - x0)

			var sum int64
			for y := y0; y < y1; y++ {
				row := pix[y*stride : y*stride+w]
				for x := x0; x < x1; x++ {
					sum += int64(row[x])
				}
			}

			area := rowH * colW
			if rf.divide {
				grid[i][j] = sum * precisionFactor / area
			} else {
				grid[i][j] = sum * (commonDenom / area) * BlockLCM
			}
		}
	}

	if rf.divide {
		rf.precfactor = precisionFactor
		rf.denom = 1
	} else {
		rf.precfactor = BlockLCM
		rf.denom = commonDenom
	}

	// Step C: 2-D prefix sum, rows then columns.
	for i := 0; i < gridSize; i++ {
		for j := 1; j < gridSize; j++ {
			grid[i][j] += grid[i][j-1]
		}
	}
	for j := 0; j < gridSize; j++ {
		for i := 1; i < gridSize; i++ {
			grid[i][j] += grid[i-1][j]
		}
	}
	rf.sat = grid

	return rf
}

// rectSum returns the sum of scaled cell values within the inclusive block
// [x0,x1]x[y0,y1] of the 32x32 grid, via the summed-area table.
func (rf *reducedFrame) rectSum(b block) int64 {
	sum := rf.sat[b.y1][b.x1]
	if b.y0 > 0 {
		sum -= rf.sat[b.y0-1][b.x1]
	}
	if b.x0 > 0 {
		sum -= rf.sat[b.y1][b.x0-1]
	}
	if b.x0 > 0 && b.y0 > 0 {
		sum += rf.sat[b.y0-1][b.x0-1]
	}
	return sum
}
