/*
DESCRIPTION
  reduce_test.go tests the frame reducer's summed-area table against a
  flat (constant-luminance) frame, where every rectangle sum is trivially
  predictable.

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

import "testing"

func flatFrame(w, h int, val byte) []byte {
	pix := make([]byte, w*h)
	for i := range pix {
		pix[i] = val
	}
	return pix
}

func TestReduceFlatFrameWholeGrid(t *testing.T) {
	const w, h = 320, 240
	pix := flatFrame(w, h, 100)
	rf := Reduce(w, h, w, pix)

	whole := block{x0: 0, y0: 0, x1: gridSize - 1, y1: gridSize - 1}
	sum := rf.rectSum(whole)
	if sum <= 0 {
		t.Fatalf("rectSum over whole grid: got %d, want > 0", sum)
	}

	// Every cell of a flat frame scales identically, so the whole-grid sum
	// must equal gridSize*gridSize times any single corner cell's value.
	corner := block{x0: 0, y0: 0, x1: 0, y1: 0}
	cellSum := rf.rectSum(corner)
	want := cellSum * gridSize * gridSize
	if sum != want {
		t.Errorf("rectSum over whole grid: got %d, want %d (cell %d)", sum, want, cellSum)
	}
}

func TestReduceRectSumAdditive(t *testing.T) {
	const w, h = 320, 240
	pix := flatFrame(w, h, 50)
	rf := Reduce(w, h, w, pix)

	left := block{x0: 0, y0: 0, x1: 15, y1: 31}
	right := block{x0: 16, y0: 0, x1: 31, y1: 31}
	whole := block{x0: 0, y0: 0, x1: 31, y1: 31}

	if got, want := rf.rectSum(left)+rf.rectSum(right), rf.rectSum(whole); got != want {
		t.Errorf("rectSum(left)+rectSum(right): got %d, want %d", got, want)
	}
}

func TestReduceNonMultipleDimensions(t *testing.T) {
	const w, h = 100, 75
	pix := flatFrame(w, h, 10)
	rf := Reduce(w, h, w, pix)

	whole := block{x0: 0, y0: 0, x1: gridSize - 1, y1: gridSize - 1}
	if sum := rf.rectSum(whole); sum <= 0 {
		t.Errorf("rectSum over whole grid for non-multiple dimensions: got %d, want > 0", sum)
	}
}
