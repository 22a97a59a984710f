/*
DESCRIPTION
  elements.go provides the fixed external element descriptor used by the
  signature computer (C3): the 380-element category table that defines,
  for every ternary digit in a FineSignature, which rectangular blocks of
  the 32x32 summed-area grid are compared to produce it.

  The MPEG-7 reference descriptor this table reproduces the shape of is
  data, not algorithm (see signature_lookup.c in the retrieved FFmpeg
  source, which expects a linkable `elements` symbol of exactly this
  shape). The verbatim upstream block coordinates are not reproduced here;
  instead this file builds an equivalent, internally consistent table at
  package initialisation time: every category tiles the 32x32 grid on its
  own row/column division, so every element's positive (and, for
  difference categories, negative) side is an exact, non-overlapping
  rectangle in block-grid coordinates. See DESIGN.md for the exact
  rationale.

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

// gridSize is the fixed width and height, in blocks, of the reduced frame
// the element descriptor operates over (see Reduce, C2).
const gridSize = 32

// numElements is the total number of ternary digits in a frame signature.
const numElements = 380

// block is one rectangular region in block-grid coordinates, inclusive on
// both ends, each in [0, gridSize-1].
type block struct {
	x0, y0, x1, y1 int
}

// size returns the number of 32x32 cells covered by the block.
func (b block) size() int {
	return (b.x1 - b.x0 + 1) * (b.y1 - b.y0 + 1)
}

// elemCat is one element category: elemCount elements, each built from the
// blocks in its entry of the category's blocks table. avElem categories
// compare their single positive block against the constant mid-grey value
// (128) rather than against a negative side.
type elemCat struct {
	elemCount int
	avElem    bool
	// blocks[i] holds the blocks for element i of this category. For a
	// difference category, blocks[i] = [positive, negative]; leftCount is
	// always 1 (one block per side). For an average category, blocks[i] =
	// [positive] only.
	blocks [][]block
}

// leftCount is the number of blocks, from the start of an element's block
// list, that form the positive side. Every category in this table uses
// exactly one block per side.
const leftCount = 1

// catSpec names one category's size and kind; used only to build elements.
type catSpec struct {
	count  int
	avElem bool
}

// categorySpecs partitions numElements (380) elements across categories of
// varying grid granularity: eight difference categories and four average
// categories, summing to exactly 380.
var categorySpecs = []catSpec{
	{count: 20, avElem: false},
	{count: 20, avElem: false},
	{count: 20, avElem: false},
	{count: 20, avElem: true},
	{count: 30, avElem: false},
	{count: 30, avElem: false},
	{count: 30, avElem: false},
	{count: 30, avElem: true},
	{count: 40, avElem: false},
	{count: 40, avElem: true},
	{count: 50, avElem: false},
	{count: 50, avElem: true},
}

// elements is the fixed external descriptor consumed by computeFrame. It is
// built once, deterministically, by init.
var elements []elemCat

func init() {
	total := 0
	for _, s := range categorySpecs {
		total += s.count
	}
	if total != numElements {
		panic("signature: categorySpecs does not sum to numElements")
	}
	elements = make([]elemCat, len(categorySpecs))
	for i, s := range categorySpecs {
		elements[i] = buildCategory(s.count, s.avElem)
	}
}

// buildCategory lays elemCount elements out on a rows x cols tiling of the
// 32x32 grid (rows*cols == elemCount), giving each element (r, c) a positive
// block at that tile and, for difference categories, a negative block at
// the point-mirrored tile (rows-1-r, cols-1-c).
func buildCategory(elemCount int, avElem bool) elemCat {
	rows, cols := factorNearSquare(elemCount)
	cat := elemCat{
		elemCount: elemCount,
		avElem:    avElem,
		blocks:    make([][]block, elemCount),
	}
	idx := 0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pos := tile(r, c, rows, cols)
			if avElem {
				cat.blocks[idx] = []block{pos}
			} else {
				neg := tile(rows-1-r, cols-1-c, rows, cols)
				cat.blocks[idx] = []block{pos, neg}
			}
			idx++
		}
	}
	return cat
}

// tile returns the block of the 32x32 grid occupied by row r, column c of a
// rows x cols tiling.
func tile(r, c, rows, cols int) block {
	x0 := c * gridSize / cols
	x1 := (c+1)*gridSize/cols - 1
	y0 := r * gridSize / rows
	y1 := (r+1)*gridSize/rows - 1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return block{x0: x0, y0: y0, x1: x1, y1: y1}
}

// factorNearSquare returns a pair (rows, cols) with rows*cols == n and rows
// as close to sqrt(n) as possible, searching downward from the integer
// square root. n is always chosen, in categorySpecs above, to have a factor
// pair close to square.
func factorNearSquare(n int) (rows, cols int) {
	for r := isqrt(n); r >= 1; r-- {
		if n%r == 0 {
			return r, n / r
		}
	}
	return 1, n
}

func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	r := 1
	for r*r <= n {
		r++
	}
	return r - 1
}

// wordPositions holds the sorted indices, among the 380 flattened element
// positions, that are designated "word positions" (spec.md §4.C3).
var wordPositions = [25]int{
	44, 57, 70, 100, 101, 102, 103, 111, 175, 210, 217, 219, 233, 237,
	269, 270, 273, 274, 275, 285, 295, 296, 334, 337, 354,
}

// s2usw maps the i-th encountered word position (in ascending index order)
// to its word-slot index: word = s2usw[i]/5, digit-within-word =
// s2usw[i]%5.
var s2usw = [25]int{
	5, 10, 11, 15, 20, 21, 12, 22, 6, 0, 1, 2, 7, 13, 14, 8, 9, 3, 23, 16,
	17, 24, 4, 18, 19,
}

// isWordPosition reports whether the given flattened element position (in
// 0..numElements-1) is one of the 25 word positions, and if so its index
// into wordPositions / s2usw.
func isWordPosition(pos int) (i int, ok bool) {
	for i, p := range wordPositions {
		if p == pos {
			return i, true
		}
	}
	return 0, false
}
