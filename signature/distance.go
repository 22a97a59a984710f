/*
DESCRIPTION
  distance.go builds the L1 distance lookup table over the ternary
  alphabet (C1), used when comparing frame signature bytes for the Hough
  and sequence-evaluation stages. Modelled on signature_lookup.c's
  fill_l1distlut.

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

// wordRange is one past the largest value a base-3, 5-digit word (or frame
// signature byte) can take: 3^5 = 243.
const wordRange = 243

// lutSize is the number of unordered pairs of distinct values in
// [0, wordRange), i.e. 243*242/2.
const lutSize = wordRange * (wordRange - 1) / 2

// L1LUT is the precomputed table of L1 distances between base-3 digit
// representations of every pair of values in [0, wordRange). It is filled
// once per matching session (see NewL1LUT) and is read-only thereafter.
type L1LUT struct {
	table [lutSize]uint8
}

// NewL1LUT builds the L1 distance lookup table.
func NewL1LUT() *L1LUT {
	lut := &L1LUT{}
	for i := 0; i < wordRange-1; i++ {
		for j := i + 1; j < wordRange; j++ {
			lut.table[lutIndex(i, j)] = ternaryDistance(i, j)
		}
	}
	return lut
}

// Dist returns the L1 distance between a and b, each in [0, wordRange).
func (lut *L1LUT) Dist(a, b int) uint8 {
	if a == b {
		return 0
	}
	return lut.table[lutIndex(a, b)]
}

// lutIndex returns the table index for the unordered pair (a, b), a != b,
// per spec.md §3:
//
//	243*242/2 - (243-min)*(242-min)/2 + |max-min| - 1
func lutIndex(a, b int) int {
	min, max := a, b
	if min > max {
		min, max = max, min
	}
	return lutSize - (wordRange-min)*(wordRange-1-min)/2 + (max - min) - 1
}

// ternaryDigits decomposes v (0..242) into its five base-3 digits, most
// significant first, matching the packing byte = d0*81+d1*27+d2*9+d3*3+d4.
func ternaryDigits(v int) [5]int {
	return [5]int{
		(v / 81) % 3,
		(v / 27) % 3,
		(v / 9) % 3,
		(v / 3) % 3,
		v % 3,
	}
}

// ternaryDistance is the sum of absolute per-digit differences between the
// base-3 digit representations of a and b.
func ternaryDistance(a, b int) uint8 {
	da := ternaryDigits(a)
	db := ternaryDigits(b)
	var sum int
	for i := range da {
		d := da[i] - db[i]
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return uint8(sum)
}

// FrameDistance returns the total L1 distance between two 76-byte frame
// signatures, summing the per-byte ternary distance over all 76 positions.
func (lut *L1LUT) FrameDistance(a, b *[76]byte) int {
	sum := 0
	for i := range a {
		sum += int(lut.Dist(int(a[i]), int(b[i])))
	}
	return sum
}
