/*
DESCRIPTION
  distance_test.go tests the ternary L1 distance lookup table.

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

func TestTernaryDistance(t *testing.T) {
	tests := []struct {
		a, b int
		want uint8
	}{
		{a: 0, b: 0, want: 0},
		{a: 0, b: 242, want: 10},
		{a: 121, b: 121, want: 0},
	}

	for i, test := range tests {
		got := ternaryDistance(test.a, test.b)
		if got != test.want {
			t.Errorf("test %d: ternaryDistance(%d, %d): got %d, want %d", i, test.a, test.b, got, test.want)
		}
	}
}

func TestL1LUTSymmetric(t *testing.T) {
	lut := NewL1LUT()
	for a := 0; a < wordRange; a += 7 {
		for b := 0; b < wordRange; b += 11 {
			if lut.Dist(a, b) != lut.Dist(b, a) {
				t.Errorf("Dist(%d, %d) = %d != Dist(%d, %d) = %d", a, b, lut.Dist(a, b), b, a, lut.Dist(b, a))
			}
		}
	}
}

func TestL1LUTMatchesDirect(t *testing.T) {
	lut := NewL1LUT()
	for a := 0; a < wordRange; a += 13 {
		for b := 0; b < wordRange; b += 17 {
			want := ternaryDistance(a, b)
			if got := lut.Dist(a, b); got != want {
				t.Errorf("Dist(%d, %d): got %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestFrameDistanceZeroForIdentical(t *testing.T) {
	lut := NewL1LUT()
	var a [76]byte
	for i := range a {
		a[i] = byte(i % 243)
	}
	if got := lut.FrameDistance(&a, &a); got != 0 {
		t.Errorf("FrameDistance(a, a): got %d, want 0", got)
	}
}
