/*
DESCRIPTION
  compute_test.go tests the signature computer against a flat
  (constant-luminance) frame, whose ternary digits are all predictably 1,
  a gradient frame, whose confidence must be nonzero, and checks the
  coarse-window opening cadence.

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

func TestComputeFlatFrameAllOnes(t *testing.T) {
	const w, h = 320, 240
	sc := NewStreamContext(w, h, Rational{Num: 1, Den: 30})
	pix := flatFrame(w, h, 100)

	fs := Compute(sc, w, h, w, pix, 0)

	for i, b := range fs.Bytes {
		if b != 121 {
			t.Errorf("Bytes[%d]: got %d, want 121", i, b)
		}
	}
	for i, word := range fs.Words {
		if word != 121 {
			t.Errorf("Words[%d]: got %d, want 121", i, word)
		}
	}
	if fs.Confidence != 0 {
		t.Errorf("Confidence: got %d, want 0", fs.Confidence)
	}
}

func TestComputeGradientFrameNonzeroConfidence(t *testing.T) {
	const w, h = 320, 240
	sc := NewStreamContext(w, h, Rational{Num: 1, Den: 30})
	pix := make([]byte, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pix[y*w+x] = byte((x + y) % 256)
		}
	}

	fs := Compute(sc, w, h, w, pix, 0)

	if fs.Confidence == 0 {
		t.Error("Confidence: got 0 for a non-flat frame, want > 0")
	}
}

func TestComputeAppendsToStream(t *testing.T) {
	const w, h = 320, 240
	sc := NewStreamContext(w, h, Rational{Num: 1, Den: 30})
	pix := flatFrame(w, h, 100)

	for i := 0; i < 5; i++ {
		Compute(sc, w, h, w, pix, int64(i))
	}
	if len(sc.Fine) != 5 {
		t.Fatalf("len(sc.Fine): got %d, want 5", len(sc.Fine))
	}
	if sc.LastIndex() != 4 {
		t.Errorf("LastIndex: got %d, want 4", sc.LastIndex())
	}
	for i, fs := range sc.Fine {
		if int(fs.Index) != i {
			t.Errorf("Fine[%d].Index: got %d, want %d", i, fs.Index, i)
		}
	}
}

func TestUpdateCoarseOpensSecondWindowAt45(t *testing.T) {
	const w, h = 320, 240
	sc := NewStreamContext(w, h, Rational{Num: 1, Den: 30})
	pix := flatFrame(w, h, 100)

	for i := 0; i < 45; i++ {
		Compute(sc, w, h, w, pix, int64(i))
	}
	if len(sc.Coarse) != 1 {
		t.Fatalf("after 45 frames, len(sc.Coarse): got %d, want 1", len(sc.Coarse))
	}

	Compute(sc, w, h, w, pix, 45)
	if len(sc.Coarse) != 2 {
		t.Fatalf("after 46 frames, len(sc.Coarse): got %d, want 2", len(sc.Coarse))
	}
	if sc.Coarse[0].FirstIndex != 0 {
		t.Errorf("Coarse[0].FirstIndex: got %d, want 0", sc.Coarse[0].FirstIndex)
	}
	if sc.Coarse[1].FirstIndex != 45 {
		t.Errorf("Coarse[1].FirstIndex: got %d, want 45", sc.Coarse[1].FirstIndex)
	}
}

func TestUpdateCoarseReopensAt90(t *testing.T) {
	const w, h = 320, 240
	sc := NewStreamContext(w, h, Rational{Num: 1, Den: 30})
	pix := flatFrame(w, h, 100)

	for i := 0; i < 90; i++ {
		Compute(sc, w, h, w, pix, int64(i))
	}
	if len(sc.Coarse) != 2 {
		t.Fatalf("after 90 frames, len(sc.Coarse): got %d, want 2", len(sc.Coarse))
	}

	Compute(sc, w, h, w, pix, 90)
	if len(sc.Coarse) != 3 {
		t.Fatalf("after 91 frames, len(sc.Coarse): got %d, want 3", len(sc.Coarse))
	}
	if sc.Coarse[2].FirstIndex != 90 {
		t.Errorf("Coarse[2].FirstIndex: got %d, want 90", sc.Coarse[2].FirstIndex)
	}
}
