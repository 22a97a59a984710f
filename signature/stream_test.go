/*
DESCRIPTION
  stream_test.go tests the bag-of-words bit operations and the Jaccard
  distance computed over them.

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

func TestBagOfWordsSetTest(t *testing.T) {
	var b bagOfWords
	for _, i := range []int{0, 7, 8, 127, 240, 242} {
		b.set(i)
	}
	for i := 0; i < 243; i++ {
		want := i == 0 || i == 7 || i == 8 || i == 127 || i == 240 || i == 242
		if got := b.test(i); got != want {
			t.Errorf("test(%d): got %v, want %v", i, got, want)
		}
	}
}

func TestJaccardWordIdentical(t *testing.T) {
	a := CoarseSignature{}
	for i := 0; i < 50; i++ {
		a.Words[0].set(i)
	}
	b := a
	if got := a.JaccardWord(&b, 0); got != 1 {
		t.Errorf("JaccardWord(identical): got %d, want 1", got)
	}
}

func TestJaccardWordEmptyIsZero(t *testing.T) {
	a, b := CoarseSignature{}, CoarseSignature{}
	if got := a.JaccardWord(&b, 0); got != 0 {
		t.Errorf("JaccardWord(empty, empty): got %d, want 0", got)
	}
}

func TestJaccardWordDisjointIsZero(t *testing.T) {
	a, b := CoarseSignature{}, CoarseSignature{}
	a.Words[0].set(0)
	b.Words[0].set(1)
	if got := a.JaccardWord(&b, 0); got != 0 {
		t.Errorf("JaccardWord(disjoint): got %d, want 0", got)
	}
}

func TestOpenCoarseThreadsNext(t *testing.T) {
	sc := NewStreamContext(64, 64, Rational{Num: 1, Den: 30})
	f0 := FineSignature{Index: 0}
	f1 := FineSignature{Index: 45}

	i0 := sc.openCoarse(&f0)
	i1 := sc.openCoarse(&f1)

	if sc.Coarse[i0].next != i1 {
		t.Errorf("Coarse[%d].next: got %d, want %d", i0, sc.Coarse[i0].next, i1)
	}
	if sc.Coarse[i1].next != -1 {
		t.Errorf("Coarse[%d].next: got %d, want -1", i1, sc.Coarse[i1].next)
	}
}
