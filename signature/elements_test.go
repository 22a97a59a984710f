/*
DESCRIPTION
  elements_test.go checks the structural invariants of the element
  descriptor table: total element count, word position count, and that
  s2usw is a bijection over its domain.

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

func TestElementCountTotalsNumElements(t *testing.T) {
	total := 0
	for _, cat := range elements {
		total += cat.elemCount
	}
	if total != numElements {
		t.Errorf("total element count: got %d, want %d", total, numElements)
	}
}

func TestWordPositionsCount(t *testing.T) {
	if len(wordPositions) != 25 {
		t.Errorf("len(wordPositions): got %d, want 25", len(wordPositions))
	}
	for _, pos := range wordPositions {
		if pos < 0 || pos >= numElements {
			t.Errorf("word position %d out of range [0, %d)", pos, numElements)
		}
	}
}

func TestS2uswIsBijection(t *testing.T) {
	if len(s2usw) != 25 {
		t.Fatalf("len(s2usw): got %d, want 25", len(s2usw))
	}
	seen := make(map[int]bool)
	for _, slot := range s2usw {
		if slot < 0 || slot >= 25 {
			t.Errorf("slot %d out of range [0, 25)", slot)
		}
		if seen[slot] {
			t.Errorf("slot %d appears more than once in s2usw", slot)
		}
		seen[slot] = true
	}
}

func TestIsWordPosition(t *testing.T) {
	for i, pos := range wordPositions {
		idx, ok := isWordPosition(pos)
		if !ok {
			t.Errorf("isWordPosition(%d): got ok=false, want true", pos)
			continue
		}
		if idx != i {
			t.Errorf("isWordPosition(%d): got index %d, want %d", pos, idx, i)
		}
	}

	if _, ok := isWordPosition(1); ok {
		t.Error("isWordPosition(1): got ok=true for a non-word position, want false")
	}
}

func TestBuildCategoryBlockSizes(t *testing.T) {
	for ci, cat := range elements {
		for ei, blocks := range cat.blocks {
			wantBlocks := 2
			if cat.avElem {
				wantBlocks = 1
			}
			if len(blocks) != wantBlocks {
				t.Errorf("category %d element %d: got %d blocks, want %d", ci, ei, len(blocks), wantBlocks)
			}
			for _, b := range blocks {
				if b.size() <= 0 {
					t.Errorf("category %d element %d: non-positive block size %d", ci, ei, b.size())
				}
			}
		}
	}
}
