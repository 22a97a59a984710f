/*
DESCRIPTION
  coarse.go implements the coarse matcher (C7): a cross-product iterator
  over pairs of coarse signatures from two streams, yielding only the
  pairs accepted by the Jaccard distance filter.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package match

import "github.com/ausocean/vsig/signature"

// coarsePair is one candidate pair of coarse signature indices, one from
// each stream.
type coarsePair struct {
	a, b int
}

// coarseIterator walks the cross product of two coarse signature lists
// (cs_a, cs_b), advancing b through B fully before advancing a, and
// yielding only Jaccard-accepted pairs (spec.md §4.C7).
type coarseIterator struct {
	th       Thresholds
	a, b     []signature.CoarseSignature
	i, j     int
}

// newCoarseIterator returns an iterator over the coarse signature lists of
// two streams.
func newCoarseIterator(th Thresholds, a, b []signature.CoarseSignature) *coarseIterator {
	return &coarseIterator{th: th, a: a, b: b}
}

// next advances to, and returns, the next Jaccard-accepted pair. ok is
// false once the cross product is exhausted.
func (it *coarseIterator) next() (pair coarsePair, ok bool) {
	for it.i < len(it.a) {
		for it.j < len(it.b) {
			i, j := it.i, it.j
			it.j++
			if jaccardAccept(it.th, &it.a[i], &it.b[j]) {
				return coarsePair{a: i, b: j}, true
			}
		}
		it.j = 0
		it.i++
	}
	return coarsePair{}, false
}

// jaccardAccept reports whether the pair (a, b) passes the coarse filter:
// at most two of the five per-word Jaccard distances reach th.ThD, and
// their running sum never exceeds th.ThDC.
func jaccardAccept(th Thresholds, a, b *signature.CoarseSignature) bool {
	var sum, violations int
	for i := 0; i < 5; i++ {
		j := a.JaccardWord(b, i)
		if j >= th.ThD {
			violations++
		}
		sum += j
		if sum > th.ThDC {
			return false
		}
	}
	return violations <= 2
}
