/*
DESCRIPTION
  hough.go implements the Hough matcher (C8): pairwise L1-distance
  candidate generation over the first 90 fine signatures of a seed
  coarse-signature pair, followed by Hough voting in (framerate, offset)
  space. Modelled on get_matching_parameters in the retrieved
  signature_lookup.c.

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

import (
	"math"

	"github.com/ausocean/vsig/signature"
)

// CoarseSize is the number of fine signatures, starting at a seed coarse
// signature's first frame, considered by the Hough matcher.
const CoarseSize = 90

// MaxFramerate is the number of framerate buckets in the Hough table.
const MaxFramerate = 60

// HoughMaxOffset bounds the offset axis of the Hough table: offsets in
// (-HoughMaxOffset, HoughMaxOffset) are representable.
const HoughMaxOffset = 90

const noDist = 1 << 30 // sentinel "no candidate yet" distance.

// pairCandidate is pairs[i] from spec.md §4.C8: the minimal L1 distance
// found for fine signature i of stream A against the considered window of
// stream B, and every B position tied at that minimum.
type pairCandidate struct {
	dist int
	bPos []int
}

// houghCell is one cell of the 60x181 vote table.
type houghCell struct {
	dist  int
	a, b  uint32 // fine signature indices
	score int
}

// houghVote runs the Hough matcher for one seed pair of coarse signatures
// and returns every candidate whose vote count exceeds 0.7 of the maximum.
func houghVote(ctx *Context, a, b *signature.StreamContext, csA, csB *signature.CoarseSignature) []MatchingInfo {
	pairs := buildPairCandidates(ctx, a, b, csA, csB)

	hspace := make([][]houghCell, MaxFramerate)
	for i := range hspace {
		hspace[i] = make([]houghCell, 2*HoughMaxOffset+1)
		for j := range hspace[i] {
			hspace[i][j].dist = noDist
		}
	}

	hmax := 0
	for i := 0; i < CoarseSize; i++ {
		if pairs[i].dist == noDist {
			continue
		}
		for _, bij := range pairs[i].bPos {
			for k := i + 1; k < CoarseSize; k++ {
				if pairs[k].dist == noDist {
					continue
				}
				for _, bkl := range pairs[k].bPos {
					if bij == bkl {
						continue
					}
					m := float64(bkl-bij) / float64(k-i)
					framerate := int(math.Floor(m*30 + 0.5))
					if framerate <= 0 || framerate > MaxFramerate {
						continue
					}
					offset := bij - int(math.Floor(m*float64(i)+0.5))
					if offset <= -HoughMaxOffset || offset >= HoughMaxOffset {
						continue
					}

					cell := &hspace[framerate-1][offset+HoughMaxOffset]
					dist := pairs[i].dist
					seedA := csA.FirstIndex + uint32(i)
					seedBIdx := csB.FirstIndex + uint32(bij)
					if pairs[k].dist < dist {
						dist = pairs[k].dist
						seedA = csA.FirstIndex + uint32(k)
						seedBIdx = csB.FirstIndex + uint32(bkl)
					}
					if dist < cell.dist {
						cell.dist = dist
						cell.a = seedA
						cell.b = seedBIdx
					}
					cell.score++
					if cell.score > hmax {
						hmax = cell.score
					}
				}
			}
		}
	}

	var cands []MatchingInfo
	if hmax == 0 {
		return cands
	}
	thresh := int(0.7 * float64(hmax))
	for i := 0; i < MaxFramerate; i++ {
		for j := 0; j < 2*HoughMaxOffset+1; j++ {
			cell := hspace[i][j]
			if cell.score > thresh {
				cands = append(cands, MatchingInfo{
					FramerateRatio: float64(i+1) / 30,
					Offset:         j - HoughMaxOffset,
					Score:          cell.score,
					FirstSeed:      cell.a,
					SecondSeed:     cell.b,
				})
			}
		}
	}
	return cands
}

// buildPairCandidates computes, for each of the first CoarseSize fine
// signatures starting at csA.FirstIndex, the set of fine signatures
// starting at csB.FirstIndex within L1 distance ctx.Thresholds.ThXH, tied
// at the minimum distance found.
func buildPairCandidates(ctx *Context, a, b *signature.StreamContext, csA, csB *signature.CoarseSignature) [CoarseSize]pairCandidate {
	var pairs [CoarseSize]pairCandidate
	for i := 0; i < CoarseSize; i++ {
		pairs[i].dist = noDist
		ai := int(csA.FirstIndex) + i
		if ai >= len(a.Fine) {
			continue
		}
		fa := &a.Fine[ai]
		for j := 0; j < CoarseSize; j++ {
			bj := int(csB.FirstIndex) + j
			if bj >= len(b.Fine) {
				continue
			}
			fb := &b.Fine[bj]
			d := ctx.LUT.FrameDistance(&fa.Bytes, &fb.Bytes)
			if d >= ctx.Thresholds.ThXH {
				continue
			}
			switch {
			case d < pairs[i].dist:
				pairs[i].dist = d
				pairs[i].bPos = []int{j}
			case d == pairs[i].dist:
				pairs[i].bPos = append(pairs[i].bPos, j)
			}
		}
	}
	return pairs
}
