/*
DESCRIPTION
  evaluate.go implements the sequence evaluator (C9): given a seed pair of
  fine signatures and a framerate ratio, walks both streams forward then
  backward from the seed, tolerating brief runs of bad frames, and scores
  the resulting match. Modelled on the frame-walking
  section of get_matching_parameters in the retrieved signature_lookup.c.

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

// maxTolerance is the number of consecutive bad frames (L1 distance above
// ThXH with at least one side's confidence >= 1) tolerated before a walk
// stops. A bad frame where both sides have confidence 0 counts as good.
const maxTolerance = 2

// walkResult accumulates the counters gathered by one directional walk.
type walkResult struct {
	good, total int
	distsum     int64
	gooda, goodb int
	hitBoundary bool // true if the walk ended by running off the stream, not by exceeding tolerance.
}

// evaluate scores one Hough candidate by walking both streams forward then
// backward from its seed pair, per spec.md §4.C9.
func evaluate(ctx *Context, a, b *signature.StreamContext, cand MatchingInfo) MatchingInfo {
	fwd := walk(ctx, a, b, int(cand.FirstSeed), int(cand.SecondSeed), cand.FramerateRatio, true)
	bwd := walk(ctx, a, b, int(cand.FirstSeed), int(cand.SecondSeed), cand.FramerateRatio, false)

	good := fwd.good + bwd.good
	total := fwd.total + bwd.total
	distsum := fwd.distsum + bwd.distsum
	gooda := fwd.gooda + bwd.gooda
	goodb := fwd.goodb + bwd.goodb

	result := cand
	result.MatchFrames = total
	result.Whole = fwd.hitBoundary && bwd.hitBoundary

	if distsum > 0 {
		result.MeanDistance = float64(good) / float64(distsum)
	}

	accepted := total >= ctx.Thresholds.ThDI &&
		(total == 0 || float64(good)/float64(total) >= ctx.Thresholds.ThIT) &&
		float64(gooda) <= 0.5*float64(good) &&
		float64(goodb) <= 0.5*float64(good)
	if !accepted {
		result.Score = 0
	}
	return result
}

// walk traverses one direction (forward if fwd, else backward) from the
// seed pair, advancing the faster-framerate side by a variable number of
// frames per step and the slower side by one, tolerating up to
// maxTolerance consecutive bad frames before rolling back to the last good
// position and stopping.
func walk(ctx *Context, a, b *signature.StreamContext, seedA, seedB int, ratio float64, fwd bool) walkResult {
	var res walkResult

	curA, curB := seedA, seedB
	lastGoodA, lastGoodB := seedA, seedB
	tolerance := 0
	fcount := 1

	dir := 1
	if !fwd {
		dir = -1
	}

	for {
		delta := dir * stepDelta(fcount, ratio)
		fcount++

		var nextA, nextB int
		if ratio >= 1 {
			nextA, nextB = curA+delta, curB+dir
		} else {
			nextA, nextB = curA+dir, curB+delta
		}

		if nextA < 0 || nextB < 0 || nextA >= len(a.Fine) || nextB >= len(b.Fine) {
			res.hitBoundary = true
			break
		}

		curA, curB = nextA, nextB
		fa, fb := &a.Fine[curA], &b.Fine[curB]
		dist := ctx.LUT.FrameDistance(&fa.Bytes, &fb.Bytes)
		res.total++

		if dist > ctx.Thresholds.ThXH && (fa.Confidence >= 1 || fb.Confidence >= 1) {
			tolerance++
			if tolerance > maxTolerance {
				curA, curB = lastGoodA, lastGoodB
				break
			}
			continue
		}

		tolerance = 0
		res.good++
		res.distsum += int64(dist)
		if fa.Confidence < 1 {
			res.gooda++
		}
		if fb.Confidence < 1 {
			res.goodb++
		}
		lastGoodA, lastGoodB = curA, curB
	}

	return res
}

// stepDelta returns the number of frames the faster-framerate side should
// advance on step fcount, given the framerate ratio between the two
// streams: floor(0.5+fcount*ratio) - floor(0.5+(fcount-1)*ratio).
func stepDelta(fcount int, ratio float64) int {
	hi := math.Floor(0.5 + float64(fcount)*ratio)
	lo := math.Floor(0.5 + float64(fcount-1)*ratio)
	return int(hi - lo)
}

// betterCandidate reports whether candidate replaces the running best,
// per spec.md §4.C9: a smaller mean distance, a whole-sequence match in
// both directions, or fast mode always replaces.
func betterCandidate(mode signature.MatchMode, best, candidate MatchingInfo) bool {
	if candidate.Score == 0 {
		return false
	}
	if best.Score == 0 {
		return true
	}
	if mode == signature.ModeFast {
		return true
	}
	if candidate.Whole {
		return true
	}
	return candidate.MeanDistance < best.MeanDistance
}
