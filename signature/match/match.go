/*
DESCRIPTION
  match.go is the top-level entry point for the matcher: it wires the
  coarse Jaccard filter (C7), the Hough voter (C8) and the sequence
  evaluator (C9) together, and exposes the CompareBuffers convenience API
  described in spec.md §6.

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
	"github.com/ausocean/utils/logging"
	"github.com/ausocean/vsig/signature"
	"github.com/ausocean/vsig/signature/codec"
)

// CompareThXH is the per-frame L1 threshold used by CompareBuffers, which
// diverges from the live extractor's signature.DefaultThXH. Both values
// are preserved deliberately; see DESIGN.md.
const CompareThXH = 150

// Match runs the full three-stage lookup of b within a, seeded from every
// coarse pair accepted by the Jaccard filter, and returns the best scoring
// candidate. mode governs the C9 replacement policy; ModeOff performs no
// lookup at all. ResultNone is returned (MatchingInfo zero value) if nothing
// is accepted. Matching never fails: an empty stream pair yields a sentinel
// zero-score result.
func Match(ctx *Context, mode signature.MatchMode, a, b *signature.StreamContext) (MatchingInfo, Result) {
	var best MatchingInfo
	if mode == signature.ModeOff {
		return best, ResultNone
	}

	it := newCoarseIterator(ctx.Thresholds, a.Coarse, b.Coarse)
	for {
		pair, ok := it.next()
		if !ok {
			break
		}
		cands := houghVote(ctx, a, b, &a.Coarse[pair.a], &b.Coarse[pair.b])
		for _, cand := range cands {
			scored := evaluate(ctx, a, b, cand)
			ctx.Logger.Info("matching", "framerateratio", scored.FramerateRatio,
				"offset", scored.Offset, "frames", scored.MatchFrames)
			if betterCandidate(mode, best, scored) {
				best = scored
			}
			if best.Whole {
				ctx.Logger.Info("whole video match found")
				return best, ResultWhole
			}
		}
	}

	if best.Score == 0 {
		return MatchingInfo{}, ResultNone
	}
	return best, ResultPartial
}

// CompareBuffers imports both buffers as binary-encoded streams and runs
// Match with the comparator's thresholds (CompareThXH rather than the live
// extractor's signature.DefaultThXH), returning the classification only.
func CompareBuffers(log logging.Logger, bufA, bufB []byte) (Result, error) {
	a, err := codec.DecodeBinary(bufA)
	if err != nil {
		return ResultNone, err
	}
	b, err := codec.DecodeBinary(bufB)
	if err != nil {
		return ResultNone, err
	}

	th := DefaultThresholds()
	th.ThXH = CompareThXH
	ctx := NewContext(th, log)

	_, res := Match(ctx, signature.ModeFull, a, b)
	return res, nil
}
