/*
DESCRIPTION
  compute.go implements the signature computer (C3): given a reduced
  frame, produces one FineSignature (380 ternary digits packed into 76
  bytes, five word indices, a confidence score) and folds it into the
  currently open CoarseSignatures of a StreamContext. Modelled on
  calc_signature in the retrieved signature_lookup.c.

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

import "sort"

// placeValues are the base-3 place values applied to the five digits of a
// frame signature byte or a word, most significant first: 81, 27, 9, 3, 1.
var placeValues = [5]int64{81, 27, 9, 3, 1}

// Compute reduces one luminance frame, computes its FineSignature, appends
// it to sc, and updates the currently open CoarseSignatures. pts is the
// frame's presentation timestamp.
func Compute(sc *StreamContext, w, h, stride int, pix []byte, pts int64) *FineSignature {
	rf := Reduce(w, h, stride, pix)
	sc.Divide = rf.divide
	return computeFrame(sc, rf, pts)
}

func computeFrame(sc *StreamContext, rf *reducedFrame, pts int64) *FineSignature {
	fs := FineSignature{
		Index: uint32(len(sc.Fine)),
		PTS:   pts,
	}

	digits := make([]int, numElements)
	var wordAcc [5]int64
	var confSamples []int64
	pos := 0

	for _, cat := range elements {
		vals := make([]int64, cat.elemCount)
		absVals := make([]int64, cat.elemCount)

		for e := 0; e < cat.elemCount; e++ {
			blocks := cat.blocks[e]

			var posSum, posSize int64
			for i := 0; i < leftCount; i++ {
				b := blocks[i]
				posSum += rf.rectSum(b)
				posSize += int64(b.size())
			}
			sum := posSum / posSize

			var diff int64
			if cat.avElem {
				sum -= 128 * rf.precfactor * rf.denom
				diff = sum
			} else {
				var negSum, negSize int64
				for i := leftCount; i < len(blocks); i++ {
					b := blocks[i]
					negSum += rf.rectSum(b)
					negSize += int64(b.size())
				}
				sum -= negSum / negSize
				diff = sum
			}

			vals[e] = diff
			a := diff
			if a < 0 {
				a = -a
			}
			absVals[e] = a
		}

		sorted := append([]int64(nil), absVals...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		th := sorted[int(float64(cat.elemCount)*0.333)]

		for e := 0; e < cat.elemCount; e++ {
			var d int
			switch {
			case vals[e] < -th:
				d = 0
			case vals[e] > th:
				d = 2
			default:
				d = 1
			}
			digits[pos] = d

			if !cat.avElem {
				contrib := absVals[e] * 8 / (rf.precfactor * rf.denom)
				confSamples = append(confSamples, contrib)
			}

			if wi, ok := isWordPosition(pos); ok {
				slot := s2usw[wi]
				word := slot / 5
				digitPos := slot % 5
				wordAcc[word] += int64(d) * placeValues[digitPos]
			}
			pos++
		}
	}

	for i := 0; i < 76; i++ {
		var b int64
		for k := 0; k < 5; k++ {
			b = b*3 + int64(digits[i*5+k])
		}
		fs.Bytes[i] = byte(b)
	}
	for w := 0; w < 5; w++ {
		fs.Words[w] = uint16(wordAcc[w])
	}

	if len(confSamples) > 0 {
		sort.Slice(confSamples, func(i, j int) bool { return confSamples[i] < confSamples[j] })
		mid := confSamples[len(confSamples)/2]
		if mid > 255 {
			mid = 255
		}
		fs.Confidence = uint8(mid)
	}

	sc.Fine = append(sc.Fine, fs)
	sc.lastIndex = fs.Index
	sc.updateCoarse(&sc.Fine[len(sc.Fine)-1])
	return &sc.Fine[len(sc.Fine)-1]
}

// updateCoarse folds fs into the currently open coarse signatures,
// opening and closing windows as the 90-frame, 45-frame-staggered cycle
// dictates (see spec.md §4.C3 "Coarse update").
func (sc *StreamContext) updateCoarse(fs *FineSignature) {
	if sc.openA == -1 {
		sc.openA = sc.openCoarse(fs)
	}
	if sc.coarseCount == 0 && sc.openB != -1 {
		sc.openA = sc.openCoarse(fs)
	}
	if sc.coarseCount == 45 {
		sc.midCoarse = true
		sc.openB = sc.openCoarse(fs)
	}

	for i := 0; i < 5; i++ {
		sc.Coarse[sc.openA].Words[i].set(int(fs.Words[i]))
	}
	sc.Coarse[sc.openA].LastIndex = fs.Index
	sc.Coarse[sc.openA].LastPTS = fs.PTS

	if sc.midCoarse {
		for i := 0; i < 5; i++ {
			sc.Coarse[sc.openB].Words[i].set(int(fs.Words[i]))
		}
		sc.Coarse[sc.openB].LastIndex = fs.Index
		sc.Coarse[sc.openB].LastPTS = fs.PTS
	}

	sc.coarseCount = (sc.coarseCount + 1) % 90
}
