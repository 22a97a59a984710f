/*
DESCRIPTION
  binary.go implements the bit-exact binary container codec (C5): a
  big-endian MPEG-7-style bit stream holding one spatial region's coarse
  and fine signatures. Layout and decode order are grounded directly on
  binary_import/export in the retrieved vf_signature.c.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package codec

import (
	"github.com/pkg/errors"

	"github.com/ausocean/vsig/signature"
)

// errInvalidBinary covers every decode failure: a truncated stream, zero
// segments, a segment without matching fine signatures, or no fine
// signatures in the payload.
var errInvalidBinary = errors.New("codec: invalid binary stream")

// fineSigBits is MPEG7_FINESIG_NBITS: the bit length of one encoded fine
// signature (1 + 32 + 8 + 40 + 608).
const fineSigBits = 689

// EncodeBinary serialises sc as the bit-exact binary container described
// in spec.md §4.C5.
func EncodeBinary(sc *signature.StreamContext) []byte {
	w := newBitWriter()

	w.writeBits(1, 32) // NumOfSpatialRegions
	w.writeBit(1)       // SpatialLocationFlag
	w.writeBits(0, 16)  // PixelX1
	w.writeBits(0, 16)  // PixelY1
	w.writeBits(uint64(sc.Width-1)&0xFFFF, 16)  // PixelX2
	w.writeBits(uint64(sc.Height-1)&0xFFFF, 16) // PixelY2
	w.writeBits(0, 32)                          // StartFrameOfSpatialRegion

	// NumOfFrames is the frame count, not the zero-based index of the last
	// frame (spec.md §4.C5 item 6; the original's sc->lastindex is a
	// post-increment count, vf_signature.c:144).
	numFrames := uint32(len(sc.Fine))
	w.writeBits(uint64(numFrames), 32) // NumOfFrames

	mtu := uint64(0)
	if sc.TimeBase.Num != 0 {
		mtu = uint64(sc.TimeBase.Den/sc.TimeBase.Num) & 0xFFFF
	}
	w.writeBits(mtu, 16) // MediaTimeUnit
	w.writeBit(1)        // MediaTimeFlagOfSpatialRegion
	w.writeBits(0, 32)   // StartMediaTimeOfSpatialRegion

	var lastPTS int64
	if len(sc.Fine) > 0 {
		lastPTS = sc.Fine[len(sc.Fine)-1].PTS
	}
	w.writeBits(uint64(lastPTS)&0xFFFFFFFF, 32) // EndMediaTimeOfSpatialRegion

	numSegments := (uint64(numFrames) + 44) / 45
	if len(sc.Coarse) > 0 {
		numSegments = uint64(len(sc.Coarse))
	}
	w.writeBits(numSegments, 32)

	for i := range sc.Coarse {
		cs := &sc.Coarse[i]
		w.writeBits(uint64(cs.FirstIndex), 32)
		w.writeBits(uint64(cs.LastIndex), 32)
		w.writeBit(1) // MediaTimeFlagOfSegment
		w.writeBits(uint64(cs.FirstPTS)&0xFFFFFFFF, 32)
		w.writeBits(uint64(cs.LastPTS)&0xFFFFFFFF, 32)
		writeBagOfWords(w, cs)
	}

	w.writeBit(0) // CompressionFlag

	for i := range sc.Fine {
		fs := &sc.Fine[i]
		w.writeBit(1) // MediaTimeFlagOfFrame
		w.writeBits(uint64(fs.PTS)&0xFFFFFFFF, 32)
		w.writeBits(uint64(fs.Confidence), 8)
		for _, word := range fs.Words {
			w.writeBits(uint64(word), 8)
		}
		for _, b := range fs.Bytes {
			w.writeBits(uint64(b), 8)
		}
	}

	return w.flush()
}

// writeBagOfWords exports the 5 bit-vectors of a coarse signature, each as
// 30 full bytes plus the top 3 bits of the 31st.
func writeBagOfWords(w *bitWriter, cs *signature.CoarseSignature) {
	bags := cs.WordBags()
	for i := range bags {
		for _, b := range bags[i][:30] {
			w.writeBits(uint64(b), 8)
		}
		w.writeBits(uint64(bags[i][30])>>5, 3)
	}
}

// DecodeBinary parses a binary container into a StreamContext. Decode is
// the strict inverse of EncodeBinary; any structural inconsistency (a
// truncated stream, zero segments, a segment whose first/last fine
// signature cannot be located, or no fine signatures at all) yields
// errInvalidBinary.
func DecodeBinary(buf []byte) (*signature.StreamContext, error) {
	r := newBitReader(buf)

	numRegions, err := r.readBits(32)
	if err != nil || numRegions == 0 {
		return nil, errInvalidBinary
	}
	if _, err := r.readBit(); err != nil { // SpatialLocationFlag
		return nil, errInvalidBinary
	}
	if _, err := r.readBits(16); err != nil { // PixelX1
		return nil, errInvalidBinary
	}
	if _, err := r.readBits(16); err != nil { // PixelY1
		return nil, errInvalidBinary
	}
	x2, err := r.readBits(16)
	if err != nil {
		return nil, errInvalidBinary
	}
	y2, err := r.readBits(16)
	if err != nil {
		return nil, errInvalidBinary
	}
	if _, err := r.readBits(32); err != nil { // StartFrameOfSpatialRegion
		return nil, errInvalidBinary
	}
	numFrames, err := r.readBits(32)
	if err != nil {
		return nil, errInvalidBinary
	}
	mtu, err := r.readBits(16)
	if err != nil {
		return nil, errInvalidBinary
	}
	if _, err := r.readBit(); err != nil { // MediaTimeFlagOfSpatialRegion
		return nil, errInvalidBinary
	}
	if _, err := r.readBits(32); err != nil { // StartMediaTimeOfSpatialRegion
		return nil, errInvalidBinary
	}
	if _, err := r.readBits(32); err != nil { // EndMediaTimeOfSpatialRegion
		return nil, errInvalidBinary
	}

	numSegments, err := r.readBits(32)
	if err != nil || numSegments == 0 {
		return nil, errInvalidBinary
	}

	tb := signature.Rational{Num: 1, Den: int(mtu)}
	sc := signature.NewStreamContext(int(x2)+1, int(y2)+1, tb)

	type segment struct {
		firstIndex, lastIndex uint32
		firstPTS, lastPTS     int64
		bags                  [5][31]byte
	}
	segs := make([]segment, numSegments)

	for i := range segs {
		firstIndex, err := r.readBits(32)
		if err != nil {
			return nil, errInvalidBinary
		}
		lastIndex, err := r.readBits(32)
		if err != nil {
			return nil, errInvalidBinary
		}
		if _, err := r.readBit(); err != nil { // MediaTimeFlagOfSegment
			return nil, errInvalidBinary
		}
		firstPTS, err := r.readBits(32)
		if err != nil {
			return nil, errInvalidBinary
		}
		lastPTS, err := r.readBits(32)
		if err != nil {
			return nil, errInvalidBinary
		}
		var bags [5][31]byte
		for w := 0; w < 5; w++ {
			for b := 0; b < 30; b++ {
				v, err := r.readBits(8)
				if err != nil {
					return nil, errInvalidBinary
				}
				bags[w][b] = byte(v)
			}
			v, err := r.readBits(3)
			if err != nil {
				return nil, errInvalidBinary
			}
			bags[w][30] = byte(v) << 5
		}
		segs[i] = segment{
			firstIndex: uint32(firstIndex),
			lastIndex:  uint32(lastIndex),
			firstPTS:   int64(int32(firstPTS)),
			lastPTS:    int64(int32(lastPTS)),
			bags:       bags,
		}
	}

	if _, err := r.readBit(); err != nil { // CompressionFlag
		return nil, errInvalidBinary
	}

	for r.bitsRemaining() >= fineSigBits {
		if _, err := r.readBit(); err != nil { // MediaTimeFlagOfFrame
			return nil, errInvalidBinary
		}
		pts, err := r.readBits(32)
		if err != nil {
			return nil, errInvalidBinary
		}
		conf, err := r.readBits(8)
		if err != nil {
			return nil, errInvalidBinary
		}
		var fs signature.FineSignature
		fs.Index = uint32(len(sc.Fine))
		fs.PTS = int64(int32(pts))
		fs.Confidence = uint8(conf)
		for w := 0; w < 5; w++ {
			v, err := r.readBits(8)
			if err != nil {
				return nil, errInvalidBinary
			}
			fs.Words[w] = uint16(v)
		}
		for b := 0; b < 76; b++ {
			v, err := r.readBits(8)
			if err != nil {
				return nil, errInvalidBinary
			}
			fs.Bytes[b] = byte(v)
		}
		sc.Fine = append(sc.Fine, fs)
	}
	// Fewer fine signatures than NumOfFrames means the payload was cut short.
	if len(sc.Fine) == 0 || uint64(len(sc.Fine)) < numFrames {
		return nil, errInvalidBinary
	}

	// Assign each segment's first/last fine signature by PTS range, then
	// overwrite with the deserialized indices, which are authoritative.
	for _, seg := range segs {
		lo, hi := seg.firstPTS, seg.lastPTS
		if lo > hi {
			lo, hi = hi, lo
		}
		firstIdx, lastIdx := -1, -1
		for i := range sc.Fine {
			pts := sc.Fine[i].PTS
			if pts >= lo && firstIdx == -1 {
				firstIdx = i
			}
			if pts <= hi {
				lastIdx = i
			}
		}
		if firstIdx == -1 || lastIdx == -1 {
			return nil, errInvalidBinary
		}

		cs := signature.CoarseSignature{
			FirstIndex: seg.firstIndex,
			LastIndex:  seg.lastIndex,
			FirstPTS:   sc.Fine[firstIdx].PTS,
			LastPTS:    sc.Fine[lastIdx].PTS,
		}
		cs.SetWordBags(seg.bags)
		sc.Coarse = append(sc.Coarse, cs)
	}

	return sc, nil
}
