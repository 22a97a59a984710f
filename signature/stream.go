/*
DESCRIPTION
  stream.go provides the stream-level data model (C4): FineSignature,
  CoarseSignature and StreamContext. Rather than the doubly linked lists
  of the reference implementation, both signature kinds are held in
  growable arenas (slices) indexed by frame/segment position, per the
  "Linked lists -> arena + indices" design note; this keeps O(1) append
  and gives the Hough pass random access without pointer churn.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package signature

// Rational is a simple num/den time base, e.g. frames per second expressed
// as den/num.
type Rational struct {
	Num, Den int
}

// FineSignature is the per-frame fingerprint described in spec.md §3. Its
// forward/back links are implicit: the fine signature at Fine[i] in a
// StreamContext precedes Fine[i+1].
type FineSignature struct {
	Index      uint32
	PTS        int64
	Confidence uint8
	Words      [5]uint16 // each in 0..242
	Bytes      [76]byte  // 380 ternary digits, 5 per byte, base-3 packed
}

// bagOfWords is one 243-bit bit-vector, packed into 31 bytes (only the top
// 3 bits of the last byte are used).
type bagOfWords [31]byte

// set marks bit i (0..242) of the bag.
func (b *bagOfWords) set(i int) {
	b[i/8] |= 1 << uint(7-i%8)
}

// test reports whether bit i (0..242) of the bag is set.
func (b *bagOfWords) test(i int) bool {
	return b[i/8]&(1<<uint(7-i%8)) != 0
}

// Set marks bit i (0..242) of the word bag at cs.Words[word]. Exported for
// tests in other packages that need to build a CoarseSignature by hand
// rather than through extraction.
func (cs *CoarseSignature) Set(word, i int) {
	cs.Words[word].set(i)
}

// andPopcount returns popcount(a AND b) over the 243 used bits.
func andPopcount(a, b *bagOfWords) int {
	n := 0
	for i := 0; i < 30; i++ {
		n += popcountByte(a[i] & b[i])
	}
	n += popcountByte((a[30] & b[30]) &^ 0x1f)
	return n
}

// orPopcount returns popcount(a OR b) over the 243 used bits.
func orPopcount(a, b *bagOfWords) int {
	n := 0
	for i := 0; i < 30; i++ {
		n += popcountByte(a[i] | b[i])
	}
	n += popcountByte((a[30] | b[30]) &^ 0x1f)
	return n
}

// JaccardWord returns the Jaccard distance popcount(a AND b) /
// popcount(a OR b) (integer division) between word bag i (0..4) of cs and
// other, per spec.md §4.C7. Both numerator-zero and denominator-zero cases
// yield 0.
func (cs *CoarseSignature) JaccardWord(other *CoarseSignature, i int) int {
	a, b := &cs.Words[i], &other.Words[i]
	num := andPopcount(a, b)
	if num == 0 {
		return 0
	}
	den := orPopcount(a, b)
	if den == 0 {
		return 0
	}
	return num / den
}

func popcountByte(b byte) int {
	n := 0
	for b != 0 {
		n += int(b & 1)
		b >>= 1
	}
	return n
}

// WordBags returns a copy of the five 243-bit bag-of-words vectors, each
// packed into 31 bytes, for serialization.
func (cs *CoarseSignature) WordBags() [5][31]byte {
	var out [5][31]byte
	for i := range cs.Words {
		out[i] = [31]byte(cs.Words[i])
	}
	return out
}

// SetWordBags installs five pre-packed 243-bit bag-of-words vectors,
// replacing whatever the coarse signature currently holds. Used when
// deserializing a container, where the bags arrive fully formed rather
// than being built bit by bit.
func (cs *CoarseSignature) SetWordBags(bags [5][31]byte) {
	for i := range bags {
		cs.Words[i] = bagOfWords(bags[i])
	}
}

// CoarseSignature aggregates up to 90 consecutive fine signatures into five
// independent bags of words; a new one opens every 45 frames.
type CoarseSignature struct {
	FirstIndex, LastIndex uint32
	FirstPTS, LastPTS     int64
	Words                 [5]bagOfWords

	// next indexes the following coarse signature within the owning
	// StreamContext's Coarse slice, or -1 if this is the tail.
	next int
}

// StreamContext is the head of the fine-signature and coarse-signature
// arenas for one stream, plus the extraction state needed to keep
// appending frames in order.
type StreamContext struct {
	Fine   []FineSignature
	Coarse []CoarseSignature

	Width, Height int
	TimeBase      Rational
	Divide        bool
	Exported      bool

	lastIndex   uint32
	haveFrames  bool
	coarseCount int // cycles in [0, 90)
	openA       int // index into Coarse of the first currently-open segment, -1 if none
	openB       int // index into Coarse of the staggered second segment, -1 if none
	midCoarse   bool
}

// NewStreamContext returns a StreamContext ready for extraction over
// frames of the given dimensions and time base.
func NewStreamContext(w, h int, tb Rational) *StreamContext {
	return &StreamContext{
		Width:    w,
		Height:   h,
		TimeBase: tb,
		openA:    -1,
		openB:    -1,
	}
}

// LastIndex returns the frame index of the most recently appended fine
// signature, or 0 if none have been appended.
func (sc *StreamContext) LastIndex() uint32 { return sc.lastIndex }

// openCoarse opens a new coarse signature starting at the given first fine
// signature, appends it to Coarse, and threads the previous tail to it.
func (sc *StreamContext) openCoarse(first *FineSignature) int {
	cs := CoarseSignature{
		FirstIndex: first.Index,
		FirstPTS:   first.PTS,
		next:       -1,
	}
	idx := len(sc.Coarse)
	sc.Coarse = append(sc.Coarse, cs)
	if idx > 0 {
		sc.Coarse[idx-1].next = idx
	}
	return idx
}
