package boundseq

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/boundseq/internal/bitvec"
	"github.com/hupe1980/boundseq/internal/itemcodec"
)

// Concat returns s followed by other. Both must have the same item width.
//
// The result is built with one shift and one OR over the packed words:
// other's bits are moved above s's bits.
func (s *Sequence) Concat(other *Sequence) (*Sequence, error) {
	if !s.sameWidth(other) {
		return nil, &ErrWidthMismatch{Expected: int(s.itemBits), Actual: int(other.itemBits)}
	}
	length := s.length + other.length
	size := uint(length) * s.itemBits
	bits := other.bits.ShiftLeft(s.bitLen(), size)
	bits.Or(s.bits)
	return &Sequence{itemBits: s.itemBits, length: length, bits: bits}, nil
}

// StartsWith reports whether prefix is a prefix of s.
// Sequences of different item widths never match.
func (s *Sequence) StartsWith(prefix *Sequence) bool {
	if !s.sameWidth(prefix) {
		return false
	}
	return s.startsWith(prefix)
}

func (s *Sequence) startsWith(prefix *Sequence) bool {
	if prefix.length > s.length {
		return false
	}
	if prefix.length == 0 {
		return true
	}
	return bitvec.PrefixEqual(s.bits, prefix.bits, prefix.bitLen())
}

// MaximalOverlap returns the longest suffix of s that is also a prefix
// of other, considering only suffixes that start at index 1 or later.
// If other starts with all of s, a copy of s is returned instead.
//
// ok is false when no such suffix exists or the item widths differ.
// An empty receiver fails with ErrEmptySequence.
func (s *Sequence) MaximalOverlap(other *Sequence) (overlap *Sequence, ok bool, err error) {
	if s.length == 0 {
		return nil, false, ErrEmptySequence
	}
	if !s.sameWidth(other) {
		return nil, false, nil
	}
	if other.startsWith(s) {
		return s.Clone(), true, nil
	}
	i, found := s.overlapStart(other)
	if !found {
		return nil, false, nil
	}
	return s.shiftSlice(i, s.length-i), true, nil
}

// overlapStart finds the smallest i >= 1 such that s[i:] is a prefix of
// other. Suffixes longer than other cannot match, so the scan starts at
// len(s)-len(other) when that is larger.
func (s *Sequence) overlapStart(other *Sequence) (int, bool) {
	w := s.itemBits
	for i := max(1, s.length-other.length); i < s.length; i++ {
		n := uint(s.length-i) * w
		if bitvec.RangeEqual(s.bits, uint(i)*w, other.bits, 0, n) {
			return i, true
		}
	}
	return 0, false
}

// Count returns how many times item occurs in s.
func (s *Sequence) Count(item int) int {
	if !s.fits(item) {
		return 0
	}
	n := 0
	words := s.bits.Words()
	want := uint64(item)
	for i := 0; i < s.length; i++ {
		if itemcodec.Get(words, s.itemBits, i) == want {
			n++
		}
	}
	return n
}

// Positions returns the set of indices at which item occurs.
func (s *Sequence) Positions(item int) *bitset.BitSet {
	set := bitset.New(uint(s.length))
	if !s.fits(item) {
		return set
	}
	words := s.bits.Words()
	want := uint64(item)
	for i := 0; i < s.length; i++ {
		if itemcodec.Get(words, s.itemBits, i) == want {
			set.Set(uint(i))
		}
	}
	return set
}

// Alphabet returns the distinct items of s.
func (s *Sequence) Alphabet() *roaring64.Bitmap {
	rb := roaring64.New()
	words := s.bits.Words()
	for i := 0; i < s.length; i++ {
		rb.Add(itemcodec.Get(words, s.itemBits, i))
	}
	return rb
}

// fits reports whether item can be stored with s's item width.
func (s *Sequence) fits(item int) bool {
	return item >= 0 && uint64(item) < s.Bound()
}
