package boundseq

import (
	"fmt"

	"github.com/hupe1980/boundseq/internal/bitvec"
	"github.com/hupe1980/boundseq/internal/itemcodec"
)

// Index returns the first index of item, or ErrNotFound.
func (s *Sequence) Index(item int) (int, error) {
	if i := s.indexFrom(item, 0); i >= 0 {
		return i, nil
	}
	return -1, fmt.Errorf("%w: item %d", ErrNotFound, item)
}

// IndexSeq returns the first index at which sub occurs as a contiguous
// subsequence of s, or ErrNotFound. An empty sub is found at 0.
// Sequences of different item widths are never found.
func (s *Sequence) IndexSeq(sub *Sequence) (int, error) {
	if i := s.indexSeqFrom(sub, 0); i >= 0 {
		return i, nil
	}
	return -1, fmt.Errorf("%w: subsequence %s", ErrNotFound, sub)
}

// Contains reports whether item occurs in s.
func (s *Sequence) Contains(item int) bool {
	return s.indexFrom(item, 0) >= 0
}

// ContainsSeq reports whether sub occurs as a contiguous subsequence of s.
func (s *Sequence) ContainsSeq(sub *Sequence) bool {
	return s.indexSeqFrom(sub, 0) >= 0
}

// indexFrom scans decoded items from start. It returns -1 when absent.
func (s *Sequence) indexFrom(item, start int) int {
	if !s.fits(item) {
		return -1
	}
	words := s.bits.Words()
	want := uint64(item)
	for i := max(start, 0); i < s.length; i++ {
		if itemcodec.Get(words, s.itemBits, i) == want {
			return i
		}
	}
	return -1
}

// indexSeqFrom returns the first i >= start with s[i:i+len(sub)] == sub,
// or -1. Each candidate is tested with a shifted bit-range comparison
// instead of decoding items.
func (s *Sequence) indexSeqFrom(sub *Sequence, start int) int {
	if !s.sameWidth(sub) {
		return -1
	}
	if sub.length == 0 {
		return start
	}
	if s.length < start+sub.length {
		return -1
	}
	w := s.itemBits
	n := sub.bitLen()
	for i := start; i <= s.length-sub.length; i++ {
		if bitvec.RangeEqual(s.bits, uint(i)*w, sub.bits, 0, n) {
			return i
		}
	}
	return -1
}
