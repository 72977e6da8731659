package boundseq

import (
	"cmp"

	"github.com/hupe1980/boundseq/internal/bitvec"
)

// Equal reports whether s and other have the same item width, length
// and items.
func (s *Sequence) Equal(other *Sequence) bool {
	return s.itemBits == other.itemBits &&
		s.length == other.length &&
		bitvec.Equal(s.bits, other.bits)
}

// Compare orders sequences by item width, then length, then the packed
// words read as one unsigned integer.
//
// Item 0 sits in the lowest bits, so for equal width and length this is
// lexicographic order on the items read from the last index to the
// first, not the order a plain slice comparison would give.
func (s *Sequence) Compare(other *Sequence) int {
	if c := cmp.Compare(s.itemBits, other.itemBits); c != 0 {
		return c
	}
	if c := cmp.Compare(s.length, other.length); c != 0 {
		return c
	}
	return bitvec.Compare(s.bits, other.bits)
}

// Hash returns a digest of the packed words. It does not depend on the
// bound used at construction beyond its effect on the item width.
func (s *Sequence) Hash() uint64 {
	return s.bits.Hash()
}
