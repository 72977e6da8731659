package boundseq

import (
	"iter"
	"strconv"
	"strings"

	"github.com/hupe1980/boundseq/internal/bitvec"
	"github.com/hupe1980/boundseq/internal/itemcodec"
)

// Sequence is an immutable sequence of integers in [0, 2^ItemBits).
//
// Items are packed LSB-first: item i occupies bits
// [i*ItemBits, (i+1)*ItemBits) of the backing vector. Every operation
// that derives a new sequence allocates fresh storage, so a Sequence is
// safe for concurrent use by multiple goroutines.
//
// The zero value is not a valid sequence; it may only be used as the
// target of UnmarshalBinary or UnmarshalJSON.
type Sequence struct {
	itemBits uint
	length   int
	bits     *bitvec.Vector
}

// newSequence allocates a zeroed sequence of length items.
func newSequence(itemBits uint, length int) *Sequence {
	return &Sequence{
		itemBits: itemBits,
		length:   length,
		bits:     bitvec.New(uint(length) * itemBits),
	}
}

// Len returns the number of items.
func (s *Sequence) Len() int {
	return s.length
}

// IsEmpty reports whether the sequence has no items.
func (s *Sequence) IsEmpty() bool {
	return s.length == 0
}

// ItemBits returns the number of bits used per item.
func (s *Sequence) ItemBits() int {
	return int(s.itemBits)
}

// Bound returns the exclusive upper limit for items, 2^ItemBits.
func (s *Sequence) Bound() uint64 {
	return uint64(1) << s.itemBits
}

// Item returns the item at index. Negative indices count from the end.
func (s *Sequence) Item(index int) (int, error) {
	i := index
	if i < 0 {
		i += s.length
	}
	if i < 0 || i >= s.length {
		return 0, &ErrIndexOutOfRange{Index: index, Length: s.length}
	}
	return s.at(i), nil
}

// at decodes item i without bounds checking.
func (s *Sequence) at(i int) int {
	return int(itemcodec.Get(s.bits.Words(), s.itemBits, i))
}

// ToList decodes all items into a new slice.
func (s *Sequence) ToList() []int {
	out := make([]int, s.length)
	words := s.bits.Words()
	for i := range out {
		out[i] = int(itemcodec.Get(words, s.itemBits, i))
	}
	return out
}

// Values returns an iterator over the items in index order.
func (s *Sequence) Values() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < s.length; i++ {
			if !yield(s.at(i)) {
				return
			}
		}
	}
}

// All returns an iterator over index/item pairs.
func (s *Sequence) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i := 0; i < s.length; i++ {
			if !yield(i, s.at(i)) {
				return
			}
		}
	}
}

// String renders the sequence as <a, b, c>.
func (s *Sequence) String() string {
	var sb strings.Builder
	sb.WriteByte('<')
	for i := 0; i < s.length; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(s.at(i)))
	}
	sb.WriteByte('>')
	return sb.String()
}

// Clone returns a copy of s that shares no storage with it.
func (s *Sequence) Clone() *Sequence {
	return &Sequence{
		itemBits: s.itemBits,
		length:   s.length,
		bits:     s.bits.Clone(),
	}
}

// sameWidth reports whether s and o pack items with the same width.
func (s *Sequence) sameWidth(o *Sequence) bool {
	return s.itemBits == o.itemBits
}

// bitLen is the number of payload bits.
func (s *Sequence) bitLen() uint {
	return uint(s.length) * s.itemBits
}
