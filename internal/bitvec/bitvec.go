package bitvec

import (
	"encoding/binary"
	"errors"

	"github.com/zeebo/xxh3"
)

// WordBits is the width of a storage word.
const WordBits = 64

var (
	// ErrWordCount is returned by FromWords when the word count does not match the size.
	ErrWordCount = errors.New("bitvec: word count does not match size")
	// ErrDirtyTail is returned by FromWords when bits above the size are set.
	ErrDirtyTail = errors.New("bitvec: bits set beyond size")
)

// Vector is a fixed-capacity bit vector backed by uint64 words.
// Bit i lives in words[i/64] at position i%64 (LSB-first).
//
// Bits at positions >= Len are always zero. Compare, Equal and Hash
// rely on that.
type Vector struct {
	words []uint64
	size  uint
}

// WordsFor returns the number of words needed to hold size bits.
func WordsFor(size uint) int {
	return int((size + WordBits - 1) / WordBits)
}

// New allocates a zeroed vector of size bits. A size of zero is
// rounded up to one bit so that every vector owns at least one word.
func New(size uint) *Vector {
	if size == 0 {
		size = 1
	}
	return &Vector{
		words: make([]uint64, WordsFor(size)),
		size:  size,
	}
}

// FromWords builds a vector from a copy of words.
func FromWords(words []uint64, size uint) (*Vector, error) {
	if size == 0 {
		size = 1
	}
	if len(words) != WordsFor(size) {
		return nil, ErrWordCount
	}
	if r := size % WordBits; r != 0 && words[len(words)-1]>>r != 0 {
		return nil, ErrDirtyTail
	}
	v := &Vector{
		words: make([]uint64, len(words)),
		size:  size,
	}
	copy(v.words, words)
	return v, nil
}

// Len returns the size of the vector in bits.
func (v *Vector) Len() uint {
	return v.size
}

// Words exposes the backing words. Callers other than the owner of a
// freshly allocated vector must treat the slice as read-only.
func (v *Vector) Words() []uint64 {
	return v.words
}

// Clone returns a deep copy of v.
func (v *Vector) Clone() *Vector {
	c := &Vector{
		words: make([]uint64, len(v.words)),
		size:  v.size,
	}
	copy(c.words, v.words)
	return c
}

// Or sets v |= o. Bits of o beyond v's size are dropped.
func (v *Vector) Or(o *Vector) {
	n := min(len(v.words), len(o.words))
	for i := 0; i < n; i++ {
		v.words[i] |= o.words[i]
	}
	v.clearTail()
}

// ShiftRight returns a new vector of size bits holding bits
// [n, n+size) of v. Positions past the end of v read as zero.
// A size of zero yields an all-zero one-bit vector.
func (v *Vector) ShiftRight(n, size uint) *Vector {
	dst := New(size)
	if size == 0 {
		return dst
	}
	ws := int(n / WordBits)
	bs := n % WordBits
	for i := range dst.words {
		j := i + ws
		if j >= len(v.words) {
			break
		}
		w := v.words[j] >> bs
		if bs != 0 && j+1 < len(v.words) {
			w |= v.words[j+1] << (WordBits - bs)
		}
		dst.words[i] = w
	}
	dst.clearTail()
	return dst
}

// ShiftLeft returns a new vector of size bits holding v shifted
// towards the high end by n bits, truncated to size.
func (v *Vector) ShiftLeft(n, size uint) *Vector {
	dst := New(size)
	if size == 0 {
		return dst
	}
	ws := int(n / WordBits)
	bs := n % WordBits
	for i := ws; i < len(dst.words); i++ {
		j := i - ws
		var w uint64
		if j < len(v.words) {
			w = v.words[j] << bs
		}
		if bs != 0 && j > 0 && j-1 < len(v.words) {
			w |= v.words[j-1] >> (WordBits - bs)
		}
		dst.words[i] = w
	}
	dst.clearTail()
	return dst
}

// Compare compares a and b as unsigned integers, most significant word
// first. Missing high words count as zero.
func Compare(a, b *Vector) int {
	n := max(len(a.words), len(b.words))
	for i := n - 1; i >= 0; i-- {
		var x, y uint64
		if i < len(a.words) {
			x = a.words[i]
		}
		if i < len(b.words) {
			y = b.words[i]
		}
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
	}
	return 0
}

// Equal reports whether a and b hold the same words.
func Equal(a, b *Vector) bool {
	if len(a.words) != len(b.words) {
		return false
	}
	for i, w := range a.words {
		if b.words[i] != w {
			return false
		}
	}
	return true
}

// PrefixEqual reports whether the first n bits of a and b agree.
func PrefixEqual(a, b *Vector, n uint) bool {
	full := int(n / WordBits)
	for i := 0; i < full; i++ {
		if a.words[i] != b.words[i] {
			return false
		}
	}
	r := n % WordBits
	if r == 0 {
		return true
	}
	mask := uint64(1)<<r - 1
	return (a.words[full]^b.words[full])&mask == 0
}

// RangeEqual reports whether the n bits of a starting at aOff equal the
// n bits of b starting at bOff. The two offsets are independent and
// need not be word aligned. Both ranges must lie within their vectors.
func RangeEqual(a *Vector, aOff uint, b *Vector, bOff uint, n uint) bool {
	if aOff%WordBits == 0 && bOff%WordBits == 0 {
		return alignedEqual(a.words[aOff/WordBits:], b.words[bOff/WordBits:], n)
	}
	var pos uint
	for ; pos+WordBits <= n; pos += WordBits {
		if a.window(aOff+pos) != b.window(bOff+pos) {
			return false
		}
	}
	r := n - pos
	if r == 0 {
		return true
	}
	mask := uint64(1)<<r - 1
	return (a.window(aOff+pos)^b.window(bOff+pos))&mask == 0
}

func alignedEqual(a, b []uint64, n uint) bool {
	full := int(n / WordBits)
	for i := 0; i < full; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	r := n % WordBits
	if r == 0 {
		return true
	}
	mask := uint64(1)<<r - 1
	return (a[full]^b[full])&mask == 0
}

// window returns the 64 bits starting at off. Bits past the end are zero.
func (v *Vector) window(off uint) uint64 {
	i := int(off / WordBits)
	s := off % WordBits
	if i >= len(v.words) {
		return 0
	}
	w := v.words[i] >> s
	if s != 0 && i+1 < len(v.words) {
		w |= v.words[i+1] << (WordBits - s)
	}
	return w
}

// AppendBytes appends the words to dst in little-endian byte order.
func (v *Vector) AppendBytes(dst []byte) []byte {
	for _, w := range v.words {
		dst = binary.LittleEndian.AppendUint64(dst, w)
	}
	return dst
}

// Hash returns an xxh3 digest of the word content.
func (v *Vector) Hash() uint64 {
	var buf [8 * 8]byte
	if len(v.words) <= 8 {
		return xxh3.Hash(v.AppendBytes(buf[:0]))
	}
	return xxh3.Hash(v.AppendBytes(make([]byte, 0, len(v.words)*8)))
}

func (v *Vector) clearTail() {
	if r := v.size % WordBits; r != 0 {
		v.words[len(v.words)-1] &= uint64(1)<<r - 1
	}
}
