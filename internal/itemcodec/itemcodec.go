// Package itemcodec reads and writes fixed-width items inside a packed
// []uint64 word array. Item i occupies bits [i*width, (i+1)*width), so an
// item may straddle two words.
//
// None of the functions check bounds. Callers guarantee that width is in
// [1, 64] and that the addressed item lies inside words.
package itemcodec

const wordBits = 64

// Mask returns a mask covering the low width bits.
func Mask(width uint) uint64 {
	// 1<<64 is 0 in Go, which makes width 64 yield all ones.
	return uint64(1)<<width - 1
}

// Get decodes the item at index.
func Get(words []uint64, width uint, index int) uint64 {
	off := uint(index) * width
	w := off / wordBits
	s := off % wordBits
	v := words[w] >> s
	if s+width > wordBits {
		v |= words[w+1] << (wordBits - s)
	}
	return v & Mask(width)
}

// Set ORs value into the item slot at index. The slot must be zero.
func Set(words []uint64, width uint, index int, value uint64) {
	off := uint(index) * width
	w := off / wordBits
	s := off % wordBits
	value &= Mask(width)
	words[w] |= value << s
	if s+width > wordBits {
		words[w+1] |= value >> (wordBits - s)
	}
}

// WordsFor returns the number of words holding n items of width bits,
// never less than one.
func WordsFor(n int, width uint) int {
	b := uint(n) * width
	if b == 0 {
		return 1
	}
	return int((b + wordBits - 1) / wordBits)
}
