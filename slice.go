package boundseq

import (
	"math"

	"github.com/hupe1980/boundseq/internal/itemcodec"
)

// Omit marks an absent slice bound, the empty position in s[a:b:c].
const Omit = math.MinInt

// Slice returns the items selected by start, stop and step using the
// same rules as Python's s[start:stop:step]: negative indices count from
// the end, out of range indices are clamped and a negative step walks
// backwards. Pass Omit for an absent start or stop.
//
// Example:
//
//	s := boundseq.MustNew(8, []int{4, 1, 6, 2, 7, 2, 5, 5, 2})
//	r, _ := s.Slice(-1, boundseq.Omit, -2) // <2, 5, 7, 6, 4>
func (s *Sequence) Slice(start, stop, step int) (*Sequence, error) {
	if step == 0 {
		return nil, ErrZeroStep
	}
	start, n := adjustSlice(s.length, start, stop, step)
	if n == 0 {
		return newSequence(s.itemBits, 0), nil
	}
	if step == 1 {
		return s.shiftSlice(start, n), nil
	}

	out := newSequence(s.itemBits, n)
	src := s.bits.Words()
	dst := out.bits.Words()
	for k := 0; k < n; k++ {
		itemcodec.Set(dst, s.itemBits, k, itemcodec.Get(src, s.itemBits, start+k*step))
	}
	return out, nil
}

// Sub returns s[start:stop].
func (s *Sequence) Sub(start, stop int) *Sequence {
	start, n := adjustSlice(s.length, start, stop, 1)
	return s.shiftSlice(start, n)
}

// shiftSlice returns the n items starting at start with one right shift
// of the packed bits.
func (s *Sequence) shiftSlice(start, n int) *Sequence {
	return &Sequence{
		itemBits: s.itemBits,
		length:   n,
		bits:     s.bits.ShiftRight(uint(start)*s.itemBits, uint(n)*s.itemBits),
	}
}

// adjustSlice normalizes slice bounds for a sequence of the given length
// and returns the first selected index and the number of items selected.
// step must not be zero.
func adjustSlice(length, start, stop, step int) (first, n int) {
	lower, upper := 0, length
	if step < 0 {
		lower, upper = -1, length-1
	}

	clamp := func(i, omitted int) int {
		switch {
		case i == Omit:
			return omitted
		case i < 0:
			return max(i+length, lower)
		default:
			return min(i, upper)
		}
	}

	if step > 0 {
		start = clamp(start, lower)
		stop = clamp(stop, upper)
		if start < stop {
			return start, (stop-start-1)/step + 1
		}
		return start, 0
	}

	start = clamp(start, upper)
	stop = clamp(stop, lower)
	if stop < start {
		return start, (start-stop-1)/(-step) + 1
	}
	return start, 0
}
