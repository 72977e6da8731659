package boundseq

import (
	"context"
	"iter"
	"math/bits"
	"time"

	"github.com/hupe1980/boundseq/internal/bitvec"
	"github.com/hupe1980/boundseq/internal/itemcodec"
)

// ItemBitsFor returns the item width used for the given bound: the bit
// length of bound-1, at least 1.
func ItemBitsFor(bound int) (int, error) {
	if bound <= 0 {
		return 0, ErrInvalidBound
	}
	return max(1, bits.Len(uint(bound-1))), nil
}

// New packs values into a sequence whose items are below bound.
//
// The bound is rounded up to a power of two: a value v is accepted when
// 0 <= v < 2^ItemBitsFor(bound). Values outside that range fail with an
// *ErrValueOutOfRange.
//
// Example:
//
//	s, _ := boundseq.New(21, []int{4, 1, 6, 2, 7, 20, 9})
//	s.ItemBits() // 5
//	s.Bound()    // 32
func New(bound int, values []int, optFns ...Option) (*Sequence, error) {
	o := applyOptions(optFns)
	start := time.Now()

	s, err := pack(bound, values)

	o.metricsCollector.RecordBuild(len(values), time.Since(start), err)
	o.logger.LogBuild(context.Background(), bound, len(values), err)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// MustNew is like New but panics on error.
func MustNew(bound int, values []int) *Sequence {
	s, err := New(bound, values)
	if err != nil {
		panic(err)
	}
	return s
}

// FromSeq packs the values produced by seq.
func FromSeq(bound int, seq iter.Seq[int], optFns ...Option) (*Sequence, error) {
	b, err := NewBuilder(bound, optFns...)
	if err != nil {
		return nil, err
	}
	for v := range seq {
		if err := b.Append(v); err != nil {
			b.report(err)
			return nil, err
		}
	}
	return b.Build(), nil
}

func pack(bound int, values []int) (*Sequence, error) {
	w, err := ItemBitsFor(bound)
	if err != nil {
		return nil, err
	}
	width := uint(w)
	limit := uint64(1) << width

	// Validate before allocating so a rejected input never leaves a
	// partially filled vector behind.
	for i, v := range values {
		if v < 0 || uint64(v) >= limit {
			return nil, &ErrValueOutOfRange{Index: i, Value: v, Bound: limit}
		}
	}

	s := newSequence(width, len(values))
	words := s.bits.Words()
	for i, v := range values {
		itemcodec.Set(words, width, i, uint64(v))
	}
	return s, nil
}

// Builder assembles a sequence incrementally.
//
// A Builder is not safe for concurrent use. Build may be called more
// than once; every call returns an independent sequence.
type Builder struct {
	bound    int
	itemBits uint
	limit    uint64
	words    []uint64
	length   int
	opts     options
	start    time.Time
	offered  int
}

// NewBuilder returns a builder for items below bound.
func NewBuilder(bound int, optFns ...Option) (*Builder, error) {
	w, err := ItemBitsFor(bound)
	if err != nil {
		return nil, err
	}
	return &Builder{
		bound:    bound,
		itemBits: uint(w),
		limit:    uint64(1) << uint(w),
		words:    make([]uint64, 1),
		opts:     applyOptions(optFns),
		start:    time.Now(),
	}, nil
}

// Append validates and appends values. On error nothing is appended.
func (b *Builder) Append(values ...int) error {
	for i, v := range values {
		if v < 0 || uint64(v) >= b.limit {
			b.offered += len(values)
			return &ErrValueOutOfRange{Index: b.length + i, Value: v, Bound: b.limit}
		}
	}
	b.offered += len(values)
	need := itemcodec.WordsFor(b.length+len(values), b.itemBits)
	if need > len(b.words) {
		if need > cap(b.words) {
			grown := make([]uint64, need, max(need, 2*cap(b.words)))
			copy(grown, b.words)
			b.words = grown
		} else {
			b.words = b.words[:need]
		}
	}
	for _, v := range values {
		itemcodec.Set(b.words, b.itemBits, b.length, uint64(v))
		b.length++
	}
	return nil
}

// Len returns the number of items appended so far.
func (b *Builder) Len() int {
	return b.length
}

// ItemBits returns the item width of the sequences this builder produces.
func (b *Builder) ItemBits() int {
	return int(b.itemBits)
}

// Build returns a sequence holding the appended items.
func (b *Builder) Build() *Sequence {
	size := uint(b.length) * b.itemBits
	v, err := bitvec.FromWords(b.words[:bitvec.WordsFor(max(size, 1))], size)
	if err != nil {
		// Append keeps the words consistent with length.
		panic(err)
	}
	b.report(nil)
	return &Sequence{itemBits: b.itemBits, length: b.length, bits: v}
}

func (b *Builder) report(err error) {
	b.opts.metricsCollector.RecordBuild(b.offered, time.Since(b.start), err)
	b.opts.logger.LogBuild(context.Background(), b.bound, b.offered, err)
}
