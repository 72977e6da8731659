// Package boundseq provides immutable, bit-packed sequences of bounded
// non-negative integers.
//
// A Sequence stores every item in the same number of bits, the bit length
// of bound-1, and packs the items LSB-first into uint64 words. Indexing,
// slicing, concatenation, prefix tests, subsequence search and
// suffix/prefix overlap all work on the packed words directly rather
// than item by item.
//
// # Quick Start
//
//	s, _ := boundseq.New(21, []int{4, 1, 6, 2, 7, 20, 9})
//	s.ItemBits()                     // 5
//	s.Bound()                        // 32
//	x, _ := s.Item(-1)               // 9
//	r, _ := s.Slice(-1, boundseq.Omit, -2)
//	u, _ := s.Concat(r)
//	i, _ := u.IndexSeq(s.Sub(2, 4))  // 2
//
// # Bounds
//
// The bound passed to New is rounded up to a power of two. New(21, ...)
// accepts every value in [0, 32) and Bound reports 32. Two sequences
// built with different bounds but the same item width compare equal and
// hash the same when their items agree.
//
// # Ordering
//
// Compare orders by item width, then by length, then by the packed words
// read as one unsigned integer. Since item 0 occupies the lowest bits,
// sequences of equal width and length compare like their item lists read
// backwards.
//
// # Persistence
//
// Snapshot and FromSnapshot expose the raw (words, item bits, length)
// form. Encode and Decode write a checksummed binary frame, optionally
// LZ4 or ZSTD compressed; see package persistence. Sequences also
// implement encoding.BinaryMarshaler and json.Marshaler.
//
// # Concurrency
//
// Sequences never change after construction and are safe for concurrent
// use. SearchAll runs many subsequence lookups in parallel.
package boundseq
