// Package bitvec provides a fixed-capacity bit vector over uint64 words.
//
// Layout:
//   - LSB-first: bit i is bit i%64 of word i/64
//   - Fixed size: a vector never grows, shifts produce new vectors
//   - Clean tail: bits beyond the size are kept zero
//
// Used internally for:
//   - Packed item storage of boundseq.Sequence
//   - Shifted bit-range equality for prefix, subsequence and overlap search
package bitvec
