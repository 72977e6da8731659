package boundseq

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBound is returned when a sequence is constructed with a non-positive bound.
	ErrInvalidBound = errors.New("bound must be positive")

	// ErrOutOfRange is matched (via errors.Is) by every *ErrValueOutOfRange.
	ErrOutOfRange = errors.New("value out of range")

	// ErrNotFound is returned when an item or subsequence is not present.
	ErrNotFound = errors.New("not found")

	// ErrEmptySequence is returned by operations that need at least one item.
	ErrEmptySequence = errors.New("sequence is empty")

	// ErrZeroStep is returned when slicing with a step of zero.
	ErrZeroStep = errors.New("slice step cannot be zero")

	// ErrAlreadyInitialized is returned when unmarshalling into a sequence that already holds data.
	ErrAlreadyInitialized = errors.New("sequence already initialized")

	// ErrCorruptSnapshot indicates a snapshot whose words do not match its item width and length.
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
)

// ErrValueOutOfRange indicates a value that is negative or does not fit the item width.
type ErrValueOutOfRange struct {
	Index int    // position of the value in the input
	Value int    // offending value
	Bound uint64 // exclusive upper limit derived from the item width
}

func (e *ErrValueOutOfRange) Error() string {
	if e.Value < 0 {
		return fmt.Sprintf("value %d at index %d is negative", e.Value, e.Index)
	}
	return fmt.Sprintf("value %d at index %d exceeds bound %d", e.Value, e.Index, e.Bound)
}

// Is reports ErrOutOfRange as a match.
func (e *ErrValueOutOfRange) Is(target error) bool { return target == ErrOutOfRange }

// ErrWidthMismatch indicates two sequences with different item widths.
type ErrWidthMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrWidthMismatch) Error() string {
	return fmt.Sprintf("item width mismatch: expected %d bits, got %d", e.Expected, e.Actual)
}

// ErrIndexOutOfRange indicates an item index outside [-Length, Length).
type ErrIndexOutOfRange struct {
	Index  int
	Length int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range for length %d", e.Index, e.Length)
}
