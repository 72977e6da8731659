package persistence

import (
	"errors"
	"fmt"
)

const (
	// MagicNumber identifies boundseq frames (ASCII: "BSQ1").
	MagicNumber = 0x42535131
	// Version is the current frame format version (v1.0).
	Version = 0x00010000

	// HeaderSize is the encoded size of FileHeader in bytes.
	HeaderSize = 40
)

var (
	ErrInvalidMagic       = errors.New("invalid magic number")
	ErrInvalidVersion     = errors.New("unsupported version")
	ErrUnknownCompression = errors.New("unknown compression type")
	ErrInvalidPayload     = errors.New("invalid payload")
)

// CompressionType defines the compression algorithm applied to the word payload.
type CompressionType uint8

const (
	// CompressionNone stores the words uncompressed.
	CompressionNone CompressionType = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 CompressionType = 1
	// CompressionZSTD uses ZSTD block compression (better ratio).
	CompressionZSTD CompressionType = 2
)

// String returns the name of the compression type.
func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// FileHeader is the fixed-size header at the start of every frame.
type FileHeader struct {
	Magic       uint32 // 0x42535131 ("BSQ1")
	Version     uint32 // Frame format version
	ItemBits    uint8  // Bits per item
	Compression uint8  // CompressionType of the payload
	Padding     [2]byte
	Length      uint64 // Number of items
	WordCount   uint64 // Number of uint64 words in the payload
	PayloadSize uint32 // Bytes following the header
	Checksum    uint32 // CRC32C of the uncompressed words
	Reserved    [4]byte
}

// Record is the content of a frame: a packed word array plus the
// item width and count needed to interpret it.
type Record struct {
	ItemBits uint8
	Length   uint64
	Words    []uint64
}

// ChecksumMismatchError is returned when checksum verification fails.
type ChecksumMismatchError struct {
	Expected uint32
	Actual   uint32
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: expected 0x%08x, got 0x%08x", e.Expected, e.Actual)
}

// IsChecksumMismatch returns true if err is a checksum mismatch error.
func IsChecksumMismatch(err error) bool {
	var cm *ChecksumMismatchError
	return errors.As(err, &cm)
}
