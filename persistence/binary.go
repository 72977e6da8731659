package persistence

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/hupe1980/boundseq/internal/conv"
	"github.com/hupe1980/boundseq/internal/hash"
)

// maxWordCount caps the payload so that its byte size fits the uint32
// block header.
const maxWordCount = (math.MaxUint32 - blockHeaderSize) / 8

// BinaryWriter writes frames.
type BinaryWriter struct {
	w           io.Writer
	byteOrder   binary.ByteOrder
	compression CompressionType
}

// NewBinaryWriter creates a new binary writer.
func NewBinaryWriter(w io.Writer, compression CompressionType) *BinaryWriter {
	return &BinaryWriter{
		w:           w,
		byteOrder:   binary.LittleEndian,
		compression: compression,
	}
}

// WriteRecord writes one frame and returns the number of bytes written.
func (bw *BinaryWriter) WriteRecord(rec Record) (int64, error) {
	if len(rec.Words) > maxWordCount {
		return 0, fmt.Errorf("%w: %d words", ErrInvalidPayload, len(rec.Words))
	}

	raw := make([]byte, 0, len(rec.Words)*8)
	for _, w := range rec.Words {
		raw = binary.LittleEndian.AppendUint64(raw, w)
	}

	body, err := encodeBlock(raw, bw.compression)
	if err != nil {
		return 0, err
	}
	size, err := conv.IntToUint32(len(body))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	header := FileHeader{
		Magic:       MagicNumber,
		Version:     Version,
		ItemBits:    rec.ItemBits,
		Compression: uint8(bw.compression),
		Length:      rec.Length,
		WordCount:   uint64(len(rec.Words)),
		PayloadSize: size,
		Checksum:    hash.CRC32C(raw),
	}
	if err := binary.Write(bw.w, bw.byteOrder, &header); err != nil {
		return 0, err
	}
	n, err := bw.w.Write(body)
	return HeaderSize + int64(n), err
}

// BinaryReader reads frames.
type BinaryReader struct {
	r         io.Reader
	byteOrder binary.ByteOrder
}

// NewBinaryReader creates a new binary reader.
func NewBinaryReader(r io.Reader) *BinaryReader {
	return &BinaryReader{
		r:         r,
		byteOrder: binary.LittleEndian,
	}
}

// ReadHeader reads and validates a frame header.
func (br *BinaryReader) ReadHeader() (*FileHeader, error) {
	var header FileHeader
	if err := binary.Read(br.r, br.byteOrder, &header); err != nil {
		return nil, err
	}
	if header.Magic != MagicNumber {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, header.Magic)
	}
	if header.Version != Version {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidVersion, header.Version)
	}
	if CompressionType(header.Compression) > CompressionZSTD {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, header.Compression)
	}
	if header.WordCount > maxWordCount {
		return nil, fmt.Errorf("%w: %d words", ErrInvalidPayload, header.WordCount)
	}
	// Stored blocks are never larger than the raw words plus the block header.
	if uint64(header.PayloadSize) > blockHeaderSize+header.WordCount*8 {
		return nil, fmt.Errorf("%w: payload size %d", ErrInvalidPayload, header.PayloadSize)
	}
	return &header, nil
}

// ReadRecord reads one frame and returns it together with the number of
// bytes consumed.
func (br *BinaryReader) ReadRecord() (Record, int64, error) {
	header, err := br.ReadHeader()
	if err != nil {
		return Record{}, 0, err
	}
	n := int64(HeaderSize)

	body := make([]byte, header.PayloadSize)
	read, err := io.ReadFull(br.r, body)
	n += int64(read)
	if err != nil {
		return Record{}, n, err
	}

	raw, err := decodeBlock(body, CompressionType(header.Compression), header.WordCount*8)
	if err != nil {
		return Record{}, n, err
	}
	if sum := hash.CRC32C(raw); sum != header.Checksum {
		return Record{}, n, &ChecksumMismatchError{Expected: header.Checksum, Actual: sum}
	}

	words := make([]uint64, header.WordCount)
	for i := range words {
		words[i] = br.byteOrder.Uint64(raw[i*8:])
	}
	return Record{
		ItemBits: header.ItemBits,
		Length:   header.Length,
		Words:    words,
	}, n, nil
}
