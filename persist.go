package boundseq

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/hupe1980/boundseq/internal/conv"
	"github.com/hupe1980/boundseq/persistence"
)

// Encode writes s to w as a single persistence frame.
//
// Example:
//
//	var buf bytes.Buffer
//	_, err := boundseq.Encode(&buf, s, boundseq.WithCompression(persistence.CompressionZSTD))
func Encode(w io.Writer, s *Sequence, optFns ...Option) (int64, error) {
	o := applyOptions(optFns)
	start := time.Now()

	n, err := persistence.NewBinaryWriter(w, o.compression).WriteRecord(persistence.Record{
		ItemBits: uint8(s.itemBits),
		Length:   uint64(s.length),
		Words:    s.bits.Words(),
	})

	o.metricsCollector.RecordEncode(n, time.Since(start), err)
	o.logger.WithItemBits(int(s.itemBits)).WithLength(s.length).LogEncode(context.Background(), n, err)
	return n, err
}

// Decode reads one frame written by Encode.
func Decode(r io.Reader, optFns ...Option) (*Sequence, error) {
	o := applyOptions(optFns)
	start := time.Now()

	s, n, err := decode(r)

	o.metricsCollector.RecordDecode(n, time.Since(start), err)
	if err != nil {
		o.logger.LogDecode(context.Background(), n, err)
		return nil, err
	}
	o.logger.WithItemBits(s.ItemBits()).WithLength(s.length).LogDecode(context.Background(), n, nil)
	return s, nil
}

func decode(r io.Reader) (*Sequence, int64, error) {
	rec, n, err := persistence.NewBinaryReader(r).ReadRecord()
	if err != nil {
		return nil, n, err
	}
	length, err := conv.Uint64ToInt(rec.Length)
	if err != nil {
		return nil, n, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	s, err := FromSnapshot(Snapshot{
		Words:    rec.Words,
		ItemBits: int(rec.ItemBits),
		Length:   length,
	})
	return s, n, err
}

// WriteTo implements io.WriterTo with an uncompressed frame.
func (s *Sequence) WriteTo(w io.Writer) (int64, error) {
	return Encode(w, s)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s *Sequence) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Encode(&buf, s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
// The receiver must be a zero Sequence.
func (s *Sequence) UnmarshalBinary(data []byte) error {
	if s.bits != nil {
		return ErrAlreadyInitialized
	}
	r, _, err := decode(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*s = *r
	return nil
}
