package boundseq

import (
	"fmt"

	"github.com/hupe1980/boundseq/codec"
	"github.com/hupe1980/boundseq/internal/bitvec"
	"github.com/hupe1980/boundseq/internal/conv"
)

// Snapshot is the persisted form of a sequence.
type Snapshot struct {
	Words    []uint64 `json:"words"`
	ItemBits int      `json:"item_bits"`
	Length   int      `json:"length"`
}

// Snapshot returns the persisted form of s. Words is a copy.
func (s *Sequence) Snapshot() Snapshot {
	words := make([]uint64, len(s.bits.Words()))
	copy(words, s.bits.Words())
	return Snapshot{
		Words:    words,
		ItemBits: int(s.itemBits),
		Length:   s.length,
	}
}

// FromSnapshot rebuilds a sequence from its persisted form.
//
// Items are not range checked again: a snapshot taken from a valid
// sequence always holds valid items. Only the shape is verified, so the
// word count must match ItemBits*Length and no bit beyond the last item
// may be set.
func FromSnapshot(snap Snapshot) (*Sequence, error) {
	if snap.ItemBits < 1 || snap.ItemBits > 63 {
		return nil, fmt.Errorf("%w: item bits %d", ErrCorruptSnapshot, snap.ItemBits)
	}
	if snap.Length < 0 {
		return nil, fmt.Errorf("%w: length %d", ErrCorruptSnapshot, snap.Length)
	}
	size, err := conv.MulUint64(uint64(snap.Length), uint64(snap.ItemBits))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	v, err := bitvec.FromWords(snap.Words, uint(size))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	return &Sequence{
		itemBits: uint(snap.ItemBits),
		length:   snap.Length,
		bits:     v,
	}, nil
}

// MarshalJSON encodes the snapshot of s as JSON.
func (s *Sequence) MarshalJSON() ([]byte, error) {
	return codec.GoJSON{}.Marshal(s.Snapshot())
}

// UnmarshalJSON decodes a snapshot produced by MarshalJSON.
// The receiver must be a zero Sequence.
func (s *Sequence) UnmarshalJSON(data []byte) error {
	if s.bits != nil {
		return ErrAlreadyInitialized
	}
	var snap Snapshot
	if err := (codec.GoJSON{}).Unmarshal(data, &snap); err != nil {
		return err
	}
	return s.restore(snap)
}

func (s *Sequence) restore(snap Snapshot) error {
	r, err := FromSnapshot(snap)
	if err != nil {
		return err
	}
	*s = *r
	return nil
}

// EncodeSnapshot encodes the snapshot of s with the configured codec
// (codec.Default unless WithCodec is given).
func EncodeSnapshot(s *Sequence, optFns ...Option) ([]byte, error) {
	o := applyOptions(optFns)
	return o.codec.Marshal(s.Snapshot())
}

// DecodeSnapshot decodes data produced by EncodeSnapshot with the same codec.
func DecodeSnapshot(data []byte, optFns ...Option) (*Sequence, error) {
	o := applyOptions(optFns)
	var snap Snapshot
	if err := o.codec.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	return FromSnapshot(snap)
}
