package boundseq_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/boundseq"
	"github.com/hupe1980/boundseq/testutil"
)

func TestItem_Indexing(t *testing.T) {
	s := boundseq.MustNew(8, []int{5, 6, 7})

	for i, want := range map[int]int{0: 5, 2: 7, -1: 7, -3: 5} {
		got, err := s.Item(i)
		require.NoError(t, err)
		assert.Equal(t, want, got, "index %d", i)
	}

	for _, i := range []int{3, -4, 100} {
		_, err := s.Item(i)
		var ioor *boundseq.ErrIndexOutOfRange
		require.ErrorAs(t, err, &ioor)
		assert.Equal(t, i, ioor.Index)
		assert.Equal(t, 3, ioor.Length)
	}
}

func TestAll(t *testing.T) {
	s := boundseq.MustNew(8, []int{5, 6, 7})
	var idx, items []int
	for i, v := range s.All() {
		idx = append(idx, i)
		items = append(items, v)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)
	assert.Equal(t, []int{5, 6, 7}, items)

	// Iteration is restartable and stops early on request.
	for v := range s.Values() {
		assert.Equal(t, 5, v)
		break
	}
	assert.Equal(t, []int{5, 6, 7}, slices.Collect(s.Values()))
}

func TestConcat_Example(t *testing.T) {
	a := boundseq.MustNew(21, []int{0, 0})
	c, err := a.Concat(boundseq.MustNew(21, []int{0, 0}))
	require.NoError(t, err)
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, []int{0, 0, 0, 0}, c.ToList())
}

func TestConcat_WidthMismatch(t *testing.T) {
	a := boundseq.MustNew(8, []int{1})
	b := boundseq.MustNew(16, []int{1})
	_, err := a.Concat(b)

	var wm *boundseq.ErrWidthMismatch
	require.ErrorAs(t, err, &wm)
	assert.Equal(t, 3, wm.Expected)
	assert.Equal(t, 4, wm.Actual)
}

func TestConcat_Associative(t *testing.T) {
	rng := testutil.NewRNG(7)
	for _, bound := range []int{2, 21, 1 << 20, 1 << 40} {
		for trial := 0; trial < 20; trial++ {
			xa := rng.Values(rng.Intn(80), bound)
			xb := rng.Values(rng.Intn(80), bound)
			xc := rng.Values(rng.Intn(80), bound)
			a := boundseq.MustNew(bound, xa)
			b := boundseq.MustNew(bound, xb)
			c := boundseq.MustNew(bound, xc)

			ab, err := a.Concat(b)
			require.NoError(t, err)
			abc, err := ab.Concat(c)
			require.NoError(t, err)

			want := slices.Concat(xa, xb, xc)
			assert.Equal(t, want, abc.ToList())

			// Operands are untouched.
			assert.Equal(t, xa, a.ToList())
			assert.Equal(t, xb, b.ToList())
		}
	}
}

func TestSlice_Example(t *testing.T) {
	s := boundseq.MustNew(8, []int{4, 1, 6, 2, 7, 2, 5, 5, 2})

	r, err := s.Slice(-1, boundseq.Omit, -2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 5, 7, 6, 4}, r.ToList())
	assert.Equal(t, s.ItemBits(), r.ItemBits())

	r, err = s.Slice(2, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{6, 2, 7}, r.ToList())

	r, err = s.Slice(boundseq.Omit, boundseq.Omit, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2, 5}, r.ToList())

	assert.Equal(t, []int{2, 5, 5}, s.Sub(-4, -1).ToList())
}

func TestSlice_ZeroStep(t *testing.T) {
	s := boundseq.MustNew(8, []int{1, 2})
	_, err := s.Slice(0, 2, 0)
	assert.ErrorIs(t, err, boundseq.ErrZeroStep)
}

func TestSlice_Empty(t *testing.T) {
	s := boundseq.MustNew(8, []int{1, 2, 3})
	for _, args := range [][3]int{{2, 1, 1}, {5, 9, 1}, {0, 3, -1}, {-100, -50, 2}} {
		r, err := s.Slice(args[0], args[1], args[2])
		require.NoError(t, err)
		assert.True(t, r.IsEmpty())
		assert.Equal(t, 3, r.ItemBits())
		assert.True(t, r.Equal(boundseq.MustNew(8, nil)), "args %v", args)
	}
}

func TestSlice_MatchesReference(t *testing.T) {
	rng := testutil.NewRNG(99)
	for _, bound := range []int{2, 8, 21, 1 << 13, 1 << 33} {
		for _, n := range []int{0, 1, 5, 64, 130} {
			values := rng.Values(n, bound)
			s := boundseq.MustNew(bound, values)
			for trial := 0; trial < 50; trial++ {
				start, stop, step := rng.SliceArgs(n)
				r, err := s.Slice(start, stop, step)
				require.NoError(t, err)
				want := testutil.Ints(values, start, stop, step, boundseq.Omit)
				assert.Equal(t, want, r.ToList(), "s[%d:%d:%d] of %d items", start, stop, step, n)

				// A slice must equal the same items built from scratch.
				assert.True(t, r.Equal(boundseq.MustNew(bound, want)))
			}
		}
	}
}

func TestStartsWith(t *testing.T) {
	s := boundseq.MustNew(8, []int{4, 1, 6, 2})

	assert.True(t, s.StartsWith(boundseq.MustNew(8, nil)))
	assert.True(t, s.StartsWith(boundseq.MustNew(8, []int{4, 1})))
	assert.True(t, s.StartsWith(s))
	assert.False(t, s.StartsWith(boundseq.MustNew(8, []int{4, 2})))
	assert.False(t, s.StartsWith(boundseq.MustNew(8, []int{4, 1, 6, 2, 0})))

	// Same values, different width.
	assert.False(t, s.StartsWith(boundseq.MustNew(16, []int{4, 1})))
}

func TestPrefixesAndSubsequences(t *testing.T) {
	rng := testutil.NewRNG(3)
	for _, bound := range []int{2, 4, 21, 1 << 17} {
		values := rng.SmallAlphabet(90, min(bound, 3))
		s := boundseq.MustNew(bound, values)

		for k := 0; k <= s.Len(); k++ {
			assert.True(t, s.StartsWith(s.Sub(0, k)), "prefix %d", k)
		}
		for i := 0; i <= s.Len(); i += 3 {
			for j := i; j <= s.Len(); j += 4 {
				sub := s.Sub(i, j)
				require.True(t, s.ContainsSeq(sub), "s[%d:%d]", i, j)
				idx, err := s.IndexSeq(sub)
				require.NoError(t, err)
				assert.LessOrEqual(t, idx, i)
				assert.Equal(t, referenceIndexSeq(values, values[i:j]), idx)
			}
		}
	}
}

func TestIndexSeq_NotFound(t *testing.T) {
	s := boundseq.MustNew(8, []int{1, 2, 3, 1, 2})

	_, err := s.IndexSeq(boundseq.MustNew(8, []int{2, 1}))
	assert.ErrorIs(t, err, boundseq.ErrNotFound)

	_, err = s.IndexSeq(boundseq.MustNew(8, []int{1, 2, 3, 1, 2, 3}))
	assert.ErrorIs(t, err, boundseq.ErrNotFound)

	assert.False(t, s.ContainsSeq(boundseq.MustNew(16, []int{1, 2})))

	idx, err := s.IndexSeq(boundseq.MustNew(8, nil))
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	idx, err = s.IndexSeq(boundseq.MustNew(8, []int{1, 2}))
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	idx, err = s.IndexSeq(boundseq.MustNew(8, []int{3, 1}))
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
}

func TestIndexSeq_CrossWord(t *testing.T) {
	// 7-bit items: the pattern starts at many non-word-aligned offsets.
	rng := testutil.NewRNG(11)
	values := rng.Values(400, 128)
	s := boundseq.MustNew(128, values)
	for _, i := range []int{0, 9, 10, 63, 64, 91, 200, 350} {
		for _, n := range []int{1, 9, 10, 19, 40} {
			if i+n > len(values) {
				continue
			}
			idx, err := s.IndexSeq(s.Sub(i, i+n))
			require.NoError(t, err)
			assert.Equal(t, referenceIndexSeq(values, values[i:i+n]), idx)
		}
	}
}

func TestIndex_Example(t *testing.T) {
	s := boundseq.MustNew(8, []int{2, 2, 2, 1, 2, 4, 3, 3, 3, 2, 2, 0})
	idx, err := s.Index(0)
	require.NoError(t, err)
	assert.Equal(t, 11, idx)

	idx, err = s.Index(3)
	require.NoError(t, err)
	assert.Equal(t, 6, idx)

	_, err = s.Index(5)
	assert.ErrorIs(t, err, boundseq.ErrNotFound)
	_, err = s.Index(-1)
	assert.ErrorIs(t, err, boundseq.ErrNotFound)
	_, err = s.Index(8)
	assert.ErrorIs(t, err, boundseq.ErrNotFound)

	assert.True(t, s.Contains(4))
	assert.False(t, s.Contains(7))
	assert.False(t, s.Contains(1000))
}

func TestMaximalOverlap(t *testing.T) {
	s := boundseq.MustNew(8, []int{1, 2, 3, 4})

	t.Run("proper suffix", func(t *testing.T) {
		o, ok, err := s.MaximalOverlap(boundseq.MustNew(8, []int{3, 4, 5}))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, []int{3, 4}, o.ToList())
	})

	t.Run("whole receiver", func(t *testing.T) {
		o, ok, err := s.MaximalOverlap(boundseq.MustNew(8, []int{1, 2, 3, 4, 0}))
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, o.Equal(s))
	})

	t.Run("none", func(t *testing.T) {
		_, ok, err := s.MaximalOverlap(boundseq.MustNew(8, []int{5, 6}))
		require.NoError(t, err)
		assert.False(t, ok)

		_, ok, err = s.MaximalOverlap(boundseq.MustNew(8, nil))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("width mismatch", func(t *testing.T) {
		_, ok, err := s.MaximalOverlap(boundseq.MustNew(16, []int{3, 4}))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("empty receiver", func(t *testing.T) {
		_, _, err := boundseq.MustNew(8, nil).MaximalOverlap(s)
		assert.ErrorIs(t, err, boundseq.ErrEmptySequence)
	})

	t.Run("longest wins", func(t *testing.T) {
		a := boundseq.MustNew(4, []int{1, 1, 1})
		o, ok, err := a.MaximalOverlap(boundseq.MustNew(4, []int{1, 1, 2}))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, []int{1, 1}, o.ToList())
	})
}

func TestMaximalOverlap_MatchesReference(t *testing.T) {
	rng := testutil.NewRNG(5)
	for _, bound := range []int{2, 3, 32, 1 << 21} {
		for trial := 0; trial < 200; trial++ {
			xs := rng.SmallAlphabet(rng.Intn(40)+1, 2)
			ys := rng.SmallAlphabet(rng.Intn(40), 2)
			s := boundseq.MustNew(bound, xs)
			u := boundseq.MustNew(bound, ys)

			o, ok, err := s.MaximalOverlap(u)
			require.NoError(t, err)
			want, wantOK := referenceOverlap(xs, ys)
			require.Equal(t, wantOK, ok, "%v vs %v", xs, ys)
			if ok {
				assert.Equal(t, want, o.ToList(), "%v vs %v", xs, ys)
			}
		}
	}
}

func TestCountPositionsAlphabet(t *testing.T) {
	s := boundseq.MustNew(8, []int{2, 2, 2, 1, 2, 4, 3, 3, 3, 2, 2, 0})

	assert.Equal(t, 6, s.Count(2))
	assert.Equal(t, 0, s.Count(7))
	assert.Equal(t, 0, s.Count(-1))

	pos := s.Positions(3)
	assert.Equal(t, uint(3), pos.Count())
	assert.True(t, pos.Test(6))
	assert.True(t, pos.Test(8))
	assert.False(t, pos.Test(5))
	assert.Equal(t, uint(0), s.Positions(99).Count())

	alpha := s.Alphabet()
	assert.Equal(t, uint64(5), alpha.GetCardinality())
	assert.Equal(t, []uint64{0, 1, 2, 3, 4}, alpha.ToArray())
}

func referenceIndexSeq(xs, sub []int) int {
	for i := 0; i+len(sub) <= len(xs); i++ {
		if slices.Equal(xs[i:i+len(sub)], sub) {
			return i
		}
	}
	return -1
}

func referenceOverlap(xs, ys []int) ([]int, bool) {
	if len(ys) >= len(xs) && slices.Equal(ys[:len(xs)], xs) {
		return xs, true
	}
	for i := 1; i < len(xs); i++ {
		suffix := xs[i:]
		if len(suffix) <= len(ys) && slices.Equal(ys[:len(suffix)], suffix) {
			return suffix, true
		}
	}
	return nil, false
}
