package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Words    []uint64 `json:"words"`
	ItemBits int      `json:"item_bits"`
}

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "go-json"} {
		c, ok := ByName(name)
		require.True(t, ok)
		assert.Equal(t, name, c.Name())
	}
	_, ok := ByName("msgpack")
	assert.False(t, ok)
}

func TestCodecs_RoundTrip(t *testing.T) {
	in := payload{Words: []uint64{1, 1 << 63}, ItemBits: 5}
	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Marshal(in)
			require.NoError(t, err)

			var out payload
			require.NoError(t, c.Unmarshal(data, &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestCodecs_SameBytes(t *testing.T) {
	in := payload{Words: []uint64{42, 7}, ItemBits: 3}
	a := MustMarshal(JSON{}, in)
	b := MustMarshal(GoJSON{}, in)
	assert.JSONEq(t, string(a), string(b))
}

func TestGoJSON_Append(t *testing.T) {
	out, err := GoJSON{}.Append([]byte("x"), 1)
	require.NoError(t, err)
	assert.Equal(t, "x1", string(out))
}

func TestMustMarshal_DefaultCodec(t *testing.T) {
	assert.Equal(t, `{"words":null,"item_bits":0}`, string(MustMarshal(nil, payload{})))
}
