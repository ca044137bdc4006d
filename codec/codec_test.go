package codec

import (
	"testing"

	"github.com/hupe1980/skewgen/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	for _, name := range Names() {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}

	c, ok := ByName("")
	require.True(t, ok)
	assert.Equal(t, Default.Name(), c.Name())

	_, ok = ByName("msgpack")
	assert.False(t, ok)
}

func TestCodecs_DatasetOrder(t *testing.T) {
	data := []byte(`[{"b":"1","a":2},{"c":[1.5,true]}]`)

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			var ds record.Dataset
			require.NoError(t, c.Unmarshal(data, &ds))
			require.Len(t, ds, 2)
			assert.Equal(t, []string{"b", "a"}, ds[0].Names())

			out, err := c.Marshal(ds)
			require.NoError(t, err)
			assert.JSONEq(t, string(data), string(out))
		})
	}
}

func TestMustMarshal_DefaultCodec(t *testing.T) {
	b := MustMarshal(nil, record.Record{{Name: "k", Value: record.Int(7)}})
	assert.Equal(t, `{"k":7}`, string(b))
}

func TestAppendLine(t *testing.T) {
	row := record.Record{{Name: "city", Value: record.String("Oslo")}}

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			out, err := AppendLine(c, []byte("{}\n"), row)
			require.NoError(t, err)
			assert.Equal(t, "{}\n{\"city\":\"Oslo\"}\n", string(out))
		})
	}

	_, err := AppendLine(GoJSON{}, nil, record.Value{})
	require.Error(t, err)
}
