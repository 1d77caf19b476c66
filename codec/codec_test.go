package codec

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "go-json"} {
		c, ok := ByName(name)
		require.True(t, ok)
		assert.Equal(t, name, c.Name())
	}

	c, ok := ByName("")
	require.True(t, ok)
	assert.Equal(t, Default.Name(), c.Name())

	_, ok = ByName("msgpack")
	assert.False(t, ok)
}

func TestString_Deterministic(t *testing.T) {
	v := map[string]any{"type": "Step", "id": 7, "tags": []string{"b", "a"}}

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			want := `{"id":7,"tags":["b","a"],"type":"Step"}`
			assert.Equal(t, want, String(c, v))
			assert.Equal(t, String(c, v), String(c, map[string]any{"tags": []string{"b", "a"}, "type": "Step", "id": 7}))
		})
	}
}

func TestString_Fallback(t *testing.T) {
	ch := make(chan int)
	assert.NotEmpty(t, String(GoJSON{}, ch))
	assert.Equal(t, fmt.Sprint(ch), String(JSON{}, ch))
	assert.Equal(t, `"x"`, String(nil, "x"))
}
