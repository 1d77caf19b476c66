package facet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestState_RoundTrip(t *testing.T) {
	f := newFixture()
	e := New(f.tree)
	require.NoError(t, e.Refresh())

	require.NoError(t, e.Select(val(status, "open")))
	require.NoError(t, e.SetSearch(name, "al"))

	st := e.SaveState()
	assert.Equal(t, State{
		"display.status": {"display.status.open": true},
		"display.name":   {"display.name.search": "al"},
	}, st)

	data, err := yaml.Marshal(st)
	require.NoError(t, err)

	cleared, err := e.ClearFilters()
	require.NoError(t, err)
	assert.True(t, cleared)
	assert.Empty(t, e.SaveState())

	var loaded State
	require.NoError(t, yaml.Unmarshal(data, &loaded))
	require.NoError(t, e.RestoreState(loaded))

	assert.Equal(t, st, e.SaveState())
	assert.Len(t, e.CurrentFilters(), 2)
	assert.True(t, e.Accepts(f.alpha))
	assert.False(t, e.Accepts(f.beta))
}

func TestState_RestoreSkipsUnknown(t *testing.T) {
	f := newFixture()
	e := New(f.tree)
	require.NoError(t, e.Refresh())

	require.NoError(t, e.Select(val(priority, "1")))

	err := e.RestoreState(State{
		"display.missing": {"display.missing.x": true},
		"display.status":  {"display.status.pending": true, "display.status.closed": true},
	})
	require.NoError(t, err)

	assert.Equal(t, State{"display.status": {"display.status.closed": true}}, e.SaveState())
}

func TestState_RestoreInvalidSearch(t *testing.T) {
	f := newFixture()
	e := New(f.tree)
	require.NoError(t, e.Refresh())

	err := e.RestoreState(State{"display.name": {"display.name.search": 42}})
	require.Error(t, err)

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, name, fe.Field)
}
