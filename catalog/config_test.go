package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/facet/codec"
	"github.com/hupe1980/facet/record"
	"github.com/hupe1980/facet/schema"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
roles: [display, entity]
accept_fields: [display.status]
ignore_fields: [display.secret]
fully_qualified_names: false
leaf_depth: 1
project_id: 85
codec: json
`))
	require.NoError(t, err)

	o := defaultOptions()
	WithConfig(cfg)(&o)

	assert.Equal(t, []record.Role{record.RoleDisplay, "entity"}, o.roles)
	assert.Contains(t, o.acceptFields, "display.status")
	assert.Contains(t, o.ignoreFields, "display.secret")
	assert.False(t, o.fullyQualified)
	assert.True(t, o.leafDepthSet)
	assert.Equal(t, 1, o.leafDepth)
	assert.True(t, o.projectIDSet)
	assert.Equal(t, 85, o.projectID)
	assert.Equal(t, codec.JSON{}, o.codec)
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{}`))
	require.NoError(t, err)

	o := defaultOptions()
	WithConfig(cfg)(&o)
	assert.Equal(t, defaultOptions().roles, o.roles)
	assert.True(t, o.fullyQualified)
	assert.False(t, o.leafDepthSet)
	assert.Equal(t, codec.Default, o.codec)
}

func TestParseConfig_Errors(t *testing.T) {
	_, err := ParseConfig([]byte(`codec: msgpack`))
	assert.ErrorIs(t, err, ErrUnknownCodec)

	_, err = ParseConfig([]byte(`leaf_depth: -2`))
	assert.Error(t, err)

	_, err = ParseConfig([]byte(`roles: {`))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("accept_fields: [display.status]\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"display.status"}, cfg.AcceptFields)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestWithProjectID(t *testing.T) {
	sch, err := schema.Parse([]byte(taskSchema + `
projects:
  85:
    Task:
      fields:
        sg_status_list: {data_type: status_list, display_name: Phase}
`))
	require.NoError(t, err)

	tree := record.NewTree()
	tree.Root().Add(map[string]any{"type": "Task", "sg_status_list": "ip"})

	c := New(tree, WithSchema(sch), WithProjectID(85), WithFullyQualifiedNames(false))
	require.NoError(t, c.Build())

	e, ok := c.FieldByKey("display.Task.sg_status_list")
	require.True(t, ok)
	assert.Equal(t, "Phase", e.Name)
}
