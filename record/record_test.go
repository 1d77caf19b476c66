package record

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shot struct {
	Code     string
	Status   string `facet:"sg_status"`
	Internal string `facet:"-"`
	hidden   string
}

type props map[string]any

func (p props) Properties() []string     { return []string{"b", "a"} }
func (p props) Property(name string) any { return p[name] }

func TestTree_Traversal(t *testing.T) {
	tree := NewTree()
	a := tree.Root().Add("a")
	a.Add("a1")
	a.Add("a2")
	tree.Root().Add("b")

	assert.Equal(t, 2, tree.ChildCount(nil))
	assert.Equal(t, 2, tree.ChildCount(a))
	assert.Equal(t, 4, tree.Len())
	assert.Nil(t, tree.ChildAt(nil, 5))
	assert.True(t, tree.AcceptedUpstream(a))

	var visited []string
	Walk(tree, func(rec Record, depth int) bool {
		visited = append(visited, strings.Repeat(">", depth)+rec.Data(RoleDisplay).(string))
		return true
	})
	assert.Equal(t, []string{"a", ">a1", ">a2", "b"}, visited)
}

func TestTree_WalkSkipsChildren(t *testing.T) {
	tree := NewTree()
	a := tree.Root().Add("a")
	a.Add("a1")

	var visited []any
	Walk(tree, func(rec Record, _ int) bool {
		visited = append(visited, rec.Data(RoleDisplay))
		return false
	})
	assert.Equal(t, []any{"a"}, visited)
}

func TestNode_ParentAndDepth(t *testing.T) {
	tree := NewTree()
	a := tree.Root().Add("a")
	a1 := a.Add("a1")

	assert.Nil(t, a.Parent())
	assert.Same(t, a, a1.Parent())
	assert.Equal(t, 0, a.Depth())
	assert.Equal(t, 1, a1.Depth())

	a1.Set("entity", map[string]any{"type": "Task"})
	assert.Equal(t, "a1", a1.Data(RoleDisplay))
	assert.NotNil(t, a1.Data("entity"))
	assert.Nil(t, a1.Data("missing"))
}

func TestParseTree(t *testing.T) {
	doc := `
entity_type: Task
nodes:
  - data: Shot 010
    children:
      - data: {name: a, age: 5}
      - roles:
          display: b
          entity: {type: Task, content: b}
  - data: Shot 020
`
	tree, err := ParseTree([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, "Task", tree.EntityType())
	require.Equal(t, 2, tree.ChildCount(nil))

	shot := tree.ChildAt(nil, 0)
	assert.Equal(t, "Shot 010", shot.Data(RoleDisplay))
	require.Equal(t, 2, tree.ChildCount(shot))

	leaf := tree.ChildAt(shot, 0)
	assert.Equal(t, map[string]any{"name": "a", "age": 5}, leaf.Data(RoleDisplay))

	multi := tree.ChildAt(shot, 1)
	assert.Equal(t, "b", multi.Data(RoleDisplay))
	assert.Equal(t, map[string]any{"type": "Task", "content": "b"}, multi.Data("entity"))
}

func TestParseTree_Invalid(t *testing.T) {
	_, err := ParseTree([]byte("nodes: {"))
	require.Error(t, err)
}

func TestPropertyNames(t *testing.T) {
	names, ok := PropertyNames(shot{})
	require.True(t, ok)
	assert.Equal(t, []string{"Code", "sg_status"}, names)

	names, ok = PropertyNames(&shot{})
	require.True(t, ok)
	assert.Len(t, names, 2)

	names, ok = PropertyNames(props{})
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a"}, names)

	_, ok = PropertyNames("plain")
	assert.False(t, ok)

	var nilShot *shot
	_, ok = PropertyNames(nilShot)
	assert.False(t, ok)
}

func TestLookup(t *testing.T) {
	s := &shot{Code: "010", Status: "ip", Internal: "x"}

	v, ok := Lookup(s, "sg_status")
	require.True(t, ok)
	assert.Equal(t, "ip", v)

	_, ok = Lookup(s, "Internal")
	assert.False(t, ok)

	v, ok = Lookup(map[string]any{"k": 1}, "k")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = Lookup(map[string]string{"k": "v"}, "k")
	require.True(t, ok)
	assert.Equal(t, "v", v)

	v, ok = Lookup(props{"a": 3}, "a")
	require.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = Lookup(nil, "k")
	assert.False(t, ok)
	_, ok = Lookup(42, "k")
	assert.False(t, ok)
}
