package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/facet/predicate"
	"github.com/hupe1980/facet/record"
)

func kindIs(kind string) predicate.Predicate {
	return predicate.MustNew(predicate.Spec{
		ID:      "kind",
		Type:    "str",
		Operand: kind,
		Accessor: func(rec record.Record) any {
			v, _ := record.Lookup(rec.Data(record.RoleDisplay), "kind")
			return v
		},
	})
}

func kinds(recs []record.Record) []string {
	out := make([]string, len(recs))
	for i, rec := range recs {
		v, _ := record.Lookup(rec.Data(record.RoleDisplay), "kind")
		out[i], _ = v.(string)
	}
	return out
}

func sampleTree() *record.Tree {
	tree := record.NewTree()
	shot := tree.Root().Add(map[string]any{"kind": "shot"})
	shot.Add(map[string]any{"kind": "task"})
	shot.Add(map[string]any{"kind": "note"})
	tree.Root().Add(map[string]any{"kind": "asset"})
	return tree
}

func TestFiltered(t *testing.T) {
	v := New(sampleTree())
	assert.Equal(t, []string{"shot", "task", "note", "asset"}, kinds(v.Visible()))

	v.SetPredicates(kindIs("asset"))
	assert.Equal(t, []string{"asset"}, kinds(v.Visible()))

	v.SetPredicates(kindIs("asset"), kindIs("shot"))
	assert.Empty(t, v.Visible())

	require.NoError(t, v.SetGroupOp(predicate.Or))
	assert.Equal(t, predicate.Or, v.GroupOp())
	assert.Equal(t, []string{"shot", "asset"}, kinds(v.Visible()))
	assert.Len(t, v.Predicates(), 2)

	assert.ErrorIs(t, v.SetGroupOp(predicate.Equal), predicate.ErrInvalidOp)
}

func TestFiltered_Hierarchy(t *testing.T) {
	v := New(sampleTree(), WithHierarchy())
	assert.True(t, v.Hierarchical())

	v.SetPredicates(kindIs("task"))
	assert.Equal(t, []string{"shot", "task"}, kinds(v.Visible()))
}

func TestFiltered_Unfiltered(t *testing.T) {
	tree := sampleTree()
	tree.SetEntityType("Shot")

	v := New(tree)
	v.SetPredicates(kindIs("asset"))
	u := v.Unfiltered()

	shot := tree.ChildAt(nil, 0)
	assert.False(t, v.AcceptedUpstream(shot))
	assert.True(t, u.AcceptedUpstream(shot))
	assert.Equal(t, 2, u.ChildCount(nil))
	assert.Equal(t, v.ChildAt(shot, 1), u.ChildAt(shot, 1))

	et, ok := u.(record.EntityTyper)
	require.True(t, ok)
	assert.Equal(t, "Shot", et.EntityType())
	assert.Equal(t, "Shot", v.EntityType())
}

func TestFiltered_Stacked(t *testing.T) {
	inner := New(sampleTree())
	inner.SetPredicates(kindIs("shot"))
	outer := New(inner, WithGroupOp(predicate.Or))

	assert.Equal(t, []string{"shot"}, kinds(outer.Visible()))

	// The outer view's unfiltered source still honors the inner view.
	u := outer.Unfiltered()
	assert.True(t, u.AcceptedUpstream(u.ChildAt(nil, 0)))
	assert.False(t, u.AcceptedUpstream(u.ChildAt(nil, 1)))
}
