package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hupe1980/facet/predicate"
	"github.com/hupe1980/facet/record"
)

// FieldEntry is a filterable field and its value buckets.
type FieldEntry struct {
	ID FieldID
	// Name is the display name, qualified with the entity type when the
	// catalog uses fully qualified names.
	Name string
	// ShortName is the unqualified display name.
	ShortName string
	DataType  predicate.DataType
	// Accessor reads the field value from a record.
	Accessor predicate.Accessor
	Values   map[ValueID]*ValueBucket
}

func newFieldEntry(id FieldID, name, shortName string, dt predicate.DataType) *FieldEntry {
	return &FieldEntry{
		ID:        id,
		Name:      name,
		ShortName: shortName,
		DataType:  dt,
		Accessor:  fieldAccessor(id),
		Values:    make(map[ValueID]*ValueBucket),
	}
}

// Value returns the bucket with the given id.
func (e *FieldEntry) Value(id ValueID) (*ValueBucket, bool) {
	b, ok := e.Values[id]
	return b, ok
}

// SortedValues returns the buckets ordered by label.
func (e *FieldEntry) SortedValues() []*ValueBucket {
	out := make([]*ValueBucket, 0, len(e.Values))
	for _, b := range e.Values {
		out = append(out, b)
	}
	slices.SortFunc(out, func(a, b *ValueBucket) int { return strings.Compare(a.Label, b.Label) })
	return out
}

// Predicate builds the predicate that accepts the records of one bucket.
func (e *FieldEntry) Predicate(id ValueID) (*predicate.Leaf, error) {
	b, ok := e.Values[id]
	if !ok {
		return nil, fmt.Errorf("catalog: field %s has no value %q", e.ID, id.Label)
	}
	return predicate.NewLeaf(predicate.Spec{
		ID:       id.String(),
		Type:     string(e.DataType),
		Op:       predicate.DefaultOp(e.DataType),
		Operand:  b.Value,
		Accessor: e.Accessor,
	})
}

// SearchPredicate builds the text search predicate of the field: a
// case-insensitive substring test on the field value.
func (e *FieldEntry) SearchPredicate(text string) (*predicate.Leaf, error) {
	return predicate.NewLeaf(predicate.Spec{
		ID:       e.ID.String() + ".search",
		Type:     string(predicate.Str),
		Op:       predicate.Contains,
		Operand:  text,
		Accessor: e.Accessor,
	})
}

func fieldAccessor(id FieldID) predicate.Accessor {
	return func(rec record.Record) any {
		payload := rec.Data(id.Role)
		if id.Field == "" {
			return payload
		}
		v, _ := record.Lookup(payload, id.Field)
		return v
	}
}
