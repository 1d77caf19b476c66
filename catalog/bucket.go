package catalog

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/facet/internal/conv"
)

// noneLabel labels the bucket of empty list values.
const noneLabel = "None"

// ValueBucket is one distinct value of a field together with the leaf records
// that carry it.
type ValueBucket struct {
	ID    ValueID
	Label string
	// Value is the raw value predicates compare against. Date fields store
	// the bucket label.
	Value any
	// Icon is taken from the "icon" entry of map values.
	Icon string

	records *roaring.Bitmap
}

func newValueBucket(id ValueID) *ValueBucket {
	return &ValueBucket{ID: id, Label: id.Label, records: roaring.New()}
}

// Count returns the number of leaf records carrying the value.
func (b *ValueBucket) Count() int {
	n, err := conv.Uint64ToInt(b.records.GetCardinality())
	if err != nil {
		return math.MaxInt
	}
	return n
}

// Contains reports whether the leaf with the given traversal ordinal carries
// the value.
func (b *ValueBucket) Contains(ordinal uint32) bool {
	return b.records.Contains(ordinal)
}

func (b *ValueBucket) add(ordinal uint32) { b.records.Add(ordinal) }

func (b *ValueBucket) reset() { b.records.Clear() }
