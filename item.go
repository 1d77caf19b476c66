package facet

import (
	"github.com/hupe1980/facet/catalog"
	"github.com/hupe1980/facet/predicate"
)

// Item is one entry of a field's filter group: either a value choice backed
// by a catalog value bucket, or the text search of a string field.
type Item struct {
	id     string
	field  catalog.FieldID
	value  catalog.ValueID
	label  string
	count  int
	icon   string
	search bool

	pred     *predicate.Leaf
	selected bool
	text     string
}

// ID returns the item id: the value id string, or "<field>.search".
func (i *Item) ID() string { return i.id }

// Field returns the field the item belongs to.
func (i *Item) Field() catalog.FieldID { return i.field }

// ValueID returns the catalog value of a choice item.
func (i *Item) ValueID() catalog.ValueID { return i.value }

// Label returns the display text of the item.
func (i *Item) Label() string { return i.label }

// Count returns the number of records carrying the value when the filters of
// all other fields are applied. Selected values that no longer occur report 0.
func (i *Item) Count() int { return i.count }

// Icon returns the icon of the value, if any.
func (i *Item) Icon() string { return i.icon }

// IsSearch reports whether the item is a text search item.
func (i *Item) IsSearch() bool { return i.search }

// Selected reports whether a choice item is selected.
func (i *Item) Selected() bool { return i.selected }

// Text returns the search text of a search item.
func (i *Item) Text() string { return i.text }

// Active reports whether the item contributes a filter.
func (i *Item) Active() bool {
	if i.search {
		return i.text != ""
	}
	return i.selected
}

// Predicate returns the predicate the item filters with.
func (i *Item) Predicate() *predicate.Leaf { return i.pred }

func (i *Item) clear() bool {
	was := i.Active()
	i.selected = false
	i.text = ""
	if i.search {
		_, _ = i.pred.SetOperand("")
	}
	return was
}
