package record

// Role selects which payload of a record is read.
//
// A record can carry several payloads (for example a display string and the
// full entity map behind it); extraction and predicates pick one by role.
type Role string

const (
	// RoleDisplay is the default extraction role.
	RoleDisplay Role = "display"
)

// Record is a single node of a record tree.
type Record interface {
	// Data returns the payload stored for role, or nil.
	Data(role Role) any
}

// Source is a tree of records.
//
// The root is implicit: a nil parent addresses the top level. Implementations
// must not mutate the tree while a traversal is in progress.
type Source interface {
	// ChildCount returns the number of children of parent.
	ChildCount(parent Record) int

	// ChildAt returns the i-th child of parent.
	ChildAt(parent Record, i int) Record

	// AcceptedUpstream reports whether rec is visible under filters that are
	// applied outside of the consumer (for example by a view).
	AcceptedUpstream(rec Record) bool
}

// EntityTyper is implemented by sources whose payload maps all describe the
// same entity type without carrying a "type" key themselves.
type EntityTyper interface {
	EntityType() string
}

// PropertyObject is a payload exposing named read-only properties.
type PropertyObject interface {
	// Properties returns the property names in a stable order.
	Properties() []string

	// Property returns the value of the named property.
	Property(name string) any
}

// Walk visits every record of src in depth-first pre-order. Returning false
// from fn skips the children of that record.
func Walk(src Source, fn func(rec Record, depth int) bool) {
	walk(src, nil, 0, fn)
}

func walk(src Source, parent Record, depth int, fn func(Record, int) bool) {
	for i := range src.ChildCount(parent) {
		child := src.ChildAt(parent, i)
		if child == nil {
			continue
		}
		if fn(child, depth) {
			walk(src, child, depth+1, fn)
		}
	}
}
