// Package facet provides a filter engine for hierarchical records.
//
// It evaluates typed predicates against records and discovers, from a live
// record tree, which fields and values are available to filter on, together
// with how many records carry each value.
//
// The engine is built from these packages:
//
//   - record: the record and record source abstractions, plus an in-memory tree
//   - predicate: typed leaf predicates and AND/OR groups
//   - catalog: field and value discovery with per-value record counts
//   - view: a filtered view of a record source
//   - schema: entity types, field data types and display names
//
// # Quick Start
//
// Load a tree and build the filter groups:
//
//	tree, err := record.LoadTreeFile("tasks.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	e := facet.New(tree, facet.WithLogLevel(slog.LevelDebug))
//	if err := e.Refresh(); err != nil {
//	    log.Fatal(err)
//	}
//
// List the values of a field with their counts:
//
//	status := catalog.FieldID{Role: record.RoleDisplay, Field: "status"}
//	for _, item := range e.Items(status) {
//	    fmt.Println(item.Label(), item.Count())
//	}
//
// Select a value. Counts of every other field are recomputed over the
// records that pass the new filter:
//
//	err = e.Select(catalog.ValueID{Field: status, Label: "open"})
//
// Records are tested against the active filters with Accepts, or by
// iterating the filtered view:
//
//	for _, rec := range e.View().Visible() {
//	    fmt.Println(rec.Data(record.RoleDisplay))
//	}
//
// # Filter semantics
//
// Selected values of one field are OR-ed; fields are AND-ed. The count of a
// value ignores the filter of its own field, so selecting "open" does not
// hide "closed" from the status group.
//
// # Concurrency
//
// An Engine is not safe for concurrent use. Refresh, Select and the read
// methods must be called from one goroutine.
package facet
