// Package view filters a record source with predicates.
//
// A Filtered view is itself a record.Source, so views stack and a catalog can
// be built over a view to count only the visible records. Unfiltered exposes
// the same tree with the view's own predicates switched off, which filter
// menus use to count a field's values without the field's own selection.
package view
