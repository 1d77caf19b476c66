package view

import (
	"fmt"

	"github.com/hupe1980/facet/predicate"
	"github.com/hupe1980/facet/record"
)

// Filtered is a record source that hides the records rejected by a list of
// predicates. It forwards the structure of the wrapped source unchanged; only
// AcceptedUpstream changes.
type Filtered struct {
	src       record.Source
	preds     []predicate.Predicate
	op        predicate.Op
	hierarchy bool
}

// Option configures a Filtered view.
type Option func(*Filtered)

// WithHierarchy accepts a record when it or any of its descendants passes
// the predicates, so matches deep in a tree keep their ancestors visible.
func WithHierarchy() Option {
	return func(f *Filtered) { f.hierarchy = true }
}

// WithGroupOp sets how the predicates are combined. Defaults to And.
func WithGroupOp(op predicate.Op) Option {
	return func(f *Filtered) {
		if op.IsGroup() {
			f.op = op
		}
	}
}

var _ record.Source = (*Filtered)(nil)

// New wraps src.
func New(src record.Source, opts ...Option) *Filtered {
	f := &Filtered{src: src, op: predicate.And}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SetPredicates replaces the predicates.
func (f *Filtered) SetPredicates(preds ...predicate.Predicate) {
	f.preds = preds
}

// Predicates returns the predicates.
func (f *Filtered) Predicates() []predicate.Predicate { return f.preds }

// SetGroupOp sets how the predicates are combined.
func (f *Filtered) SetGroupOp(op predicate.Op) error {
	if !op.IsGroup() {
		return fmt.Errorf("view: %w: %q is not a group operator", predicate.ErrInvalidOp, op)
	}
	f.op = op
	return nil
}

// GroupOp returns how the predicates are combined.
func (f *Filtered) GroupOp() predicate.Op { return f.op }

// Hierarchical reports whether descendants keep their ancestors visible.
func (f *Filtered) Hierarchical() bool { return f.hierarchy }

// Accepts reports whether rec passes the view's own predicates. Without
// predicates every record passes.
func (f *Filtered) Accepts(rec record.Record) bool {
	if len(f.preds) == 0 {
		return true
	}
	if predicate.Filter(rec, f.preds, f.op) {
		return true
	}
	if !f.hierarchy {
		return false
	}
	for i := range f.src.ChildCount(rec) {
		if child := f.src.ChildAt(rec, i); child != nil && f.Accepts(child) {
			return true
		}
	}
	return false
}

// ChildCount implements record.Source.
func (f *Filtered) ChildCount(parent record.Record) int { return f.src.ChildCount(parent) }

// ChildAt implements record.Source.
func (f *Filtered) ChildAt(parent record.Record, i int) record.Record {
	return f.src.ChildAt(parent, i)
}

// AcceptedUpstream implements record.Source: the record must be accepted by
// the wrapped source and by the view.
func (f *Filtered) AcceptedUpstream(rec record.Record) bool {
	return f.src.AcceptedUpstream(rec) && f.Accepts(rec)
}

// EntityType forwards the entity type of the wrapped source, if any.
func (f *Filtered) EntityType() string {
	if et, ok := f.src.(record.EntityTyper); ok {
		return et.EntityType()
	}
	return ""
}

// Unfiltered returns the view with its own predicates disabled: records are
// accepted exactly when the wrapped source accepts them. The returned source
// tracks later changes of the view.
func (f *Filtered) Unfiltered() record.Source {
	return unfiltered{f}
}

// Visible returns the records a consumer of the view sees, in pre-order.
// Children of hidden records are hidden too.
func (f *Filtered) Visible() []record.Record {
	var out []record.Record
	record.Walk(f, func(rec record.Record, _ int) bool {
		if !f.AcceptedUpstream(rec) {
			return false
		}
		out = append(out, rec)
		return true
	})
	return out
}

type unfiltered struct{ f *Filtered }

func (u unfiltered) ChildCount(parent record.Record) int { return u.f.src.ChildCount(parent) }

func (u unfiltered) ChildAt(parent record.Record, i int) record.Record {
	return u.f.src.ChildAt(parent, i)
}

func (u unfiltered) AcceptedUpstream(rec record.Record) bool { return u.f.src.AcceptedUpstream(rec) }

func (u unfiltered) EntityType() string { return u.f.EntityType() }
