package predicate

import (
	"fmt"

	"github.com/hupe1980/facet/record"
)

// Accessor extracts the value a leaf predicate compares from a record.
type Accessor func(rec record.Record) any

// Predicate decides whether a record is accepted.
//
// Accepts is pure and safe to call repeatedly, but not concurrently with
// Leaf.SetOperand or Group.SetChildren on the same predicate.
type Predicate interface {
	ID() string
	DataType() DataType
	Op() Op
	Accepts(rec record.Record) bool
}

// Leaf compares one value read from a record against its operand.
type Leaf struct {
	id       string
	dataType DataType
	op       Op
	operand  any
	role     record.Role
	accessor Accessor
}

// ID returns the predicate id.
func (l *Leaf) ID() string { return l.id }

// DataType returns the predicate type.
func (l *Leaf) DataType() DataType { return l.dataType }

// Op returns the operator.
func (l *Leaf) Op() Op { return l.op }

// Operand returns the sanitized comparison value.
func (l *Leaf) Operand() any { return l.operand }

// Role returns the role the compared value is read from, if any.
func (l *Leaf) Role() record.Role { return l.role }

// Accessor returns the accessor used when no role is set.
func (l *Leaf) Accessor() Accessor { return l.accessor }

// SetOperand replaces the operand, as done when a user edits a filter value.
// It reports whether the operand changed.
func (l *Leaf) SetOperand(v any) (bool, error) {
	sv, err := sanitize(l.dataType, v)
	if err != nil {
		return false, &SpecError{ID: l.id, cause: err}
	}
	if EqualValues(sv, l.operand) {
		return false, nil
	}
	l.operand = sv
	return true, nil
}

// Value returns the value of rec the leaf compares. The role wins over the
// accessor when both are set.
func (l *Leaf) Value(rec record.Record) any {
	if rec == nil {
		return nil
	}
	if l.role != "" {
		return rec.Data(l.role)
	}
	if l.accessor != nil {
		return l.accessor(rec)
	}
	return nil
}

// Accepts implements Predicate. It panics with *OpError when the operator is
// not valid for the leaf's type.
func (l *Leaf) Accepts(rec record.Record) bool {
	return l.evaluate(l.Value(rec))
}

// Match applies the leaf to an already extracted value.
func (l *Leaf) Match(observed any) bool {
	return l.evaluate(observed)
}

func (l *Leaf) String() string {
	return fmt.Sprintf("<Leaf id=%s type=%s op=%s value=%v>", l.id, l.dataType, l.op, l.operand)
}

// Group combines child predicates with And or Or.
type Group struct {
	id       string
	op       Op
	children []Predicate
}

// NewGroup creates a group predicate. An empty id defaults to "group.<op>".
func NewGroup(op Op, id string, children ...Predicate) (*Group, error) {
	if id == "" {
		id = fmt.Sprintf("%s.%s", GroupType, op)
	}
	if !op.IsGroup() {
		return nil, specError(id, ErrInvalidOp, "group predicates need %q or %q, got %q", And, Or, op)
	}
	return &Group{id: id, op: op, children: children}, nil
}

// AndGroup creates an And group.
func AndGroup(children ...Predicate) *Group {
	return &Group{id: fmt.Sprintf("%s.%s", GroupType, And), op: And, children: children}
}

// OrGroup creates an Or group.
func OrGroup(children ...Predicate) *Group {
	return &Group{id: fmt.Sprintf("%s.%s", GroupType, Or), op: Or, children: children}
}

// ID returns the predicate id.
func (g *Group) ID() string { return g.id }

// DataType always returns GroupType.
func (g *Group) DataType() DataType { return GroupType }

// Op returns And or Or.
func (g *Group) Op() Op { return g.op }

// Children returns the child predicates.
func (g *Group) Children() []Predicate { return g.children }

// SetChildren replaces the child predicates.
func (g *Group) SetChildren(children ...Predicate) { g.children = children }

// Add appends child predicates.
func (g *Group) Add(children ...Predicate) { g.children = append(g.children, children...) }

// Len returns the number of children.
func (g *Group) Len() int { return len(g.children) }

// Accepts implements Predicate. An empty And group accepts every record, an
// empty Or group rejects every record.
func (g *Group) Accepts(rec record.Record) bool {
	return Filter(rec, g.children, g.op)
}

func (g *Group) String() string {
	return fmt.Sprintf("<Group id=%s op=%s children=%d>", g.id, g.op, len(g.children))
}

// Filter evaluates preds against rec, combined with op. It panics with
// *OpError if op is not a group operator.
func Filter(rec record.Record, preds []Predicate, op Op) bool {
	switch op {
	case And:
		for _, p := range preds {
			if !p.Accepts(rec) {
				return false
			}
		}
		return true
	case Or:
		for _, p := range preds {
			if p.Accepts(rec) {
				return true
			}
		}
		return false
	default:
		panic(&OpError{Type: GroupType, Op: op})
	}
}
