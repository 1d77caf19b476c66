package predicate

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/facet/record"
)

// Spec is the declarative form of a predicate. It can be decoded from YAML;
// accessors can only be set in code.
type Spec struct {
	ID       string      `yaml:"id"`
	Type     string      `yaml:"type"`
	Op       Op          `yaml:"op,omitempty"`
	Operand  any         `yaml:"value,omitempty"`
	Role     record.Role `yaml:"role,omitempty"`
	Accessor Accessor    `yaml:"-"`
	Children []Spec      `yaml:"children,omitempty"`
}

// New builds a predicate from s. Group specs build their children
// recursively. Errors are *SpecError values.
func New(s Spec) (Predicate, error) {
	t := MapDataType(s.Type)
	if t == "" {
		return nil, specError(s.ID, ErrInvalidType, "unknown type %q", s.Type)
	}
	if t != GroupType {
		l, err := NewLeaf(s)
		if err != nil {
			return nil, err
		}
		return l, nil
	}

	op := s.Op
	if op == "" {
		op = DefaultOp(GroupType)
	}
	children := make([]Predicate, 0, len(s.Children))
	for _, cs := range s.Children {
		c, err := New(cs)
		if err != nil {
			return nil, err
		}
		children = append(children, c)
	}
	g, err := NewGroup(op, s.ID, children...)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// NewLeaf builds a leaf predicate from s.
func NewLeaf(s Spec) (*Leaf, error) {
	t := MapDataType(s.Type)
	switch {
	case t == "":
		return nil, specError(s.ID, ErrInvalidType, "unknown type %q", s.Type)
	case t == GroupType:
		return nil, specError(s.ID, ErrInvalidType, "leaf predicates cannot have type %q", GroupType)
	}

	op := s.Op
	if op == "" {
		op = DefaultOp(t)
	}
	if op.IsGroup() {
		return nil, specError(s.ID, ErrInvalidOp, "operator %q needs type %q", op, GroupType)
	}
	if !ValidOp(t, op) {
		return nil, specError(s.ID, ErrInvalidOp, "operator %q is not valid for type %q", op, t)
	}
	if s.Role == "" && s.Accessor == nil {
		return nil, specError(s.ID, ErrMissingAccessor, "")
	}

	operand, err := sanitize(t, s.Operand)
	if err != nil {
		return nil, &SpecError{ID: s.ID, cause: err}
	}

	return &Leaf{
		id:       s.ID,
		dataType: t,
		op:       op,
		operand:  operand,
		role:     s.Role,
		accessor: s.Accessor,
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(s Spec) Predicate {
	p, err := New(s)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseSpecs decodes a YAML list of predicate specs.
func ParseSpecs(data []byte) ([]Spec, error) {
	var specs []Spec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("predicate: parse specs: %w", err)
	}
	return specs, nil
}

// FromSpecs builds one predicate per spec.
func FromSpecs(specs []Spec) ([]Predicate, error) {
	preds := make([]Predicate, 0, len(specs))
	for _, s := range specs {
		p, err := New(s)
		if err != nil {
			return nil, err
		}
		preds = append(preds, p)
	}
	return preds, nil
}
