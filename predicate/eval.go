package predicate

import (
	"fmt"
	"strings"
)

func (l *Leaf) evaluate(observed any) bool {
	if !ValidOp(l.dataType, l.op) {
		panic(&OpError{Type: l.dataType, Op: l.op})
	}

	switch l.dataType {
	case Bool:
		return l.evalBool(observed)
	case Str:
		return l.evalStr(observed)
	case Number:
		return l.evalNumber(observed)
	case List:
		return l.evalList(observed)
	case Dict:
		return l.evalDict(observed)
	case DateTime:
		return l.evalDateTime(observed)
	}
	panic(&OpError{Type: l.dataType, Op: l.op})
}

func (l *Leaf) evalBool(observed any) bool {
	switch l.op {
	case IsTrue:
		return truthy(observed)
	case IsFalse:
		return !truthy(observed)
	case Equal:
		return EqualValues(observed, l.operand)
	default:
		return !EqualValues(observed, l.operand)
	}
}

func (l *Leaf) evalStr(observed any) bool {
	switch l.op {
	case Equal:
		return strEqual(observed, l.operand)
	case NotEqual:
		return !strEqual(observed, l.operand)
	case Contains:
		return containsFold(observed, l.operand)
	default:
		return !containsFold(observed, l.operand)
	}
}

func strEqual(observed, operand any) bool {
	if observed == nil || operand == nil {
		return observed == nil && operand == nil
	}
	s, ok := asString(observed)
	return ok && s == operand
}

// containsFold is a case-insensitive literal substring test.
func containsFold(observed, operand any) bool {
	return strings.Contains(strings.ToLower(stringOf(observed)), strings.ToLower(stringOf(operand)))
}

func stringOf(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := asString(v); ok {
		return s
	}
	return fmt.Sprint(v)
}

func (l *Leaf) evalNumber(observed any) bool {
	if m, ok := observed.(map[string]any); ok {
		observed = m["value"]
	}

	if l.op == Equal || l.op == NotEqual {
		eq := numberEqual(observed, l.operand)
		if l.op == Equal {
			return eq
		}
		return !eq
	}

	if observed == nil || l.operand == nil {
		return false
	}
	a, ok := toFloat(observed)
	if !ok {
		return false
	}
	b, ok := toFloat(l.operand)
	if !ok {
		return false
	}

	switch l.op {
	case GreaterThan:
		return a > b
	case GreaterEqual:
		return a >= b
	case LessThan:
		return a < b
	default:
		return a <= b
	}
}

func numberEqual(observed, operand any) bool {
	if observed == nil || operand == nil {
		return observed == nil && operand == nil
	}
	a, ok := toFloat(observed)
	if !ok {
		return false
	}
	b, ok := toFloat(operand)
	return ok && a == b
}

func (l *Leaf) evalList(observed any) bool {
	values := toList(observed)
	switch l.op {
	case Equal:
		return EqualValues(values, toList(l.operand))
	case NotEqual:
		return !EqualValues(values, toList(l.operand))
	case Contains:
		return listContains(values, l.operand)
	default:
		return !listContains(values, l.operand)
	}
}

// listContains reports whether any element of operand is a member of
// observed. An empty observed list only matches a nil element.
func listContains(observed []any, operand any) bool {
	wanted := toList(operand)
	if operand == nil {
		wanted = []any{nil}
	}
	for _, w := range wanted {
		if len(observed) == 0 {
			if w == nil {
				return true
			}
			continue
		}
		for _, o := range observed {
			if EqualValues(o, w) {
				return true
			}
		}
	}
	return false
}

func (l *Leaf) evalDict(observed any) bool {
	if l.op == Equal {
		return EqualValues(observed, l.operand)
	}
	return !EqualValues(observed, l.operand)
}

func (l *Leaf) evalDateTime(observed any) bool {
	got, err := Bucket(observed)
	if err != nil {
		return l.op == NotEqual
	}
	want, err := Bucket(l.operand)
	if err != nil {
		return l.op == NotEqual
	}
	if l.op == Equal {
		return got == want
	}
	return got != want
}
