package catalog

import "github.com/hupe1980/facet/record"

// AcceptancePolicy decides whether an observation of field on rec is counted.
//
// Filter menus use it to exclude records hidden by the filters of other
// fields while keeping the field's own filter out of the decision.
type AcceptancePolicy interface {
	Accept(field FieldID, rec record.Record) bool
}

// PassObserver is implemented by policies that memoize per traversal.
// BeginPass is called before every Build, Discover and UpdateFields pass.
type PassObserver interface {
	BeginPass()
}

// PolicyFunc adapts a function to AcceptancePolicy.
type PolicyFunc func(field FieldID, rec record.Record) bool

// Accept implements AcceptancePolicy.
func (f PolicyFunc) Accept(field FieldID, rec record.Record) bool { return f(field, rec) }

// AcceptAll counts every observation.
var AcceptAll AcceptancePolicy = PolicyFunc(func(FieldID, record.Record) bool { return true })
