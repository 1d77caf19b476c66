package predicate

import (
	"encoding/json"
	"reflect"
	"slices"
	"time"
)

// DataType determines how a predicate compares values.
type DataType string

const (
	// Bool compares truthiness or boolean equality.
	Bool DataType = "bool"
	// Str compares strings.
	Str DataType = "str"
	// Number compares numbers as float64.
	Number DataType = "number"
	// List compares sequences.
	List DataType = "list"
	// Dict compares whole maps (entities, urls).
	Dict DataType = "dict"
	// DateTime compares date buckets.
	DateTime DataType = "date_time"
	// GroupType marks group predicates.
	GroupType DataType = "group"
)

// schemaTypes maps entity-schema data type names onto the small set of
// predicate types.
var schemaTypes = map[string]DataType{
	"text":         Str,
	"status_list":  Str,
	"date":         DateTime,
	"url":          Dict,
	"entity":       Dict,
	"multi_entity": List,
	"float":        Number,
	"percent":      Number,
	"duration":     Number,
	"checkbox":     Bool,
}

// Valid reports whether t is one of the predicate data types.
func (t DataType) Valid() bool {
	switch t {
	case Bool, Str, Number, List, Dict, DateTime, GroupType:
		return true
	}
	return false
}

// MapDataType maps a data type name, including entity-schema names such as
// "status_list" or "multi_entity", to a DataType. It returns "" for unknown
// names.
func MapDataType(name string) DataType {
	if t := DataType(name); t.Valid() {
		return t
	}
	return schemaTypes[name]
}

// Op is a predicate operator.
type Op string

const (
	// And accepts when every child accepts.
	And Op = "and"
	// Or accepts when at least one child accepts.
	Or Op = "or"
	// IsTrue accepts truthy values.
	IsTrue Op = "true"
	// IsFalse accepts falsy values.
	IsFalse Op = "false"
	// Contains is a substring test for strings and a membership test for lists.
	Contains Op = "in"
	// NotContains negates Contains.
	NotContains Op = "!in"
	// Equal is equality.
	Equal Op = "="
	// NotEqual is inequality.
	NotEqual Op = "!="
	// LessThan is <.
	LessThan Op = "<"
	// LessEqual is <=.
	LessEqual Op = "<="
	// GreaterThan is >.
	GreaterThan Op = ">"
	// GreaterEqual is >=.
	GreaterEqual Op = ">="
)

// IsGroup reports whether op combines child predicates.
func (op Op) IsGroup() bool {
	return op == And || op == Or
}

var validOps = map[DataType][]Op{
	Bool:      {IsTrue, IsFalse, Equal, NotEqual},
	Str:       {Equal, NotEqual, Contains, NotContains},
	Number:    {Equal, NotEqual, GreaterThan, GreaterEqual, LessThan, LessEqual},
	List:      {Contains, NotContains, Equal, NotEqual},
	Dict:      {Equal, NotEqual},
	DateTime:  {Equal, NotEqual},
	GroupType: {And, Or},
}

// ValidOps returns the operators accepted for t.
func ValidOps(t DataType) []Op {
	return slices.Clone(validOps[t])
}

// ValidOp reports whether op may be used with t.
func ValidOp(t DataType, op Op) bool {
	return slices.Contains(validOps[t], op)
}

// DefaultOp returns the operator used when a predicate is created for t
// without an explicit one.
func DefaultOp(t DataType) Op {
	switch t {
	case List:
		return Contains
	case GroupType:
		return And
	default:
		return Equal
	}
}

// DataTypeOf returns the predicate type matching the Go value v, or "" when
// there is none (including nil).
func DataTypeOf(v any) DataType {
	switch v.(type) {
	case nil:
		return ""
	case bool:
		return Bool
	case string:
		return Str
	case json.Number:
		return Number
	case time.Time, *time.Time:
		return DateTime
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return Number
	case reflect.String:
		return Str
	case reflect.Bool:
		return Bool
	case reflect.Slice, reflect.Array:
		return List
	case reflect.Map:
		return Dict
	}
	return ""
}
