package record

import (
	"reflect"
	"strings"
)

// tagName is the struct tag used to rename or hide struct fields exposed as
// properties, e.g. `facet:"due_date"` or `facet:"-"`.
const tagName = "facet"

// PropertyNames returns the property names of v: the names reported by a
// PropertyObject, or the exported fields of a struct (or pointer to struct).
// ok is false for any other value.
func PropertyNames(v any) (names []string, ok bool) {
	if po, isPO := v.(PropertyObject); isPO {
		return po.Properties(), true
	}

	rt, isStruct := structType(v)
	if !isStruct {
		return nil, false
	}
	for i := range rt.NumField() {
		if name, exported := propertyName(rt.Field(i)); exported {
			names = append(names, name)
		}
	}
	return names, true
}

// Lookup returns the value stored under field in payload. It understands
// property objects, structs and string-keyed maps.
func Lookup(payload any, field string) (any, bool) {
	switch p := payload.(type) {
	case nil:
		return nil, false
	case PropertyObject:
		return p.Property(field), true
	case map[string]any:
		v, ok := p[field]
		return v, ok
	}

	rv := reflect.ValueOf(payload)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		mv := rv.MapIndex(reflect.ValueOf(field).Convert(rv.Type().Key()))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	case reflect.Struct:
		rt := rv.Type()
		for i := range rt.NumField() {
			if name, exported := propertyName(rt.Field(i)); exported && name == field {
				return rv.Field(i).Interface(), true
			}
		}
	}
	return nil, false
}

func structType(v any) (reflect.Type, bool) {
	if v == nil {
		return nil, false
	}
	rt := reflect.TypeOf(v)
	if rt.Kind() == reflect.Pointer {
		if reflect.ValueOf(v).IsNil() {
			return nil, false
		}
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return nil, false
	}
	return rt, true
}

func propertyName(f reflect.StructField) (string, bool) {
	if !f.IsExported() || f.Anonymous {
		return "", false
	}
	tag := f.Tag.Get(tagName)
	if tag == "-" {
		return "", false
	}
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return name, true
	}
	return f.Name, true
}
