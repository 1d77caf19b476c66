package catalog

import (
	"fmt"
	"reflect"

	"github.com/hupe1980/facet/predicate"
	"github.com/hupe1980/facet/record"
	"github.com/hupe1980/facet/schema"
)

// Shape classifies a leaf payload.
type Shape int

const (
	// ShapeNone is a nil payload; nothing is extracted.
	ShapeNone Shape = iota
	// ShapeEntity is a map describing a schema entity.
	ShapeEntity
	// ShapeMap is any other string-keyed map; each entry is a field.
	ShapeMap
	// ShapePrimitive is a bool, string, number or time; the payload is the field.
	ShapePrimitive
	// ShapeProperties is a property object or struct; each property is a field.
	ShapeProperties
	// ShapeList is a bare list, which is not supported.
	ShapeList
	// ShapeUnknown is anything else, which is not supported.
	ShapeUnknown
)

func (s Shape) String() string {
	switch s {
	case ShapeNone:
		return "none"
	case ShapeEntity:
		return "entity"
	case ShapeMap:
		return "map"
	case ShapePrimitive:
		return "primitive"
	case ShapeProperties:
		return "properties"
	case ShapeList:
		return "list"
	default:
		return "unknown"
	}
}

// Classify returns the shape of payload and, for entities, the entity type.
//
// A map is an entity when sch accepts its "type" entry, or when src reports
// an entity type for all of its payloads. Without a schema no map is an
// entity.
func Classify(payload any, sch schema.Schema, src record.Source) (shape Shape, entityType string, err error) {
	if payload == nil {
		return ShapeNone, "", nil
	}

	if isStringMap(payload) {
		if sch == nil {
			return ShapeMap, "", nil
		}
		et, err := entityTypeOf(payload, sch, src)
		if err != nil {
			return ShapeMap, "", err
		}
		if et != "" {
			return ShapeEntity, et, nil
		}
		return ShapeMap, "", nil
	}

	switch predicate.DataTypeOf(payload) {
	case predicate.Bool, predicate.Str, predicate.Number, predicate.DateTime:
		return ShapePrimitive, "", nil
	case predicate.List:
		return ShapeList, "", nil
	}

	if _, ok := record.PropertyNames(payload); ok {
		return ShapeProperties, "", nil
	}
	return ShapeUnknown, "", nil
}

func entityTypeOf(payload any, sch schema.Schema, src record.Source) (et string, err error) {
	defer func() {
		if r := recover(); r != nil {
			et, err = "", fmt.Errorf("%w: %v", ErrSchema, r)
		}
	}()

	if v, _ := record.Lookup(payload, "type"); v != nil {
		if s, ok := v.(string); ok && sch.IsValidEntityType(s) {
			return s, nil
		}
	}
	if typer, ok := src.(record.EntityTyper); ok {
		return typer.EntityType(), nil
	}
	return "", nil
}

func isStringMap(v any) bool {
	if _, ok := v.(map[string]any); ok {
		return true
	}
	rt := reflect.TypeOf(v)
	return rt.Kind() == reflect.Map && rt.Key().Kind() == reflect.String
}
