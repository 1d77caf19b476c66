package catalog

import (
	"strings"

	"github.com/hupe1980/facet/record"
)

// FieldID identifies a filterable field. Two observations belong to the same
// field exactly when their FieldIDs are equal.
type FieldID struct {
	// Role is the payload role the field was extracted from.
	Role record.Role
	// EntityType is set for fields of entity payloads.
	EntityType string
	// Field is the map key or property name. It is empty when the whole
	// payload is a primitive value.
	Field string
}

// String returns the stable text form of the id: "role", "role.field" or
// "role.entityType.field". Dots in the key of a non-entity field are escaped
// as `\.`, so the map key "Task.code" never reads as the entity field
// Task.code.
func (id FieldID) String() string {
	var b strings.Builder
	b.WriteString(string(id.Role))
	if id.EntityType != "" {
		b.WriteByte('.')
		b.WriteString(id.EntityType)
	}
	if id.Field != "" {
		b.WriteByte('.')
		if id.EntityType == "" {
			b.WriteString(keyEscaper.Replace(id.Field))
		} else {
			b.WriteString(id.Field)
		}
	}
	return b.String()
}

var keyEscaper = strings.NewReplacer(`\`, `\\`, ".", `\.`)

// Key returns the role-less "entityType.field" form of an entity field id,
// or "" for other fields. Allow and ignore lists match either form.
func (id FieldID) Key() string {
	if id.EntityType == "" {
		return ""
	}
	return id.EntityType + "." + id.Field
}

// IsEntity reports whether the field belongs to an entity payload.
func (id FieldID) IsEntity() bool { return id.EntityType != "" }

// ValueID identifies a value bucket within a field.
type ValueID struct {
	Field FieldID
	Label string
}

func (id ValueID) String() string {
	return id.Field.String() + "." + id.Label
}
