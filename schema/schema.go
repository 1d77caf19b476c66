package schema

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/hupe1980/facet/predicate"
)

var (
	// ErrUnknownEntityType is returned for entity types the schema does not define.
	ErrUnknownEntityType = errors.New("unknown entity type")

	// ErrUnknownField is returned for fields the entity type does not define.
	ErrUnknownField = errors.New("unknown field")

	// ErrUnsupportedType is returned for field types with no predicate type.
	ErrUnsupportedType = errors.New("unsupported field type")
)

// Schema describes entity types and their fields.
//
// Lookups may fail; callers treat a failed lookup as "skip this field".
type Schema interface {
	IsValidEntityType(entityType string) bool
	DataType(entityType, field string) (predicate.DataType, error)
	FieldDisplayName(entityType, field string) (string, error)
	TypeDisplayName(entityType string) (string, error)
}

// ProjectScoper is implemented by schemas with per-project overrides.
type ProjectScoper interface {
	ForProject(projectID int) Schema
}

// Field describes one entity field.
type Field struct {
	DataType    string `yaml:"data_type"`
	DisplayName string `yaml:"display_name,omitempty"`
}

// EntityType describes one entity type.
type EntityType struct {
	DisplayName string           `yaml:"display_name,omitempty"`
	Fields      map[string]Field `yaml:"fields"`
}

// Document is the YAML form of a static schema.
type Document struct {
	EntityTypes map[string]EntityType         `yaml:"entity_types"`
	Projects    map[int]map[string]EntityType `yaml:"projects,omitempty"`
}

// Static is an in-memory schema.
type Static struct {
	types    map[string]EntityType
	projects map[int]map[string]EntityType
}

var _ Schema = (*Static)(nil)

// New creates a static schema from entity type definitions.
func New(types map[string]EntityType) *Static {
	return &Static{types: types}
}

// Parse decodes a static schema from YAML.
func Parse(data []byte) (*Static, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("schema: parse: %w", err)
	}
	if len(doc.EntityTypes) == 0 {
		return nil, fmt.Errorf("schema: parse: no entity types defined")
	}
	return &Static{types: doc.EntityTypes, projects: doc.Projects}, nil
}

// Load reads a static schema from a YAML file.
func Load(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	return Parse(data)
}

// ForProject returns the schema with the project's overrides applied. Entity
// types defined by the project replace the base definition field by field.
func (s *Static) ForProject(projectID int) Schema {
	overrides, ok := s.projects[projectID]
	if !ok {
		return s
	}

	merged := maps.Clone(s.types)
	if merged == nil {
		merged = make(map[string]EntityType, len(overrides))
	}
	for name, o := range overrides {
		base := merged[name]
		fields := maps.Clone(base.Fields)
		if fields == nil {
			fields = make(map[string]Field, len(o.Fields))
		}
		maps.Copy(fields, o.Fields)
		if o.DisplayName != "" {
			base.DisplayName = o.DisplayName
		}
		base.Fields = fields
		merged[name] = base
	}
	return &Static{types: merged}
}

// IsValidEntityType reports whether the schema defines entityType.
func (s *Static) IsValidEntityType(entityType string) bool {
	_, ok := s.types[entityType]
	return ok
}

// DataType returns the predicate type of a field.
func (s *Static) DataType(entityType, field string) (predicate.DataType, error) {
	f, err := s.field(entityType, field)
	if err != nil {
		return "", err
	}
	t := predicate.MapDataType(f.DataType)
	if t == "" || t == predicate.GroupType {
		return "", fmt.Errorf("%w: %s.%s is %q", ErrUnsupportedType, entityType, field, f.DataType)
	}
	return t, nil
}

// FieldDisplayName returns the display name of a field, falling back to the
// title-cased field name.
func (s *Static) FieldDisplayName(entityType, field string) (string, error) {
	f, err := s.field(entityType, field)
	if err != nil {
		return "", err
	}
	if f.DisplayName != "" {
		return f.DisplayName, nil
	}
	return Title(field[strings.LastIndex(field, ".")+1:]), nil
}

// TypeDisplayName returns the display name of an entity type.
func (s *Static) TypeDisplayName(entityType string) (string, error) {
	et, ok := s.types[entityType]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownEntityType, entityType)
	}
	if et.DisplayName != "" {
		return et.DisplayName, nil
	}
	return Title(entityType), nil
}

func (s *Static) field(entityType, field string) (Field, error) {
	et, ok := s.types[entityType]
	if !ok {
		return Field{}, fmt.Errorf("%w: %q", ErrUnknownEntityType, entityType)
	}
	f, ok := et.Fields[field]
	if !ok {
		return Field{}, fmt.Errorf("%w: %s.%s", ErrUnknownField, entityType, field)
	}
	return f, nil
}

// Title turns a field name into a display name: underscores become spaces and
// every word is title-cased ("sg_status_list" becomes "Sg Status List").
func Title(name string) string {
	return cases.Title(language.Und).String(strings.ReplaceAll(name, "_", " "))
}
