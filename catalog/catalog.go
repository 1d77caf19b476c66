package catalog

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/hupe1980/facet/record"
	"github.com/hupe1980/facet/schema"
)

// Catalog is the set of fields and value buckets observed on the leaf
// records of a source.
//
// A Catalog is not safe for concurrent use.
type Catalog struct {
	src    record.Source
	opts   options
	schema schema.Schema
	logger *slog.Logger

	fields map[FieldID]*FieldEntry
	byKey  map[string]FieldID
}

// New creates an empty catalog over src. Call Build to populate it.
func New(src record.Source, opts ...Option) *Catalog {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Catalog{
		src:    src,
		opts:   o,
		schema: o.resolvedSchema(),
		logger: o.logger,
		fields: make(map[FieldID]*FieldEntry),
		byKey:  make(map[string]FieldID),
	}
}

// Build clears the catalog and rebuilds it from every accepted leaf. On
// error the catalog is left empty.
func (c *Catalog) Build() error {
	return c.rebuild(false)
}

// Discover is Build, except that the traversal stops as soon as every field
// of the allow list has been observed. Counts are partial afterwards; use it
// to find out which fields exist. Without an allow list it equals Build.
func (c *Catalog) Discover() error {
	return c.rebuild(len(c.opts.acceptFields) > 0)
}

func (c *Catalog) rebuild(discover bool) error {
	start := time.Now()
	c.Clear()

	p := newPass(c, nil, discover)
	if err := p.run(); err != nil {
		c.Clear()
		c.logger.Warn("catalog build failed", "error", err)
		return err
	}

	c.logger.Debug("catalog built",
		"fields", len(c.fields),
		"leaves", p.leaves,
		"stopped_early", p.stopped,
		"duration", time.Since(start),
	)
	return nil
}

// UpdateFields recounts the named fields without touching the others. Buckets
// that no longer occur are removed; the entries themselves are kept even when
// they end up empty.
func (c *Catalog) UpdateFields(ids ...FieldID) error {
	if len(ids) == 0 {
		return nil
	}
	start := time.Now()

	restrict := make(map[FieldID]struct{}, len(ids))
	for _, id := range ids {
		restrict[id] = struct{}{}
		if e, ok := c.fields[id]; ok {
			for _, b := range e.Values {
				b.reset()
			}
		}
	}

	p := newPass(c, restrict, false)
	err := p.run()

	pruned := 0
	for id := range restrict {
		e, ok := c.fields[id]
		if !ok {
			continue
		}
		for vid, b := range e.Values {
			if b.Count() == 0 {
				delete(e.Values, vid)
				pruned++
			}
		}
	}

	if err != nil {
		c.logger.Warn("catalog update failed", "fields", len(ids), "error", err)
		return err
	}
	c.logger.Debug("catalog fields updated",
		"fields", len(ids),
		"pruned", pruned,
		"duration", time.Since(start),
	)
	return nil
}

// Clear removes every field.
func (c *Catalog) Clear() {
	clear(c.fields)
	clear(c.byKey)
}

// Len returns the number of fields.
func (c *Catalog) Len() int { return len(c.fields) }

// Fields returns the field ids ordered by their string form.
func (c *Catalog) Fields() []FieldID {
	ids := make([]FieldID, 0, len(c.fields))
	for id := range c.fields {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b FieldID) int { return strings.Compare(a.String(), b.String()) })
	return ids
}

// SortedFields returns the entries ordered by display name.
func (c *Catalog) SortedFields() []*FieldEntry {
	out := make([]*FieldEntry, 0, len(c.fields))
	for _, e := range c.fields {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b *FieldEntry) int {
		return cmp.Or(
			strings.Compare(a.Name, b.Name),
			strings.Compare(a.ID.String(), b.ID.String()),
		)
	})
	return out
}

// Field returns the entry of id.
func (c *Catalog) Field(id FieldID) (*FieldEntry, bool) {
	e, ok := c.fields[id]
	return e, ok
}

// FieldByKey returns the entry whose FieldID.String() is key.
func (c *Catalog) FieldByKey(key string) (*FieldEntry, bool) {
	id, ok := c.byKey[key]
	if !ok {
		return nil, false
	}
	return c.Field(id)
}

// Value returns a value bucket.
func (c *Catalog) Value(field FieldID, value ValueID) (*ValueBucket, bool) {
	e, ok := c.fields[field]
	if !ok {
		return nil, false
	}
	return e.Value(value)
}

// HasValue reports whether the bucket exists.
func (c *Catalog) HasValue(field FieldID, value ValueID) bool {
	_, ok := c.Value(field, value)
	return ok
}

func (c *Catalog) addField(e *FieldEntry) {
	c.fields[e.ID] = e
	c.byKey[e.ID.String()] = e.ID
}

// entryNames computes the display names of a new field.
func (c *Catalog) entryNames(id FieldID) (name, short string, err error) {
	if !id.IsEntity() {
		if id.Field == "" {
			return "Display", "Display", nil
		}
		n := schema.Title(id.Field)
		return n, n, nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrSchema, r)
		}
	}()

	short, err = c.schema.FieldDisplayName(id.EntityType, id.Field)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrSchema, err)
	}
	if !c.opts.fullyQualified {
		return short, short, nil
	}

	entityDisplay, err := c.schema.TypeDisplayName(id.EntityType)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrSchema, err)
	}
	return qualifiedName(id.Field, short, entityDisplay), short, nil
}

// qualifiedName prefixes a field display name with the deep-link path and
// the entity type. Deep-linked fields look like "link.Type.field"; every
// other segment before the last names a link.
func qualifiedName(field, display, entityDisplay string) string {
	parts := strings.Split(field, ".")
	var links []string
	for i := 0; i < len(parts)-1; i += 2 {
		links = append(links, schema.Title(parts[i]))
	}
	if len(links) > 0 {
		prefix := strings.Join(links, " ")
		if !strings.HasPrefix(display, prefix) {
			display = prefix + " " + display
		}
	}

	if !strings.HasPrefix(display, entityDisplay) {
		return entityDisplay + " " + display
	}
	return fmt.Sprintf("%s (%s)", display, field)
}
