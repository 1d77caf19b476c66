package catalog

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/hupe1980/facet/codec"
	"github.com/hupe1980/facet/internal/conv"
	"github.com/hupe1980/facet/predicate"
	"github.com/hupe1980/facet/record"
)

// pass is one traversal of the source.
type pass struct {
	c        *Catalog
	restrict map[FieldID]struct{}
	// pending holds the allow-list entries not observed yet when discovering.
	pending map[string]struct{}

	leaves  int
	stopped bool
	err     error
}

func newPass(c *Catalog, restrict map[FieldID]struct{}, discover bool) *pass {
	p := &pass{c: c, restrict: restrict}
	if discover {
		p.pending = make(map[string]struct{}, len(c.opts.acceptFields))
		for k := range c.opts.acceptFields {
			p.pending[k] = struct{}{}
		}
	}
	return p
}

func (p *pass) run() error {
	if po, ok := p.c.opts.policy.(PassObserver); ok {
		po.BeginPass()
	}
	p.walk(nil, 0)
	return p.err
}

// walk visits the children of parent in pre-order. Records rejected upstream
// are skipped together with their subtrees.
func (p *pass) walk(parent record.Record, depth int) {
	src := p.c.src
	for i := range src.ChildCount(parent) {
		if p.stopped || p.err != nil {
			return
		}
		rec := src.ChildAt(parent, i)
		if rec == nil || !src.AcceptedUpstream(rec) {
			continue
		}

		children := src.ChildCount(rec)
		if p.isLeaf(depth, children) {
			p.visit(rec)
		}
		if p.c.opts.leafDepthSet && depth >= p.c.opts.leafDepth {
			continue
		}
		if children > 0 {
			p.walk(rec, depth+1)
		}
	}
}

func (p *pass) isLeaf(depth, children int) bool {
	if p.c.opts.leafDepthSet {
		return depth == p.c.opts.leafDepth
	}
	return children == 0
}

func (p *pass) visit(rec record.Record) {
	ordinal, err := conv.IntToUint32(p.leaves)
	if err != nil {
		p.err = fmt.Errorf("catalog: too many leaf records: %w", err)
		return
	}
	p.leaves++

	for _, role := range p.c.opts.roles {
		p.extract(rec, role, ordinal)
		if p.stopped || p.err != nil {
			return
		}
	}
}

func (p *pass) extract(rec record.Record, role record.Role, ordinal uint32) {
	payload := rec.Data(role)

	shape, entityType, err := Classify(payload, p.c.schema, p.c.src)
	if err != nil {
		p.c.logger.Debug("entity type lookup failed", "role", role, "error", err)
	}

	switch shape {
	case ShapeNone:
	case ShapeEntity:
		for _, k := range mapKeys(payload) {
			v, _ := record.Lookup(payload, k)
			p.observe(FieldID{Role: role, EntityType: entityType, Field: k}, v, rec, ordinal)
		}
	case ShapeMap:
		for _, k := range mapKeys(payload) {
			v, _ := record.Lookup(payload, k)
			p.observe(FieldID{Role: role, Field: k}, v, rec, ordinal)
		}
	case ShapePrimitive:
		p.observe(FieldID{Role: role}, payload, rec, ordinal)
	case ShapeProperties:
		names, _ := record.PropertyNames(payload)
		for _, name := range names {
			v, _ := record.Lookup(payload, name)
			p.observe(FieldID{Role: role, Field: name}, v, rec, ordinal)
		}
	default:
		p.err = &ExtractError{Field: FieldID{Role: role}, Shape: shape, Type: fmt.Sprintf("%T", payload)}
	}
}

// observe folds one field value of a leaf into the catalog.
func (p *pass) observe(id FieldID, value any, rec record.Record, ordinal uint32) {
	if p.stopped || p.err != nil || value == nil {
		return
	}
	if p.restrict != nil {
		if _, ok := p.restrict[id]; !ok {
			return
		}
	}
	if !p.c.opts.accepts(id) {
		return
	}

	dt, ok := p.dataType(id, value)
	if !ok {
		return
	}

	entry, exists := p.c.fields[id]
	if exists && entry.DataType != dt {
		p.c.logger.Debug("field type mismatch", "field", id.String(), "want", entry.DataType, "got", dt)
		return
	}

	if !p.c.opts.policy.Accept(id, rec) {
		return
	}

	if !exists {
		name, short, err := p.c.entryNames(id)
		if err != nil {
			p.c.logger.Debug("field skipped", "field", id.String(), "error", err)
			return
		}
		entry = newFieldEntry(id, name, short, dt)
		p.c.addField(entry)
	}

	p.fold(entry, value, ordinal)
	p.seen(id)
}

func (p *pass) dataType(id FieldID, value any) (dt predicate.DataType, ok bool) {
	if !id.IsEntity() {
		dt = predicate.DataTypeOf(value)
		return dt, dt != ""
	}

	defer func() {
		if r := recover(); r != nil {
			p.c.logger.Debug("field skipped", "field", id.String(), "error", fmt.Errorf("%w: %v", ErrSchema, r))
			dt, ok = "", false
		}
	}()
	dt, err := p.c.schema.DataType(id.EntityType, id.Field)
	if err != nil {
		p.c.logger.Debug("field skipped", "field", id.String(), "error", err)
		return "", false
	}
	return dt, true
}

// fold adds the value to its bucket. Lists fold every element; an empty list
// folds nil.
func (p *pass) fold(e *FieldEntry, value any, ordinal uint32) {
	values := []any{value}
	if rv := reflect.ValueOf(value); rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		values = make([]any, rv.Len())
		for i := range values {
			values[i] = rv.Index(i).Interface()
		}
		if len(values) == 0 {
			values = []any{nil}
		}
	}

	for _, v := range values {
		label, raw, icon, ok := p.label(e.DataType, v)
		if !ok {
			p.c.logger.Debug("value skipped", "field", e.ID.String(), "value", v)
			continue
		}
		vid := ValueID{Field: e.ID, Label: label}
		b, exists := e.Values[vid]
		if !exists {
			b = newValueBucket(vid)
			e.Values[vid] = b
		}
		b.Value = raw
		b.Icon = icon
		b.add(ordinal)
	}
}

// label derives the bucket label and the raw predicate value of v.
func (p *pass) label(dt predicate.DataType, v any) (label string, raw any, icon string, ok bool) {
	if v == nil {
		return noneLabel, nil, "", true
	}

	if isStringMap(v) {
		if s, _ := record.Lookup(v, "icon"); s != nil {
			icon, _ = s.(string)
		}
		if name, _ := record.Lookup(v, "name"); name != nil {
			return fmt.Sprint(name), v, icon, true
		}
		return codec.String(p.c.opts.codec, v), v, icon, true
	}

	if dt == predicate.DateTime {
		bucket, err := predicate.Bucket(v)
		if err != nil {
			return "", nil, "", false
		}
		return bucket, bucket, "", true
	}

	switch v.(type) {
	case bool, string:
	default:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			return codec.String(p.c.opts.codec, v), v, "", true
		}
	}
	return fmt.Sprint(v), v, "", true
}

// seen records a folded field for Discover and stops the pass once every
// allow-listed field has been observed.
func (p *pass) seen(id FieldID) {
	if p.pending == nil {
		return
	}
	delete(p.pending, id.String())
	if key := id.Key(); key != "" {
		delete(p.pending, key)
	}
	if len(p.pending) == 0 {
		p.stopped = true
	}
}

func mapKeys(m any) []string {
	var keys []string
	if mm, ok := m.(map[string]any); ok {
		keys = make([]string, 0, len(mm))
		for k := range mm {
			keys = append(keys, k)
		}
	} else {
		for _, k := range reflect.ValueOf(m).MapKeys() {
			keys = append(keys, k.String())
		}
	}
	slices.Sort(keys)
	return keys
}
