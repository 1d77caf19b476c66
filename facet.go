package facet

import (
	"slices"
	"strings"
	"time"

	"github.com/hupe1980/facet/catalog"
	"github.com/hupe1980/facet/predicate"
	"github.com/hupe1980/facet/record"
	"github.com/hupe1980/facet/view"
)

// group is the filter group of one field.
type group struct {
	field  catalog.FieldID
	name   string
	search *Item
	items  map[string]*Item
}

func (g *group) active() []predicate.Predicate {
	var preds []predicate.Predicate
	if g.search != nil && g.search.Active() {
		preds = append(preds, g.search.pred)
	}
	for _, it := range g.sortedItems() {
		if it.selected {
			preds = append(preds, it.pred)
		}
	}
	return preds
}

func (g *group) hasActive() bool {
	if g.search != nil && g.search.Active() {
		return true
	}
	for _, it := range g.items {
		if it.selected {
			return true
		}
	}
	return false
}

func (g *group) sortedItems() []*Item {
	out := make([]*Item, 0, len(g.items))
	for _, it := range g.items {
		out = append(out, it)
	}
	slices.SortFunc(out, func(a, b *Item) int {
		if c := strings.Compare(a.label, b.label); c != 0 {
			return c
		}
		return strings.Compare(a.id, b.id)
	})
	return out
}

// Engine keeps the filter groups of a record source in sync with its
// catalog and applies the selected values to a filtered view.
//
// The engine is the catalog's acceptance policy: a value of one field is
// counted only for records that pass the filters of all other fields.
type Engine struct {
	view    *view.Filtered
	catalog *catalog.Catalog
	groups  map[catalog.FieldID]*group

	// memo caches the filters excluding one field for the current pass.
	memo map[catalog.FieldID][]predicate.Predicate

	logger  *Logger
	metrics MetricsCollector
}

// New creates an engine over src. Call Refresh to build the filter groups.
func New(src record.Source, optFns ...Option) *Engine {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&o)
	}

	var viewOpts []view.Option
	if o.hierarchy {
		viewOpts = append(viewOpts, view.WithHierarchy())
	}

	e := &Engine{
		view:    view.New(src, viewOpts...),
		groups:  make(map[catalog.FieldID]*group),
		memo:    make(map[catalog.FieldID][]predicate.Predicate),
		logger:  o.logger,
		metrics: o.metricsCollector,
	}

	catOpts := make([]catalog.Option, 0, len(o.catalogOptions)+2)
	catOpts = append(catOpts, catalog.WithLogger(o.logger.Logger))
	catOpts = append(catOpts, o.catalogOptions...)
	catOpts = append(catOpts, catalog.WithPolicy(e))
	e.catalog = catalog.New(e.view.Unfiltered(), catOpts...)

	return e
}

// Catalog returns the underlying catalog.
func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

// View returns the filtered view the active filters are applied to.
func (e *Engine) View() *view.Filtered { return e.view }

// Refresh rebuilds the catalog and synchronizes the filter groups. With
// field ids, only those fields are recounted.
//
// New values get items. Items of vanished values are dropped unless they
// are selected; selected ones stay with count 0. A group whose field
// vanished is dropped once it has no active items.
func (e *Engine) Refresh(fieldIDs ...catalog.FieldID) error {
	start := time.Now()

	var err error
	if len(fieldIDs) == 0 {
		err = e.catalog.Build()
	} else {
		err = e.catalog.UpdateFields(fieldIDs...)
	}

	if err == nil {
		e.sync(fieldIDs)
	}

	elapsed := time.Since(start)
	e.logger.LogRefresh(len(fieldIDs), elapsed, err)
	e.metrics.RecordRefresh(len(fieldIDs), elapsed, err)

	return err
}

func (e *Engine) sync(fieldIDs []catalog.FieldID) {
	targets := fieldIDs
	if len(targets) == 0 {
		targets = e.catalog.Fields()
		for id := range e.groups {
			if _, ok := e.catalog.Field(id); !ok {
				targets = append(targets, id)
			}
		}
	}

	for _, id := range targets {
		entry, ok := e.catalog.Field(id)
		if !ok {
			e.orphan(id)
			continue
		}
		e.syncGroup(entry)
	}
}

// orphan handles a group whose field is gone from the catalog.
func (e *Engine) orphan(id catalog.FieldID) {
	g, ok := e.groups[id]
	if !ok {
		return
	}
	if !g.hasActive() {
		delete(e.groups, id)
		return
	}
	for key, it := range g.items {
		if !it.selected {
			delete(g.items, key)
			continue
		}
		it.count = 0
	}
}

func (e *Engine) syncGroup(entry *catalog.FieldEntry) {
	g, ok := e.groups[entry.ID]
	if !ok {
		g = &group{field: entry.ID, items: make(map[string]*Item)}
		e.groups[entry.ID] = g
	}
	g.name = entry.Name

	for key, it := range g.items {
		if _, ok := entry.Value(it.value); ok {
			continue
		}
		if it.selected {
			it.count = 0
			continue
		}
		delete(g.items, key)
	}

	for _, b := range entry.Values {
		key := b.ID.String()
		if it, ok := g.items[key]; ok {
			it.label = b.Label
			it.icon = b.Icon
			it.count = b.Count()
			continue
		}
		pred, err := entry.Predicate(b.ID)
		if err != nil {
			e.logger.WithField(entry.ID.String()).Warn("skipping value", "value", b.Label, "error", err)
			continue
		}
		g.items[key] = &Item{
			id:    key,
			field: entry.ID,
			value: b.ID,
			label: b.Label,
			count: b.Count(),
			icon:  b.Icon,
			pred:  pred,
		}
	}

	if entry.DataType == predicate.Str && g.search == nil {
		pred, err := entry.SearchPredicate("")
		if err != nil {
			e.logger.WithField(entry.ID.String()).Warn("skipping text search", "error", err)
			return
		}
		g.search = &Item{
			id:     pred.ID(),
			field:  entry.ID,
			label:  entry.Name,
			search: true,
			pred:   pred,
		}
	}
}

// Fields returns the ids of all filter groups, sorted.
func (e *Engine) Fields() []catalog.FieldID {
	ids := make([]catalog.FieldID, 0, len(e.groups))
	for id := range e.groups {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b catalog.FieldID) int { return strings.Compare(a.String(), b.String()) })
	return ids
}

// FieldName returns the display name of a filter group.
func (e *Engine) FieldName(id catalog.FieldID) (string, bool) {
	g, ok := e.groups[id]
	if !ok {
		return "", false
	}
	return g.name, true
}

// Items returns the items of a field: the text search item first, if any,
// then the value items ordered by label.
func (e *Engine) Items(id catalog.FieldID) []*Item {
	g, ok := e.groups[id]
	if !ok {
		return nil
	}
	items := g.sortedItems()
	if g.search != nil {
		items = append([]*Item{g.search}, items...)
	}
	return items
}

// Item returns the item of a value.
func (e *Engine) Item(value catalog.ValueID) (*Item, bool) {
	g, ok := e.groups[value.Field]
	if !ok {
		return nil, false
	}
	it, ok := g.items[value.String()]
	return it, ok
}

// Select adds a value to the active filters and refreshes the counts.
func (e *Engine) Select(value catalog.ValueID) error {
	return e.setSelected(value, true)
}

// Deselect removes a value from the active filters and refreshes the counts.
func (e *Engine) Deselect(value catalog.ValueID) error {
	return e.setSelected(value, false)
}

func (e *Engine) setSelected(value catalog.ValueID, selected bool) error {
	g, ok := e.groups[value.Field]
	if !ok {
		return &FieldError{Field: value.Field, cause: ErrUnknownField}
	}
	it, ok := g.items[value.String()]
	if !ok {
		return &FieldError{Field: value.Field, cause: ErrUnknownValue}
	}
	if it.selected == selected {
		return nil
	}
	it.selected = selected
	e.apply(it)
	return e.Refresh()
}

// SetSearch sets the text search of a string field. An empty text clears
// the search.
func (e *Engine) SetSearch(field catalog.FieldID, text string) error {
	g, ok := e.groups[field]
	if !ok {
		return &FieldError{Field: field, cause: ErrUnknownField}
	}
	if g.search == nil {
		return &FieldError{Field: field, cause: ErrNotSearchable}
	}
	changed, err := g.search.pred.SetOperand(text)
	if err != nil {
		return &FieldError{Field: field, cause: err}
	}
	if !changed {
		return nil
	}
	g.search.text = text
	e.apply(g.search)
	return e.Refresh()
}

// ClearFilters deactivates every item and refreshes the counts. It reports
// whether any filter was active.
func (e *Engine) ClearFilters() (bool, error) {
	changed := false
	for _, g := range e.groups {
		if g.search != nil && g.search.clear() {
			changed = true
		}
		for _, it := range g.items {
			if it.clear() {
				changed = true
			}
		}
	}
	if !changed {
		return false, nil
	}
	e.apply(nil)
	return true, e.Refresh()
}

// CurrentFilters returns one OR group per field with active items, ordered
// by field id. Fields in exclude are left out.
func (e *Engine) CurrentFilters(exclude ...catalog.FieldID) []predicate.Predicate {
	var filters []predicate.Predicate
	for _, id := range e.Fields() {
		if slices.Contains(exclude, id) {
			continue
		}
		active := e.groups[id].active()
		if len(active) == 0 {
			continue
		}
		g, err := predicate.NewGroup(predicate.Or, id.String(), active...)
		if err != nil {
			panic(err) // unreachable: Or is a group operator
		}
		filters = append(filters, g)
	}
	return filters
}

// Active returns the AND of all current filters.
func (e *Engine) Active() *predicate.Group {
	return predicate.AndGroup(e.CurrentFilters()...)
}

// HasFiltering reports whether any item is active.
func (e *Engine) HasFiltering() bool {
	for _, g := range e.groups {
		if g.hasActive() {
			return true
		}
	}
	return false
}

// Accepts reports whether rec passes the active filters.
func (e *Engine) Accepts(rec record.Record) bool {
	ok := e.view.Accepts(rec)
	e.metrics.RecordAccept(ok)
	return ok
}

// Accept implements catalog.AcceptancePolicy. An observation of field is
// counted when rec passes the filters of all other fields.
func (e *Engine) Accept(field catalog.FieldID, rec record.Record) bool {
	filters, ok := e.memo[field]
	if !ok {
		filters = e.CurrentFilters(field)
		e.memo[field] = filters
	}
	if len(filters) == 0 {
		return true
	}
	return predicate.Filter(rec, filters, predicate.And)
}

// BeginPass implements catalog.PassObserver.
func (e *Engine) BeginPass() {
	clear(e.memo)
}

// apply pushes the current filters to the view. changed is the item that
// triggered the update, nil when several changed at once.
func (e *Engine) apply(changed *Item) {
	clear(e.memo)
	filters := e.CurrentFilters()
	e.view.SetPredicates(filters...)

	id := "*"
	active := false
	if changed != nil {
		id = changed.id
		active = changed.Active()
	}
	e.logger.LogSelection(id, active, len(filters))
	e.metrics.RecordSelection(len(filters))
}
