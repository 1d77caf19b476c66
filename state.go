package facet

import (
	"fmt"

	"github.com/hupe1980/facet/catalog"
)

// State is a snapshot of the active filters, keyed by field id string and
// item id. Selected value items map to true; search items map to their text.
//
// States survive a rebuild of the catalog and can be stored as YAML or JSON.
type State map[string]map[string]any

// SaveState returns the active filters.
func (e *Engine) SaveState() State {
	st := make(State)
	for id, g := range e.groups {
		items := make(map[string]any)
		if g.search != nil && g.search.Active() {
			items[g.search.id] = g.search.text
		}
		for key, it := range g.items {
			if it.selected {
				items[key] = true
			}
		}
		if len(items) > 0 {
			st[id.String()] = items
		}
	}
	return st
}

// RestoreState replaces the active filters with st and refreshes the counts.
// Fields and values that are not known to the engine are skipped, so the
// engine must have been refreshed before.
func (e *Engine) RestoreState(st State) error {
	for _, g := range e.groups {
		if g.search != nil {
			g.search.clear()
		}
		for _, it := range g.items {
			it.clear()
		}
	}

	byName := make(map[string]catalog.FieldID, len(e.groups))
	for id := range e.groups {
		byName[id.String()] = id
	}

	for field, items := range st {
		id, ok := byName[field]
		if !ok {
			e.logger.Debug("skipping unknown field in state", "field", field)
			continue
		}
		g := e.groups[id]
		for key, v := range items {
			if g.search != nil && key == g.search.id {
				text, ok := v.(string)
				if !ok {
					return &FieldError{Field: id, cause: fmt.Errorf("search text must be a string, got %T", v)}
				}
				if _, err := g.search.pred.SetOperand(text); err != nil {
					return &FieldError{Field: id, cause: err}
				}
				g.search.text = text
				continue
			}
			it, ok := g.items[key]
			if !ok {
				e.logger.WithField(field).Debug("skipping unknown value in state", "item", key)
				continue
			}
			selected, _ := v.(bool)
			it.selected = selected
		}
	}

	e.apply(nil)
	return e.Refresh()
}
