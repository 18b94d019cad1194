// Package view serializes entities for a single API operation.
//
// Every entity declares a Table naming its writable fields and the views
// (operations) each one belongs to. Serialize emits only the fields tagged
// with the requested view, skips unset fields and never emits fields that are
// absent from the table, which keeps server-managed fields out of requests.
package view

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/iancoleman/strcase"
)

// View names an operation-scoped field subset, e.g. "projects.add".
type View string

// Entry declares the views of one field.
type Entry struct {
	Name  string
	Views mapset.Set[View]
}

// Tag declares that the field named name belongs to views.
func Tag(name string, views ...View) Entry {
	return Entry{Name: name, Views: mapset.NewThreadUnsafeSet(views...)}
}

// Table is the ordered view metadata of an entity type.
type Table struct {
	order []string
	views map[string]mapset.Set[View]
}

// NewTable builds a table. Field order is the order entries are given in.
func NewTable(entries ...Entry) *Table {
	t := &Table{views: make(map[string]mapset.Set[View], len(entries))}
	for _, e := range entries {
		if existing, ok := t.views[e.Name]; ok {
			t.views[e.Name] = existing.Union(e.Views)
			continue
		}
		t.order = append(t.order, e.Name)
		t.views[e.Name] = e.Views
	}
	return t
}

// Includes reports whether the field belongs to v.
func (t *Table) Includes(field string, v View) bool {
	views, ok := t.views[field]
	return ok && views.Contains(v)
}

// Fields returns the fields belonging to v in declaration order.
func (t *Table) Fields(v View) []string {
	var out []string
	for _, name := range t.order {
		if t.views[name].Contains(v) {
			out = append(out, name)
		}
	}
	return out
}

// WireName converts a logical field name to its snake_case wire name.
func WireName(field string) string {
	return strcase.ToSnake(field)
}
