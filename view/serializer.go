package view

import (
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/kbukum/testrail/customfield"
	"github.com/kbukum/testrail/util"
)

// Entity is implemented by every type that can be sent to the API.
type Entity interface {
	// ViewTable returns the view metadata of the type.
	ViewTable() *Table
	// ViewValues returns the current field values keyed by logical name.
	ViewValues() map[string]any
}

// customFields marks a custom field map whose keys are inlined with the wire
// prefix.
type customFields map[string]any

// Custom wraps an entity's custom field map for ViewValues.
func Custom(fields map[string]any) any {
	if fields == nil {
		return nil
	}
	return customFields(fields)
}

// CSV renders a string list as a single comma-separated value.
func CSV(items []string) any {
	if items == nil {
		return nil
	}
	return strings.Join(items, ",")
}

// List adapts a slice of entities for ViewValues.
func List[T Entity](items []T) any {
	if items == nil {
		return nil
	}
	out := make([]Entity, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}

// Serialize returns the fields of e tagged with v, in table order, using
// wire names. Unset fields are omitted. A result with no keys means the
// request has no content.
func Serialize(e Entity, v View) *util.OrderedMap {
	out := util.NewOrderedMap()
	if e == nil {
		return out
	}
	table := e.ViewTable()
	values := e.ViewValues()
	for _, field := range table.Fields(v) {
		value := values[field]
		if isNil(value) {
			continue
		}
		if custom, ok := value.(customFields); ok {
			wire := customfield.Encode(custom)
			keys := make([]string, 0, len(wire))
			for k := range wire {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				out.Set(k, wire[k])
			}
			continue
		}
		out.Set(WireName(field), normalize(value, v))
	}
	return out
}

func normalize(value any, v View) any {
	switch x := value.(type) {
	case Entity:
		return Serialize(x, v)
	case []Entity:
		list := make([]*util.OrderedMap, len(x))
		for i, item := range x {
			list[i] = Serialize(item, v)
		}
		return list
	case time.Time:
		return x.Unix()
	case *time.Time:
		return x.Unix()
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		return normalize(rv.Elem().Interface(), v)
	}
	return value
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
