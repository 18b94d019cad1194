// Package query flattens a JSON object into a TestRail query string.
//
// Keys keep their insertion order and are written in snake_case. Arrays are
// joined with commas into a single pair, times become unix seconds and nil
// values are skipped:
//
//	section_id=1&created_after=1424649600&created_by=1,2
package query

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/iancoleman/strcase"

	"github.com/kbukum/testrail/util"
)

// Encode renders obj as `key=value&key=value`. An empty or nil object
// encodes to the empty string.
func Encode(obj *util.OrderedMap) string {
	if obj.Len() == 0 {
		return ""
	}
	var b strings.Builder
	for _, key := range obj.Keys() {
		raw, _ := obj.Get(key)
		value, ok := formatValue(raw)
		if !ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(strcase.ToSnake(key)))
		b.WriteByte('=')
		b.WriteString(value)
	}
	return b.String()
}

// Append joins a base path and an encoded query with `&`. The API root
// already carries a `?`, so every query fragment is appended with `&`.
func Append(path, encoded string) string {
	if encoded == "" {
		return path
	}
	return path + "&" + encoded
}

// formatValue returns the escaped value and false when the value is nil.
func formatValue(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "", false
		}
		return formatValue(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return "", false
		}
		parts := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			if s, ok := formatValue(rv.Index(i).Interface()); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ","), true
	}
	return url.QueryEscape(scalar(v)), true
}

func scalar(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		if x {
			return "1"
		}
		return "0"
	case time.Time:
		return strconv.FormatInt(x.Unix(), 10)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
