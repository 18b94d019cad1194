package binding

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/shopspring/decimal"
)

var (
	timeType    = reflect.TypeOf(time.Time{})
	decimalType = reflect.TypeOf(decimal.Decimal{})
	stringsType = reflect.TypeOf([]string(nil))
	itemsType   = reflect.TypeOf(map[string]string(nil))
)

// Hooks returns the conversions applied while binding API objects.
func Hooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		unixTimeHook,
		csvHook,
		intToBoolHook,
		itemsHook,
		decimalHook,
	)
}

// unixTimeHook turns unix seconds into time.Time.
func unixTimeHook(from, to reflect.Type, data any) (any, error) {
	if to != timeType {
		return data, nil
	}
	switch n := data.(type) {
	case float64:
		return time.Unix(int64(n), 0).UTC(), nil
	case int:
		return time.Unix(int64(n), 0).UTC(), nil
	case int64:
		return time.Unix(n, 0).UTC(), nil
	}
	return data, nil
}

// csvHook splits a comma-separated string into a string list.
func csvHook(from, to reflect.Type, data any) (any, error) {
	if to != stringsType || from.Kind() != reflect.String {
		return data, nil
	}
	return SplitCSV(data.(string)), nil
}

// intToBoolHook maps 0 to false and anything else to true. Numeric strings
// such as a checkbox default of "1" are handled the same way.
func intToBoolHook(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Bool {
		return data, nil
	}
	switch n := data.(type) {
	case float64:
		return n != 0, nil
	case int:
		return n != 0, nil
	case string:
		switch strings.TrimSpace(n) {
		case "", "0", "false":
			return false, nil
		case "1", "true":
			return true, nil
		}
	}
	return data, nil
}

// itemsHook parses dropdown items of the form "1, First\n2, Second".
func itemsHook(from, to reflect.Type, data any) (any, error) {
	if to != itemsType || from.Kind() != reflect.String {
		return data, nil
	}
	return ParseItems(data.(string)), nil
}

// decimalHook reads numbers and numeric strings into decimal.Decimal.
func decimalHook(from, to reflect.Type, data any) (any, error) {
	if to != decimalType {
		return data, nil
	}
	switch v := data.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		if v == "" {
			return decimal.Zero, nil
		}
		return decimal.NewFromString(v)
	}
	return data, nil
}

// SplitCSV splits s on commas and trims each element.
func SplitCSV(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// ParseItems parses newline-separated "key, value" pairs. Empty lines are
// skipped and values are trimmed.
func ParseItems(s string) map[string]string {
	items := make(map[string]string)
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		k, v, _ := strings.Cut(line, ",")
		items[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return items
}
