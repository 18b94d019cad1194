// Package binding decodes API objects into entity structs in two passes.
//
// The first pass binds every statically declared field (json tag names) with
// mapstructure, converting unix timestamps, comma-separated lists and
// integer flags on the way. The second pass takes the keys the first pass
// left unused, keeps those carrying the custom_ prefix and hands them to
// the custom field codec together with the caller's schema.
package binding

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	json "github.com/goccy/go-json"

	"github.com/kbukum/testrail/customfield"
	"github.com/kbukum/testrail/errors"
	"github.com/kbukum/testrail/schema"
)

// Decoder decodes one JSON object into a T. The schema is passed explicitly
// on every call.
type Decoder[T any] func(raw map[string]any, s schema.Schema) (T, error)

// CustomFieldHolder is implemented by entities that carry custom fields.
type CustomFieldHolder interface {
	SetCustomFields(fields map[string]any)
}

// Finisher is implemented by entities that fix up derived state once both
// passes are done.
type Finisher interface {
	AfterDecode()
}

// For returns the Decoder for entity type T.
func For[T any]() Decoder[T] {
	return func(raw map[string]any, s schema.Schema) (T, error) {
		var out T
		if err := Bind(raw, &out, s); err != nil {
			return out, err
		}
		return out, nil
	}
}

// Bind decodes raw into dst, which must be a pointer to a struct.
func Bind(raw map[string]any, dst any, s schema.Schema) error {
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     dst,
		TagName:    "json",
		Squash:     true,
		Metadata:   &md,
		DecodeHook: Hooks(),
	})
	if err != nil {
		return errors.Decode(fmt.Sprintf("%T", dst), err)
	}
	if err := dec.Decode(raw); err != nil {
		return errors.Decode(fmt.Sprintf("%T", dst), err)
	}

	if holder, ok := dst.(CustomFieldHolder); ok {
		custom := make(map[string]any)
		for _, key := range md.Unused {
			if strings.ContainsAny(key, ".[") || !customfield.IsWireKey(key) {
				continue
			}
			custom[key] = raw[key]
		}
		fields, err := customfield.Decode(custom, s)
		if err != nil {
			return err
		}
		holder.SetCustomFields(fields)
	}

	if f, ok := dst.(Finisher); ok {
		f.AfterDecode()
	}
	return nil
}

// Unmarshal parses a JSON object and binds it into a new T.
func Unmarshal[T any](data []byte, s schema.Schema) (T, error) {
	var out T
	raw, err := Object(data)
	if err != nil {
		return out, err
	}
	return For[T]()(raw, s)
}

// Object parses data as a JSON object.
func Object(data []byte) (map[string]any, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Decode("JSON object", err)
	}
	if raw == nil {
		return nil, errors.Decode("JSON object", fmt.Errorf("payload is null"))
	}
	return raw, nil
}
