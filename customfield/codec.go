// Package customfield converts between the wire form of TestRail custom
// fields (`custom_<name>` keys with untyped JSON values) and the typed,
// undecorated map exposed on entities.
package customfield

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/kbukum/testrail/errors"
	"github.com/kbukum/testrail/schema"
)

// Prefix marks custom field keys on the wire.
const Prefix = "custom_"

// IsWireKey reports whether key is a prefixed custom field key.
func IsWireKey(key string) bool {
	return strings.HasPrefix(key, Prefix) && len(key) > len(Prefix)
}

// Decode converts raw custom field values into their declared types.
// Keys may be given with or without the wire prefix; the returned map is
// keyed by the undecorated name. A key without a definition in s fails with
// a SCHEMA_MISMATCH error.
func Decode(raw map[string]any, s schema.Schema) (map[string]any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	idx := s.Index()

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]any, len(raw))
	for _, key := range keys {
		name := strings.TrimPrefix(key, Prefix)
		typeID, ok := idx[name]
		if !ok {
			return nil, errors.SchemaMismatch(name)
		}
		v, err := Convert(schema.Resolve(typeID), raw[key])
		if err != nil {
			return nil, errors.Decode(fmt.Sprintf("custom field %s", name), err)
		}
		out[name] = v
	}
	return out, nil
}

// Encode re-adds the wire prefix to every key. Values are passed through.
func Encode(fields map[string]any) map[string]any {
	if fields == nil {
		return nil
	}
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[Prefix+k] = v
	}
	return out
}

// Convert decodes a raw JSON value into the Go shape of target. A JSON null
// stays nil.
func Convert(target schema.Target, raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}
	switch target.Kind {
	case schema.KindString:
		return convertTo[string](raw)
	case schema.KindInteger:
		return convertTo[int](raw)
	case schema.KindBoolean:
		return convertTo[bool](raw)
	case schema.KindStepList:
		return convertTo[[]schema.Step](raw)
	case schema.KindStepResultList:
		return convertTo[[]schema.StepResult](raw)
	case schema.KindStringList:
		return convertTo[[]string](raw)
	default:
		return raw, nil
	}
}

func convertTo[T any](raw any) (T, error) {
	var out T
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return out, err
	}
	if err := dec.Decode(raw); err != nil {
		return out, err
	}
	return out, nil
}
