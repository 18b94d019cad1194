// Package page decodes TestRail list responses.
//
// Paginated endpoints answer with an envelope:
//
//	{"offset":0,"limit":250,"size":250,
//	 "_links":{"next":"/api/v2/get_cases/1&offset=250","prev":null},
//	 "cases":[...]}
//
// The payload key varies per resource and is derived from the endpoint path.
package page

import (
	"fmt"
	"regexp"

	"github.com/tidwall/gjson"

	"github.com/kbukum/testrail/binding"
	"github.com/kbukum/testrail/errors"
	"github.com/kbukum/testrail/schema"
)

// Envelope is one decoded page.
type Envelope[T any] struct {
	Offset int
	Limit  int
	Size   int
	Next   *string
	Prev   *string
	Items  []T
}

var resourcePattern = regexp.MustCompile(`get_([^_/&?]+)`)

// ResourceField returns the payload key for an endpoint path, e.g. "cases"
// for "get_cases/1&suite_id=2".
func ResourceField(path string) (string, error) {
	m := resourcePattern.FindStringSubmatch(path)
	if m == nil {
		return "", errors.Decode("page envelope", fmt.Errorf("no resource name in path %q", path))
	}
	return m[1], nil
}

// IsEnvelope reports whether data is a paginated envelope rather than a bare
// array or a single object.
func IsEnvelope(data []byte) bool {
	r := gjson.ParseBytes(data)
	return r.IsObject() && r.Get("offset").Exists() && r.Get("limit").Exists()
}

// Decode decodes an envelope whose items live under field. Every item goes
// through dec with s; item order is preserved.
func Decode[T any](data []byte, field string, dec binding.Decoder[T], s schema.Schema) (*Envelope[T], error) {
	if dec == nil {
		return nil, errors.Decode("page envelope", fmt.Errorf("no item decoder for %q", field))
	}
	r := gjson.ParseBytes(data)
	if !r.IsObject() {
		return nil, errors.Decode("page envelope", fmt.Errorf("expected a JSON object"))
	}

	links := r.Get("links")
	if !links.Exists() {
		links = r.Get("_links")
	}

	payload := r.Get(field)
	if !payload.IsArray() {
		return nil, errors.Decode("page envelope", fmt.Errorf("no %q array in envelope", field))
	}
	items, err := decodeItems(payload, dec, s)
	if err != nil {
		return nil, err
	}

	return &Envelope[T]{
		Offset: int(r.Get("offset").Int()),
		Limit:  int(r.Get("limit").Int()),
		Size:   int(r.Get("size").Int()),
		Next:   link(links, "next"),
		Prev:   link(links, "prev"),
		Items:  items,
	}, nil
}

// DecodeArray decodes a bare JSON array, the shape of non-paginated lists.
func DecodeArray[T any](data []byte, dec binding.Decoder[T], s schema.Schema) ([]T, error) {
	if dec == nil {
		return nil, errors.Decode("list", fmt.Errorf("no item decoder"))
	}
	r := gjson.ParseBytes(data)
	if !r.IsArray() {
		return nil, errors.Decode("list", fmt.Errorf("expected a JSON array"))
	}
	return decodeItems(r, dec, s)
}

func decodeItems[T any](arr gjson.Result, dec binding.Decoder[T], s schema.Schema) ([]T, error) {
	elems := arr.Array()
	items := make([]T, 0, len(elems))
	for i, el := range elems {
		raw, err := binding.Object([]byte(el.Raw))
		if err != nil {
			return nil, errors.Decode(fmt.Sprintf("item %d", i), err)
		}
		item, err := dec(raw, s)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// link returns links.name, or nil when it is absent, null or empty.
func link(links gjson.Result, name string) *string {
	v := links.Get(name)
	if v.Type != gjson.String || v.Str == "" {
		return nil
	}
	s := v.String()
	return &s
}
