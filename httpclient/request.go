package httpclient

import (
	"net/http"

	"github.com/kbukum/testrail/schema"
	"github.com/kbukum/testrail/util"
)

// Kind selects how a successful response is decoded.
type Kind int

const (
	// KindNone discards the response body.
	KindNone Kind = iota
	// KindScalar decodes a single JSON object.
	KindScalar
	// KindList decodes a bare JSON array.
	KindList
	// KindPaginated decodes page envelopes and follows their next links.
	KindPaginated
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindScalar:
		return "scalar"
	case KindList:
		return "list"
	case KindPaginated:
		return "paginated"
	default:
		return "unknown"
	}
}

// Description describes one logical API call.
type Description struct {
	// Method is http.MethodGet or http.MethodPost.
	Method string
	// Path is relative to the API root, e.g. "get_cases/1".
	Path string
	// Query is appended to the path when non-empty.
	Query *util.OrderedMap
	// Body is an ordered object, raw JSON bytes or nil.
	Body any
	// Kind selects the response decoding.
	Kind Kind
	// Schema supplies custom field definitions for decoding.
	Schema schema.Schema
}

// Get describes a GET request.
func Get(path string, query *util.OrderedMap, kind Kind) Description {
	return Description{Method: http.MethodGet, Path: path, Query: query, Kind: kind}
}

// Post describes a POST request.
func Post(path string, body any, kind Kind) Description {
	return Description{Method: http.MethodPost, Path: path, Body: body, Kind: kind}
}

// WithSchema returns a copy carrying s.
func (d Description) WithSchema(s schema.Schema) Description {
	d.Schema = s
	return d
}

// follow returns a copy for the next page. The continuation path already
// carries every filter, so the query is dropped.
func (d Description) follow(path string) Description {
	d.Path = path
	d.Query = nil
	return d
}
