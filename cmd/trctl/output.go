package main

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/kbukum/testrail/customfield"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

func checkFormat(format string) error {
	switch format {
	case formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("unknown output format %q, use json or yaml", format)
}

// write renders v in the requested format. YAML output goes through the
// JSON form so that both formats use the API field names.
func write(w io.Writer, format string, v any) error {
	switch format {
	case formatYAML:
		doc, err := toDocument(v)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
}

// toDocument converts v into plain maps and slices.
func toDocument(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// withCustomFields renders an entity together with its custom fields under
// their wire names.
func withCustomFields(v any, custom map[string]any) (map[string]any, error) {
	doc, err := toDocument(v)
	if err != nil {
		return nil, err
	}
	m, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected an object, got %T", doc)
	}
	for k, val := range customfield.Encode(custom) {
		m[k] = val
	}
	return m, nil
}
