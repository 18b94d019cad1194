package page

import (
	"testing"

	"github.com/kbukum/testrail/binding"
	"github.com/kbukum/testrail/errors"
	"github.com/kbukum/testrail/schema"
)

type item struct {
	ID           int            `json:"id"`
	Title        string         `json:"title"`
	CustomFields map[string]any `json:"-"`
}

func (i *item) SetCustomFields(f map[string]any) { i.CustomFields = f }

var itemSchema = schema.Schema{{Name: "points", DeclaredTypeID: int(schema.Integer)}}

func TestResourceField(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"get_cases/1&suite_id=2", "cases"},
		{"get_projects", "projects"},
		{"get_results_for_case/3/4", "results"},
		{"/api/v2/get_runs/1&offset=250", "runs"},
	}
	for _, tt := range tests {
		got, err := ResourceField(tt.path)
		if err != nil {
			t.Fatalf("ResourceField(%q): unexpected error: %v", tt.path, err)
		}
		if got != tt.want {
			t.Errorf("ResourceField(%q): expected %q, got %q", tt.path, tt.want, got)
		}
	}
	if _, err := ResourceField("add_case/1"); !errors.IsDecode(err) {
		t.Errorf("expected DECODE error, got %v", err)
	}
}

func TestDecode_Envelope(t *testing.T) {
	data := []byte(`{
		"offset": 0, "limit": 2, "size": 2,
		"_links": {"next": "/api/v2/get_cases/1&limit=2&offset=2", "prev": null},
		"cases": [
			{"id": 2, "title": "b", "custom_points": 5},
			{"id": 1, "title": "a"}
		]
	}`)

	env, err := Decode(data, "cases", binding.For[item](), itemSchema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.Offset != 0 || env.Limit != 2 || env.Size != 2 {
		t.Errorf("unexpected envelope header: %+v", env)
	}
	if env.Next == nil || *env.Next != "/api/v2/get_cases/1&limit=2&offset=2" {
		t.Errorf("unexpected next: %v", env.Next)
	}
	if env.Prev != nil {
		t.Errorf("expected nil prev, got %q", *env.Prev)
	}
	if len(env.Items) != 2 || env.Items[0].ID != 2 || env.Items[1].ID != 1 {
		t.Fatalf("items out of order: %+v", env.Items)
	}
	if env.Items[0].CustomFields["points"] != 5 {
		t.Errorf("expected custom points=5, got %v", env.Items[0].CustomFields)
	}
}

func TestDecode_LinksSpelling(t *testing.T) {
	data := []byte(`{"offset":0,"limit":1,"size":1,"links":{"next":"/api/v2/get_projects&offset=1"},"projects":[{"id":1}]}`)
	env, err := Decode(data, "projects", binding.For[item](), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.Next == nil {
		t.Fatal("expected next from links")
	}
}

func TestDecode_MissingLinks(t *testing.T) {
	data := []byte(`{"offset":0,"limit":250,"size":0,"projects":[]}`)
	env, err := Decode(data, "projects", binding.For[item](), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.Next != nil || env.Prev != nil || len(env.Items) != 0 {
		t.Errorf("expected empty last page, got %+v", env)
	}
}

func TestDecode_Errors(t *testing.T) {
	good := []byte(`{"offset":0,"limit":1,"size":1,"cases":[{"id":1,"custom_unknown":1}]}`)

	if _, err := Decode[item](good, "cases", nil, nil); !errors.IsDecode(err) {
		t.Errorf("expected DECODE error for nil decoder, got %v", err)
	}
	if _, err := Decode(good, "runs", binding.For[item](), nil); !errors.IsDecode(err) {
		t.Errorf("expected DECODE error for missing payload, got %v", err)
	}
	if _, err := Decode(good, "cases", binding.For[item](), itemSchema); !errors.IsSchemaMismatch(err) {
		t.Errorf("expected SCHEMA_MISMATCH, got %v", err)
	}
}

func TestDecodeArray(t *testing.T) {
	items, err := DecodeArray([]byte(`[{"id":3},{"id":4}]`), binding.For[item](), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 || items[1].ID != 4 {
		t.Errorf("unexpected items: %+v", items)
	}
	if _, err := DecodeArray([]byte(`{"id":1}`), binding.For[item](), nil); !errors.IsDecode(err) {
		t.Errorf("expected DECODE error for object, got %v", err)
	}
}

func TestIsEnvelope(t *testing.T) {
	if !IsEnvelope([]byte(`{"offset":0,"limit":250,"size":0,"cases":[]}`)) {
		t.Error("expected envelope")
	}
	if IsEnvelope([]byte(`[{"id":1}]`)) || IsEnvelope([]byte(`{"id":1}`)) {
		t.Error("expected non-envelopes")
	}
}
