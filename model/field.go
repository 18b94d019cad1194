package model

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kbukum/testrail/binding"
	"github.com/kbukum/testrail/errors"
	"github.com/kbukum/testrail/schema"
)

// Field is a custom field definition, as listed by get_case_fields and
// get_result_fields. Name is the undecorated name used as the custom field
// key; SystemName carries the custom_ prefix.
type Field struct {
	ID           int           `json:"id"`
	Label        string        `json:"label"`
	Name         string        `json:"name"`
	Description  string        `json:"description,omitempty"`
	SystemName   string        `json:"system_name"`
	TypeID       int           `json:"type_id"`
	DisplayOrder int           `json:"display_order"`
	IsActive     bool          `json:"is_active"`
	Configs      []FieldConfig `json:"configs,omitempty"`
}

// CaseField is a field listed by get_case_fields.
type CaseField = Field

// ResultField is a field listed by get_result_fields.
type ResultField = Field

// Type returns the registry type of the field.
func (f Field) Type() schema.TypeID {
	return schema.Resolve(f.TypeID).Type
}

// Definition returns the schema entry of the field.
func (f Field) Definition() schema.FieldDefinition {
	return schema.FieldDefinition{Name: f.Name, DeclaredTypeID: f.TypeID}
}

// Fields is a list of field definitions.
type Fields []Field

// Definitions returns the schema to decode entities carrying these fields.
func (fs Fields) Definitions() schema.Schema {
	out := make(schema.Schema, len(fs))
	for i, f := range fs {
		out[i] = f.Definition()
	}
	return out
}

// FieldConfig scopes a field to projects and carries its options. After
// DecodeField, Options holds a pointer to the options type matching the
// field type, e.g. *DropdownOptions.
type FieldConfig struct {
	ID      string       `json:"id"`
	Context FieldContext `json:"context"`
	Options any          `json:"options,omitempty"`
}

// Required reports the is_required option.
func (c FieldConfig) Required() bool {
	if o, ok := c.Options.(interface{ Required() bool }); ok {
		return o.Required()
	}
	return false
}

// FieldContext tells where a config applies.
type FieldContext struct {
	IsGlobal   bool  `json:"is_global"`
	ProjectIDs []int `json:"project_ids,omitempty"`
}

// Options are the options every field type shares.
type Options struct {
	IsRequired bool `json:"is_required"`
}

// Required reports is_required.
func (o Options) Required() bool { return o.IsRequired }

type StringOptions struct {
	Options
	DefaultValue string `json:"default_value,omitempty"`
}

type IntegerOptions struct {
	Options
	DefaultValue decimal.Decimal `json:"default_value"`
}

type TextOptions struct {
	Options
	DefaultValue string `json:"default_value,omitempty"`
	Format       string `json:"format,omitempty"`
	Rows         int    `json:"rows,omitempty"`
}

type URLOptions struct {
	Options
	DefaultValue string `json:"default_value,omitempty"`
}

type CheckboxOptions struct {
	Options
	DefaultValue bool `json:"default_value"`
}

type DropdownOptions struct {
	Options
	DefaultValue string            `json:"default_value,omitempty"`
	Items        map[string]string `json:"items,omitempty"`
}

type UserOptions struct {
	Options
	DefaultValue int `json:"default_value,omitempty"`
}

type DateOptions struct {
	Options
}

type MilestoneOptions struct {
	Options
}

type StepsOptions struct {
	Options
	Format      string `json:"format,omitempty"`
	HasExpected bool   `json:"has_expected"`
	Rows        int    `json:"rows,omitempty"`
}

type StepResultsOptions struct {
	Options
	Format      string `json:"format,omitempty"`
	HasExpected bool   `json:"has_expected"`
	HasActual   bool   `json:"has_actual"`
}

type MultiSelectOptions struct {
	Options
	Items map[string]string `json:"items,omitempty"`
}

// newOptions returns an empty options value for a field type.
func newOptions(t schema.TypeID) any {
	switch t {
	case schema.String:
		return &StringOptions{}
	case schema.Integer:
		return &IntegerOptions{}
	case schema.Text:
		return &TextOptions{}
	case schema.URL:
		return &URLOptions{}
	case schema.Checkbox:
		return &CheckboxOptions{}
	case schema.Dropdown:
		return &DropdownOptions{}
	case schema.User:
		return &UserOptions{}
	case schema.Date:
		return &DateOptions{}
	case schema.Milestone:
		return &MilestoneOptions{}
	case schema.Steps:
		return &StepsOptions{}
	case schema.StepResults:
		return &StepResultsOptions{}
	case schema.MultiSelect:
		return &MultiSelectOptions{}
	default:
		return &Options{}
	}
}

// DecodeField decodes a field definition and types the options of each of
// its configs by the field type.
func DecodeField(raw map[string]any, s schema.Schema) (Field, error) {
	f, err := binding.For[Field]()(raw, s)
	if err != nil {
		return f, err
	}
	for i := range f.Configs {
		opts := newOptions(f.Type())
		rawOpts, _ := f.Configs[i].Options.(map[string]any)
		if rawOpts != nil {
			if err := binding.Bind(rawOpts, opts, nil); err != nil {
				return f, errors.Decode(fmt.Sprintf("options of field %s", f.Name), err)
			}
		}
		f.Configs[i].Options = opts
	}
	return f, nil
}
