// Package schema maps TestRail custom field type ids to the Go types their
// values decode into.
//
// The registry is a fixed table. Ids the table does not know, including ids
// a newer server may introduce, resolve to Unknown so that decoding keeps
// working with an opaque value.
package schema

import "fmt"

// TypeID is the declared type of a custom field as configured on the server.
type TypeID int

const (
	Unknown TypeID = iota
	String
	Integer
	Text
	URL
	Checkbox
	Dropdown
	User
	Date
	Milestone
	Steps
	StepResults
	MultiSelect
)

var typeNames = [...]string{
	"UNKNOWN", "STRING", "INTEGER", "TEXT", "URL", "CHECKBOX", "DROPDOWN",
	"USER", "DATE", "MILESTONE", "STEPS", "STEP_RESULTS", "MULTI_SELECT",
}

func (t TypeID) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("TypeID(%d)", int(t))
}

// Kind is the Go shape a custom field value decodes into.
type Kind int

const (
	// KindOpaque keeps the value as decoded from JSON.
	KindOpaque Kind = iota
	// KindString decodes into string.
	KindString
	// KindInteger decodes into int.
	KindInteger
	// KindBoolean decodes into bool.
	KindBoolean
	// KindStepList decodes into []Step.
	KindStepList
	// KindStepResultList decodes into []StepResult.
	KindStepResultList
	// KindStringList decodes into []string.
	KindStringList
)

// Target is a registry entry.
type Target struct {
	Type TypeID
	Kind Kind
}

var registry = [...]Target{
	Unknown:     {Unknown, KindOpaque},
	String:      {String, KindString},
	Integer:     {Integer, KindInteger},
	Text:        {Text, KindString},
	URL:         {URL, KindString},
	Checkbox:    {Checkbox, KindBoolean},
	Dropdown:    {Dropdown, KindString},
	User:        {User, KindInteger},
	Date:        {Date, KindString},
	Milestone:   {Milestone, KindInteger},
	Steps:       {Steps, KindStepList},
	StepResults: {StepResults, KindStepResultList},
	MultiSelect: {MultiSelect, KindStringList},
}

// Resolve returns the target for a declared type id. It never fails.
func Resolve(declaredTypeID int) Target {
	if declaredTypeID < 0 || declaredTypeID >= len(registry) {
		return registry[Unknown]
	}
	return registry[declaredTypeID]
}

// Step is a STEPS custom field element.
type Step struct {
	Content  string `json:"content,omitempty" mapstructure:"content"`
	Expected string `json:"expected,omitempty" mapstructure:"expected"`
}

// StepResult is a STEP_RESULTS custom field element.
type StepResult struct {
	Content  string `json:"content,omitempty" mapstructure:"content"`
	Expected string `json:"expected,omitempty" mapstructure:"expected"`
	Actual   string `json:"actual,omitempty" mapstructure:"actual"`
	StatusID int    `json:"status_id,omitempty" mapstructure:"status_id"`
}
