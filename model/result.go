package model

import (
	"strings"
	"time"

	"github.com/kbukum/testrail/customfield"
	"github.com/kbukum/testrail/view"
)

// Result is one recorded outcome of a test.
type Result struct {
	ID           int            `json:"id"`
	TestID       *int           `json:"test_id,omitempty"`
	CaseID       *int           `json:"case_id,omitempty"`
	StatusID     *int           `json:"status_id,omitempty"`
	CreatedOn    *time.Time     `json:"created_on,omitempty"`
	CreatedBy    int            `json:"created_by"`
	AssignedtoID *int           `json:"assignedto_id,omitempty"`
	Comment      *string        `json:"comment,omitempty"`
	Version      *string        `json:"version,omitempty"`
	Elapsed      *string        `json:"elapsed,omitempty"`
	Defects      []string       `json:"defects,omitempty"`
	CustomFields map[string]any `json:"-"`
}

var resultTable = view.NewTable(
	view.Tag("testId", ResultAddList),
	view.Tag("caseId", ResultAddListForCases),
	view.Tag("statusId", resultViews...),
	view.Tag("assignedtoId", resultViews...),
	view.Tag("comment", resultViews...),
	view.Tag("version", resultViews...),
	view.Tag("elapsed", resultViews...),
	view.Tag("defects", resultViews...),
	view.Tag("customFields", resultViews...),
)

func (r Result) ViewTable() *view.Table { return resultTable }

func (r Result) ViewValues() map[string]any {
	return map[string]any{
		"testId":       r.TestID,
		"caseId":       r.CaseID,
		"statusId":     r.StatusID,
		"assignedtoId": r.AssignedtoID,
		"comment":      r.Comment,
		"version":      r.Version,
		"elapsed":      r.Elapsed,
		"defects":      view.CSV(r.Defects),
		"customFields": view.Custom(r.CustomFields),
	}
}

// SetCustomFields implements binding.CustomFieldHolder.
func (r *Result) SetCustomFields(fields map[string]any) { r.CustomFields = fields }

// SetCustomField stores a custom field value for the next add. The name
// may be given with or without the custom_ prefix.
func (r *Result) SetCustomField(name string, value any) *Result {
	if r.CustomFields == nil {
		r.CustomFields = make(map[string]any)
	}
	r.CustomFields[strings.TrimPrefix(name, customfield.Prefix)] = value
	return r
}

// ResultList is the body of the bulk result endpoints.
type ResultList struct {
	Results []Result
}

var resultListTable = view.NewTable(
	view.Tag("results", ResultAddList, ResultAddListForCases),
)

func (l ResultList) ViewTable() *view.Table { return resultListTable }

func (l ResultList) ViewValues() map[string]any {
	return map[string]any{"results": view.List(l.Results)}
}

// Test is a case instantiated in a run. Tests are read-only.
type Test struct {
	ID               int            `json:"id"`
	CaseID           int            `json:"case_id"`
	AssignedtoID     *int           `json:"assignedto_id,omitempty"`
	Title            string         `json:"title"`
	StatusID         int            `json:"status_id"`
	TemplateID       int            `json:"template_id,omitempty"`
	TypeID           int            `json:"type_id"`
	PriorityID       int            `json:"priority_id"`
	MilestoneID      *int           `json:"milestone_id,omitempty"`
	RunID            *int           `json:"run_id,omitempty"`
	Refs             string         `json:"refs,omitempty"`
	Estimate         string         `json:"estimate,omitempty"`
	EstimateForecast string         `json:"estimate_forecast,omitempty"`
	CustomFields     map[string]any `json:"-"`
}

// SetCustomFields implements binding.CustomFieldHolder.
func (t *Test) SetCustomFields(fields map[string]any) { t.CustomFields = fields }
