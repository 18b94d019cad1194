package model

import (
	"strings"
	"time"

	"github.com/kbukum/testrail/customfield"
	"github.com/kbukum/testrail/view"
)

// Case is a test case. CustomFields is keyed by the field name without the
// custom_ prefix and typed against the case field definitions.
type Case struct {
	ID               int            `json:"id"`
	Title            *string        `json:"title,omitempty"`
	SectionID        int            `json:"section_id"`
	TemplateID       *int           `json:"template_id,omitempty"`
	TypeID           *int           `json:"type_id,omitempty"`
	PriorityID       *int           `json:"priority_id,omitempty"`
	MilestoneID      *int           `json:"milestone_id,omitempty"`
	Refs             *string        `json:"refs,omitempty"`
	CreatedBy        int            `json:"created_by"`
	CreatedOn        *time.Time     `json:"created_on,omitempty"`
	UpdatedBy        int            `json:"updated_by"`
	UpdatedOn        *time.Time     `json:"updated_on,omitempty"`
	Estimate         *string        `json:"estimate,omitempty"`
	EstimateForecast string         `json:"estimate_forecast,omitempty"`
	SuiteID          int            `json:"suite_id"`
	CustomFields     map[string]any `json:"-"`
}

var caseTable = view.NewTable(
	view.Tag("title", CaseAdd, CaseUpdate),
	view.Tag("templateId", CaseAdd, CaseUpdate),
	view.Tag("typeId", CaseAdd, CaseUpdate),
	view.Tag("priorityId", CaseAdd, CaseUpdate),
	view.Tag("milestoneId", CaseAdd, CaseUpdate),
	view.Tag("refs", CaseAdd, CaseUpdate),
	view.Tag("estimate", CaseAdd, CaseUpdate),
	view.Tag("customFields", CaseAdd, CaseUpdate),
)

func (c Case) ViewTable() *view.Table { return caseTable }

func (c Case) ViewValues() map[string]any {
	return map[string]any{
		"title":        c.Title,
		"templateId":   c.TemplateID,
		"typeId":       c.TypeID,
		"priorityId":   c.PriorityID,
		"milestoneId":  c.MilestoneID,
		"refs":         c.Refs,
		"estimate":     c.Estimate,
		"customFields": view.Custom(c.CustomFields),
	}
}

// SetCustomFields implements binding.CustomFieldHolder.
func (c *Case) SetCustomFields(fields map[string]any) { c.CustomFields = fields }

// CustomField returns the custom field stored under name.
func (c *Case) CustomField(name string) (any, bool) {
	v, ok := c.CustomFields[strings.TrimPrefix(name, customfield.Prefix)]
	return v, ok
}

// SetCustomField stores a custom field value for the next add or update.
// The name may be given with or without the custom_ prefix.
func (c *Case) SetCustomField(name string, value any) *Case {
	if c.CustomFields == nil {
		c.CustomFields = make(map[string]any)
	}
	c.CustomFields[strings.TrimPrefix(name, customfield.Prefix)] = value
	return c
}

// CaseType is a case type such as "Functionality".
type CaseType struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	IsDefault bool   `json:"is_default"`
}

// Priority is a case priority.
type Priority struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Priority  int    `json:"priority"`
	IsDefault bool   `json:"is_default"`
}
