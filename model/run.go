package model

import (
	"time"

	"github.com/kbukum/testrail/view"
)

// Run is a test run, standalone or as part of a plan entry.
type Run struct {
	ID           int        `json:"id"`
	Name         *string    `json:"name,omitempty"`
	Description  *string    `json:"description,omitempty"`
	URL          string     `json:"url,omitempty"`
	ProjectID    int        `json:"project_id"`
	PlanID       *int       `json:"plan_id,omitempty"`
	SuiteID      *int       `json:"suite_id,omitempty"`
	MilestoneID  *int       `json:"milestone_id,omitempty"`
	AssignedtoID *int       `json:"assignedto_id,omitempty"`
	IncludeAll   *bool      `json:"include_all,omitempty"`
	CaseIDs      []int      `json:"case_ids,omitempty"`
	Refs         *string    `json:"refs,omitempty"`
	CreatedOn    *time.Time `json:"created_on,omitempty"`
	CreatedBy    int        `json:"created_by"`
	IsCompleted  bool       `json:"is_completed"`
	CompletedOn  *time.Time `json:"completed_on,omitempty"`
	Config       []string   `json:"config,omitempty"`
	ConfigIDs    []int      `json:"config_ids,omitempty"`
	Counts
}

var runTable = view.NewTable(
	view.Tag("name", RunAdd, RunUpdate),
	view.Tag("description", RunAdd, RunUpdate),
	view.Tag("suiteId", RunAdd),
	view.Tag("milestoneId", RunAdd, RunUpdate),
	view.Tag("assignedtoId", RunAdd, PlanAdd, PlanAddEntry),
	view.Tag("includeAll", RunAdd, RunUpdate, PlanAdd, PlanAddEntry),
	view.Tag("caseIds", RunAdd, RunUpdate, PlanAdd, PlanAddEntry),
	view.Tag("configIds", PlanAdd, PlanAddEntry),
	view.Tag("refs", RunAdd, RunUpdate, PlanAdd, PlanAddEntry),
)

func (r Run) ViewTable() *view.Table { return runTable }

func (r Run) ViewValues() map[string]any {
	return map[string]any{
		"name":         r.Name,
		"description":  r.Description,
		"suiteId":      r.SuiteID,
		"milestoneId":  r.MilestoneID,
		"assignedtoId": r.AssignedtoID,
		"includeAll":   r.IncludeAll,
		"caseIds":      r.CaseIDs,
		"configIds":    r.ConfigIDs,
		"refs":         r.Refs,
	}
}
