package model

import (
	"time"

	"github.com/kbukum/testrail/view"
)

// Plan is a test plan made of entries, each holding one or more runs.
type Plan struct {
	ID           int         `json:"id"`
	Name         *string     `json:"name,omitempty"`
	Description  *string     `json:"description,omitempty"`
	URL          string      `json:"url,omitempty"`
	ProjectID    int         `json:"project_id"`
	MilestoneID  *int        `json:"milestone_id,omitempty"`
	AssignedtoID *int        `json:"assignedto_id,omitempty"`
	CreatedOn    *time.Time  `json:"created_on,omitempty"`
	CreatedBy    int         `json:"created_by"`
	IsCompleted  bool        `json:"is_completed"`
	CompletedOn  *time.Time  `json:"completed_on,omitempty"`
	Entries      []PlanEntry `json:"entries,omitempty"`
	Counts
}

var planTable = view.NewTable(
	view.Tag("name", PlanAdd, PlanUpdate),
	view.Tag("description", PlanAdd, PlanUpdate),
	view.Tag("milestoneId", PlanAdd, PlanUpdate),
	view.Tag("entries", PlanAdd),
)

func (p Plan) ViewTable() *view.Table { return planTable }

func (p Plan) ViewValues() map[string]any {
	return map[string]any{
		"name":        p.Name,
		"description": p.Description,
		"milestoneId": p.MilestoneID,
		"entries":     view.List(p.Entries),
	}
}

// AfterDecode copies the plan's creation stamp into every entry run; the
// API only sends it on the plan.
func (p *Plan) AfterDecode() {
	for i := range p.Entries {
		for j := range p.Entries[i].Runs {
			run := &p.Entries[i].Runs[j]
			run.CreatedOn = p.CreatedOn
			run.CreatedBy = p.CreatedBy
		}
	}
}

// PlanEntry groups the runs created for one suite inside a plan.
type PlanEntry struct {
	ID           string         `json:"id"`
	Name         *string        `json:"name,omitempty"`
	Description  *string        `json:"description,omitempty"`
	SuiteID      *int           `json:"suite_id,omitempty"`
	AssignedtoID *int           `json:"assignedto_id,omitempty"`
	IncludeAll   *bool          `json:"include_all,omitempty"`
	CaseIDs      []int          `json:"case_ids,omitempty"`
	ConfigIDs    []int          `json:"config_ids,omitempty"`
	Runs         []PlanEntryRun `json:"runs,omitempty"`
}

var planEntryTable = view.NewTable(
	view.Tag("name", PlanAdd, PlanAddEntry, PlanUpdateEntry),
	view.Tag("description", PlanAdd, PlanAddEntry, PlanUpdateEntry),
	view.Tag("suiteId", PlanAdd, PlanAddEntry),
	view.Tag("assignedtoId", PlanAdd, PlanAddEntry, PlanUpdateEntry),
	view.Tag("includeAll", PlanAdd, PlanAddEntry, PlanUpdateEntry),
	view.Tag("caseIds", PlanAdd, PlanAddEntry, PlanUpdateEntry),
	view.Tag("configIds", PlanAdd, PlanAddEntry),
	view.Tag("runs", PlanAdd, PlanAddEntry),
)

func (e PlanEntry) ViewTable() *view.Table { return planEntryTable }

func (e PlanEntry) ViewValues() map[string]any {
	return map[string]any{
		"name":         e.Name,
		"description":  e.Description,
		"suiteId":      e.SuiteID,
		"assignedtoId": e.AssignedtoID,
		"includeAll":   e.IncludeAll,
		"caseIds":      e.CaseIDs,
		"configIds":    e.ConfigIDs,
		"runs":         view.List(e.Runs),
	}
}

// PlanEntryRun is a run as it appears inside a plan entry.
type PlanEntryRun struct {
	Run
	EntryID    string `json:"entry_id,omitempty"`
	EntryIndex int    `json:"entry_index,omitempty"`
}
