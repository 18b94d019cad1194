package model

import "github.com/kbukum/testrail/view"

// Operation views.
const (
	ProjectAdd    view.View = "projects.add"
	ProjectUpdate view.View = "projects.update"

	SuiteAdd    view.View = "suites.add"
	SuiteUpdate view.View = "suites.update"

	SectionAdd    view.View = "sections.add"
	SectionUpdate view.View = "sections.update"

	CaseAdd    view.View = "cases.add"
	CaseUpdate view.View = "cases.update"

	MilestoneAdd    view.View = "milestones.add"
	MilestoneUpdate view.View = "milestones.update"

	PlanAdd         view.View = "plans.add"
	PlanUpdate      view.View = "plans.update"
	PlanAddEntry    view.View = "plans.add_entry"
	PlanUpdateEntry view.View = "plans.update_entry"

	RunAdd    view.View = "runs.add"
	RunUpdate view.View = "runs.update"

	ResultAdd             view.View = "results.add"
	ResultAddForCase      view.View = "results.add_for_case"
	ResultAddList         view.View = "results.add_list"
	ResultAddListForCases view.View = "results.add_list_for_cases"
)

// resultViews are the views every result write shares.
var resultViews = []view.View{ResultAdd, ResultAddForCase, ResultAddList, ResultAddListForCases}

// Counts are the per-status test counters of runs and plans.
type Counts struct {
	PassedCount        int `json:"passed_count"`
	BlockedCount       int `json:"blocked_count"`
	UntestedCount      int `json:"untested_count"`
	RetestCount        int `json:"retest_count"`
	FailedCount        int `json:"failed_count"`
	CustomStatus1Count int `json:"custom_status1_count"`
	CustomStatus2Count int `json:"custom_status2_count"`
	CustomStatus3Count int `json:"custom_status3_count"`
	CustomStatus4Count int `json:"custom_status4_count"`
	CustomStatus5Count int `json:"custom_status5_count"`
	CustomStatus6Count int `json:"custom_status6_count"`
	CustomStatus7Count int `json:"custom_status7_count"`
}
