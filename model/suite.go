package model

import (
	"time"

	"github.com/kbukum/testrail/view"
)

// Suite is a test suite of a project.
type Suite struct {
	ID          int        `json:"id"`
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	ProjectID   int        `json:"project_id"`
	IsBaseline  bool       `json:"is_baseline,omitempty"`
	IsCompleted bool       `json:"is_completed,omitempty"`
	CompletedOn *time.Time `json:"completed_on,omitempty"`
	URL         string     `json:"url,omitempty"`
}

var suiteTable = view.NewTable(
	view.Tag("name", SuiteAdd, SuiteUpdate),
	view.Tag("description", SuiteAdd, SuiteUpdate),
)

func (s Suite) ViewTable() *view.Table { return suiteTable }

func (s Suite) ViewValues() map[string]any {
	return map[string]any{
		"name":        s.Name,
		"description": s.Description,
	}
}

// Section groups cases inside a suite.
type Section struct {
	ID           int     `json:"id"`
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	SuiteID      *int    `json:"suite_id,omitempty"`
	ParentID     *int    `json:"parent_id,omitempty"`
	Depth        int     `json:"depth"`
	DisplayOrder int     `json:"display_order"`
}

var sectionTable = view.NewTable(
	view.Tag("name", SectionAdd, SectionUpdate),
	view.Tag("description", SectionAdd, SectionUpdate),
	view.Tag("suiteId", SectionAdd),
	view.Tag("parentId", SectionAdd),
)

func (s Section) ViewTable() *view.Table { return sectionTable }

func (s Section) ViewValues() map[string]any {
	return map[string]any{
		"name":        s.Name,
		"description": s.Description,
		"suiteId":     s.SuiteID,
		"parentId":    s.ParentID,
	}
}
