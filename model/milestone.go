package model

import (
	"time"

	"github.com/kbukum/testrail/view"
)

// Milestone is a project milestone.
type Milestone struct {
	ID          int        `json:"id"`
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	ProjectID   int        `json:"project_id"`
	DueOn       *time.Time `json:"due_on,omitempty"`
	IsCompleted *bool      `json:"is_completed,omitempty"`
	CompletedOn *time.Time `json:"completed_on,omitempty"`
	URL         string     `json:"url,omitempty"`
}

var milestoneTable = view.NewTable(
	view.Tag("name", MilestoneAdd, MilestoneUpdate),
	view.Tag("description", MilestoneAdd, MilestoneUpdate),
	view.Tag("dueOn", MilestoneAdd, MilestoneUpdate),
	view.Tag("isCompleted", MilestoneUpdate),
)

func (m Milestone) ViewTable() *view.Table { return milestoneTable }

func (m Milestone) ViewValues() map[string]any {
	return map[string]any{
		"name":        m.Name,
		"description": m.Description,
		"dueOn":       m.DueOn,
		"isCompleted": m.IsCompleted,
	}
}
