package model

import (
	"time"

	"github.com/kbukum/testrail/view"
)

// Project is a TestRail project.
type Project struct {
	ID               int        `json:"id"`
	Name             *string    `json:"name,omitempty"`
	Announcement     *string    `json:"announcement,omitempty"`
	ShowAnnouncement *bool      `json:"show_announcement,omitempty"`
	IsCompleted      *bool      `json:"is_completed,omitempty"`
	CompletedOn      *time.Time `json:"completed_on,omitempty"`
	SuiteMode        int        `json:"suite_mode,omitempty"`
	URL              string     `json:"url,omitempty"`
}

var projectTable = view.NewTable(
	view.Tag("name", ProjectAdd, ProjectUpdate),
	view.Tag("announcement", ProjectAdd, ProjectUpdate),
	view.Tag("showAnnouncement", ProjectAdd, ProjectUpdate),
	view.Tag("isCompleted", ProjectUpdate),
)

func (p Project) ViewTable() *view.Table { return projectTable }

func (p Project) ViewValues() map[string]any {
	return map[string]any{
		"name":             p.Name,
		"announcement":     p.Announcement,
		"showAnnouncement": p.ShowAnnouncement,
		"isCompleted":      p.IsCompleted,
	}
}
