package testrail

import (
	"time"

	"github.com/kbukum/testrail/util"
	"github.com/kbukum/testrail/validation"
)

// Filters narrow list calls. Unset fields are left out of the query string;
// id lists are sent comma-separated and times as unix seconds.

// ProjectFilter filters Projects.List.
type ProjectFilter struct {
	IsCompleted *bool
}

func (f ProjectFilter) values() *util.OrderedMap {
	return pairs("isCompleted", f.IsCompleted)
}

// CaseFilter filters Cases.List.
type CaseFilter struct {
	SectionID     *int `validate:"omitempty,gt=0"`
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	CreatedBy     []int `validate:"omitempty,dive,gt=0"`
	MilestoneID   []int `validate:"omitempty,dive,gt=0"`
	PriorityID    []int `validate:"omitempty,dive,gt=0"`
	TypeID        []int `validate:"omitempty,dive,gt=0"`
	UpdatedAfter  *time.Time
	UpdatedBefore *time.Time
	UpdatedBy     []int `validate:"omitempty,dive,gt=0"`
	TemplateID    *int  `validate:"omitempty,gt=0"`
	Refs          *string
}

func (f CaseFilter) values() *util.OrderedMap {
	return pairs(
		"sectionId", f.SectionID,
		"createdAfter", f.CreatedAfter,
		"createdBefore", f.CreatedBefore,
		"createdBy", f.CreatedBy,
		"milestoneId", f.MilestoneID,
		"priorityId", f.PriorityID,
		"typeId", f.TypeID,
		"updatedAfter", f.UpdatedAfter,
		"updatedBefore", f.UpdatedBefore,
		"updatedBy", f.UpdatedBy,
		"templateId", f.TemplateID,
		"refs", f.Refs,
	)
}

// MilestoneFilter filters Milestones.List.
type MilestoneFilter struct {
	IsCompleted *bool
}

func (f MilestoneFilter) values() *util.OrderedMap {
	return pairs("isCompleted", f.IsCompleted)
}

// PlanFilter filters Plans.List.
type PlanFilter struct {
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	CreatedBy     []int `validate:"omitempty,dive,gt=0"`
	IsCompleted   *bool
	Limit         *int  `validate:"omitempty,gt=0"`
	Offset        *int  `validate:"omitempty,gte=0"`
	MilestoneID   []int `validate:"omitempty,dive,gt=0"`
}

func (f PlanFilter) values() *util.OrderedMap {
	return pairs(
		"createdAfter", f.CreatedAfter,
		"createdBefore", f.CreatedBefore,
		"createdBy", f.CreatedBy,
		"isCompleted", f.IsCompleted,
		"limit", f.Limit,
		"offset", f.Offset,
		"milestoneId", f.MilestoneID,
	)
}

// RunFilter filters Runs.List.
type RunFilter struct {
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	CreatedBy     []int `validate:"omitempty,dive,gt=0"`
	IsCompleted   *bool
	Limit         *int  `validate:"omitempty,gt=0"`
	Offset        *int  `validate:"omitempty,gte=0"`
	MilestoneID   []int `validate:"omitempty,dive,gt=0"`
	SuiteID       []int `validate:"omitempty,dive,gt=0"`
	Refs          *string
}

func (f RunFilter) values() *util.OrderedMap {
	return pairs(
		"createdAfter", f.CreatedAfter,
		"createdBefore", f.CreatedBefore,
		"createdBy", f.CreatedBy,
		"isCompleted", f.IsCompleted,
		"limit", f.Limit,
		"offset", f.Offset,
		"milestoneId", f.MilestoneID,
		"suiteId", f.SuiteID,
		"refs", f.Refs,
	)
}

// TestFilter filters Tests.List.
type TestFilter struct {
	StatusID []int `validate:"omitempty,dive,gt=0"`
}

func (f TestFilter) values() *util.OrderedMap {
	return pairs("statusId", f.StatusID)
}

// ResultFilter filters Results.List and Results.ListForCase.
type ResultFilter struct {
	Limit    *int  `validate:"omitempty,gt=0"`
	Offset   *int  `validate:"omitempty,gte=0"`
	StatusID []int `validate:"omitempty,dive,gt=0"`
}

func (f ResultFilter) values() *util.OrderedMap {
	return pairs("limit", f.Limit, "offset", f.Offset, "statusId", f.StatusID)
}

// RunResultFilter filters Results.ListForRun.
type RunResultFilter struct {
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	CreatedBy     []int `validate:"omitempty,dive,gt=0"`
	ResultFilter
}

func (f RunResultFilter) values() *util.OrderedMap {
	return pairs(
		"createdAfter", f.CreatedAfter,
		"createdBefore", f.CreatedBefore,
		"createdBy", f.CreatedBy,
		"limit", f.Limit,
		"offset", f.Offset,
		"statusId", f.StatusID,
	)
}

// pairs builds an ordered query object from alternating keys and values.
// Keys are given in camelCase and written in snake_case by the encoder.
func pairs(kv ...any) *util.OrderedMap {
	m := util.NewOrderedMap()
	for i := 0; i+1 < len(kv); i += 2 {
		m.Set(kv[i].(string), kv[i+1])
	}
	return m
}

// checkFilter runs the struct rules of a filter.
func checkFilter(f any) error {
	return validation.Validate(f)
}
