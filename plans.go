package testrail

import (
	"context"

	"github.com/kbukum/testrail/httpclient"
	"github.com/kbukum/testrail/model"
	"github.com/kbukum/testrail/validation"
)

// PlanService manages test plans and their entries.
type PlanService struct {
	c *httpclient.Client
}

// Get returns an existing plan with its entries and runs.
func (s *PlanService) Get(ctx context.Context, planID int) (model.Plan, error) {
	if err := validation.ID("planId", planID); err != nil {
		return model.Plan{}, err
	}
	return get[model.Plan](ctx, s.c, pathf("get_plan/%d", planID), nil)
}

// List returns the plans of a project. Listed plans carry no entries.
func (s *PlanService) List(ctx context.Context, projectID int, f PlanFilter) ([]model.Plan, error) {
	if err := validation.ID("projectId", projectID); err != nil {
		return nil, err
	}
	if err := checkFilter(f); err != nil {
		return nil, err
	}
	return list[model.Plan](ctx, s.c, pathf("get_plans/%d", projectID), f.values(), nil)
}

// Add creates a plan, including any entries set on p.
func (s *PlanService) Add(ctx context.Context, projectID int, p *model.Plan) (model.Plan, error) {
	if err := validation.New().Positive("projectId", projectID).NotNil("plan", p != nil).Err(); err != nil {
		return model.Plan{}, err
	}
	return post[model.Plan](ctx, s.c, pathf("add_plan/%d", projectID), p, model.PlanAdd, nil)
}

// AddEntry adds an entry with one or more runs to a plan.
func (s *PlanService) AddEntry(ctx context.Context, planID int, e *model.PlanEntry) (model.PlanEntry, error) {
	if err := validation.New().Positive("planId", planID).NotNil("entry", e != nil).Err(); err != nil {
		return model.PlanEntry{}, err
	}
	return post[model.PlanEntry](ctx, s.c, pathf("add_plan_entry/%d", planID), e, model.PlanAddEntry, nil)
}

// Update changes the set fields of p, which must carry its id.
func (s *PlanService) Update(ctx context.Context, p *model.Plan) (model.Plan, error) {
	if err := validation.New().NotNil("plan", p != nil).Err(); err != nil {
		return model.Plan{}, err
	}
	if err := validation.ID("planId", p.ID); err != nil {
		return model.Plan{}, err
	}
	return post[model.Plan](ctx, s.c, pathf("update_plan/%d", p.ID), p, model.PlanUpdate, nil)
}

// UpdateEntry changes an entry of a plan. The entry must carry its id.
func (s *PlanService) UpdateEntry(ctx context.Context, planID int, e *model.PlanEntry) (model.PlanEntry, error) {
	if err := validation.New().Positive("planId", planID).NotNil("entry", e != nil).Err(); err != nil {
		return model.PlanEntry{}, err
	}
	if err := validation.New().RequiredUUID("entryId", e.ID).Err(); err != nil {
		return model.PlanEntry{}, err
	}
	return post[model.PlanEntry](ctx, s.c, pathf("update_plan_entry/%d/%s", planID, e.ID), e, model.PlanUpdateEntry, nil)
}

// Close closes a plan and its runs. Closed plans cannot be changed.
func (s *PlanService) Close(ctx context.Context, planID int) (model.Plan, error) {
	if err := validation.ID("planId", planID); err != nil {
		return model.Plan{}, err
	}
	return action[model.Plan](ctx, s.c, pathf("close_plan/%d", planID))
}

// Delete deletes a plan and its runs.
func (s *PlanService) Delete(ctx context.Context, planID int) error {
	if err := validation.ID("planId", planID); err != nil {
		return err
	}
	return remove(ctx, s.c, pathf("delete_plan/%d", planID))
}

// DeleteEntry removes an entry and its runs from a plan.
func (s *PlanService) DeleteEntry(ctx context.Context, planID int, entryID string) error {
	if err := validation.New().Positive("planId", planID).RequiredUUID("entryId", entryID).Err(); err != nil {
		return err
	}
	return remove(ctx, s.c, pathf("delete_plan_entry/%d/%s", planID, entryID))
}
