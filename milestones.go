package testrail

import (
	"context"

	"github.com/kbukum/testrail/httpclient"
	"github.com/kbukum/testrail/model"
	"github.com/kbukum/testrail/validation"
)

// MilestoneService manages project milestones.
type MilestoneService struct {
	c *httpclient.Client
}

// Get returns an existing milestone.
func (s *MilestoneService) Get(ctx context.Context, milestoneID int) (model.Milestone, error) {
	if err := validation.ID("milestoneId", milestoneID); err != nil {
		return model.Milestone{}, err
	}
	return get[model.Milestone](ctx, s.c, pathf("get_milestone/%d", milestoneID), nil)
}

// List returns the milestones of a project.
func (s *MilestoneService) List(ctx context.Context, projectID int, f MilestoneFilter) ([]model.Milestone, error) {
	if err := validation.ID("projectId", projectID); err != nil {
		return nil, err
	}
	return list[model.Milestone](ctx, s.c, pathf("get_milestones/%d", projectID), f.values(), nil)
}

// Add creates a milestone in a project.
func (s *MilestoneService) Add(ctx context.Context, projectID int, m *model.Milestone) (model.Milestone, error) {
	if err := validation.New().Positive("projectId", projectID).NotNil("milestone", m != nil).Err(); err != nil {
		return model.Milestone{}, err
	}
	return post[model.Milestone](ctx, s.c, pathf("add_milestone/%d", projectID), m, model.MilestoneAdd, nil)
}

// Update changes the set fields of m, which must carry its id.
func (s *MilestoneService) Update(ctx context.Context, m *model.Milestone) (model.Milestone, error) {
	if err := validation.New().NotNil("milestone", m != nil).Err(); err != nil {
		return model.Milestone{}, err
	}
	if err := validation.ID("milestoneId", m.ID); err != nil {
		return model.Milestone{}, err
	}
	return post[model.Milestone](ctx, s.c, pathf("update_milestone/%d", m.ID), m, model.MilestoneUpdate, nil)
}

// Delete deletes a milestone.
func (s *MilestoneService) Delete(ctx context.Context, milestoneID int) error {
	if err := validation.ID("milestoneId", milestoneID); err != nil {
		return err
	}
	return remove(ctx, s.c, pathf("delete_milestone/%d", milestoneID))
}
