package testrail

import (
	"context"

	"github.com/kbukum/testrail/httpclient"
	"github.com/kbukum/testrail/model"
	"github.com/kbukum/testrail/schema"
	"github.com/kbukum/testrail/validation"
)

// RunService manages test runs.
type RunService struct {
	c *httpclient.Client
}

// Get returns an existing run.
func (s *RunService) Get(ctx context.Context, runID int) (model.Run, error) {
	if err := validation.ID("runId", runID); err != nil {
		return model.Run{}, err
	}
	return get[model.Run](ctx, s.c, pathf("get_run/%d", runID), nil)
}

// List returns the runs of a project. Runs that belong to plans are not
// listed.
func (s *RunService) List(ctx context.Context, projectID int, f RunFilter) ([]model.Run, error) {
	if err := validation.ID("projectId", projectID); err != nil {
		return nil, err
	}
	if err := checkFilter(f); err != nil {
		return nil, err
	}
	return list[model.Run](ctx, s.c, pathf("get_runs/%d", projectID), f.values(), nil)
}

// Add creates a run in a project.
func (s *RunService) Add(ctx context.Context, projectID int, r *model.Run) (model.Run, error) {
	if err := validation.New().Positive("projectId", projectID).NotNil("run", r != nil).Err(); err != nil {
		return model.Run{}, err
	}
	return post[model.Run](ctx, s.c, pathf("add_run/%d", projectID), r, model.RunAdd, nil)
}

// Update changes the set fields of r, which must carry its id.
func (s *RunService) Update(ctx context.Context, r *model.Run) (model.Run, error) {
	if err := validation.New().NotNil("run", r != nil).Err(); err != nil {
		return model.Run{}, err
	}
	if err := validation.ID("runId", r.ID); err != nil {
		return model.Run{}, err
	}
	return post[model.Run](ctx, s.c, pathf("update_run/%d", r.ID), r, model.RunUpdate, nil)
}

// Close closes a run. Closed runs cannot be changed.
func (s *RunService) Close(ctx context.Context, runID int) (model.Run, error) {
	if err := validation.ID("runId", runID); err != nil {
		return model.Run{}, err
	}
	return action[model.Run](ctx, s.c, pathf("close_run/%d", runID))
}

// Delete deletes a run with its tests and results.
func (s *RunService) Delete(ctx context.Context, runID int) error {
	if err := validation.ID("runId", runID); err != nil {
		return err
	}
	return remove(ctx, s.c, pathf("delete_run/%d", runID))
}

// TestService reads the tests of a run.
type TestService struct {
	c *httpclient.Client
}

// Get returns an existing test. Tests carry the custom fields of their case.
func (s *TestService) Get(ctx context.Context, testID int, fields schema.Schema) (model.Test, error) {
	if err := validation.ID("testId", testID); err != nil {
		return model.Test{}, err
	}
	return get[model.Test](ctx, s.c, pathf("get_test/%d", testID), fields)
}

// List returns the tests of a run.
func (s *TestService) List(ctx context.Context, runID int, f TestFilter, fields schema.Schema) ([]model.Test, error) {
	if err := validation.ID("runId", runID); err != nil {
		return nil, err
	}
	if err := checkFilter(f); err != nil {
		return nil, err
	}
	return list[model.Test](ctx, s.c, pathf("get_tests/%d", runID), f.values(), fields)
}
