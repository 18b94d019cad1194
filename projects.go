package testrail

import (
	"context"

	"github.com/kbukum/testrail/httpclient"
	"github.com/kbukum/testrail/model"
	"github.com/kbukum/testrail/validation"
)

// ProjectService manages projects.
type ProjectService struct {
	c *httpclient.Client
}

// Get returns an existing project.
func (s *ProjectService) Get(ctx context.Context, projectID int) (model.Project, error) {
	if err := validation.ID("projectId", projectID); err != nil {
		return model.Project{}, err
	}
	return get[model.Project](ctx, s.c, pathf("get_project/%d", projectID), nil)
}

// List returns the projects visible to the user.
func (s *ProjectService) List(ctx context.Context, f ProjectFilter) ([]model.Project, error) {
	return list[model.Project](ctx, s.c, "get_projects", f.values(), nil)
}

// Add creates a project.
func (s *ProjectService) Add(ctx context.Context, p *model.Project) (model.Project, error) {
	if err := validation.New().NotNil("project", p != nil).Err(); err != nil {
		return model.Project{}, err
	}
	return post[model.Project](ctx, s.c, "add_project", p, model.ProjectAdd, nil)
}

// Update changes the set fields of p, which must carry its id.
func (s *ProjectService) Update(ctx context.Context, p *model.Project) (model.Project, error) {
	if err := validation.New().NotNil("project", p != nil).Err(); err != nil {
		return model.Project{}, err
	}
	if err := validation.ID("projectId", p.ID); err != nil {
		return model.Project{}, err
	}
	return post[model.Project](ctx, s.c, pathf("update_project/%d", p.ID), p, model.ProjectUpdate, nil)
}

// Delete deletes a project and everything it contains.
func (s *ProjectService) Delete(ctx context.Context, projectID int) error {
	if err := validation.ID("projectId", projectID); err != nil {
		return err
	}
	return remove(ctx, s.c, pathf("delete_project/%d", projectID))
}
