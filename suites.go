package testrail

import (
	"context"

	"github.com/kbukum/testrail/httpclient"
	"github.com/kbukum/testrail/model"
	"github.com/kbukum/testrail/validation"
)

// SuiteService manages test suites.
type SuiteService struct {
	c *httpclient.Client
}

// Get returns an existing suite.
func (s *SuiteService) Get(ctx context.Context, suiteID int) (model.Suite, error) {
	if err := validation.ID("suiteId", suiteID); err != nil {
		return model.Suite{}, err
	}
	return get[model.Suite](ctx, s.c, pathf("get_suite/%d", suiteID), nil)
}

// List returns the suites of a project.
func (s *SuiteService) List(ctx context.Context, projectID int) ([]model.Suite, error) {
	if err := validation.ID("projectId", projectID); err != nil {
		return nil, err
	}
	return list[model.Suite](ctx, s.c, pathf("get_suites/%d", projectID), nil, nil)
}

// Add creates a suite in a project.
func (s *SuiteService) Add(ctx context.Context, projectID int, suite *model.Suite) (model.Suite, error) {
	if err := validation.New().Positive("projectId", projectID).NotNil("suite", suite != nil).Err(); err != nil {
		return model.Suite{}, err
	}
	return post[model.Suite](ctx, s.c, pathf("add_suite/%d", projectID), suite, model.SuiteAdd, nil)
}

// Update changes the set fields of suite, which must carry its id.
func (s *SuiteService) Update(ctx context.Context, suite *model.Suite) (model.Suite, error) {
	if err := validation.New().NotNil("suite", suite != nil).Err(); err != nil {
		return model.Suite{}, err
	}
	if err := validation.ID("suiteId", suite.ID); err != nil {
		return model.Suite{}, err
	}
	return post[model.Suite](ctx, s.c, pathf("update_suite/%d", suite.ID), suite, model.SuiteUpdate, nil)
}

// Delete deletes a suite with its sections and cases.
func (s *SuiteService) Delete(ctx context.Context, suiteID int) error {
	if err := validation.ID("suiteId", suiteID); err != nil {
		return err
	}
	return remove(ctx, s.c, pathf("delete_suite/%d", suiteID))
}

// SectionService manages the sections of a suite.
type SectionService struct {
	c *httpclient.Client
}

// Get returns an existing section.
func (s *SectionService) Get(ctx context.Context, sectionID int) (model.Section, error) {
	if err := validation.ID("sectionId", sectionID); err != nil {
		return model.Section{}, err
	}
	return get[model.Section](ctx, s.c, pathf("get_section/%d", sectionID), nil)
}

// List returns the sections of a project. A suiteID of zero leaves the
// suite out, which single suite projects allow.
func (s *SectionService) List(ctx context.Context, projectID, suiteID int) ([]model.Section, error) {
	if err := checkProjectSuite(projectID, suiteID); err != nil {
		return nil, err
	}
	return list[model.Section](ctx, s.c, pathf("get_sections/%d", projectID), pairs("suiteId", optionalID(suiteID)), nil)
}

// Add creates a section in a project. Set SuiteID and ParentID on section
// to place it.
func (s *SectionService) Add(ctx context.Context, projectID int, section *model.Section) (model.Section, error) {
	if err := validation.New().Positive("projectId", projectID).NotNil("section", section != nil).Err(); err != nil {
		return model.Section{}, err
	}
	return post[model.Section](ctx, s.c, pathf("add_section/%d", projectID), section, model.SectionAdd, nil)
}

// Update changes the name or description of a section.
func (s *SectionService) Update(ctx context.Context, section *model.Section) (model.Section, error) {
	if err := validation.New().NotNil("section", section != nil).Err(); err != nil {
		return model.Section{}, err
	}
	if err := validation.ID("sectionId", section.ID); err != nil {
		return model.Section{}, err
	}
	return post[model.Section](ctx, s.c, pathf("update_section/%d", section.ID), section, model.SectionUpdate, nil)
}

// Delete deletes a section with its cases and subsections.
func (s *SectionService) Delete(ctx context.Context, sectionID int) error {
	if err := validation.ID("sectionId", sectionID); err != nil {
		return err
	}
	return remove(ctx, s.c, pathf("delete_section/%d", sectionID))
}

func checkProjectSuite(projectID, suiteID int) error {
	v := validation.New().Positive("projectId", projectID)
	if suiteID != 0 {
		v.Positive("suiteId", suiteID)
	}
	return v.Err()
}

// optionalID maps an absent id to nil so that it is left out of the query.
func optionalID(id int) *int {
	if id == 0 {
		return nil
	}
	return &id
}
