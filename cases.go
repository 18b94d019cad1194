package testrail

import (
	"context"

	"github.com/kbukum/testrail/binding"
	"github.com/kbukum/testrail/httpclient"
	"github.com/kbukum/testrail/model"
	"github.com/kbukum/testrail/schema"
	"github.com/kbukum/testrail/validation"
)

// CaseService manages test cases. Every call that decodes cases takes the
// case field definitions, see CaseFieldService.
type CaseService struct {
	c *httpclient.Client
}

// Get returns an existing case.
func (s *CaseService) Get(ctx context.Context, caseID int, fields schema.Schema) (model.Case, error) {
	if err := validation.ID("caseId", caseID); err != nil {
		return model.Case{}, err
	}
	return get[model.Case](ctx, s.c, pathf("get_case/%d", caseID), fields)
}

// List returns the cases of a project matching f. A suiteID of zero leaves
// the suite out, which single suite projects allow.
func (s *CaseService) List(ctx context.Context, projectID, suiteID int, f CaseFilter, fields schema.Schema) ([]model.Case, error) {
	if err := checkProjectSuite(projectID, suiteID); err != nil {
		return nil, err
	}
	if err := checkFilter(f); err != nil {
		return nil, err
	}
	q := pairs("suiteId", optionalID(suiteID))
	filters := f.values()
	for _, k := range filters.Keys() {
		v, _ := filters.Get(k)
		q.Set(k, v)
	}
	return list[model.Case](ctx, s.c, pathf("get_cases/%d", projectID), q, fields)
}

// Add creates a case in a section.
func (s *CaseService) Add(ctx context.Context, sectionID int, tc *model.Case, fields schema.Schema) (model.Case, error) {
	if err := validation.New().Positive("sectionId", sectionID).NotNil("case", tc != nil).Err(); err != nil {
		return model.Case{}, err
	}
	return post[model.Case](ctx, s.c, pathf("add_case/%d", sectionID), tc, model.CaseAdd, fields)
}

// Update changes the set fields of tc, which must carry its id.
func (s *CaseService) Update(ctx context.Context, tc *model.Case, fields schema.Schema) (model.Case, error) {
	if err := validation.New().NotNil("case", tc != nil).Err(); err != nil {
		return model.Case{}, err
	}
	if err := validation.ID("caseId", tc.ID); err != nil {
		return model.Case{}, err
	}
	return post[model.Case](ctx, s.c, pathf("update_case/%d", tc.ID), tc, model.CaseUpdate, fields)
}

// Delete deletes a case.
func (s *CaseService) Delete(ctx context.Context, caseID int) error {
	if err := validation.ID("caseId", caseID); err != nil {
		return err
	}
	return remove(ctx, s.c, pathf("delete_case/%d", caseID))
}

// CaseFieldService lists the custom fields configured for cases.
type CaseFieldService struct {
	c *httpclient.Client
}

// List returns the case fields with their options typed by field type.
func (s *CaseFieldService) List(ctx context.Context) (model.Fields, error) {
	return listBare(ctx, s.c, "get_case_fields", model.DecodeField)
}

// CaseTypeService lists case types.
type CaseTypeService struct {
	c *httpclient.Client
}

func (s *CaseTypeService) List(ctx context.Context) ([]model.CaseType, error) {
	return listBare(ctx, s.c, "get_case_types", binding.For[model.CaseType]())
}

// PriorityService lists case priorities.
type PriorityService struct {
	c *httpclient.Client
}

func (s *PriorityService) List(ctx context.Context) ([]model.Priority, error) {
	return listBare(ctx, s.c, "get_priorities", binding.For[model.Priority]())
}
