package testrail

import (
	"context"

	"github.com/kbukum/testrail/binding"
	"github.com/kbukum/testrail/httpclient"
	"github.com/kbukum/testrail/model"
	"github.com/kbukum/testrail/schema"
	"github.com/kbukum/testrail/validation"
)

// ResultService reads and records test results. Every call takes the result
// field definitions, see ResultFieldService.
type ResultService struct {
	c *httpclient.Client
}

// List returns the results of a test, newest first.
func (s *ResultService) List(ctx context.Context, testID int, f ResultFilter, fields schema.Schema) ([]model.Result, error) {
	if err := validation.ID("testId", testID); err != nil {
		return nil, err
	}
	if err := checkFilter(f); err != nil {
		return nil, err
	}
	return list[model.Result](ctx, s.c, pathf("get_results/%d", testID), f.values(), fields)
}

// ListForRun returns the results of every test in a run.
func (s *ResultService) ListForRun(ctx context.Context, runID int, f RunResultFilter, fields schema.Schema) ([]model.Result, error) {
	if err := validation.ID("runId", runID); err != nil {
		return nil, err
	}
	if err := checkFilter(f); err != nil {
		return nil, err
	}
	return list[model.Result](ctx, s.c, pathf("get_results_for_run/%d", runID), f.values(), fields)
}

// ListForCase returns the results of a case in a run.
func (s *ResultService) ListForCase(ctx context.Context, runID, caseID int, f ResultFilter, fields schema.Schema) ([]model.Result, error) {
	if err := validation.New().Positive("runId", runID).Positive("caseId", caseID).Err(); err != nil {
		return nil, err
	}
	if err := checkFilter(f); err != nil {
		return nil, err
	}
	return list[model.Result](ctx, s.c, pathf("get_results_for_case/%d/%d", runID, caseID), f.values(), fields)
}

// Add records a result for a test.
func (s *ResultService) Add(ctx context.Context, testID int, r *model.Result, fields schema.Schema) (model.Result, error) {
	if err := validation.New().Positive("testId", testID).NotNil("result", r != nil).Err(); err != nil {
		return model.Result{}, err
	}
	return post[model.Result](ctx, s.c, pathf("add_result/%d", testID), r, model.ResultAdd, fields)
}

// AddForCase records a result for a case in a run.
func (s *ResultService) AddForCase(ctx context.Context, runID, caseID int, r *model.Result, fields schema.Schema) (model.Result, error) {
	if err := validation.New().Positive("runId", runID).Positive("caseId", caseID).NotNil("result", r != nil).Err(); err != nil {
		return model.Result{}, err
	}
	return post[model.Result](ctx, s.c, pathf("add_result_for_case/%d/%d", runID, caseID), r, model.ResultAddForCase, fields)
}

// AddList records several results in a run. Each result names its test
// with TestID.
func (s *ResultService) AddList(ctx context.Context, runID int, results []model.Result, fields schema.Schema) ([]model.Result, error) {
	if err := checkResults(runID, results, func(r model.Result) *int { return r.TestID }, "testId"); err != nil {
		return nil, err
	}
	return postList[model.Result](ctx, s.c, pathf("add_results/%d", runID), model.ResultList{Results: results}, model.ResultAddList, fields)
}

// AddListForCases records several results in a run. Each result names its
// case with CaseID.
func (s *ResultService) AddListForCases(ctx context.Context, runID int, results []model.Result, fields schema.Schema) ([]model.Result, error) {
	if err := checkResults(runID, results, func(r model.Result) *int { return r.CaseID }, "caseId"); err != nil {
		return nil, err
	}
	return postList[model.Result](ctx, s.c, pathf("add_results_for_cases/%d", runID), model.ResultList{Results: results}, model.ResultAddListForCases, fields)
}

func checkResults(runID int, results []model.Result, id func(model.Result) *int, field string) error {
	v := validation.New().Positive("runId", runID).NotNil("results", len(results) > 0)
	for i, r := range results {
		n := id(r)
		if n == nil {
			v.AddError(pathf("results[%d].%s", i, field), "is required")
			continue
		}
		v.Positive(pathf("results[%d].%s", i, field), *n)
	}
	return v.Err()
}

// ResultFieldService lists the custom fields configured for results.
type ResultFieldService struct {
	c *httpclient.Client
}

// List returns the result fields with their options typed by field type.
func (s *ResultFieldService) List(ctx context.Context) (model.Fields, error) {
	return listBare(ctx, s.c, "get_result_fields", model.DecodeField)
}

// StatusService lists the test statuses, including custom ones.
type StatusService struct {
	c *httpclient.Client
}

func (s *StatusService) List(ctx context.Context) ([]model.Status, error) {
	return listBare(ctx, s.c, "get_statuses", binding.For[model.Status]())
}
