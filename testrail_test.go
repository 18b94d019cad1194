package testrail

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/kbukum/testrail/config"
	"github.com/kbukum/testrail/errors"
	"github.com/kbukum/testrail/httpclient"
	"github.com/kbukum/testrail/logger"
	"github.com/kbukum/testrail/model"
	"github.com/kbukum/testrail/observability"
	"github.com/kbukum/testrail/schema"
	"github.com/kbukum/testrail/testrailtest"
	"github.com/kbukum/testrail/util"
)

func newTestClient(t *testing.T) (*Client, *testrailtest.Server) {
	t.Helper()
	srv := testrailtest.New()
	t.Cleanup(srv.Close)
	c, err := New(srv.Config(), httpclient.WithLogger(logger.Nop()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c, srv
}

func lastRequest(t *testing.T, srv *testrailtest.Server) testrailtest.Request {
	t.Helper()
	r, ok := srv.LastRequest()
	if !ok {
		t.Fatal("expected a request")
	}
	return r
}

func TestProjects_Get(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Respond(http.MethodGet, "get_project/1", testrailtest.JSON(map[string]any{
		"id": 1, "name": "Web", "is_completed": false, "completed_on": nil, "suite_mode": 3,
	}))

	p, err := c.Projects.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != 1 || *p.Name != "Web" || p.SuiteMode != 3 {
		t.Errorf("unexpected project %+v", p)
	}
	r := lastRequest(t, srv)
	if r.Header.Get("User-Agent") != "testrailtest" {
		t.Errorf("expected User-Agent from the application name, got %q", r.Header.Get("User-Agent"))
	}
}

func TestProjects_AddSendsOnlyAddFields(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Respond(http.MethodPost, "add_project", testrailtest.JSON(map[string]any{"id": 7, "name": "x"}))

	p, err := c.Projects.Add(context.Background(), &model.Project{ID: 99, Name: util.Ptr("x"), IsCompleted: util.Ptr(true)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != 7 {
		t.Errorf("expected id 7, got %d", p.ID)
	}
	if got := string(lastRequest(t, srv).Body); got != `{"name":"x"}` {
		t.Errorf(`expected {"name":"x"}, got %s`, got)
	}
}

func TestProjects_ListFollowsPages(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Paginate("get_projects", "projects",
		[]any{map[string]any{"id": 1}, map[string]any{"id": 2}},
		[]any{map[string]any{"id": 3}},
	)

	projects, err := c.Projects.List(context.Background(), ProjectFilter{IsCompleted: util.Ptr(false)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(projects) != 3 || projects[2].ID != 3 {
		t.Errorf("expected 3 projects across pages, got %+v", projects)
	}
	reqs := srv.Requests()
	if len(reqs) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(reqs))
	}
	if reqs[0].RawQuery != "is_completed=0" {
		t.Errorf("expected is_completed=0, got %q", reqs[0].RawQuery)
	}
	if reqs[1].Query.Get("offset") != "250" {
		t.Errorf("expected the next link to be followed, got %q", reqs[1].RawQuery)
	}
}

func TestServices_RejectInvalidIDsBeforeSending(t *testing.T) {
	c, srv := newTestClient(t)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{"project get", func() error { _, err := c.Projects.Get(ctx, 0); return err }},
		{"project update without id", func() error { _, err := c.Projects.Update(ctx, &model.Project{}); return err }},
		{"nil project", func() error { _, err := c.Projects.Add(ctx, nil); return err }},
		{"suite list", func() error { _, err := c.Suites.List(ctx, -1); return err }},
		{"sections negative suite", func() error { _, err := c.Sections.List(ctx, 1, -2); return err }},
		{"case add", func() error { _, err := c.Cases.Add(ctx, 0, &model.Case{}, nil); return err }},
		{"case filter", func() error {
			_, err := c.Cases.List(ctx, 1, 0, CaseFilter{CreatedBy: []int{1, 0}}, nil)
			return err
		}},
		{"milestone delete", func() error { return c.Milestones.Delete(ctx, 0) }},
		{"plan entry id", func() error { return c.Plans.DeleteEntry(ctx, 1, "not-a-uuid") }},
		{"plan list offset", func() error { _, err := c.Plans.List(ctx, 1, PlanFilter{Offset: util.Ptr(-1)}); return err }},
		{"run close", func() error { _, err := c.Runs.Close(ctx, 0); return err }},
		{"test get", func() error { _, err := c.Tests.Get(ctx, 0, nil); return err }},
		{"results for case", func() error { _, err := c.Results.ListForCase(ctx, 1, 0, ResultFilter{}, nil); return err }},
		{"results without case ids", func() error {
			_, err := c.Results.AddListForCases(ctx, 1, []model.Result{{StatusID: util.Ptr(1)}}, nil)
			return err
		}},
		{"empty result list", func() error { _, err := c.Results.AddList(ctx, 1, nil, nil); return err }},
		{"user email", func() error { _, err := c.Users.GetByEmail(ctx, "  "); return err }},
		{"configs", func() error { _, err := c.Configurations.List(ctx, 0); return err }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			if !errors.IsValidation(err) {
				t.Errorf("expected a validation error, got %v", err)
			}
		})
	}
	if n := len(srv.Requests()); n != 0 {
		t.Errorf("expected no request to be sent, got %d", n)
	}
}

var caseFieldsJSON = []any{
	map[string]any{
		"id":          1,
		"name":        "preconds",
		"system_name": "custom_preconds",
		"label":       "Preconditions",
		"type_id":     3,
		"configs":     []any{},
	},
	map[string]any{
		"id":          2,
		"name":        "automated",
		"system_name": "custom_automated",
		"label":       "Automated",
		"type_id":     5,
		"configs": []any{map[string]any{
			"id":      "9c5a7a46-1f38-4c5e-8a8e-7cbc0b4a9d11",
			"context": map[string]any{"is_global": true, "project_ids": nil},
			"options": map[string]any{"is_required": false, "default_value": "1"},
		}},
	},
}

func TestCases_ListWithFiltersAndCustomFields(t *testing.T) {
	c, srv := newTestClient(t)
	ctx := context.Background()
	srv.Respond(http.MethodGet, "get_case_fields", testrailtest.JSON(caseFieldsJSON))
	srv.Paginate("get_cases/1", "cases", []any{
		map[string]any{"id": 10, "title": "Login", "section_id": 3, "custom_preconds": "none", "custom_automated": 1},
	})

	fields, err := c.CaseFields.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts, ok := fields[1].Configs[0].Options.(*model.CheckboxOptions); !ok || !opts.DefaultValue {
		t.Errorf("expected typed checkbox options, got %#v", fields[1].Configs[0].Options)
	}

	after := time.Unix(1424649600, 0)
	cases, err := c.Cases.List(ctx, 1, 2, CaseFilter{
		SectionID:    util.Ptr(3),
		CreatedAfter: &after,
		CreatedBy:    []int{1, 2},
	}, fields.Definitions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cases) != 1 || cases[0].CustomFields["preconds"] != "none" || cases[0].CustomFields["automated"] != true {
		t.Errorf("unexpected cases %+v", cases)
	}
	want := "suite_id=2&section_id=3&created_after=1424649600&created_by=1,2"
	if got := lastRequest(t, srv).RawQuery; got != want {
		t.Errorf("expected query %q, got %q", want, got)
	}
}

func TestCases_ListWithoutSuite(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Paginate("get_cases/1", "cases", []any{})

	if _, err := c.Cases.List(context.Background(), 1, 0, CaseFilter{}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := lastRequest(t, srv).RawQuery; got != "" {
		t.Errorf("expected no parameters, got %q", got)
	}
}

func TestCases_StaleSchema(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Respond(http.MethodGet, "get_case/5", testrailtest.JSON(map[string]any{"id": 5, "custom_bar": "x"}))

	_, err := c.Cases.Get(context.Background(), 5, schema.Schema{{Name: "foo", DeclaredTypeID: 1}})
	if key, ok := errors.SchemaMismatchKey(err); !ok || key != "bar" {
		t.Errorf("expected SCHEMA_MISMATCH for bar, got %v", err)
	}
}

func TestCases_DeleteSendsEmptyPost(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Respond(http.MethodPost, "delete_case/5", testrailtest.Raw(http.StatusOK, ""))

	if err := c.Cases.Delete(context.Background(), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := lastRequest(t, srv)
	if r.Method != http.MethodPost || len(r.Body) != 0 {
		t.Errorf("expected an empty POST, got %s with %q", r.Method, r.Body)
	}
}

func TestPlans_UpdateEntry(t *testing.T) {
	c, srv := newTestClient(t)
	entryID := "3933d74b-4282-4c1f-be62-a641ab427063"
	srv.Respond(http.MethodPost, "update_plan_entry/4/"+entryID, testrailtest.JSON(map[string]any{
		"id": entryID, "name": "Browsers", "runs": []any{},
	}))

	e, err := c.Plans.UpdateEntry(context.Background(), 4, &model.PlanEntry{ID: entryID, Name: util.Ptr("Browsers"), SuiteID: util.Ptr(2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.ID != entryID {
		t.Errorf("expected entry %s, got %s", entryID, e.ID)
	}
	if got := string(lastRequest(t, srv).Body); got != `{"name":"Browsers"}` {
		t.Errorf(`expected {"name":"Browsers"}, got %s`, got)
	}
}

func TestRuns_Close(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Respond(http.MethodPost, "close_run/8", testrailtest.JSON(map[string]any{
		"id": 8, "is_completed": true, "completed_on": 1424649600, "config": "Chrome, Linux",
	}))

	r, err := c.Runs.Close(context.Background(), 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.IsCompleted || r.CompletedOn == nil || len(r.Config) != 2 {
		t.Errorf("unexpected run %+v", r)
	}
	if req := lastRequest(t, srv); req.Header.Get("Content-Type") != "application/json" {
		t.Errorf("expected JSON content type, got %q", req.Header.Get("Content-Type"))
	}
}

func TestResults_AddListForCases(t *testing.T) {
	c, srv := newTestClient(t)
	resultFields := schema.Schema{{Name: "step_results", DeclaredTypeID: int(schema.StepResults)}}
	srv.Respond(http.MethodPost, "add_results_for_cases/3", testrailtest.JSON([]any{
		map[string]any{"id": 100, "test_id": 7, "status_id": 1, "defects": "BUG-1",
			"custom_step_results": []any{map[string]any{"content": "open", "status_id": 1}}},
	}))

	r := model.Result{CaseID: util.Ptr(10), StatusID: util.Ptr(1), Defects: []string{"BUG-1"}}
	out, err := c.Results.AddListForCases(context.Background(), 3, []model.Result{r}, resultFields)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || *out[0].TestID != 7 {
		t.Fatalf("unexpected results %+v", out)
	}
	if steps, ok := out[0].CustomFields["step_results"].([]schema.StepResult); !ok || steps[0].Content != "open" {
		t.Errorf("expected typed step results, got %#v", out[0].CustomFields["step_results"])
	}
	want := `{"results":[{"case_id":10,"status_id":1,"defects":"BUG-1"}]}`
	if got := string(lastRequest(t, srv).Body); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestResults_ListForRunFilters(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Paginate("get_results_for_run/3", "results", []any{map[string]any{"id": 1, "test_id": 2}})

	f := RunResultFilter{CreatedBy: []int{4}, ResultFilter: ResultFilter{Limit: util.Ptr(10), StatusID: []int{5, 1}}}
	results, err := c.Results.ListForRun(context.Background(), 3, f, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Errorf("expected 1 result, got %d", len(results))
	}
	if got := lastRequest(t, srv).RawQuery; got != "created_by=4&limit=10&status_id=5,1" {
		t.Errorf("unexpected query %q", got)
	}
}

func TestUsers_GetByEmail(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Respond(http.MethodGet, "get_user_by_email", testrailtest.JSON(map[string]any{
		"id": 3, "email": "jo@example.com", "name": "Jo", "is_active": true,
	}))

	u, err := c.Users.GetByEmail(context.Background(), " jo@example.com ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != 3 || !u.IsActive {
		t.Errorf("unexpected user %+v", u)
	}
	if got := lastRequest(t, srv).RawQuery; got != "email=jo%40example.com" {
		t.Errorf("unexpected query %q", got)
	}
}

func TestClient_RemoteError(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Respond(http.MethodGet, "get_run/1", testrailtest.Error(http.StatusBadRequest, "Field :run_id is not a valid test run."))

	_, err := c.Runs.Get(context.Background(), 1)
	status, msg, ok := errors.AsRemote(err)
	if !ok || status != http.StatusBadRequest || msg != "Field :run_id is not a valid test run." {
		t.Errorf("unexpected error %v", err)
	}
}

func TestClient_CheckHealth(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Respond(http.MethodGet, "get_statuses", testrailtest.JSON([]any{
		map[string]any{"id": 1, "name": "passed", "label": "Passed", "is_system": true, "is_final": true},
	}))

	h := c.CheckHealth(context.Background())
	if h.Status != observability.HealthStatusUp {
		t.Errorf("expected up, got %s (%s)", h.Status, h.Message)
	}
	if h.Details["endpoint"] != srv.URL() {
		t.Errorf("expected endpoint detail, got %v", h.Details)
	}
}

func TestClient_CheckHealthBadCredentials(t *testing.T) {
	srv := testrailtest.New()
	defer srv.Close()
	cfg := srv.Config()
	cfg.Password = "wrong"
	c, err := New(cfg, httpclient.WithLogger(logger.Nop()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	h := c.CheckHealth(context.Background())
	if h.Status != observability.HealthStatusDown || !strings.Contains(h.Message, "Authentication failed") {
		t.Errorf("expected down with auth message, got %+v", h)
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(config.ClientConfig{Endpoint: "https://example.testrail.io"})
	if !errors.IsValidation(err) {
		t.Errorf("expected a validation error for missing credentials, got %v", err)
	}
}
