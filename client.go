package testrail

import (
	"context"
	"fmt"

	"github.com/kbukum/testrail/binding"
	"github.com/kbukum/testrail/config"
	"github.com/kbukum/testrail/httpclient"
	"github.com/kbukum/testrail/observability"
	"github.com/kbukum/testrail/schema"
	"github.com/kbukum/testrail/util"
	"github.com/kbukum/testrail/view"
)

// Client is the entry point to the TestRail API. It is safe for concurrent
// use.
type Client struct {
	http *httpclient.Client

	Projects       *ProjectService
	Suites         *SuiteService
	Sections       *SectionService
	Cases          *CaseService
	CaseFields     *CaseFieldService
	CaseTypes      *CaseTypeService
	Priorities     *PriorityService
	Configurations *ConfigurationService
	Milestones     *MilestoneService
	Plans          *PlanService
	Runs           *RunService
	Tests          *TestService
	Results        *ResultService
	ResultFields   *ResultFieldService
	Statuses       *StatusService
	Users          *UserService
}

// New creates a client from cfg. The config is defaulted and validated.
func New(cfg config.ClientConfig, opts ...httpclient.Option) (*Client, error) {
	hc, err := httpclient.New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return NewFromClient(hc), nil
}

// NewFromClient creates a client on top of an existing executor.
func NewFromClient(hc *httpclient.Client) *Client {
	c := &Client{http: hc}
	c.Projects = &ProjectService{c: hc}
	c.Suites = &SuiteService{c: hc}
	c.Sections = &SectionService{c: hc}
	c.Cases = &CaseService{c: hc}
	c.CaseFields = &CaseFieldService{c: hc}
	c.CaseTypes = &CaseTypeService{c: hc}
	c.Priorities = &PriorityService{c: hc}
	c.Configurations = &ConfigurationService{c: hc}
	c.Milestones = &MilestoneService{c: hc}
	c.Plans = &PlanService{c: hc}
	c.Runs = &RunService{c: hc}
	c.Tests = &TestService{c: hc}
	c.Results = &ResultService{c: hc}
	c.ResultFields = &ResultFieldService{c: hc}
	c.Statuses = &StatusService{c: hc}
	c.Users = &UserService{c: hc}
	return c
}

// HTTP returns the underlying executor.
func (c *Client) HTTP() *httpclient.Client {
	return c.http
}

// CheckHealth probes the instance by listing the test statuses, which every
// user may read.
func (c *Client) CheckHealth(ctx context.Context) observability.Health {
	h := observability.Health{
		Name:    "testrail",
		Status:  observability.HealthStatusUp,
		Details: map[string]string{"endpoint": c.http.Config().Endpoint},
	}
	if _, err := c.Statuses.List(ctx); err != nil {
		h.Status = observability.HealthStatusDown
		h.Message = err.Error()
	}
	return h
}

var _ observability.HealthChecker = (*Client)(nil)

// --- request helpers shared by the services ---

func get[T any](ctx context.Context, c *httpclient.Client, path string, s schema.Schema) (T, error) {
	d := httpclient.Get(path, nil, httpclient.KindScalar).WithSchema(s)
	return httpclient.One(ctx, c, d, binding.For[T]())
}

func list[T any](ctx context.Context, c *httpclient.Client, path string, q *util.OrderedMap, s schema.Schema) ([]T, error) {
	d := httpclient.Get(path, q, httpclient.KindPaginated).WithSchema(s)
	return httpclient.All(ctx, c, d, binding.For[T]())
}

// listBare lists endpoints that always answer with a plain array.
func listBare[T any](ctx context.Context, c *httpclient.Client, path string, dec binding.Decoder[T]) ([]T, error) {
	return httpclient.All(ctx, c, httpclient.Get(path, nil, httpclient.KindList), dec)
}

func post[T any](ctx context.Context, c *httpclient.Client, path string, e view.Entity, v view.View, s schema.Schema) (T, error) {
	d := httpclient.Post(path, view.Serialize(e, v), httpclient.KindScalar).WithSchema(s)
	return httpclient.One(ctx, c, d, binding.For[T]())
}

func postList[T any](ctx context.Context, c *httpclient.Client, path string, e view.Entity, v view.View, s schema.Schema) ([]T, error) {
	d := httpclient.Post(path, view.Serialize(e, v), httpclient.KindList).WithSchema(s)
	return httpclient.All(ctx, c, d, binding.For[T]())
}

// action sends a POST without content, e.g. close_run or delete_case.
func action[T any](ctx context.Context, c *httpclient.Client, path string) (T, error) {
	return httpclient.One(ctx, c, httpclient.Post(path, nil, httpclient.KindScalar), binding.For[T]())
}

func remove(ctx context.Context, c *httpclient.Client, path string) error {
	return httpclient.None(ctx, c, httpclient.Post(path, nil, httpclient.KindNone))
}

func pathf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
