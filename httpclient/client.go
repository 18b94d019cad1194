package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/kbukum/testrail/config"
	"github.com/kbukum/testrail/errors"
	"github.com/kbukum/testrail/logger"
	"github.com/kbukum/testrail/observability"
	"github.com/kbukum/testrail/query"
	"github.com/kbukum/testrail/resilience"
	"github.com/kbukum/testrail/util"
)

// Client executes request descriptions against one TestRail instance. It
// holds no mutable state and is safe for concurrent use.
type Client struct {
	config    config.ClientConfig
	auth      *AuthConfig
	transport Transport
	log       *logger.Logger
	inst      *observability.Instrumentation
}

// Option configures a Client.
type Option func(*Client)

// WithTransport replaces the HTTP transport.
func WithTransport(t Transport) Option {
	return func(c *Client) { c.transport = t }
}

// WithLogger replaces the logger built from the config.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithInstrumentation replaces the global-provider instrumentation.
func WithInstrumentation(i *observability.Instrumentation) Option {
	return func(c *Client) { c.inst = i }
}

// New creates a client. The config is defaulted and validated.
func New(cfg config.ClientConfig, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		config: cfg,
		auth:   BasicAuth(cfg.Username, cfg.Password),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		hc, err := newHTTPClient(cfg)
		if err != nil {
			return nil, err
		}
		c.transport = NewHTTPTransport(hc)
	}
	if c.log == nil {
		c.log = logger.New(&cfg.Logging, "testrail")
	}
	c.log = c.log.WithComponent("httpclient")
	if c.inst == nil {
		c.inst = observability.Default()
	}
	return c, nil
}

// newHTTPClient applies the timeout and TLS settings to a copy of the
// default transport.
func newHTTPClient(cfg config.ClientConfig) (*http.Client, error) {
	tlsCfg, err := cfg.TLS.Build()
	if err != nil {
		return nil, err
	}
	hc := &http.Client{Timeout: cfg.Timeout}
	if tlsCfg != nil {
		rt := http.DefaultTransport.(*http.Transport).Clone()
		rt.TLSClientConfig = tlsCfg
		hc.Transport = rt
	}
	return hc, nil
}

// Config returns the effective configuration.
func (c *Client) Config() config.ClientConfig {
	return c.config
}

// do performs one round-trip and returns the body of a 200 response.
func (c *Client) do(ctx context.Context, d Description) ([]byte, error) {
	requestID := uuid.NewString()
	log := c.log.WithFields(logger.Fields(logger.FieldRequestID, requestID))

	ctx, rt := c.inst.Start(ctx, d.Method, d.Path, requestID)
	status, body, err := c.exchange(ctx, d, log)
	rt.End(ctx, status, err)
	return body, err
}

func (c *Client) exchange(ctx context.Context, d Description, log *logger.Logger) (int, []byte, error) {
	req, err := c.buildRequest(ctx, d)
	if err != nil {
		return 0, nil, err
	}

	log.Debug(fmt.Sprintf("Sending %s request to URL : %s", req.Method, req.URL.String()))
	started := time.Now()

	ex, err := c.transport.Send(req)
	if err != nil {
		return 0, nil, errors.Transport("send request", err)
	}
	defer func() { _ = ex.Close() }()

	status, err := resilience.Retry(ctx, resilience.Once(func(error) bool { return ctx.Err() == nil }), ex.StatusCode)
	if err != nil {
		return 0, nil, errors.Transport("read response status", err)
	}
	log.Debug(fmt.Sprintf("Response Code : %d", status), logger.DurationFields("round_trip", time.Since(started)))

	body, err := ex.Body()
	if status != http.StatusOK {
		if err != nil {
			body = nil
		}
		return status, nil, classifyStatus(status, body)
	}
	if err != nil {
		return status, nil, errors.Transport("read response body", err)
	}
	return status, body, nil
}

// buildRequest assembles URL, body and headers for d.
func (c *Client) buildRequest(ctx context.Context, d Description) (*http.Request, error) {
	url := query.Append(c.config.BaseURL()+d.Path, query.Encode(d.Query))

	body, err := encodeBody(d.Body)
	if err != nil {
		return nil, errors.Decode("request body", err)
	}
	if body == nil && d.Method == http.MethodPost {
		body = http.NoBody
	}

	req, err := http.NewRequestWithContext(ctx, d.Method, url, body)
	if err != nil {
		return nil, errors.Transport("build request", err)
	}
	if body == http.NoBody {
		req.ContentLength = 0
	}

	req.Header.Set("Content-Type", "application/json")
	if name := strings.TrimSpace(c.config.ApplicationName); name != "" {
		req.Header.Set("User-Agent", name)
	}
	c.auth.apply(req)
	return req, nil
}

// encodeBody returns nil for an absent or empty body.
func encodeBody(body any) (io.Reader, error) {
	switch v := body.(type) {
	case nil:
		return nil, nil
	case *util.OrderedMap:
		if v.Len() == 0 {
			return nil, nil
		}
		data, err := v.MarshalJSON()
		if err != nil {
			return nil, err
		}
		return bytes.NewReader(data), nil
	case []byte:
		if len(v) == 0 {
			return nil, nil
		}
		return bytes.NewReader(v), nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		return bytes.NewReader(data), nil
	}
}

// continuation turns a next link such as "/api/v2/get_cases/1&offset=250"
// into a path relative to the API root.
func (c *Client) continuation(next string) string {
	segment := c.config.APISegment()
	if p, ok := strings.CutPrefix(next, segment); ok {
		return p
	}
	trimmed := strings.TrimLeft(next, "/")
	if p, ok := strings.CutPrefix(trimmed, strings.TrimLeft(segment, "/")); ok {
		return p
	}
	return trimmed
}
