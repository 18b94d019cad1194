package testrailtest

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"

	"github.com/kbukum/testrail/config"
	"github.com/kbukum/testrail/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const (
	// Username and Password are the credentials the fake accepts.
	Username = "user@example.com"
	Password = "api-key"

	apiPrefix   = "/api/v2/"
	defaultPage = 250

	authFailed = "Authentication failed: invalid or missing user/password or session cookie."
)

// Request is a request received by the fake.
type Request struct {
	Method string
	// Path is the API method with its positional arguments, e.g. "get_cases/1".
	Path string
	// Query holds the `&` separated parameters that follow the path.
	Query url.Values
	// RawQuery is the parameter part exactly as sent.
	RawQuery string
	Header   http.Header
	Body     []byte
}

// Response is a scripted answer.
type Response struct {
	Status int
	Body   []byte
}

// JSON answers 200 with v encoded as JSON. `&` and `<` are written as is,
// like the real server does in pagination links.
func JSON(v any) Response {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		panic(fmt.Sprintf("testrailtest: encode response: %v", err))
	}
	return Response{Status: http.StatusOK, Body: bytes.TrimSuffix(buf.Bytes(), []byte("\n"))}
}

// Raw answers with a literal body.
func Raw(status int, body string) Response {
	return Response{Status: status, Body: []byte(body)}
}

// Error answers with the API error body {"error": message}.
func Error(status int, message string) Response {
	r := JSON(errors.Remote(status, message).ToResponse())
	r.Status = status
	return r
}

// HandlerFunc answers a request.
type HandlerFunc func(r Request) Response

// Server is a fake TestRail instance backed by httptest.Server.
type Server struct {
	ts *httptest.Server

	mu       sync.Mutex
	routes   map[string]HandlerFunc
	requests []Request
}

// New starts a fake server.
func New() *Server {
	s := newServer()
	s.ts.Start()
	return s
}

// NewTLS starts a fake server that serves HTTPS with cert. Clients must
// trust the issuer of cert.
func NewTLS(cert tls.Certificate) *Server {
	s := newServer()
	s.ts.TLS = &tls.Config{Certificates: []tls.Certificate{cert}, MinVersion: tls.VersionTLS12}
	s.ts.StartTLS()
	return s
}

func newServer() *Server {
	s := &Server{routes: make(map[string]HandlerFunc)}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Any("/index.php", s.serve)
	s.ts = httptest.NewUnstartedServer(engine)
	return s
}

// Close shuts the server down.
func (s *Server) Close() {
	s.ts.Close()
}

// URL returns the endpoint of the fake, with a trailing slash.
func (s *Server) URL() string {
	return s.ts.URL + "/"
}

// Config returns a client config pointing at the fake.
func (s *Server) Config() config.ClientConfig {
	return config.ClientConfig{
		Endpoint:        s.URL(),
		Username:        Username,
		Password:        Password,
		ApplicationName: "testrailtest",
	}
}

// Handle registers fn for method and path. Path is matched without its
// parameters.
func (s *Server) Handle(method, path string, fn HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[routeKey(method, path)] = fn
}

// Respond answers successive calls with responses in order. The last
// response repeats.
func (s *Server) Respond(method, path string, responses ...Response) {
	var mu sync.Mutex
	n := 0
	s.Handle(method, path, func(Request) Response {
		mu.Lock()
		defer mu.Unlock()
		if len(responses) == 0 {
			return Response{Status: http.StatusOK}
		}
		r := responses[min(n, len(responses)-1)]
		n++
		return r
	})
}

// Paginate serves pages as page envelopes under field, linking each page
// to the next one through _links.next.
func (s *Server) Paginate(path, field string, pages ...[]any) {
	s.Handle(http.MethodGet, path, func(r Request) Response {
		offset, _ := strconv.Atoi(r.Query.Get("offset"))
		index := offset / defaultPage
		if index >= len(pages) {
			return JSON(envelope(path, field, offset, nil, false))
		}
		return JSON(envelope(path, field, offset, pages[index], index+1 < len(pages)))
	})
}

func envelope(path, field string, offset int, items []any, more bool) map[string]any {
	if items == nil {
		items = []any{}
	}
	var next any
	if more {
		next = fmt.Sprintf("%s%s&limit=%d&offset=%d", apiPrefix, path, defaultPage, offset+defaultPage)
	}
	return map[string]any{
		"offset": offset,
		"limit":  defaultPage,
		"size":   len(items),
		"_links": map[string]any{"next": next, "prev": nil},
		field:    items,
	}
}

// Requests returns the requests received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// LastRequest returns the most recent request.
func (s *Server) LastRequest() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

// Reset drops every route and recorded request.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes = make(map[string]HandlerFunc)
	s.requests = nil
}

func (s *Server) serve(c *gin.Context) {
	body, _ := io.ReadAll(c.Request.Body)
	path, raw, _ := strings.Cut(strings.TrimPrefix(c.Request.URL.RawQuery, apiPrefix), "&")
	params, _ := url.ParseQuery(raw)
	req := Request{
		Method:   c.Request.Method,
		Path:     path,
		Query:    params,
		RawQuery: raw,
		Header:   c.Request.Header.Clone(),
		Body:     body,
	}

	s.mu.Lock()
	s.requests = append(s.requests, req)
	fn, ok := s.routes[routeKey(req.Method, path)]
	s.mu.Unlock()

	if user, pass, hasAuth := c.Request.BasicAuth(); !hasAuth || user != Username || pass != Password {
		c.JSON(http.StatusUnauthorized, gin.H{"error": authFailed})
		return
	}
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown method '%s'", resource(path))})
		return
	}

	resp := fn(req)
	if resp.Status == 0 {
		resp.Status = http.StatusOK
	}
	c.Data(resp.Status, "application/json; charset=utf-8", resp.Body)
}

func routeKey(method, path string) string {
	return method + " " + path
}

// resource returns the API method name of a path, e.g. get_cases.
func resource(path string) string {
	name, _, _ := strings.Cut(path, "/")
	return name
}
