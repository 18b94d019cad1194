package httpclient

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/kbukum/testrail/binding"
	"github.com/kbukum/testrail/config"
	"github.com/kbukum/testrail/errors"
	"github.com/kbukum/testrail/logger"
	"github.com/kbukum/testrail/schema"
	"github.com/kbukum/testrail/util"
)

type testCase struct {
	ID           int            `json:"id"`
	Title        string         `json:"title"`
	CustomFields map[string]any `json:"-"`
}

func (c *testCase) SetCustomFields(fields map[string]any) { c.CustomFields = fields }

var decodeCase = binding.For[testCase]()

func testConfig(endpoint string) config.ClientConfig {
	return config.ClientConfig{
		Endpoint:        endpoint,
		Username:        "qa@example.com",
		Password:        "secret",
		ApplicationName: "trctl-test",
	}
}

func newTestClient(t *testing.T, endpoint string, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithLogger(logger.Nop())}, opts...)
	c, err := New(testConfig(endpoint), opts...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

// pagedServer serves len(pages) envelopes for get_cases/1, each linking to
// the next through an offset parameter.
func pagedServer(t *testing.T, pages [][]string, linksKey string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/index.php" {
			t.Errorf("expected /index.php, got %s", r.URL.Path)
		}
		idx := 0
		if _, after, ok := strings.Cut(r.URL.RawQuery, "&offset="); ok {
			fmt.Sscanf(after, "%d", &idx)
		}
		var items []string
		for i, title := range pages[idx] {
			items = append(items, fmt.Sprintf(`{"id":%d,"title":%q}`, idx*10+i, title))
		}
		next := "null"
		if idx+1 < len(pages) {
			next = fmt.Sprintf(`"/api/v2/get_cases/1&suite_id=2&offset=%d"`, idx+1)
		}
		fmt.Fprintf(w, `{"offset":%d,"limit":250,"size":%d,%q:{"next":%s,"prev":null},"cases":[%s]}`,
			idx, len(items), linksKey, next, strings.Join(items, ","))
	}))
}

func TestAll_PaginationFlattening(t *testing.T) {
	tests := []struct {
		name     string
		pages    [][]string
		linksKey string
	}{
		{"one page", [][]string{{"a", "b"}}, "_links"},
		{"two pages", [][]string{{"a", "b"}, {"c"}}, "_links"},
		{"three pages with links key", [][]string{{"a"}, {"b", "c"}, {"d"}}, "links"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := pagedServer(t, tc.pages, tc.linksKey)
			defer srv.Close()
			c := newTestClient(t, srv.URL)

			q := util.NewOrderedMap()
			q.Set("suite_id", 2)
			got, err := All(context.Background(), c, Get("get_cases/1", q, KindPaginated), decodeCase)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var want []string
			for _, p := range tc.pages {
				want = append(want, p...)
			}
			if len(got) != len(want) {
				t.Fatalf("expected %d items, got %d", len(want), len(got))
			}
			for i := range want {
				if got[i].Title != want[i] {
					t.Errorf("item %d: expected %q, got %q", i, want[i], got[i].Title)
				}
			}
		})
	}
}

func TestAll_ContinuationDiscardsPartialResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.RawQuery, "offset=") {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"error":"page exploded"}`)
			return
		}
		fmt.Fprint(w, `{"offset":0,"limit":1,"size":1,"_links":{"next":"/api/v2/get_cases/1&offset=1","prev":null},"cases":[{"id":1,"title":"a"}]}`)
	}))
	defer srv.Close()
	c := newTestClient(t, srv.URL)

	got, err := All(context.Background(), c, Get("get_cases/1", nil, KindPaginated), decodeCase)
	if got != nil {
		t.Errorf("expected no items, got %v", got)
	}
	status, msg, ok := errors.AsRemote(err)
	if !ok || status != 500 || msg != "page exploded" {
		t.Errorf("expected REMOTE 500 'page exploded', got %v", err)
	}
}

func TestAll_SchemaReinjectedOnEveryPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.RawQuery, "offset=") {
			fmt.Fprint(w, `{"offset":1,"limit":1,"size":1,"_links":{"next":null},"cases":[{"id":2,"custom_points":"5"}]}`)
			return
		}
		fmt.Fprint(w, `{"offset":0,"limit":1,"size":1,"_links":{"next":"/api/v2/get_cases/1&offset=1"},"cases":[{"id":1,"custom_points":3}]}`)
	}))
	defer srv.Close()
	c := newTestClient(t, srv.URL)

	d := Get("get_cases/1", nil, KindPaginated).WithSchema(schema.Schema{{Name: "points", DeclaredTypeID: int(schema.Integer)}})
	got, err := All(context.Background(), c, d, decodeCase)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[0].CustomFields["points"] != 3 || got[1].CustomFields["points"] != 5 {
		t.Errorf("expected typed custom fields on both pages, got %v / %v", got[0].CustomFields, got[1].CustomFields)
	}
}

func TestAll_SchemaMismatchOnLaterPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.RawQuery, "offset=") {
			fmt.Fprint(w, `{"offset":1,"limit":1,"size":1,"_links":{"next":null},"cases":[{"id":2,"custom_bar":7}]}`)
			return
		}
		fmt.Fprint(w, `{"offset":0,"limit":1,"size":1,"_links":{"next":"/api/v2/get_cases/1&offset=1"},"cases":[{"id":1}]}`)
	}))
	defer srv.Close()
	c := newTestClient(t, srv.URL)

	got, err := All(context.Background(), c, Get("get_cases/1", nil, KindPaginated), decodeCase)
	if got != nil {
		t.Errorf("expected no items, got %v", got)
	}
	if key, ok := errors.SchemaMismatchKey(err); !ok || key != "bar" {
		t.Errorf("expected SCHEMA_MISMATCH for bar, got %v", err)
	}
}

func TestAll_BareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"id":1,"title":"a"},{"id":2,"title":"b"}]`)
	}))
	defer srv.Close()
	c := newTestClient(t, srv.URL)

	for _, kind := range []Kind{KindList, KindPaginated} {
		t.Run(kind.String(), func(t *testing.T) {
			got, err := All(context.Background(), c, Get("get_case_types", nil, kind), decodeCase)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != 2 || got[1].Title != "b" {
				t.Errorf("unexpected items %+v", got)
			}
		})
	}
}

func TestAll_ListRejectsObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"offset":0,"limit":1,"size":0,"cases":[]}`)
	}))
	defer srv.Close()
	c := newTestClient(t, srv.URL)

	_, err := All(context.Background(), c, Get("get_cases/1", nil, KindList), decodeCase)
	if !errors.IsDecode(err) {
		t.Errorf("expected DECODE, got %v", err)
	}
}

func TestAll_NilDecoder(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()
	c := newTestClient(t, srv.URL)

	_, err := All[testCase](context.Background(), c, Get("get_cases/1", nil, KindPaginated), nil)
	if !errors.IsDecode(err) {
		t.Errorf("expected DECODE, got %v", err)
	}
	if calls.Load() != 0 {
		t.Errorf("expected no request, got %d", calls.Load())
	}
}

func TestOne_RemoteAuthenticationFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":"Authentication failed"}`)
	}))
	defer srv.Close()
	c := newTestClient(t, srv.URL)

	_, err := One(context.Background(), c, Get("get_case/1", nil, KindScalar), decodeCase)
	status, msg, ok := errors.AsRemote(err)
	if !ok {
		t.Fatalf("expected REMOTE error, got %v", err)
	}
	if status != 401 || msg != "Authentication failed" {
		t.Errorf("expected 401 'Authentication failed', got %d %q", status, msg)
	}
}

func TestOne_RemoteErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"empty body", "", errors.NoErrorMessage},
		{"plain text", "Bad Gateway\n", "Bad Gateway"},
		{"json without error", `{"message":"x"}`, `{"message":"x"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				fmt.Fprint(w, tc.body)
			}))
			defer srv.Close()
			c := newTestClient(t, srv.URL)

			err := None(context.Background(), c, Post("delete_case/1", nil, KindNone))
			if _, msg, ok := errors.AsRemote(err); !ok || msg != tc.want {
				t.Errorf("expected message %q, got %v", tc.want, err)
			}
		})
	}
}

func TestOne_DecodesScalar(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "/api/v2/get_case/7" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		fmt.Fprint(w, `{"id":7,"title":"Login","custom_points":2}`)
	}))
	defer srv.Close()
	c := newTestClient(t, srv.URL)

	d := Get("get_case/7", nil, KindScalar).WithSchema(schema.Schema{{Name: "points", DeclaredTypeID: int(schema.Integer)}})
	got, err := One(context.Background(), c, d, decodeCase)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 7 || got.CustomFields["points"] != 2 {
		t.Errorf("unexpected case %+v", got)
	}
}

func TestRequest_ZeroLengthPost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.ContentLength != 0 {
			t.Errorf("expected content length 0, got %d", r.ContentLength)
		}
		if len(r.TransferEncoding) != 0 {
			t.Errorf("expected no chunked encoding, got %v", r.TransferEncoding)
		}
		if r.Header.Get("Content-Length") != "0" {
			t.Errorf("expected explicit Content-Length: 0, got %q", r.Header.Get("Content-Length"))
		}
	}))
	defer srv.Close()
	c := newTestClient(t, srv.URL)

	if err := None(context.Background(), c, Post("close_run/3", nil, KindNone)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := None(context.Background(), c, Post("close_run/3", util.NewOrderedMap(), KindNone)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRequest_HeadersAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected Content-Type application/json, got %s", ct)
		}
		if ua := r.Header.Get("User-Agent"); ua != "trctl-test" {
			t.Errorf("expected User-Agent trctl-test, got %s", ua)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "qa@example.com" || pass != "secret" {
			t.Errorf("expected basic auth, got %q %q %v", user, pass, ok)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"name":"x"}` {
			t.Errorf("unexpected body %s", body)
		}
		if r.URL.RawQuery != "/api/v2/add_project" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		fmt.Fprint(w, `{"id":1,"title":"x"}`)
	}))
	defer srv.Close()
	c := newTestClient(t, srv.URL)

	body := util.NewOrderedMap()
	body.Set("name", "x")
	if _, err := One(context.Background(), c, Post("add_project", body, KindScalar), decodeCase); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRequest_QueryAppended(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		want := "/api/v2/get_cases/1&section_id=1&created_by=1,2"
		if r.URL.RawQuery != want {
			t.Errorf("expected %q, got %q", want, r.URL.RawQuery)
		}
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()
	c := newTestClient(t, srv.URL)

	q := util.NewOrderedMap()
	q.Set("section_id", 1)
	q.Set("created_by", []int{1, 2})
	if _, err := All(context.Background(), c, Get("get_cases/1", q, KindList), decodeCase); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRequest_DebugLogging(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	log := logger.NewWithWriter(&logger.Config{Level: "debug", Format: logger.FormatJSON}, "testrail", &buf)
	c, err := New(testConfig(srv.URL), WithLogger(log))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := All(context.Background(), c, Get("get_statuses", nil, KindList), decodeCase); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Sending GET request to URL : " + srv.URL + "/index.php?/api/v2/get_statuses", "Response Code : 200", `"request_id"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in log output:\n%s", want, out)
		}
	}
}

// scriptedTransport replays canned exchanges without a network.
type scriptedTransport struct {
	sendErr  error
	exchange *scriptedExchange
}

func (s *scriptedTransport) Send(req *http.Request) (Exchange, error) {
	if s.sendErr != nil {
		return nil, s.sendErr
	}
	return s.exchange, nil
}

type scriptedExchange struct {
	statusErrs []error
	statusRead int
	body       string
	closed     bool
}

func (e *scriptedExchange) StatusCode() (int, error) {
	e.statusRead++
	if len(e.statusErrs) > 0 {
		err := e.statusErrs[0]
		e.statusErrs = e.statusErrs[1:]
		return 0, err
	}
	return http.StatusOK, nil
}

func (e *scriptedExchange) Body() ([]byte, error) { return []byte(e.body), nil }
func (e *scriptedExchange) Close() error          { e.closed = true; return nil }

var errReset = stderrors.New("connection reset by peer")

func TestRequest_StatusReadRetriedOnce(t *testing.T) {
	ex := &scriptedExchange{statusErrs: []error{errReset}, body: `{"id":1,"title":"a"}`}
	c := newTestClient(t, "https://example.testrail.io", WithTransport(&scriptedTransport{exchange: ex}))

	got, err := One(context.Background(), c, Get("get_case/1", nil, KindScalar), decodeCase)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 1 {
		t.Errorf("expected id 1, got %d", got.ID)
	}
	if ex.statusRead != 2 {
		t.Errorf("expected 2 status reads, got %d", ex.statusRead)
	}
	if !ex.closed {
		t.Error("expected exchange to be closed")
	}
}

func TestRequest_StatusReadFailsTwice(t *testing.T) {
	ex := &scriptedExchange{statusErrs: []error{errReset, errReset, errReset}}
	c := newTestClient(t, "https://example.testrail.io", WithTransport(&scriptedTransport{exchange: ex}))

	err := None(context.Background(), c, Post("close_run/1", nil, KindNone))
	if !errors.IsTransport(err) {
		t.Errorf("expected TRANSPORT, got %v", err)
	}
	if !stderrors.Is(err, errReset) {
		t.Errorf("expected cause to be kept, got %v", err)
	}
	if ex.statusRead != 2 {
		t.Errorf("expected exactly 2 status reads, got %d", ex.statusRead)
	}
}

func TestRequest_SendFailureIsTransport(t *testing.T) {
	c := newTestClient(t, "https://example.testrail.io", WithTransport(&scriptedTransport{sendErr: errReset}))

	_, err := All(context.Background(), c, Get("get_projects", nil, KindPaginated), decodeCase)
	if !errors.IsTransport(err) {
		t.Errorf("expected TRANSPORT, got %v", err)
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(config.ClientConfig{Endpoint: "https://example.testrail.io"})
	if !errors.IsValidation(err) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestContinuation(t *testing.T) {
	c := newTestClient(t, "https://example.testrail.io")
	tests := []struct {
		next string
		want string
	}{
		{"/api/v2/get_cases/1&offset=250", "get_cases/1&offset=250"},
		{"api/v2/get_cases/1&offset=250", "get_cases/1&offset=250"},
		{"get_cases/1&offset=250", "get_cases/1&offset=250"},
	}
	for _, tc := range tests {
		if got := c.continuation(tc.next); got != tc.want {
			t.Errorf("continuation(%q): expected %q, got %q", tc.next, tc.want, got)
		}
	}
}

func TestEncodeBody(t *testing.T) {
	tests := []struct {
		name string
		body any
		want string
		nil  bool
	}{
		{"nil", nil, "", true},
		{"empty ordered map", util.NewOrderedMap(), "", true},
		{"empty bytes", []byte{}, "", true},
		{"raw bytes", []byte(`{"a":1}`), `{"a":1}`, false},
		{"struct", struct {
			Results []int `json:"results"`
		}{Results: []int{1}}, `{"results":[1]}`, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := encodeBody(tc.body)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.nil {
				if r != nil {
					t.Error("expected nil reader")
				}
				return
			}
			data, _ := io.ReadAll(r)
			if string(data) != tc.want {
				t.Errorf("expected %s, got %s", tc.want, data)
			}
		})
	}
}
