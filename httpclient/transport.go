package httpclient

import (
	"io"
	"net/http"
)

// Exchange is one sent request whose response has not been consumed yet.
type Exchange interface {
	// StatusCode reads the response status. It may fail at the transport
	// level; the client then reads it once more.
	StatusCode() (int, error)
	// Body reads the whole response body.
	Body() ([]byte, error)
	// Close releases the connection.
	Close() error
}

// Transport sends a prepared request.
type Transport interface {
	Send(req *http.Request) (Exchange, error)
}

// HTTPTransport sends requests through an *http.Client.
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport wraps client. A nil client uses http.DefaultClient.
func NewHTTPTransport(client *http.Client) *HTTPTransport {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPTransport{client: client}
}

// Send implements Transport.
func (t *HTTPTransport) Send(req *http.Request) (Exchange, error) {
	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	return &httpExchange{resp: resp}, nil
}

type httpExchange struct {
	resp *http.Response
}

func (e *httpExchange) StatusCode() (int, error) { return e.resp.StatusCode, nil }

func (e *httpExchange) Body() ([]byte, error) { return io.ReadAll(e.resp.Body) }

func (e *httpExchange) Close() error { return e.resp.Body.Close() }
