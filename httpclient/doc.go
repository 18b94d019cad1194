// Package httpclient executes TestRail request descriptions.
//
// A Description names the method, the API path, optional query parameters
// or body, the response kind and the custom field schema used to decode the
// result. The executors send it with basic auth and decode the answer:
//
//	c, err := httpclient.New(cfg)
//	d := httpclient.Get("get_cases/1", q, httpclient.KindPaginated).WithSchema(fields)
//	cases, err := httpclient.All(ctx, c, d, binding.For[model.Case]())
//
// Paginated responses are followed through their next links and flattened
// into one slice. Any status other than 200 is a REMOTE error carrying the
// server message. Timeouts and TLS come from the config and live in the
// transport; WithTransport replaces it entirely.
package httpclient
