// Package testrail is a typed client for the TestRail REST API v2.
//
// A Client groups one service per resource. Every service method validates
// its ids before building a request, sends it through the shared executor in
// package httpclient and decodes the response into the entities of package
// model:
//
//	client, err := testrail.New(config.ClientConfig{
//		Endpoint: "https://example.testrail.io/",
//		Username: "user@example.com",
//		Password: "api-key",
//	})
//	if err != nil {
//		return err
//	}
//	fields, err := client.CaseFields.List(ctx)
//	if err != nil {
//		return err
//	}
//	cases, err := client.Cases.List(ctx, 1, 2, testrail.CaseFilter{}, fields.Definitions())
//
// Methods that decode entities carrying custom fields take the field
// definitions as a schema.Schema. A custom field the schema does not define
// fails the call with a SCHEMA_MISMATCH error.
package testrail
