// Package testrailtest provides an in-process fake of the TestRail API for
// tests.
//
// The fake serves the `index.php?/api/v2/<method>` URL scheme, checks basic
// auth, records every request and answers from scripted responses:
//
//	srv := testrailtest.New()
//	defer srv.Close()
//	srv.Respond(http.MethodGet, "get_project/1", testrailtest.JSON(map[string]any{"id": 1}))
//	srv.Paginate("get_cases/1", "cases", page1, page2)
//
//	client, _ := testrail.New(srv.Config())
package testrailtest
