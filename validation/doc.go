// Package validation checks caller input before any request is sent.
//
// Struct tag validation (go-playground/validator) covers configuration;
// the collecting Validator covers builder arguments:
//
//	err := validation.New().
//	    Positive("project_id", projectID).
//	    Positive("suite_id", suiteID).
//	    Err()
//
// Both return INVALID_INPUT errors from the errors package.
package validation
