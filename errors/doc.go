// Package errors defines the error taxonomy returned by the TestRail client.
//
// Every failure surfaces as an *AppError carrying a machine-readable code:
// TRANSPORT, REMOTE, SCHEMA_MISMATCH, DECODE or INVALID_INPUT. Use the Is*
// predicates or AsRemote to inspect an error returned by the client.
package errors
