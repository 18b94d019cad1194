// Package util holds small generic helpers shared by the client packages:
// pointer helpers for optional request fields, an insertion-ordered JSON
// object, and secret masking for log output.
package util
