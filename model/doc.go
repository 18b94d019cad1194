// Package model holds the TestRail entities.
//
// Writable fields are pointers so that an unset field is left out of the
// request. Each writable entity carries a view table naming the operations
// a field is sent with; everything else is read-only and only decoded.
package model
