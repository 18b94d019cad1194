// Package resilience provides the bounded retry used by the HTTP executor.
//
// The client never retries whole requests. The one retry it performs is a
// second read of the status line after the first read failed at the
// transport level:
//
//	status, err := resilience.Retry(ctx, resilience.Once(isStatusReadError), ex.StatusCode)
package resilience
