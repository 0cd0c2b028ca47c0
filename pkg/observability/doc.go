/*
Package observability provides lifecycle hooks for monitoring the firstrun engine.

It includes Prometheus metrics for built plans, structured logging hooks, and a helper to
combine several hook sets into one.
*/
package observability
