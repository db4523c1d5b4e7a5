// Package api contains the HTTP handlers for the bloglist service, the
// request/response DTOs, and the central mapping from internal errors to
// HTTP status codes and machine-stable messages.
package api
