// Package httpapi is the HTTP driving adapter for namereg.
//
// It routes the three registry endpoints under /v1/test to the greeting and
// name services, validates the name query parameter before delegating, and
// maps domain errors to status codes:
//
//	domain.ErrInvalidInput       400 Bad Request
//	domain.ErrStorageUnavailable 503 Service Unavailable
//	anything else                500 Internal Server Error
//
// Operational routes (/healthz, /metrics, /openapi.json) share the router.
// Every route passes through recovery, request id, access logging, metrics
// and optional per-host rate limiting, in that order.
package httpapi
