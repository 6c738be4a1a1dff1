// Package http implements the REST transport of the green-pledge server.
//
// It wires chi routes for users, projects, pledges, seeding and version
// reporting, and the middleware in front of them: panic recovery, trace ids
// with a request-scoped logger, access logging, Prometheus request metrics,
// gzip, per-request timeouts, bearer-token authentication and rate limiting
// of the auth routes. Service errors are translated into JSON error bodies
// by a sentinel to status table.
package http
