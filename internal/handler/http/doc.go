// Package http implements the REST transport of the go-quiz server.
//
// It exposes route wiring, the quiz and user handlers, and the middleware
// chain: panic recovery, request tracing, access logging, gzip, CORS, request
// timeouts and JWT authentication for the mutating quiz routes. Handlers
// decode the request, call one service method and map the outcome to a JSON
// response.
package http
