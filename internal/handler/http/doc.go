// Package http implements the HTTP transport layer of the application.
//
// It exposes the route table, request handlers and middleware serving the
// application shell, static assets and the configuration/health API.
// Cross-cutting concerns such as request tracing, access logging, panic
// recovery, CORS and response compression are handled here, and every error
// is turned into one of two JSON bodies in a single place before anything
// reaches the client.
package http
