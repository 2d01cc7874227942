// Package server runs the application's HTTP listener.
//
// It owns the listener lifecycle: binding the configured address, serving
// the router with the configured timeouts, reacting to SIGINT, SIGTERM and
// SIGQUIT, and draining in-flight requests within the shutdown timeout.
package server
