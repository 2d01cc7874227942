// Package models contains the value objects exchanged over the HTTP API:
// the client configuration document, the health report and the error body.
package models
