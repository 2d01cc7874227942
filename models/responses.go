// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Fixed client-facing error messages. Internal details are never put into
// an error body.
const (
	ErrorMessageNotFound = "Page not found"
	ErrorMessageInternal = "Internal server error"
)

// ErrorResponse is the uniform JSON body of every 404 and 500 response.
type ErrorResponse struct {
	Error string `json:"error"`
}
