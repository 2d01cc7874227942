package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// The value is marshaled before anything is written, so on a marshaling
// failure the response is left untouched and the caller decides what to
// send instead. On success it sets the "Content-Type" header to
// "application/json" and writes statusCode followed by the body.
//
// Parameters:
//
//	w          - the HTTP response writer to write the response to
//	data       - any value to be serialized as JSON (struct, map, slice, nil, etc.)
//	statusCode - HTTP status code to set in the response (e.g. http.StatusOK)
//
// Returns:
//
//	int   - number of bytes written to the response body
//	error - non-nil if JSON marshaling or the write fails
//
// Example usage:
//
//	WriteJSON(w, models.HealthReport{Status: "healthy"}, http.StatusOK)
//	WriteJSON(w, models.ErrorResponse{Error: "Page not found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
