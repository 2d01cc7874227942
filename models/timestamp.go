// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TimestampLayout is the ISO-8601 layout used for every timestamp in API
// responses.
const TimestampLayout = time.RFC3339Nano

// FormatTimestamp renders t as a UTC ISO-8601 instant.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
