// SPDX-License-Identifier: MIT

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldRequestID     = "request_id"
	FieldCorrelationID = "correlation_id"

	// Process fields
	FieldEvent     = "event"
	FieldComponent = "component"

	// Log-file fields
	FieldFile        = "file"
	FieldDialect     = "dialect"
	FieldWindowStart = "window_start"
	FieldWindowEnd   = "window_end"
	FieldLineCount   = "line_count"

	// Path / network fields
	FieldPath       = "path"
	FieldRemoteAddr = "remote_addr"
)
