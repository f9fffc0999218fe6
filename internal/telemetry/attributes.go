// SPDX-License-Identifier: MIT

package telemetry

import (
	"go.opentelemetry.io/otel/attribute"
)

// Common attribute keys for consistent tracing across the application.
const (
	// HTTP attributes
	HTTPMethodKey     = "http.method"
	HTTPStatusCodeKey = "http.status_code"
	HTTPRouteKey      = "http.route"
	HTTPURLKey        = "http.url"

	// Log window attributes
	LogFileKey     = "logfile.name"
	LogDialectKey  = "logfile.dialect"
	WindowStartKey = "logfile.window_start"
	WindowEndKey   = "logfile.window_end"
	LineCountKey   = "logfile.lines"
	EntryCountKey  = "logfile.entries"

	// Error attributes
	ErrorKey     = "error"
	ErrorTypeKey = "error.type"
)

// HTTPAttributes creates common HTTP span attributes.
func HTTPAttributes(method, route, url string, statusCode int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(HTTPMethodKey, method),
		attribute.String(HTTPRouteKey, route),
		attribute.String(HTTPURLKey, url),
		attribute.Int(HTTPStatusCodeKey, statusCode),
	}
}

// WindowAttributes creates span attributes for one window-read operation.
func WindowAttributes(file, dialect string, start, end, lines, entries int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(LogFileKey, file),
		attribute.String(LogDialectKey, dialect),
		attribute.Int(WindowStartKey, start),
		attribute.Int(WindowEndKey, end),
		attribute.Int(LineCountKey, lines),
		attribute.Int(EntryCountKey, entries),
	}
}

// ErrorAttributes creates error-related span attributes.
func ErrorAttributes(errType string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Bool(ErrorKey, true),
		attribute.String(ErrorTypeKey, errType),
	}
}
