// Package pkglog configures slog for the service.
//
// Records are JSON with "ts", "severity" and a trimmed "file" location. Any
// correlation ID stored with SetCorrelationID is added as "_cID".
package pkglog
