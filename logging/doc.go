// Package logging builds the slog loggers used for configuration diagnostics.
// Output is JSON by default and plain text on request; every record carries
// the component name so diagnostics can be filtered in shared streams.
package logging
