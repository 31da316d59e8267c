// Package shared holds helpers used by more than one package's tests.
//
// The testutil subpackage provides:
//
//	- CaptureHandler, an slog.Handler that records log entries for assertions
//	- Dataset fixtures and a helper that writes them into a test directory
//
// Nothing here is imported by production code.
package shared
