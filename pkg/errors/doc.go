// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Batch level failures (unreadable applications root, unknown application,
// invalid interactive selection) are reported with a code so the CLI can
// distinguish them from per-manifest outcomes.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeIO,
//	    "failed to read manifest",
//	    err,
//	    map[string]any{
//	        "application": app,
//	        "file": name,
//	    },
//	)
package errors
