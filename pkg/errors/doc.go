// Package errors provides structured error types for programmatic error
// handling across myapp and its documentation generator.
//
// Filesystem failures keep their cause so callers can still match on it:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeIO,
//	    "failed to write manual page",
//	    writeErr,
//	    map[string]any{
//	        "path": path,
//	    },
//	)
//	if stderrors.Is(err, fs.ErrPermission) { ... }
package errors
