package main

import (
	"errors"
	"os"

	creole "github.com/alnah/go-creole"
	"github.com/alnah/go-creole/internal/pipeline"
)

// Exit codes for the creole CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, 3=I/O.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags or config
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, creole.ErrReadSource) ||
		errors.Is(err, ErrReadMarkup) ||
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, ErrWriteHTML) {
		return ExitIO
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, ErrConfigNotFound) ||
		errors.Is(err, ErrEmptyConfigName) ||
		errors.Is(err, ErrConfigParse) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, pipeline.ErrHighlight) {
		return ExitUsage
	}

	return ExitGeneral
}
