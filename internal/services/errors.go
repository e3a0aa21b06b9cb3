package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingColumn marks a required metadata column that the extractor did
	// not return for every file. The whole command aborts before any mutation.
	ErrMissingColumn = errors.New("missing metadata column")
	// ErrUnrecognizedValue marks a tag value outside every known
	// classification. Callers log it and continue with a neutral result.
	ErrUnrecognizedValue = errors.New("unrecognized metadata value")
	// ErrNameCollision marks a generated name that was already emitted in the
	// current run. It is resolved in place and never returned to callers.
	ErrNameCollision = errors.New("name collision")
	// ErrUnsupportedExtension marks a file extension no naming scheme exists for.
	ErrUnsupportedExtension = errors.New("unsupported file extension")
	// ErrFilesystem marks a failed rename, move, or copy.
	ErrFilesystem    = errors.New("filesystem operation failed")
	ErrConfiguration = errors.New("configuration error")
	ErrValidation    = errors.New("validation error")
	ErrLocked        = errors.New("directory locked by another run")
	ErrExternalTool  = errors.New("external tool error")
)

// Wrap builds an error message that includes command context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, command, operation, message string, err error) error {
	detail := buildDetail(command, operation, message)
	if marker == nil {
		marker = ErrValidation
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// FailFast reports whether err belongs to the categories that abort a command
// before any file is touched.
func FailFast(err error) bool {
	switch {
	case errors.Is(err, ErrMissingColumn),
		errors.Is(err, ErrUnsupportedExtension),
		errors.Is(err, ErrConfiguration),
		errors.Is(err, ErrLocked):
		return true
	default:
		return false
	}
}

func buildDetail(command, operation, message string) string {
	parts := make([]string, 0, 3)
	if command = strings.TrimSpace(command); command != "" {
		parts = append(parts, command)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "command failure"
	}
	return strings.Join(parts, ": ")
}
