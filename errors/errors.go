// Package errors provides the error constructors used throughout smolcc.
// Every error carries the file and line of its origin, which is what ends up
// in front of the user (or the model) when something goes wrong.
package errors

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// New creates an error annotated with the caller's file and line.
func New(format string, a ...interface{}) error {
	return fmt.Errorf("[%s] %s", caller(), fmt.Sprintf(format, a...))
}

// Wrapf adds caller-annotated context to an existing error. The wrapped error
// stays visible to errors.Is and errors.As, so sentinel conditions survive
// the annotation. Returns nil when err is nil.
func Wrapf(err error, format string, a ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("[%s] %s: %w", caller(), fmt.Sprintf(format, a...), err)
}

func caller() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "???"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}
