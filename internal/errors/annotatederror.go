// Package errors provides annotated errors that carry structured logging
// attributes and the source location where they were created. It re-exports
// the standard library helpers so callers need only one errors import.
package errors

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"runtime"
)

type annotatedError struct {
	wrapped error
	message string
	attrs   []slog.Attr
	file    string
	line    int
}

func (e *annotatedError) Error() string {
	if e.wrapped == nil {
		return e.message
	}
	return e.message + ": " + e.wrapped.Error()
}

func (e *annotatedError) Unwrap() error {
	return e.wrapped
}

// New creates an annotated error recording the caller's source location.
func New(message string, attrs ...slog.Attr) error {
	return newAnnotated(nil, message, attrs)
}

// NewSentinel creates a plain error value suitable for package-level sentinel
// declarations. Sentinels carry no source location or annotations.
func NewSentinel(message string) error {
	return stderrors.New(message)
}

// Wrap annotates err with a message and optional [slog.Attr] annotations that
// [SlogError] later surfaces in log output.
func Wrap(err error, message string, attrs ...slog.Attr) error {
	return newAnnotated(err, message, attrs)
}

func newAnnotated(err error, message string, attrs []slog.Attr) error {
	ae := &annotatedError{
		wrapped: err,
		message: message,
		attrs:   attrs,
		file:    "",
		line:    0,
	}
	// Skip newAnnotated and the exported constructor so the location points
	// at user code instead of this file.
	if _, file, line, ok := runtime.Caller(2); ok {
		ae.file = file
		ae.line = line
	}
	return ae
}

// Unwrap calls [errors.Unwrap].
func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}

// Is calls [errors.Is].
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As calls [errors.As].
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Join calls [errors.Join].
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// SlogError converts err into a [slog.Attr] under the "error" group carrying
// the full message, the source location of the innermost annotated error, and
// every annotation found along the chain.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Group("error", slog.String("message", "<nil>"))
	}

	var (
		annotations []slog.Attr
		source      string
	)
	for e := err; e != nil; e = stderrors.Unwrap(e) {
		ae, ok := e.(*annotatedError)
		if !ok {
			continue
		}
		annotations = append(annotations, ae.attrs...)
		if ae.file != "" {
			source = fmt.Sprintf("%s:%d", ae.file, ae.line)
		}
	}

	groupArgs := []any{slog.String("message", err.Error())}
	if source != "" {
		groupArgs = append(groupArgs, slog.String("source", source))
	}
	if len(annotations) > 0 {
		annotationArgs := make([]any, len(annotations))
		for i, attr := range annotations {
			annotationArgs[i] = attr
		}
		groupArgs = append(groupArgs, slog.Group("annotations", annotationArgs...))
	}

	return slog.Group("error", groupArgs...)
}
