package exporter

import (
	"errors"
	"fmt"
)

// Error kinds. An *ExportError always wraps exactly one of these, so callers
// can branch with errors.Is.
var (
	// ErrNoSelection means no effect was given to export.
	ErrNoSelection = errors.New("no effect selected")

	// ErrModuleRead means the source failed while a module was being read.
	// Nothing is written to disk.
	ErrModuleRead = errors.New("module read failed")

	// ErrIO means the destination directory or file could not be written.
	ErrIO = errors.New("export I/O failed")

	// ErrEncode means the finished tree could not be encoded, for example
	// because a field holds NaN or Inf.
	ErrEncode = errors.New("document encoding failed")
)

// ErrInvalidInput marks a source value that the accessor contract guarantees
// to be present but was missing. It surfaces wrapped in ErrModuleRead.
var ErrInvalidInput = errors.New("invalid input")

// ExportError is returned by Exporter for every failed export.
type ExportError struct {
	Kind   error  // one of ErrNoSelection, ErrModuleRead, ErrIO, ErrEncode
	Module string // document key of the failing module, for ErrModuleRead
	Path   string // file or directory involved, for ErrIO
	Err    error  // underlying cause, may be nil
}

// Error prefixes the kind to the module or path and the cause.
func (e *ExportError) Error() string {
	switch {
	case e.Module != "" && e.Err != nil:
		return fmt.Sprintf("%v: %s: %v", e.Kind, e.Module, e.Err)
	case e.Path != "" && e.Err != nil:
		return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	default:
		return e.Kind.Error()
	}
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *ExportError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
