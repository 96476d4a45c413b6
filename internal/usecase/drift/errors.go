package drift

import "fmt"

// ReadError reports an unreadable source or target file. The comparison
// for that template is aborted; filesystem errors are not retried.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// RenderError reports a failed template render, e.g. a syntax error in the
// template source. Propagated as-is, never recovered.
type RenderError struct {
	Source string
	Err    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Source, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
