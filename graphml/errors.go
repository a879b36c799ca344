package graphml

import "errors"

// Loader-class sentinel errors, per the specification's error taxonomy:
// every one of these causes engine construction to fail with
// diagnostics, never a silent partial graph.
var (
	ErrNotExist    = errors.New("graphml: file does not exist")
	ErrNotRegular  = errors.New("graphml: path is not a regular file")
	ErrOpenFailed  = errors.New("graphml: failed to open file")
	ErrParse       = errors.New("graphml: malformed XML or GraphML structure")
	ErrUnsupported = errors.New("graphml: unsupported or unrecognized attribute declaration")
)
