package engine

import "errors"

// ErrReleased indicates a method was called on an Engine whose
// reference count has already reached zero.
var ErrReleased = errors.New("engine: use of released engine")
