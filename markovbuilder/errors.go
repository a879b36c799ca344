package markovbuilder

import "errors"

// ErrTooFewStates indicates a Chain was asked for fewer than one
// hidden state.
var ErrTooFewStates = errors.New("markovbuilder: need at least one state")

// ErrNoEmissionSpecs indicates a constructor that emits observations
// was given zero EmissionSpec values to choose from.
var ErrNoEmissionSpecs = errors.New("markovbuilder: at least one emission spec is required")

// ErrUnknownVertex indicates a constructor referenced a vertex id that
// was never added by an earlier constructor in the same BuildGraph
// call.
var ErrUnknownVertex = errors.New("markovbuilder: unknown vertex id")

// ErrConstructFailed indicates BuildGraph was given a nil Constructor.
// Constructor failures that originate from markovgraph (duplicate id,
// missing endpoint) are not wrapped in it; they carry markovgraph's own
// sentinels, which callers branch on via errors.Is.
var ErrConstructFailed = errors.New("markovbuilder: construction failed")
