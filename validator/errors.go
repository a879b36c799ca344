package validator

import (
	"errors"
	"fmt"
)

// Sentinel errors for each structural-invariant rule in the
// specification's vertex and edge validation passes. Callers branch on
// these with errors.Is; Errors.Unwrap exposes each wrapped occurrence.
var (
	ErrNoStartVertex        = errors.New("validator: no vertex named \"start\" found")
	ErrDuplicateStartVertex = errors.New("validator: more than one vertex named \"start\"")
	ErrMissingVertexName    = errors.New("validator: vertex is missing a non-empty name")
	ErrMissingVertexType    = errors.New("validator: non-start vertex is missing a type")
	ErrInvalidVertexType    = errors.New("validator: vertex type is neither \"state\" nor \"observation\"")
	ErrObservationNameInvalid = errors.New("validator: observation vertex name is not one of +, -, $, F")
	ErrReservedNameWrongType  = errors.New("validator: vertex named +, -, $, or F must have type \"observation\"")

	ErrMissingEdgeType          = errors.New("validator: edge is missing a type")
	ErrInvalidEdgeType          = errors.New("validator: edge type is neither \"transition\" nor \"emission\"")
	ErrMissingWeight            = errors.New("validator: edge is missing a weight")
	ErrInvalidWeight            = errors.New("validator: edge weight is not a finite, non-negative number")
	ErrTransitionTouchesObservation = errors.New("validator: transition edge touches an observation-named vertex")
	ErrEmissionFromObservation      = errors.New("validator: emission edge originates from an observation-named vertex")
	ErrEmissionNotToObservation     = errors.New("validator: emission edge does not terminate on an observation-named vertex")
	ErrMissingEmissionParam     = errors.New("validator: emission edge is missing a required distribution parameter")
	ErrInvalidEmissionParam     = errors.New("validator: emission edge distribution parameter is not a finite, non-negative number")
)

// ErrFailed is the taxonomy-level sentinel for "Validate rejected this
// graph": every *Errors value Validate returns matches
// errors.Is(err, ErrFailed), regardless of which specific rule(s)
// failed. Callers that only care whether validation failed at all —
// without branching on a particular rule — check against this instead
// of enumerating the rule sentinels above.
var ErrFailed = errors.New("validator: graph failed validation")

// Errors aggregates every failure found during a single Validate call.
// It implements error and Unwrap() []error so callers may use
// errors.Is/errors.As against any of the sentinels above.
type Errors struct {
	failures []error
}

// Error renders every accumulated failure, one per line, prefixed with
// its ordinal so a human reading engine-construction diagnostics can
// tell failures apart even when several share the same sentinel. A
// single failure is rendered as its own message, without header or
// ordinal.
func (e *Errors) Error() string {
	if len(e.failures) == 0 {
		return "validator: no failures"
	}
	if len(e.failures) == 1 {
		return e.failures[0].Error()
	}

	msg := fmt.Sprintf("validator: %d validation failures:", len(e.failures))
	for i, f := range e.failures {
		msg += fmt.Sprintf("\n  %d) %s", i+1, f.Error())
	}

	return msg
}

// Unwrap exposes each accumulated failure for errors.Is/errors.As,
// plus ErrFailed so callers can check the failure taxonomy as a whole
// without enumerating individual rule sentinels.
func (e *Errors) Unwrap() []error {
	if len(e.failures) == 0 {
		return nil
	}
	return append(append([]error{}, e.failures...), ErrFailed)
}

// Len reports how many failures were accumulated.
func (e *Errors) Len() int {
	return len(e.failures)
}

func (e *Errors) add(sentinel error, format string, args ...interface{}) {
	e.failures = append(e.failures, fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...)))
}
