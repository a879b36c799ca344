// Package engine ties together rng, markovgraph, graphml, validator,
// and chooser into the public surface a host uses to walk a Markov
// emission graph: component G of the specification.
//
// An Engine is constructed from a GraphML file or byte buffer,
// validated in full before any state machine runs, then stepped with
// Next, which alternates a transition draw (advance the hidden state)
// and an emission draw (produce an observation and a delay), exactly
// as the reference C implementation's getNextObservation does. A
// chooser failure mid-walk — no eligible transition or emission edge —
// makes the engine sticky-terminated: every subsequent Next call
// returns the end-of-session observation without consulting the
// PRNG again, until Reset. This is a deliberate behavior change from
// the original C model, which does not latch its end-state flag on a
// failed choice and so can re-attempt (and potentially fail
// differently) on every call from the same broken state; latching
// makes termination a stable, cheap no-op once reached.
//
// An Engine is refcounted (Retain/Release) purely as a convenience for
// hosts that share ownership across components; ownership is otherwise
// exclusive and Next/Reset are not safe to call concurrently on the
// same Engine. Construction from independent files may run
// concurrently.
//
// Release is the Engine's single destruction path: once the reference
// count it guards reaches zero, the graph, chooser, and PRNG are freed
// and every other method — Name, Seed, Next, Reset, Serialize — starts
// returning ErrReleased instead of touching the now-nil internal
// state.
package engine
