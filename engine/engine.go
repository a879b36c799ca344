package engine

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"sync/atomic"

	"github.com/katalvlaran/tgenmarkov/chooser"
	"github.com/katalvlaran/tgenmarkov/distributions"
	"github.com/katalvlaran/tgenmarkov/graphml"
	"github.com/katalvlaran/tgenmarkov/markovgraph"
	"github.com/katalvlaran/tgenmarkov/rng"
	"github.com/katalvlaran/tgenmarkov/validator"
)

// maxDelayMicros is the hard cap applied to every generated delay,
// regardless of which distribution produced it.
const maxDelayMicros uint64 = 60000000

// Observation is the symbol an engine emits on each step.
type Observation int

const (
	// ObservationPacketToServer corresponds to vertex name "+".
	ObservationPacketToServer Observation = iota
	// ObservationPacketToOrigin corresponds to vertex name "-".
	ObservationPacketToOrigin
	// ObservationStream corresponds to vertex name "$".
	ObservationStream
	// ObservationEnd corresponds to vertex name "F", and is also what
	// Next returns once an engine has terminated.
	ObservationEnd
)

// String renders the observation the way the wire format spells it.
func (o Observation) String() string {
	switch o {
	case ObservationPacketToServer:
		return "+"
	case ObservationPacketToOrigin:
		return "-"
	case ObservationStream:
		return "$"
	default:
		return "F"
	}
}

// Option configures an Engine at construction time.
type Option func(*options)

type options struct {
	logger Logger
}

func resolveOptions(opts ...Option) options {
	o := options{logger: noopLogger{}}
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// WithLogger attaches a Logger that receives the same debug/warning
// events the reference implementation emits around each transition and
// emission draw.
func WithLogger(l Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Engine walks a validated Markov emission graph, producing
// (Observation, delay) pairs deterministically from a seed.
type Engine struct {
	name    string
	seed    uint32
	graph   *markovgraph.Graph
	chooser *chooser.Chooser
	src     *rng.Source
	logger  Logger

	startID    string
	currentID  string
	terminated bool

	refcount atomic.Int32
}

// NewFromPath loads and validates the GraphML file at path and returns
// a ready-to-use Engine seeded with seed. name is an arbitrary label
// (conventionally the file's base name) and does not affect behavior.
func NewFromPath(name string, seed uint32, path string, opts ...Option) (*Engine, error) {
	g, err := graphml.DecodeFile(path)
	if err != nil {
		return nil, err
	}

	return newEngine(name, seed, g, opts...)
}

// NewFromReader is the buffer-based equivalent of NewFromPath.
func NewFromReader(name string, seed uint32, data string, opts ...Option) (*Engine, error) {
	g, err := graphml.Decode(strings.NewReader(data))
	if err != nil {
		return nil, err
	}

	return newEngine(name, seed, g, opts...)
}

// NewFromGraph builds an Engine directly from an in-memory Graph,
// validating it exactly as the file/buffer constructors do. It is the
// entry point used by markovbuilder-assembled topologies and by tests
// that would rather build a graph in Go than write a GraphML fixture.
func NewFromGraph(name string, seed uint32, g *markovgraph.Graph, opts ...Option) (*Engine, error) {
	return newEngine(name, seed, g, opts...)
}

func newEngine(name string, seed uint32, g *markovgraph.Graph, opts ...Option) (*Engine, error) {
	startID, errs := validator.Validate(g)
	if errs != nil {
		return nil, errs
	}

	o := resolveOptions(opts...)

	e := &Engine{
		name:      name,
		seed:      seed,
		graph:     g,
		chooser:   chooser.New(g),
		src:       rng.New(seed),
		logger:    o.logger,
		startID:   startID,
		currentID: startID,
	}
	e.refcount.Store(1)

	return e, nil
}

// released reports whether the Engine's reference count has reached
// zero. Once true it stays true: Release never lets the count go back
// above zero.
func (e *Engine) released() bool {
	return e.refcount.Load() <= 0
}

// Name returns the label the Engine was constructed with, or
// ErrReleased if the Engine has been fully released.
func (e *Engine) Name() (string, error) {
	if e.released() {
		return "", ErrReleased
	}
	return e.name, nil
}

// Seed returns the PRNG seed the Engine was constructed with, or
// ErrReleased if the Engine has been fully released.
func (e *Engine) Seed() (uint32, error) {
	if e.released() {
		return 0, ErrReleased
	}
	return e.seed, nil
}

// Reset returns the Engine to its start vertex and clears termination,
// without reseeding the PRNG: the sequence a subsequent Next call
// produces continues to draw from the same underlying stream rather
// than repeating from the beginning. Returns ErrReleased if the Engine
// has been fully released.
func (e *Engine) Reset() error {
	if e.released() {
		return ErrReleased
	}
	e.currentID = e.startID
	e.terminated = false
	return nil
}

// Next advances the state machine by one transition and one emission,
// returning the resulting observation and a delay in microseconds
// capped at 60,000,000. Once the engine has terminated — either by
// reaching vertex "F" or by a chooser failure mid-walk — every
// subsequent call returns (ObservationEnd, 0, nil) without consuming
// the PRNG. Returns ErrReleased, with no other work done, if the
// Engine has been fully released.
func (e *Engine) Next() (Observation, uint64, error) {
	if e.released() {
		return ObservationEnd, 0, ErrReleased
	}
	if e.terminated {
		return ObservationEnd, 0, nil
	}

	e.logger.Debugf("choosing transition from vertex %s", e.currentID)
	transitionEdge, err := e.chooser.Choose(e.src, e.currentID, markovgraph.EdgeKindTransition)
	if err != nil {
		e.logger.Warnf("failed to choose a transition edge from %s, terminating", e.currentID)
		e.terminated = true
		return ObservationEnd, 0, nil
	}
	e.currentID = transitionEdge.To

	e.logger.Debugf("choosing emission from vertex %s", e.currentID)
	emissionEdge, err := e.chooser.Choose(e.src, e.currentID, markovgraph.EdgeKindEmission)
	if err != nil {
		e.logger.Warnf("failed to choose an emission edge from %s, terminating", e.currentID)
		e.terminated = true
		return ObservationEnd, 0, nil
	}

	delay := e.generateDelay(emissionEdge)
	obs := e.observationFor(emissionEdge.To)
	if obs == ObservationEnd {
		e.terminated = true
	}

	return obs, delay, nil
}

func (e *Engine) generateDelay(edge *markovgraph.Edge) uint64 {
	mu, sigma, lambda := 0.0, 0.0, 0.0
	if edge.LogNormMu != nil {
		mu = *edge.LogNormMu
	}
	if edge.LogNormSigma != nil {
		sigma = *edge.LogNormSigma
	}
	if edge.ExpLambda != nil {
		lambda = *edge.ExpLambda
	}

	var generated float64
	switch {
	case mu > 0 || sigma > 0:
		generated = distributions.LogNormal(e.src, mu, sigma)
	case lambda > 0:
		generated = distributions.Exponential(e.src, lambda)
	default:
		// All three parameters are zero: the spec (§4.G design note)
		// calls this state "undefined and must not be reached"; rather
		// than letting distributions.Exponential panic on a validated-
		// but-degenerate graph, treat it as a zero delay so the engine
		// keeps its "always produces a well-formed observation"
		// contract (§7) instead of crashing the host process.
		generated = 0
	}

	if generated < 0 {
		generated = 0
	}

	// Converting an out-of-range float64 to uint64 is implementation-
	// defined in Go; saturate explicitly at the native maximum before
	// the distribution-independent 60s ceiling is applied, matching the
	// reference implementation's "> UINT64_MAX" guard.
	var delay uint64
	if generated > math.MaxUint64 {
		delay = math.MaxUint64
	} else {
		delay = uint64(generated)
	}

	if delay > maxDelayMicros {
		delay = maxDelayMicros
	}

	return delay
}

func (e *Engine) observationFor(vertexID string) Observation {
	v, ok := e.graph.Vertex(vertexID)
	if !ok {
		return ObservationEnd
	}
	switch v.Name {
	case "+":
		return ObservationPacketToServer
	case "-":
		return ObservationPacketToOrigin
	case "$":
		return ObservationStream
	default:
		return ObservationEnd
	}
}

// Serialize re-renders the underlying graph as a GraphML document.
// Returns ErrReleased if the Engine has been fully released.
func (e *Engine) Serialize() ([]byte, error) {
	if e.released() {
		return nil, ErrReleased
	}

	var buf bytes.Buffer
	if err := graphml.Encode(&buf, e.graph); err != nil {
		return nil, fmt.Errorf("engine: serialize: %w", err)
	}
	return buf.Bytes(), nil
}

// Retain increments the Engine's reference count and returns it, for
// callers that want to share ownership without copying construction
// cost. On a fully released Engine it leaves the count at zero, so the
// Engine stays released.
func (e *Engine) Retain() *Engine {
	for {
		n := e.refcount.Load()
		if n <= 0 || e.refcount.CompareAndSwap(n, n+1) {
			return e
		}
	}
}

// Release decrements the Engine's reference count. Once the count
// reaches zero this is the Engine's single destruction path: it frees
// the graph, the chooser built over it, the PRNG, and the diagnostic
// name, matching spec.md §5's ownership contract. Callers using
// Retain/Release for shared ownership must call Release exactly once
// per Retain (and once for the value returned by New*); calling it
// again once the count has reached zero returns ErrReleased.
func (e *Engine) Release() error {
	if e.refcount.Load() <= 0 {
		return ErrReleased
	}
	if e.refcount.Add(-1) == 0 {
		e.graph = nil
		e.chooser = nil
		e.src = nil
		e.name = ""
	}
	return nil
}
