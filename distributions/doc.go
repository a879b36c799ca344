// Package distributions implements the two continuous samplers used to
// generate inter-event delays: log-normal (via Box-Muller) and
// exponential (via inverse transform). Both draw from an rng.Source and
// clamp their uniform inputs to [0.0001, 0.9999) to avoid degenerate
// log(0) evaluations.
//
// Each sampler consumes exactly the documented number of rng.Source.Draw
// calls, in the documented order, so that output is reproducible for a
// fixed seed and call sequence — mirroring the contract every stochastic
// package in this module relies on (see rng).
package distributions
