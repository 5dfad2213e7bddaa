// Package chain runs a random-walk Metropolis-Hastings sampler over the
// (mean, stdev) parameters of a Normal model with a uniform box prior.
// It never imports cli, app, or writers; keep it domain-only.
//
// External outputs must not depend on the internal shape here — use pkg/api
// in the root module for stable wire types.
package chain
