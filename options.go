// SPDX-License-Identifier: MIT
// Package densemat: functional configuration for construction.
// This file defines:
//   - Option (functional options with internal state),
//   - documented defaults (constants),
//   - gatherOptions helper (internal) that resolves effective settings.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.

package densemat

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultRaggedPadding controls whether FromRows tolerates inner
	// rows shorter than the first one. false ⇒ any length difference is
	// ErrRaggedRows; true ⇒ short rows are padded with the zero value.
	// Rows longer than the first are an error under either setting:
	// data is never silently truncated.
	DefaultRaggedPadding = false
)

// Option mutates construction options. Safe to apply repeatedly.
type Option func(*options)

// options stores the effective configuration after applying setters.
// It is unexported to prevent external mutation.
type options struct {
	raggedPadding bool // DefaultRaggedPadding
}

// defaultOptions returns the documented defaults.
func defaultOptions() options {
	return options{
		raggedPadding: DefaultRaggedPadding,
	}
}

// gatherOptions resolves defaults plus caller-supplied setters.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithRaggedPadding makes FromRows pad inner rows shorter than the
// first one with the element type's zero value instead of failing.
// Rows longer than the first still yield ErrRaggedRows.
func WithRaggedPadding() Option {
	return func(o *options) { o.raggedPadding = true }
}
