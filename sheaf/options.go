package sheaf

import "io"

// Solver defaults (single source of truth).
const (
	// DefaultRidge is the Tikhonov regularization strength λ added to the
	// normal-equations diagonal. It guarantees invertibility even when the
	// assembled system is rank-deficient, which is common when a patch has
	// fewer samples than unknowns.
	DefaultRidge = 1e-8

	// DefaultResidualFloor is the threshold below which the obstruction is
	// clamped to exactly 0, so floating-point noise is never reported as a
	// nonzero obstruction.
	DefaultResidualFloor = 1e-12
)

// options holds the resolved solver configuration for one Fit call.
type options struct {
	ridge         float64
	residualFloor float64
	trace         io.Writer
}

// Option is a functional option configuring Fit.
type Option func(*options)

// WithRidge overrides the Tikhonov regularization strength.
// Must be positive; non-positive values panic (programmer error).
func WithRidge(lambda float64) Option {
	return func(o *options) {
		if lambda <= 0 {
			panic("sheaf: WithRidge requires a positive lambda")
		}
		o.ridge = lambda
	}
}

// WithResidualFloor overrides the clamp threshold for the obstruction.
// Must be non-negative; negative values panic (programmer error).
func WithResidualFloor(eps float64) Option {
	return func(o *options) {
		if eps < 0 {
			panic("sheaf: WithResidualFloor requires a non-negative eps")
		}
		o.residualFloor = eps
	}
}

// WithTrace directs a short human-readable trace of the assembly (system
// shapes, row composition, final residual) to w. The default is silent.
func WithTrace(w io.Writer) Option {
	return func(o *options) {
		o.trace = w
	}
}

// gatherOptions applies the given options over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{ridge: DefaultRidge, residualFloor: DefaultResidualFloor}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
