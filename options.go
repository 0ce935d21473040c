package brushmask

import "math/rand/v2"

// ApplicatorOption configures an Applicator during creation.
//
// Example:
//
//	// Deterministic scalar applicator, e.g. for golden images
//	app := brushmask.NewApplicator(g,
//	    brushmask.WithImplementation(brushmask.ImplGeneric),
//	    brushmask.WithSeed(42))
type ApplicatorOption func(*applicatorOptions)

type applicatorOptions struct {
	impl Implementation
	seed uint64
}

func defaultApplicatorOptions() applicatorOptions {
	return applicatorOptions{
		impl: DetectImplementation(),
		seed: rand.Uint64(),
	}
}

func resolveApplicatorOptions(opts []ApplicatorOption) applicatorOptions {
	o := defaultApplicatorOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithImplementation overrides the detected implementation. Any
// vectorized value selects the row processors; ImplGeneric forces the
// scalar path.
func WithImplementation(impl Implementation) ApplicatorOption {
	return func(o *applicatorOptions) {
		o.impl = impl
	}
}

// WithSeed fixes the seed of the random stream used for randomness and
// density, making the output reproducible.
func WithSeed(seed uint64) ApplicatorOption {
	return func(o *applicatorOptions) {
		o.seed = seed
	}
}
