// Package brushmask computes the coverage masks of paint brush dabs.
//
// # Overview
//
// A mask generator describes the shape of a single dab: a circle or a
// rectangle with a diameter, an aspect ratio, horizontal and vertical fade
// fractions, an optional N-fold spike symmetry and one of three falloff
// kinds (rational "default", curve-driven "soft" and Gaussian "gauss").
// An applicator rasterizes a generator into a pixel device, one scanline
// at a time.
//
// # Quick Start
//
//	g := brushmask.NewCircle(64, 1, 0.5, 0.5, 2, true)
//
//	mask := brushmask.NewMask(80, 80)
//	mask.Fill(255)
//	data := brushmask.NewMaskProcessingData(mask, nil, 0, 1, 40, 40, 0)
//
//	app := g.Applicator()
//	app.InitializeData(data)
//	app.Process(mask.Bounds())
//
// # Coverage Convention
//
// Generator.ValueAt returns 0 in the opaque core and 255 outside the
// shape. Applicators convert it to an alpha of 255-value and multiply it
// into the device alpha, after applying the optional randomness and
// density of the processing data.
//
// # Implementations
//
// Two paths produce the same pixels within 2/255:
//   - Generic: every pixel through ValueAt, with 3x3 supersampling for
//     dabs smaller than 10 px.
//   - Vectorized: per-shape row processors evaluating 8 lanes at a time
//     with fixed-size arrays the compiler can vectorize.
//
// DetectImplementation probes the host once. Spiked and supersampled
// shapes always use the generic path.
//
// # Serialization
//
// Generators round-trip through XML attributes (see Attributes,
// FromAttributes, MarshalGenerator and Element).
//
// # Concurrency
//
// Configure a generator, then share it read-only. Each goroutine needs its
// own Applicator; ProcessParallel does this for horizontal bands.
//
// # Logging
//
// brushmask is silent by default. See SetLogger.
package brushmask
