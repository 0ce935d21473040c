package brushmask

import (
	"image"
	"math/rand/v2"

	"github.com/gogpu/brushmask/internal/wide"
)

// Applicator rasterizes a generator into the device of a
// MaskProcessingData.
//
// An Applicator owns a random stream and scratch buffers, so a single
// Applicator must not run Process concurrently. Use one Applicator per
// goroutine (see ProcessParallel).
type Applicator interface {
	// InitializeData binds the processing context used by Process.
	InitializeData(data *MaskProcessingData)
	// Process writes the dab into rect, clipped to the device bounds.
	// It panics if InitializeData has not been called.
	Process(rect image.Rectangle)
	// Implementation reports the selected implementation.
	Implementation() Implementation
}

// NewApplicator returns an applicator for g using the detected
// implementation unless overridden by options.
func NewApplicator(g Generator, opts ...ApplicatorOption) Applicator {
	return newApplicator(g, resolveApplicatorOptions(opts))
}

func newApplicator(g Generator, o applicatorOptions) Applicator {
	base := applicatorBase{
		g:    g,
		impl: o.impl,
		rng:  rand.New(rand.NewPCG(o.seed, o.seed^0x9e3779b97f4a7c15)),
	}
	Logger().Debug("brushmask: applicator created",
		"impl", o.impl, "shape", g.Shape(), "kind", g.Kind())
	if !o.impl.Vectorized() {
		base.impl = ImplGeneric
		return &scalarApplicator{applicatorBase: base}
	}
	return &vectorApplicator{applicatorBase: base}
}

// applicatorBase is the state and scalar path shared by both applicators.
type applicatorBase struct {
	g    Generator
	data *MaskProcessingData
	impl Implementation
	rng  *rand.Rand

	alpha []uint8
}

func (a *applicatorBase) InitializeData(data *MaskProcessingData) {
	a.data = data
}

func (a *applicatorBase) Implementation() Implementation {
	return a.impl
}

// clip validates the context and returns the region to process.
func (a *applicatorBase) clip(rect image.Rectangle) image.Rectangle {
	if a.data == nil {
		panic("brushmask: Process called before InitializeData")
	}
	return rect.Intersect(a.data.Device.Bounds())
}

// supersampleOffsets are the sub-pixel positions averaged for small dabs.
var supersampleOffsets = [3]float64{-1.0 / 3, 0, 1.0 / 3}

func (a *applicatorBase) processScalar(rect image.Rectangle) {
	d := a.data
	g := a.g
	width := rect.Dx()
	if cap(a.alpha) < width {
		a.alpha = make([]uint8, width)
	}
	alpha := a.alpha[:width]
	supersample := g.ShouldSupersample()

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		y_ := float64(y) - d.CenterY
		for i := range alpha {
			x_ := float64(rect.Min.X+i) - d.CenterX

			var value uint8
			if supersample {
				sum := 0
				for _, oy := range supersampleOffsets {
					for _, ox := range supersampleOffsets {
						sx, sy := x_+ox, y_+oy
						sum += int(g.ValueAt(sx*d.Cosa-sy*d.Sina, sx*d.Sina+sy*d.Cosa))
					}
				}
				value = uint8(sum / 9) // #nosec G115 -- average of bytes
			} else {
				value = g.ValueAt(x_*d.Cosa-y_*d.Sina, x_*d.Sina+y_*d.Cosa)
			}
			alpha[i] = a.jitter(255 - value)
		}

		row := d.row(rect.Min.X, y, width)
		if d.Color != nil {
			d.fillColor(row)
		}
		d.ColorSpace.ApplyAlphaMask(row, alpha, width)
	}
}

// jitter applies randomness and density to one alpha value.
func (a *applicatorBase) jitter(alpha uint8) uint8 {
	d := a.data
	if d.Randomness != 0 {
		random := (1 - d.Randomness) + d.Randomness*a.rng.Float64()
		alpha = uint8(float64(alpha) * random) // #nosec G115 -- random <= 1
	}
	if d.Density != 1 && alpha != 0 && !(d.Density >= a.rng.Float64()) {
		alpha = 0
	}
	return alpha
}

// scalarApplicator evaluates every pixel through Generator.ValueAt.
type scalarApplicator struct {
	applicatorBase
}

func (a *scalarApplicator) Process(rect image.Rectangle) {
	rect = a.clip(rect)
	if rect.Empty() {
		return
	}
	a.processScalar(rect)
}

// vectorApplicator evaluates whole scanlines through a row processor and
// falls back to the scalar path for shapes the processors do not cover.
type vectorApplicator struct {
	applicatorBase

	buf []float32
}

func (a *vectorApplicator) Process(rect image.Rectangle) {
	rect = a.clip(rect)
	if rect.Empty() {
		return
	}
	if !a.g.ShouldVectorize() {
		a.processScalar(rect)
		return
	}
	a.processVector(rect)
}

func (a *vectorApplicator) processVector(rect image.Rectangle) {
	d := a.data
	width := rect.Dx()
	padded := (width + wide.Lanes - 1) / wide.Lanes * wide.Lanes
	if cap(a.buf) < padded {
		a.buf = make([]float32, padded)
	}
	buf := a.buf[:padded]

	rp := a.g.newRowProcessor()
	t := newRowTransform(d)
	tail := d.Randomness != 0 || d.Density != 1

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		rp.processRow(buf, rect.Min.X, y, t)
		if tail {
			a.jitterRow(buf[:width])
		}

		row := d.row(rect.Min.X, y, width)
		if d.Color != nil {
			d.fillColor(row)
		}
		d.ColorSpace.ApplyInverseNormalizedFloatMask(row, buf, width)
	}
}

// jitterRow applies randomness and density to normalized row values.
func (a *vectorApplicator) jitterRow(buf []float32) {
	d := a.data
	for i, v := range buf {
		dab := 1 - v
		if d.Randomness != 0 {
			dab *= float32((1 - d.Randomness) + d.Randomness*a.rng.Float64())
		}
		if d.Density != 1 && dab != 0 && !(d.Density >= a.rng.Float64()) {
			dab = 0
		}
		buf[i] = 1 - dab
	}
}
