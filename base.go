package brushmask

import (
	"math"
	"sync"
)

// maskBase holds the state shared by every generator variant.
type maskBase struct {
	diameter float64
	ratio    float64
	// Fades are stored halved; the accessors return the original value.
	fh, fv         float64
	spikes         int
	antialiasEdges bool
	softness       float64
	scaleX, scaleY float64

	shape Shape
	kind  Kind

	empty bool
	// Spike folding: half-wedge angle and the rotation by -2*wedge.
	spikesAngle float64
	cs, ss      float64

	appOnce sync.Once
	app     Applicator
}

func (b *maskBase) setup(shape Shape, kind Kind, diameter, ratio, fh, fv float64, spikes int, antialias bool) {
	b.diameter = diameter
	b.ratio = ratio
	b.fh = 0.5 * fh
	b.fv = 0.5 * fv
	b.spikes = max(spikes, 2)
	b.antialiasEdges = antialias
	b.softness = 1
	b.scaleX = 1
	b.scaleY = 1
	b.shape = shape
	b.kind = kind
	b.init()
}

func (b *maskBase) init() {
	b.spikesAngle = math.Pi / float64(b.spikes)
	b.cs = math.Cos(-2 * b.spikesAngle)
	b.ss = math.Sin(-2 * b.spikesAngle)
	b.empty = b.ratio == 0 || b.diameter == 0
}

// fixRotation folds (x, y) into the first spike wedge. y must already be
// non-negative. For two spikes the point is returned unchanged.
func (b *maskBase) fixRotation(x, y float64) (float64, float64) {
	if b.spikes <= 2 {
		return x, y
	}
	angle := math.Atan2(y, x)
	for i := 0; i < b.spikes && angle > b.spikesAngle; i++ {
		x, y = b.cs*x-b.ss*y, b.ss*x+b.cs*y
		angle -= 2 * b.spikesAngle
	}
	return x, y
}

func (b *maskBase) setScale(scaleX, scaleY float64) {
	b.scaleX = scaleX
	b.scaleY = scaleY
}

func (b *maskBase) setDiameter(d float64) {
	b.diameter = d
	b.init()
}

// safeSoftness is the reciprocal softness used to scale fade coefficients.
func (b *maskBase) safeSoftness() float64 {
	return 1 / math.Max(0.01, b.softness)
}

// applicator builds the cached applicator for g on first use.
func (b *maskBase) applicator(g Generator) Applicator {
	b.appOnce.Do(func() {
		b.app = NewApplicator(g)
	})
	return b.app
}

func (b *maskBase) base() *maskBase { return b }

// Diameter returns the unscaled width of the shape.
func (b *maskBase) Diameter() float64 { return b.diameter }

// Ratio returns height / width.
func (b *maskBase) Ratio() float64 { return b.ratio }

// HorizontalFade returns the horizontal fade fraction as given.
func (b *maskBase) HorizontalFade() float64 { return 2 * b.fh }

// VerticalFade returns the vertical fade fraction as given.
func (b *maskBase) VerticalFade() float64 { return 2 * b.fv }

// Spikes returns the spike count, at least 2.
func (b *maskBase) Spikes() int { return b.spikes }

// AntialiasEdges reports whether the outer edge gets an antialiasing fade.
func (b *maskBase) AntialiasEdges() bool { return b.antialiasEdges }

// Softness returns the last value passed to SetSoftness, 1 by default.
func (b *maskBase) Softness() float64 { return b.softness }

// ScaleX returns the horizontal device scale.
func (b *maskBase) ScaleX() float64 { return b.scaleX }

// ScaleY returns the vertical device scale.
func (b *maskBase) ScaleY() float64 { return b.scaleY }

func (b *maskBase) Shape() Shape { return b.shape }
func (b *maskBase) Kind() Kind   { return b.kind }

// IsEmpty reports whether the diameter or the ratio is zero. Empty
// generators return 255 everywhere.
func (b *maskBase) IsEmpty() bool { return b.empty }

// CurveString is overridden by the curve variants.
func (b *maskBase) CurveString() string { return "" }

// Width returns the unscaled width of the shape.
func (b *maskBase) Width() float64 { return b.diameter }

// Height returns the unscaled height. Spiked shapes are bounded by a
// circle of the diameter.
func (b *maskBase) Height() float64 {
	if b.spikes == 2 {
		return b.diameter * b.ratio
	}
	return b.diameter
}

// EffectiveSrcWidth is the width in device pixels.
func (b *maskBase) EffectiveSrcWidth() float64 { return b.diameter * b.scaleX }

// EffectiveSrcHeight is the height in device pixels, before spike folding.
func (b *maskBase) EffectiveSrcHeight() float64 { return b.diameter * b.ratio * b.scaleY }

// ShouldSupersample reports whether the dab is small enough that single
// samples alias visibly.
func (b *maskBase) ShouldSupersample() bool {
	return b.EffectiveSrcWidth() < 10 || b.EffectiveSrcHeight() < 10
}

// ShouldVectorize reports whether the row processors apply. Spiked and
// supersampled shapes always take the scalar path.
func (b *maskBase) ShouldVectorize() bool {
	return !b.ShouldSupersample() && b.spikes == 2
}

// norme is the squared Euclidean norm.
func norme(a, b float64) float64 {
	return a*a + b*b
}

// rationalFade is n*(nf-1)/(nf-n) for n <= 1 <= nf, the falloff of the
// default generators. It is 1 at the shape edge.
func rationalFade(n, nf float64) float64 {
	if nf <= n {
		return 1
	}
	return n * (nf - 1) / (nf - n)
}

// toCoverage truncates a 0..255 value to a byte, clamping rounding spill.
func toCoverage(v float64) uint8 {
	switch {
	case v >= 255:
		return 255
	case v > 0:
		return uint8(v)
	default:
		return 0 // also NaN
	}
}
