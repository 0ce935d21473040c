package brushmask

import (
	"math"

	"github.com/gogpu/brushmask/internal/wide"
)

// radialFade is implemented by generators whose value depends on a single
// distance. It returns the unclamped base value in the 0..255 range.
type radialFade interface {
	fadeValue(dist float64) float64
}

// axialFade is implemented by generators with independent x and y extents.
type axialFade interface {
	fadeValue(x, y float64) float64
}

// fadeMaker1D blends the last pixel before the radius linearly toward 255.
type fadeMaker1D struct {
	base      radialFade
	antialias bool

	radius         float64
	fadeStart      float64
	fadeStartValue float64
	fadeCoeff      float64
}

// setRadius places the fade band one pixel inside radius.
func (f *fadeMaker1D) setRadius(radius float64) {
	f.radius = radius
	f.fadeStart = math.Max(0, radius-1)
	f.updateStart()
}

// setSquareNormCoeffs configures the band for distances expressed as a
// squared normalized norm, where 1 is the shape edge and xcoeff, ycoeff
// are the reciprocal half extents.
func (f *fadeMaker1D) setSquareNormCoeffs(xcoeff, ycoeff float64) {
	f.radius = 1
	xf := math.Max(0, 1-xcoeff)
	yf := math.Max(0, 1-ycoeff)
	start := 0.5 * (xf + yf)
	f.fadeStart = start * start
	f.updateStart()
}

func (f *fadeMaker1D) updateStart() {
	f.fadeStartValue = f.base.fadeValue(f.fadeStart)
	f.fadeCoeff = 0
	if span := f.radius - f.fadeStart; span > 0 {
		f.fadeCoeff = math.Max(0, 255-f.fadeStartValue) / span
	}
}

// needFade returns the value to use at dist and true when dist is outside
// the shape or inside the edge band. Otherwise the caller evaluates the
// base shape.
func (f *fadeMaker1D) needFade(dist float64) (float64, bool) {
	if dist > f.radius {
		return 255, true
	}
	if !f.antialias {
		return 0, false
	}
	if dist > f.fadeStart {
		return f.fadeStartValue + (dist-f.fadeStart)*f.fadeCoeff, true
	}
	return 0, false
}

// lanes snapshots the fade maker for a row processor.
func (f *fadeMaker1D) lanes() fadeLanes1D {
	return fadeLanes1D{
		radius:     float32(f.radius),
		start:      float32(f.fadeStart),
		startValue: float32(f.fadeStartValue),
		coeff:      float32(f.fadeCoeff),
		antialias:  f.antialias,
	}
}

type fadeLanes1D struct {
	radius, start, startValue, coeff float32
	antialias                        bool
}

// apply overrides value with the fade band and the exterior.
func (f fadeLanes1D) apply(dist, value wide.F32x8) wide.F32x8 {
	if f.antialias {
		ramp := dist.Sub(wide.SplatF32(f.start)).Scale(f.coeff).Add(wide.SplatF32(f.startValue))
		value = wide.Select(dist.Gt(wide.SplatF32(f.start)), ramp, value)
	}
	return wide.Select(dist.Gt(wide.SplatF32(f.radius)), wide.SplatF32(255), value)
}

// fadeMaker2D blends the last pixel before each half extent toward 255,
// one axis at a time.
type fadeMaker2D struct {
	base      axialFade
	antialias bool

	xLimit, yLimit         float64
	xFadeStart, yFadeStart float64
	xFadeCoeff, yFadeCoeff float64
}

func (f *fadeMaker2D) setLimits(xLimit, yLimit float64) {
	f.xLimit = xLimit
	f.yLimit = yLimit
	f.xFadeStart = xLimit - 1
	f.yFadeStart = yLimit - 1
	f.xFadeCoeff = 1 / (f.xLimit - f.xFadeStart)
	f.yFadeCoeff = 1 / (f.yLimit - f.yFadeStart)
}

// needFade is the 2D counterpart of fadeMaker1D.needFade.
func (f *fadeMaker2D) needFade(x, y float64) (float64, bool) {
	x, y = math.Abs(x), math.Abs(y)
	if x > f.xLimit || y > f.yLimit {
		return 255, true
	}
	if !f.antialias {
		return 0, false
	}
	inX := x > f.xFadeStart
	inY := y > f.yFadeStart
	if !inX && !inY {
		return 0, false
	}
	v := f.base.fadeValue(x, y)
	if inX {
		v += (255 - v) * (x - f.xFadeStart) * f.xFadeCoeff
	}
	if inY && v < 255 {
		v += (255 - v) * (y - f.yFadeStart) * f.yFadeCoeff
	}
	return v, true
}

func (f *fadeMaker2D) lanes() fadeLanes2D {
	return fadeLanes2D{
		xLimit:    float32(f.xLimit),
		yLimit:    float32(f.yLimit),
		xStart:    float32(f.xFadeStart),
		yStart:    float32(f.yFadeStart),
		xCoeff:    float32(f.xFadeCoeff),
		yCoeff:    float32(f.yFadeCoeff),
		antialias: f.antialias,
	}
}

type fadeLanes2D struct {
	xLimit, yLimit float32
	xStart, yStart float32
	xCoeff, yCoeff float32
	antialias      bool
}

// apply blends value for lanes in the edge bands and forces the exterior
// to 255. ax and ay must be absolute coordinates.
func (f fadeLanes2D) apply(ax, ay, value wide.F32x8) wide.F32x8 {
	full := wide.SplatF32(255)
	if f.antialias {
		bx := value.Add(full.Sub(value).Mul(ax.Sub(wide.SplatF32(f.xStart))).Scale(f.xCoeff))
		value = wide.Select(ax.Gt(wide.SplatF32(f.xStart)), bx, value)

		by := value.Add(full.Sub(value).Mul(ay.Sub(wide.SplatF32(f.yStart))).Scale(f.yCoeff))
		value = wide.Select(ay.Gt(wide.SplatF32(f.yStart)).And(value.Lt(full)), by, value)
	}
	outside := ax.Gt(wide.SplatF32(f.xLimit)).Or(ay.Gt(wide.SplatF32(f.yLimit)))
	return wide.Select(outside, full, value)
}
