package brushmask

import (
	"math"

	"github.com/gogpu/brushmask/internal/wide"
)

// Circle is the default elliptical generator with a rational falloff.
type Circle struct {
	maskBase

	xcoef, ycoef         float64
	xfadecoef, yfadecoef float64
	transformedFadeX     float64
	transformedFadeY     float64
}

// NewCircle returns a circle generator. fh and fv are the horizontal and
// vertical fade fractions in [0, 1].
func NewCircle(diameter, ratio, fh, fv float64, spikes int, antialias bool) *Circle {
	g := &Circle{}
	g.setup(ShapeCircle, KindDefault, diameter, ratio, fh, fv, spikes, antialias)
	g.SetScale(1, 1)
	return g
}

// SetScale sets the device scale and recomputes the normalization and
// fade coefficients from the scaled size.
func (g *Circle) SetScale(scaleX, scaleY float64) {
	g.setScale(scaleX, scaleY)
	w, h := g.EffectiveSrcWidth(), g.EffectiveSrcHeight()
	g.xcoef = 2 / w
	g.ycoef = 2 / h
	g.xfadecoef = fadeCoefficient(g.fh, w)
	g.yfadecoef = fadeCoefficient(g.fv, h)
	g.updateSoftness()
}

// SetSoftness divides the fade coefficients by softness, floored at 0.01.
func (g *Circle) SetSoftness(softness float64) {
	g.softness = softness
	g.updateSoftness()
}

// SetDiameter changes the diameter, keeping the current scale.
func (g *Circle) SetDiameter(diameter float64) {
	g.setDiameter(diameter)
	g.SetScale(g.scaleX, g.scaleY)
}

func (g *Circle) updateSoftness() {
	s := g.safeSoftness()
	g.transformedFadeX = g.xfadecoef * s
	g.transformedFadeY = g.yfadecoef * s
}

// Applicator returns the cached applicator for g, creating it on first use.
func (g *Circle) Applicator() Applicator { return g.applicator(g) }

// ValueAt returns the mask value at (x, y) relative to the dab center:
// 0 in the opaque core, 255 outside the shape.
func (g *Circle) ValueAt(x, y float64) uint8 {
	if g.empty {
		return 255
	}
	xr, yr := g.fixRotation(x, math.Abs(y))

	n := norme(xr*g.xcoef, yr*g.ycoef)
	if n > 1 {
		return 255
	}
	if g.antialiasEdges {
		xr = math.Abs(xr) + 1
		yr = math.Abs(yr) + 1
	}
	nf := norme(xr*g.transformedFadeX, yr*g.transformedFadeY)
	if nf < 1 {
		return 0
	}
	return toCoverage(255 * rationalFade(n, nf))
}

// fadeCoefficient is the reciprocal of the halved fade extent. A zero fade
// yields 1, which keeps the ramp finite.
func fadeCoefficient(halfFade, extent float64) float64 {
	if halfFade == 0 {
		return 1
	}
	return 1 / (halfFade * extent)
}

type circleRow struct {
	xcoef, ycoef float32
	fadeX, fadeY float32
	antialias    bool
}

func (g *Circle) newRowProcessor() rowProcessor {
	return &circleRow{
		xcoef:     float32(g.xcoef),
		ycoef:     float32(g.ycoef),
		fadeX:     float32(g.transformedFadeX),
		fadeY:     float32(g.transformedFadeY),
		antialias: g.antialiasEdges,
	}
}

func (p *circleRow) processRow(dst []float32, x0, y int, t rowTransform) {
	eachLaneGroup(dst, x0, y, t, p.kernel)
}

func (p *circleRow) kernel(xr, yr wide.F32x8) wide.F32x8 {
	one := wide.SplatF32(1)
	full := wide.SplatF32(255)

	n := xr.Scale(p.xcoef).Square().Add(yr.Scale(p.ycoef).Square())
	if p.antialias {
		xr = xr.Abs().Add(one)
		yr = yr.Abs().Add(one)
	}
	nf := xr.Scale(p.fadeX).Square().Add(yr.Scale(p.fadeY).Square())

	value := rationalFadeLanes(n, nf).Scale(255)
	value = wide.Select(nf.Lt(one), wide.SplatF32(0), value)
	return wide.Select(n.Gt(one), full, value)
}
