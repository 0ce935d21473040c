package brushmask

import (
	"math"

	"github.com/gogpu/brushmask/internal/wide"
)

// Rectangle is the default rectangular generator. Each axis fades with the
// same rational falloff as Circle and the stronger fade wins.
type Rectangle struct {
	maskBase

	xcoeff, ycoeff         float64
	xfadecoeff, yfadecoeff float64
	transformedFadeX       float64
	transformedFadeY       float64
}

// NewRectangle returns a rectangle generator.
func NewRectangle(diameter, ratio, fh, fv float64, spikes int, antialias bool) *Rectangle {
	g := &Rectangle{}
	g.setup(ShapeRectangle, KindDefault, diameter, ratio, fh, fv, spikes, antialias)
	g.SetScale(1, 1)
	return g
}

// SetScale sets the device scale and recomputes the per-axis coefficients.
func (g *Rectangle) SetScale(scaleX, scaleY float64) {
	g.setScale(scaleX, scaleY)
	w, h := g.EffectiveSrcWidth(), g.EffectiveSrcHeight()
	g.xcoeff = 2 / w
	g.ycoeff = 2 / h
	g.xfadecoeff = fadeCoefficient(g.fh, w)
	g.yfadecoeff = fadeCoefficient(g.fv, h)
	g.updateSoftness()
}

// SetSoftness divides the fade coefficients by softness, floored at 0.01.
func (g *Rectangle) SetSoftness(softness float64) {
	g.softness = softness
	g.updateSoftness()
}

// SetDiameter changes the diameter, keeping the current scale.
func (g *Rectangle) SetDiameter(diameter float64) {
	g.setDiameter(diameter)
	g.SetScale(g.scaleX, g.scaleY)
}

func (g *Rectangle) updateSoftness() {
	s := g.safeSoftness()
	g.transformedFadeX = g.xfadecoeff * s
	g.transformedFadeY = g.yfadecoeff * s
}

// Applicator returns the cached applicator for g.
func (g *Rectangle) Applicator() Applicator { return g.applicator(g) }

// ValueAt returns the larger of the two axis falloffs at (x, y).
func (g *Rectangle) ValueAt(x, y float64) uint8 {
	if g.empty {
		return 255
	}
	xr, yr := g.fixRotation(x, math.Abs(y))
	xr, yr = math.Abs(xr), math.Abs(yr)

	nxr := xr * g.xcoeff
	nyr := yr * g.ycoeff
	if nxr > 1 || nyr > 1 {
		return 255
	}
	if g.antialiasEdges {
		xr++
		yr++
	}
	fxr := xr * g.transformedFadeX
	fyr := yr * g.transformedFadeY

	ret := 0.0
	if fxr > 1 {
		ret = rationalFade(nxr, fxr)
	}
	if fyr > 1 {
		if v := rationalFade(nyr, fyr); v > ret {
			ret = v
		}
	}
	return toCoverage(ret * 255)
}

type rectangleRow struct {
	xcoeff, ycoeff float32
	fadeX, fadeY   float32
	antialias      bool
}

func (g *Rectangle) newRowProcessor() rowProcessor {
	return &rectangleRow{
		xcoeff:    float32(g.xcoeff),
		ycoeff:    float32(g.ycoeff),
		fadeX:     float32(g.transformedFadeX),
		fadeY:     float32(g.transformedFadeY),
		antialias: g.antialiasEdges,
	}
}

func (p *rectangleRow) processRow(dst []float32, x0, y int, t rowTransform) {
	eachLaneGroup(dst, x0, y, t, p.kernel)
}

func (p *rectangleRow) kernel(xr, yr wide.F32x8) wide.F32x8 {
	one := wide.SplatF32(1)
	zero := wide.SplatF32(0)

	xr, yr = xr.Abs(), yr.Abs()
	nxr := xr.Scale(p.xcoeff)
	nyr := yr.Scale(p.ycoeff)
	outside := nxr.Gt(one).Or(nyr.Gt(one))

	if p.antialias {
		xr = xr.Add(one)
		yr = yr.Add(one)
	}
	fxr := xr.Scale(p.fadeX)
	fyr := yr.Scale(p.fadeY)

	fx := wide.Select(fxr.Gt(one), rationalFadeLanes(nxr, fxr), zero)
	fy := wide.Select(fyr.Gt(one), rationalFadeLanes(nyr, fyr), zero)
	value := fx.Max(fy).Scale(255)
	return wide.Select(outside, wide.SplatF32(255), value)
}
