package brushmask

import (
	"math"

	"github.com/gogpu/brushmask/curve"
	"github.com/gogpu/brushmask/internal/wide"
)

// CurveRectangle is a rectangular generator whose falloff along each axis
// is read from a curve. The two axes are multiplied.
type CurveRectangle struct {
	maskBase
	table softTable

	xcoeff, ycoeff float64
	fadeMaker      fadeMaker2D
}

// NewCurveRectangle returns a soft rectangle generator. A nil curve
// selects DefaultSoftCurve. The curve is copied.
func NewCurveRectangle(diameter, ratio, fh, fv float64, spikes int, c *curve.Cubic, antialias bool) *CurveRectangle {
	g := &CurveRectangle{}
	g.setup(ShapeRectangle, KindSoft, diameter, ratio, fh, fv, spikes, antialias)
	g.table = softTable{curve: softCurve(c), extra: 1}
	g.table.rebuild(g.Width(), g.Height(), g.softness)
	g.fadeMaker = fadeMaker2D{base: g, antialias: antialias}
	g.SetScale(1, 1)
	return g
}

// SetScale sets the device scale and recomputes the axis coefficients.
func (g *CurveRectangle) SetScale(scaleX, scaleY float64) {
	g.setScale(scaleX, scaleY)
	halfWidth := 0.5 * g.EffectiveSrcWidth()
	halfHeight := 0.5 * g.EffectiveSrcHeight()
	g.xcoeff = 1 / halfWidth
	g.ycoeff = 1 / halfHeight
	g.fadeMaker.setLimits(halfWidth, halfHeight)
}

// SetSoftness rescales the falloff curve like CurveCircle.SetSoftness.
func (g *CurveRectangle) SetSoftness(softness float64) {
	if g.table.setSoftness(softness) {
		g.softness = softness
	}
}

// SetDiameter changes the diameter and resizes the transfer table.
func (g *CurveRectangle) SetDiameter(diameter float64) {
	g.setDiameter(diameter)
	g.table.rebuild(g.Width(), g.Height(), g.softness)
	g.SetScale(g.scaleX, g.scaleY)
}

// CurveString returns the unsoftened falloff curve.
func (g *CurveRectangle) CurveString() string { return g.table.curve.String() }

// Applicator returns the cached applicator for g.
func (g *CurveRectangle) Applicator() Applicator { return g.applicator(g) }

// tableIndex maps a normalized coordinate to the nearest table entry.
func tableIndex(v float64, resolution int) int {
	return min(max(int(math.Round(v*float64(resolution))), 0), resolution)
}

func (g *CurveRectangle) fadeValue(x, y float64) float64 {
	data := g.table.data
	res := g.table.resolution
	s := tableIndex(math.Abs(x)*g.xcoeff, res)
	t := tableIndex(math.Abs(y)*g.ycoeff, res)
	blend := float64(data[s]) * (1 - float64(data[res-s])) *
		float64(data[t]) * (1 - float64(data[res-t]))
	return (1 - blend) * 255
}

// ValueAt blends the curve along both axes at (x, y).
func (g *CurveRectangle) ValueAt(x, y float64) uint8 {
	if g.empty {
		return 255
	}
	xr, yr := g.fixRotation(x, math.Abs(y))
	if v, ok := g.fadeMaker.needFade(xr, yr); ok {
		return toCoverage(v)
	}
	return toCoverage(g.fadeValue(xr, yr))
}

type curveRectangleRow struct {
	xcoeff, ycoeff float32
	resolution     int32
	data           []float32
	fade           fadeLanes2D
}

func (g *CurveRectangle) newRowProcessor() rowProcessor {
	return &curveRectangleRow{
		xcoeff:     float32(g.xcoeff),
		ycoeff:     float32(g.ycoeff),
		resolution: int32(g.table.resolution), // #nosec G115 -- table sizes fit in int32
		data:       g.table.data,
		fade:       g.fadeMaker.lanes(),
	}
}

func (p *curveRectangleRow) processRow(dst []float32, x0, y int, t rowTransform) {
	eachLaneGroup(dst, x0, y, t, p.kernel)
}

func (p *curveRectangleRow) kernel(xr, yr wide.F32x8) wide.F32x8 {
	one := wide.SplatF32(1)
	res := float32(p.resolution)
	resLanes := wide.SplatI32(p.resolution)

	ax, ay := xr.Abs(), yr.Abs()
	s := ax.Scale(p.xcoeff * res).Clamp(0, res).Round().Clamp(0, p.resolution)
	t := ay.Scale(p.ycoeff * res).Clamp(0, res).Round().Clamp(0, p.resolution)

	fx := wide.Gather(p.data, s).Mul(one.Sub(wide.Gather(p.data, resLanes.Sub(s))))
	fy := wide.Gather(p.data, t).Mul(one.Sub(wide.Gather(p.data, resLanes.Sub(t))))
	value := one.Sub(fx.Mul(fy)).Scale(255)
	return p.fade.apply(ax, ay, value)
}
