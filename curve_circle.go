package brushmask

import (
	"math"

	"github.com/gogpu/brushmask/curve"
	"github.com/gogpu/brushmask/internal/wide"
)

// CurveCircle is an elliptical generator whose radial falloff is read from
// a curve.
type CurveCircle struct {
	maskBase
	table softTable

	xcoef, ycoef float64
	fadeMaker    fadeMaker1D
}

// NewCurveCircle returns a soft circle generator. A nil curve selects
// DefaultSoftCurve. The curve is copied.
func NewCurveCircle(diameter, ratio, fh, fv float64, spikes int, c *curve.Cubic, antialias bool) *CurveCircle {
	g := &CurveCircle{}
	g.setup(ShapeCircle, KindSoft, diameter, ratio, fh, fv, spikes, antialias)
	g.table = softTable{curve: softCurve(c), extra: 2}
	g.table.rebuild(g.Width(), g.Height(), g.softness)
	g.fadeMaker = fadeMaker1D{base: g, antialias: antialias}
	g.SetScale(1, 1)
	return g
}

// SetScale sets the device scale and recomputes the normalization used
// to index the transfer table.
func (g *CurveCircle) SetScale(scaleX, scaleY float64) {
	g.setScale(scaleX, scaleY)
	g.xcoef = 2 / g.EffectiveSrcWidth()
	g.ycoef = 2 / g.EffectiveSrcHeight()
	g.fadeMaker.setSquareNormCoeffs(g.xcoef, g.ycoef)
}

// SetSoftness rescales the interior heights of the falloff curve and
// refetches the shared transfer table.
func (g *CurveCircle) SetSoftness(softness float64) {
	if g.table.setSoftness(softness) {
		g.softness = softness
		g.fadeMaker.updateStart()
	}
}

// SetDiameter changes the diameter. The table resolution follows the
// new size.
func (g *CurveCircle) SetDiameter(diameter float64) {
	g.setDiameter(diameter)
	g.table.rebuild(g.Width(), g.Height(), g.softness)
	g.SetScale(g.scaleX, g.scaleY)
}

// CurveString returns the unsoftened falloff curve.
func (g *CurveCircle) CurveString() string { return g.table.curve.String() }

// Applicator returns the cached applicator for g.
func (g *CurveCircle) Applicator() Applicator { return g.applicator(g) }

// fadeValue interpolates the table at a squared normalized distance.
func (g *CurveCircle) fadeValue(dist float64) float64 {
	data := g.table.data
	pos := dist * float64(g.table.resolution)
	i := min(max(int(pos), 0), len(data)-2)
	frac := min(max(pos-float64(i), 0), 1)
	alpha := (1-frac)*float64(data[i]) + frac*float64(data[i+1])
	return (1 - alpha) * 255
}

// ValueAt samples the falloff curve at the squared normalized distance
// of (x, y).
func (g *CurveCircle) ValueAt(x, y float64) uint8 {
	if g.empty {
		return 255
	}
	xr, yr := g.fixRotation(x, math.Abs(y))
	dist := norme(xr*g.xcoef, yr*g.ycoef)
	if v, ok := g.fadeMaker.needFade(dist); ok {
		return toCoverage(v)
	}
	return toCoverage(g.fadeValue(dist))
}

type curveCircleRow struct {
	xcoef, ycoef float32
	resolution   float32
	data         []float32
	fade         fadeLanes1D
}

func (g *CurveCircle) newRowProcessor() rowProcessor {
	return &curveCircleRow{
		xcoef:      float32(g.xcoef),
		ycoef:      float32(g.ycoef),
		resolution: float32(g.table.resolution),
		data:       g.table.data,
		fade:       g.fadeMaker.lanes(),
	}
}

func (p *curveCircleRow) processRow(dst []float32, x0, y int, t rowTransform) {
	eachLaneGroup(dst, x0, y, t, p.kernel)
}

func (p *curveCircleRow) kernel(xr, yr wide.F32x8) wide.F32x8 {
	one := wide.SplatF32(1)
	last := int32(len(p.data) - 2) // #nosec G115 -- table sizes fit in int32

	dist := xr.Scale(p.xcoef).Square().Add(yr.Scale(p.ycoef).Square())
	pos := dist.Scale(p.resolution).Clamp(0, float32(last+1))
	idx := pos.Trunc().Clamp(0, last)
	frac := pos.Sub(idx.Float()).Clamp(0, 1)

	lo := wide.Gather(p.data, idx)
	hi := wide.Gather(p.data, idx.Add(wide.SplatI32(1)))
	alpha := lo.Lerp(hi, frac)
	value := one.Sub(alpha).Scale(255)
	return p.fade.apply(dist, value)
}
