package brushmask

import (
	"math"

	"github.com/gogpu/brushmask/internal/wide"
)

// minGaussFade keeps the per-axis Gaussian width finite for a full fade.
const minGaussFade = 1e-6

// GaussRectangle is a rectangular generator whose coverage is the product
// of two error-function ramps.
type GaussRectangle struct {
	maskBase

	xfade, yfade          float64
	halfWidth, halfHeight float64
	alphafactor           float64

	fadeMaker fadeMaker2D
}

// NewGaussRectangle returns a Gaussian rectangle generator.
func NewGaussRectangle(diameter, ratio, fh, fv float64, spikes int, antialias bool) *GaussRectangle {
	g := &GaussRectangle{}
	g.setup(ShapeRectangle, KindGauss, diameter, ratio, fh, fv, spikes, antialias)
	g.fadeMaker = fadeMaker2D{base: g, antialias: antialias}
	g.SetScale(1, 1)
	return g
}

// SetScale sets the device scale and recomputes the separable erf
// parameters of both axes.
func (g *GaussRectangle) SetScale(scaleX, scaleY float64) {
	g.setScale(scaleX, scaleY)
	w, h := g.EffectiveSrcWidth(), g.EffectiveSrcHeight()

	xfade := math.Max((1-g.fh)*w*0.1, minGaussFade)
	yfade := math.Max((1-g.fv)*h*0.1, minGaussFade)
	g.xfade = 1 / (math.Sqrt2 * xfade)
	g.yfade = 1 / (math.Sqrt2 * yfade)
	g.halfWidth = 0.5*w - 2.5*xfade
	g.halfHeight = 0.5*h - 2.5*yfade
	g.alphafactor = 255 / (4 * math.Erf(g.halfWidth*g.xfade) * math.Erf(g.halfHeight*g.yfade))

	g.fadeMaker.setLimits(0.5*w, 0.5*h)
}

// SetSoftness only records the value.
func (g *GaussRectangle) SetSoftness(softness float64) {
	g.softness = softness
}

// SetDiameter changes the diameter, keeping the current scale.
func (g *GaussRectangle) SetDiameter(diameter float64) {
	g.setDiameter(diameter)
	g.SetScale(g.scaleX, g.scaleY)
}

// Applicator returns the cached applicator for g.
func (g *GaussRectangle) Applicator() Applicator { return g.applicator(g) }

func (g *GaussRectangle) fadeValue(x, y float64) float64 {
	ex := math.Erf((g.halfWidth+x)*g.xfade) + math.Erf((g.halfWidth-x)*g.xfade)
	ey := math.Erf((g.halfHeight+y)*g.yfade) + math.Erf((g.halfHeight-y)*g.yfade)
	return 255 - g.alphafactor*ex*ey
}

// ValueAt returns the product of the two axis erf profiles at (x, y),
// inverted so that the core is 0.
func (g *GaussRectangle) ValueAt(x, y float64) uint8 {
	if g.empty {
		return 255
	}
	xr, yr := g.fixRotation(x, math.Abs(y))
	if v, ok := g.fadeMaker.needFade(xr, yr); ok {
		return toCoverage(v)
	}
	return toCoverage(g.fadeValue(xr, yr))
}

type gaussRectangleRow struct {
	xfade, yfade          float32
	halfWidth, halfHeight float32
	alphafactor           float32
	fade                  fadeLanes2D
}

func (g *GaussRectangle) newRowProcessor() rowProcessor {
	return &gaussRectangleRow{
		xfade:       float32(g.xfade),
		yfade:       float32(g.yfade),
		halfWidth:   float32(g.halfWidth),
		halfHeight:  float32(g.halfHeight),
		alphafactor: float32(g.alphafactor),
		fade:        g.fadeMaker.lanes(),
	}
}

func (p *gaussRectangleRow) processRow(dst []float32, x0, y int, t rowTransform) {
	eachLaneGroup(dst, x0, y, t, p.kernel)
}

func (p *gaussRectangleRow) kernel(xr, yr wide.F32x8) wide.F32x8 {
	ax, ay := xr.Abs(), yr.Abs()
	hw := wide.SplatF32(p.halfWidth)
	hh := wide.SplatF32(p.halfHeight)

	ex := hw.Add(ax).Scale(p.xfade).Erf().Add(hw.Sub(ax).Scale(p.xfade).Erf())
	ey := hh.Add(ay).Scale(p.yfade).Erf().Add(hh.Sub(ay).Scale(p.yfade).Erf())
	value := wide.SplatF32(255).Sub(ex.Mul(ey).Scale(p.alphafactor))
	return p.fade.apply(ax, ay, value)
}
