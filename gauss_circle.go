package brushmask

import (
	"math"

	"github.com/gogpu/brushmask/internal/wide"
)

// GaussCircle is an elliptical generator with an error-function falloff.
type GaussCircle struct {
	maskBase

	ycoef       float64
	fade        float64
	center      float64
	distfactor  float64
	alphafactor float64

	fadeMaker fadeMaker1D
}

// NewGaussCircle returns a Gaussian circle generator.
func NewGaussCircle(diameter, ratio, fh, fv float64, spikes int, antialias bool) *GaussCircle {
	g := &GaussCircle{}
	g.setup(ShapeCircle, KindGauss, diameter, ratio, fh, fv, spikes, antialias)
	g.fadeMaker = fadeMaker1D{base: g, antialias: antialias}
	g.SetScale(1, 1)
	return g
}

// SetScale sets the device scale and recomputes the erf center and
// distance factor.
func (g *GaussCircle) SetScale(scaleX, scaleY float64) {
	g.setScale(scaleX, scaleY)
	w := g.EffectiveSrcWidth()

	g.ycoef = scaleX / (scaleY * g.ratio)
	// fh and fv are stored halved, so this is 1 - (hfade+vfade)/2.
	g.fade = min(max(1-(g.fh+g.fv), 1e-6), 1-1e-6)
	g.center = (2.5 * (6761*g.fade - 10000)) / (math.Sqrt2 * 6761 * g.fade)
	g.alphafactor = 255 / (2 * math.Erf(g.center))
	g.distfactor = math.Sqrt2 * 12500 / (6761 * g.fade * w / 2)

	g.fadeMaker.setRadius(0.5 * w)
}

// SetSoftness only records the value; the Gaussian falloff has no
// softness term.
func (g *GaussCircle) SetSoftness(softness float64) {
	g.softness = softness
}

// SetDiameter changes the diameter, keeping the current scale.
func (g *GaussCircle) SetDiameter(diameter float64) {
	g.setDiameter(diameter)
	g.SetScale(g.scaleX, g.scaleY)
}

// Applicator returns the cached applicator for g.
func (g *GaussCircle) Applicator() Applicator { return g.applicator(g) }

func (g *GaussCircle) fadeValue(dist float64) float64 {
	dist *= g.distfactor
	return 255 - g.alphafactor*(math.Erf(dist+g.center)-math.Erf(dist-g.center))
}

// ValueAt returns the Gaussian falloff at (x, y), 0 at the center.
func (g *GaussCircle) ValueAt(x, y float64) uint8 {
	if g.empty {
		return 255
	}
	xr, yr := g.fixRotation(x, math.Abs(y))
	dist := math.Sqrt(norme(xr, yr*g.ycoef))
	if v, ok := g.fadeMaker.needFade(dist); ok {
		return toCoverage(v)
	}
	return toCoverage(g.fadeValue(dist))
}

type gaussCircleRow struct {
	ycoef       float32
	center      float32
	distfactor  float32
	alphafactor float32
	fade        fadeLanes1D
}

func (g *GaussCircle) newRowProcessor() rowProcessor {
	return &gaussCircleRow{
		ycoef:       float32(g.ycoef),
		center:      float32(g.center),
		distfactor:  float32(g.distfactor),
		alphafactor: float32(g.alphafactor),
		fade:        g.fadeMaker.lanes(),
	}
}

func (p *gaussCircleRow) processRow(dst []float32, x0, y int, t rowTransform) {
	eachLaneGroup(dst, x0, y, t, p.kernel)
}

func (p *gaussCircleRow) kernel(xr, yr wide.F32x8) wide.F32x8 {
	dist := xr.Square().Add(yr.Scale(p.ycoef).Square()).Sqrt()
	d := dist.Scale(p.distfactor)
	c := wide.SplatF32(p.center)
	erfs := d.Add(c).Erf().Sub(d.Sub(c).Erf())
	value := wide.SplatF32(255).Sub(erfs.Scale(p.alphafactor))
	return p.fade.apply(dist, value)
}
