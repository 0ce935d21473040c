package brushmask

import (
	"math"
	"slices"

	"github.com/gogpu/brushmask/curve"
	"github.com/gogpu/brushmask/internal/cache"
)

// DefaultSoftCurve is the falloff used by soft generators created without
// a curve: linear from opaque at the center to transparent at the edge.
const DefaultSoftCurve = "0,1;1,0;"

// transferKey identifies a softened transfer table.
type transferKey struct {
	curve    string
	softness float64
	size     int
}

// softTransfers shares softened tables between generators. Brush engines
// create many generators with the same curve at a handful of sizes.
var softTransfers = cache.New[transferKey, []float32](64)

// softenedTransfer returns the size-entry table of c with its interior
// control point heights scaled by softness. The result is shared and must
// not be modified.
func softenedTransfer(c *curve.Cubic, softness float64, size int) []float32 {
	key := transferKey{curve: c.String(), softness: softness, size: size}
	return softTransfers.GetOrCreate(key, func() []float32 {
		src := c
		if softness != 1 {
			src = softenCurve(c, softness)
		}
		return slices.Clone(src.Float32Transfer(size))
	})
}

// softenCurve scales every control point but the endpoints by softness.
// A two-point curve first gets a midpoint so that it has something to
// scale.
func softenCurve(c *curve.Cubic, softness float64) *curve.Cubic {
	points := c.Points()
	if len(points) == 2 {
		a, b := points[0], points[1]
		points = []curve.Point{a, curve.Pt((a.X+b.X)/2, (a.Y+b.Y)/2), b}
	}
	for i := 1; i < len(points)-1; i++ {
		points[i].Y = min(max(points[i].Y*softness, 0), 1)
	}
	return curve.New(points...)
}

// softCurve returns a private copy of c, or the default soft curve.
func softCurve(c *curve.Cubic) *curve.Cubic {
	if c == nil {
		return curve.MustParse(DefaultSoftCurve)
	}
	return c.Clone()
}

// curveResolution is the number of table steps across the shape, four
// per pixel of the larger extent.
func curveResolution(width, height float64) int {
	return max(1, int(math.Round(math.Max(width, height)*4)))
}

// softTable is the curve state shared by CurveCircle and CurveRectangle.
type softTable struct {
	curve      *curve.Cubic
	resolution int
	// extra is the table size beyond resolution.
	extra       int
	data        []float32
	transformed bool
}

func (t *softTable) rebuild(width, height, softness float64) {
	t.resolution = curveResolution(width, height)
	t.data = softenedTransfer(t.curve, softness, t.resolution+t.extra)
	t.transformed = softness != 1
}

// setSoftness re-derives the table. It reports false, doing nothing, when
// the table is untransformed and softness is 1.
func (t *softTable) setSoftness(softness float64) bool {
	if softness == 1 && !t.transformed {
		return false
	}
	t.data = softenedTransfer(t.curve, softness, t.resolution+t.extra)
	t.transformed = softness != 1
	return true
}
