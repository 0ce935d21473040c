package curve

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// ErrInvalidCurve is returned when a curve string cannot be parsed.
var ErrInvalidCurve = errors.New("curve: invalid curve string")

// Point is a control point of a curve.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// cached pairs a lazily computed value with its validity flag.
// Readers call the matching rebuild function when valid is false.
type cached[T any] struct {
	data  T
	valid bool
}

func (c *cached[T]) invalidate() {
	var zero T
	c.data = zero
	c.valid = false
}

// Cubic is a transfer curve interpolated by a natural cubic spline.
//
// The zero value is not usable; create curves with New or Parse.
type Cubic struct {
	points []Point
	name   string

	spline   cached[spline]
	floats   cached[[]float64]
	float32s cached[[]float32]
	uint16s  cached[[]uint16]
}

// New creates a curve through the given points.
// With no points the identity curve (0,0)-(1,1) is returned.
func New(points ...Point) *Cubic {
	if len(points) == 0 {
		points = []Point{{0, 0}, {1, 1}}
	}
	c := &Cubic{}
	c.SetPoints(points)
	return c
}

// Parse reads a curve from its string form "x1,y1;x2,y2;...;".
// The trailing semicolon is optional. At least one point is required.
func Parse(s string) (*Cubic, error) {
	var points []Point
	for _, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		xs, ys, ok := strings.Cut(pair, ",")
		if !ok {
			return nil, fmt.Errorf("%w: point %q has no comma", ErrInvalidCurve, pair)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCurve, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCurve, err)
		}
		points = append(points, Point{X: x, Y: y})
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: no points in %q", ErrInvalidCurve, s)
	}
	return New(points...), nil
}

// MustParse is like Parse but panics on error.
// It is intended for curve literals.
func MustParse(s string) *Cubic {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the curve in the form "x1,y1;x2,y2;...;".
func (c *Cubic) String() string {
	var sb strings.Builder
	for _, p := range c.points {
		sb.WriteString(strconv.FormatFloat(p.X, 'g', -1, 64))
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatFloat(p.Y, 'g', -1, 64))
		sb.WriteByte(';')
	}
	return sb.String()
}

// Clone returns an independent copy of the curve.
func (c *Cubic) Clone() *Cubic {
	clone := New(c.points...)
	clone.name = c.name
	return clone
}

// Name returns the curve name.
func (c *Cubic) Name() string { return c.name }

// SetName sets the curve name.
func (c *Cubic) SetName(name string) { c.name = name }

// Points returns a copy of the control points, sorted by x.
func (c *Cubic) Points() []Point {
	return slices.Clone(c.points)
}

// Len returns the number of control points.
func (c *Cubic) Len() int { return len(c.points) }

// SetPoints replaces all control points.
func (c *Cubic) SetPoints(points []Point) {
	c.points = slices.Clone(points)
	c.keepSorted()
	c.invalidate()
}

// SetPoint moves the control point at index i and returns its index
// after re-sorting.
func (c *Cubic) SetPoint(i int, p Point) int {
	c.points[i] = p
	c.invalidate()
	return c.keepSortedTracking(i)
}

// AddPoint inserts a control point and returns its index.
func (c *Cubic) AddPoint(p Point) int {
	c.points = append(c.points, p)
	c.invalidate()
	return c.keepSortedTracking(len(c.points) - 1)
}

// RemovePoint deletes the control point at index i.
func (c *Cubic) RemovePoint(i int) {
	c.points = slices.Delete(c.points, i, i+1)
	c.invalidate()
}

// IsIdentity reports whether every control point lies on y = x.
func (c *Cubic) IsIdentity() bool {
	for _, p := range c.points {
		if p.X != p.Y {
			return false
		}
	}
	return true
}

// IsConstant reports whether every control point has y == v.
func (c *Cubic) IsConstant(v float64) bool {
	for _, p := range c.points {
		if p.Y != v {
			return false
		}
	}
	return true
}

// Value evaluates the curve at x. Inputs outside the control point range
// take the boundary ordinate; the result is clamped to [0, 1].
func (c *Cubic) Value(x float64) float64 {
	if !c.spline.valid {
		c.spline.data = fit(c.points)
		c.spline.valid = true
	}
	return clamp01(c.spline.data.value(x))
}

// FloatTransfer samples the curve at size evenly spaced positions over
// [0, 1]. The table is cached until the curve changes or a different size
// is requested. The returned slice must not be modified.
func (c *Cubic) FloatTransfer(size int) []float64 {
	if !c.floats.valid || len(c.floats.data) != size {
		c.floats.data = transfer(c, size, 1.0, func(v float64) float64 { return v })
		c.floats.valid = true
	}
	return c.floats.data
}

// Float32Transfer is FloatTransfer with float32 samples, the layout used
// by mask row processors.
func (c *Cubic) Float32Transfer(size int) []float32 {
	if !c.float32s.valid || len(c.float32s.data) != size {
		c.float32s.data = transfer(c, size, 1.0, func(v float64) float32 { return float32(v) })
		c.float32s.valid = true
	}
	return c.float32s.data
}

// Uint16Transfer samples the curve scaled to [0, 0xFFFF].
func (c *Cubic) Uint16Transfer(size int) []uint16 {
	if !c.uint16s.valid || len(c.uint16s.data) != size {
		c.uint16s.data = transfer(c, size, 0xFFFF, func(v float64) uint16 {
			return uint16(math.Round(v)) // #nosec G115 -- v is in [0, 0xFFFF]
		})
		c.uint16s.valid = true
	}
	return c.uint16s.data
}

func (c *Cubic) invalidate() {
	c.spline.invalidate()
	c.floats.invalidate()
	c.float32s.invalidate()
	c.uint16s.invalidate()
}

func (c *Cubic) keepSorted() {
	slices.SortStableFunc(c.points, func(a, b Point) int {
		switch {
		case a.X < b.X:
			return -1
		case a.X > b.X:
			return 1
		}
		return 0
	})
}

// keepSortedTracking sorts the points and returns the new index of the
// point that was at index i.
func (c *Cubic) keepSortedTracking(i int) int {
	p := c.points[i]
	for i > 0 && c.points[i-1].X > p.X {
		c.points[i] = c.points[i-1]
		i--
	}
	for i < len(c.points)-1 && c.points[i+1].X < p.X {
		c.points[i] = c.points[i+1]
		i++
	}
	c.points[i] = p
	return i
}

// sampler is anything with a Value method over [0, 1].
type sampler interface {
	Value(x float64) float64
}

// transfer samples s at size positions, multiplies by scale and converts.
func transfer[T any](s sampler, size int, scale float64, conv func(float64) T) []T {
	if size <= 0 {
		return nil
	}
	out := make([]T, size)
	if size == 1 {
		out[0] = conv(clampRange(s.Value(0)*scale, 0, scale))
		return out
	}
	step := 1.0 / float64(size-1)
	for i := range out {
		out[i] = conv(clampRange(s.Value(float64(i)*step)*scale, 0, scale))
	}
	return out
}

func clamp01(v float64) float64 {
	return clampRange(v, 0, 1)
}

func clampRange(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}
