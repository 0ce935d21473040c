package brushmask

import (
	"fmt"

	"github.com/gogpu/brushmask/curve"
)

// Generator computes the coverage of a brush dab.
//
// ValueAt returns 0 in the opaque core of the shape and 255 in the
// transparent exterior. Coordinates are relative to the dab center, in
// pixels, after the dab rotation has been removed.
//
// A Generator is not safe for concurrent mutation. Once configured it may
// be read concurrently, which is what ProcessParallel does.
//
// The interface is sealed: the six variants in this package are its only
// implementations.
type Generator interface {
	// ValueAt evaluates the shape at (x, y).
	ValueAt(x, y float64) uint8

	// SetScale sets the dab scale and re-derives all coefficients.
	SetScale(scaleX, scaleY float64)
	// SetSoftness sets the softness factor (1 = unchanged).
	SetSoftness(softness float64)
	// SetDiameter changes the diameter and re-derives all coefficients.
	SetDiameter(diameter float64)

	Diameter() float64
	Ratio() float64
	HorizontalFade() float64
	VerticalFade() float64
	Spikes() int
	AntialiasEdges() bool
	Softness() float64
	ScaleX() float64
	ScaleY() float64
	Width() float64
	Height() float64
	EffectiveSrcWidth() float64
	EffectiveSrcHeight() float64

	// IsEmpty reports whether the shape has no area (zero diameter or ratio).
	IsEmpty() bool
	// ShouldSupersample reports whether the scalar path averages 3x3 samples.
	ShouldSupersample() bool
	// ShouldVectorize reports whether the row processors can be used.
	ShouldVectorize() bool

	Shape() Shape
	Kind() Kind
	// CurveString returns the serialized softness curve, or "" for
	// variants without one.
	CurveString() string

	// Applicator returns an applicator bound to this generator. It is built
	// on first use with the detected implementation and cached.
	Applicator() Applicator

	newRowProcessor() rowProcessor
	base() *maskBase
}

// Parameters describes a mask generator independent of its variant.
type Parameters struct {
	// Diameter is the bounding width of the shape in pixels.
	Diameter float64
	// Ratio is height / width.
	Ratio float64
	// HorizontalFade and VerticalFade are the fade fractions in [0, 1].
	HorizontalFade float64
	VerticalFade   float64
	// Spikes is the rotational symmetry order; values below 2 mean 2.
	Spikes int
	// AntialiasEdges enables the extra fade band along the edge.
	AntialiasEdges bool

	Shape Shape
	Kind  Kind
	// Curve is the falloff curve of KindSoft generators. Nil means the
	// default linear falloff "0,1;1,0;". The generator keeps its own copy.
	Curve *curve.Cubic
}

// DefaultParameters returns the parameters used when nothing is specified:
// a 1 px hard circle.
func DefaultParameters() Parameters {
	return Parameters{
		Diameter: 1,
		Ratio:    1,
		Spikes:   2,
		Shape:    ShapeCircle,
		Kind:     KindDefault,
	}
}

// NewGenerator builds the variant selected by p.Kind and p.Shape.
func NewGenerator(p Parameters) (Generator, error) {
	switch p.Kind {
	case KindDefault:
		switch p.Shape {
		case ShapeCircle:
			return NewCircle(p.Diameter, p.Ratio, p.HorizontalFade, p.VerticalFade, p.Spikes, p.AntialiasEdges), nil
		case ShapeRectangle:
			return NewRectangle(p.Diameter, p.Ratio, p.HorizontalFade, p.VerticalFade, p.Spikes, p.AntialiasEdges), nil
		}
	case KindGauss:
		switch p.Shape {
		case ShapeCircle:
			return NewGaussCircle(p.Diameter, p.Ratio, p.HorizontalFade, p.VerticalFade, p.Spikes, p.AntialiasEdges), nil
		case ShapeRectangle:
			return NewGaussRectangle(p.Diameter, p.Ratio, p.HorizontalFade, p.VerticalFade, p.Spikes, p.AntialiasEdges), nil
		}
	case KindSoft:
		switch p.Shape {
		case ShapeCircle:
			return NewCurveCircle(p.Diameter, p.Ratio, p.HorizontalFade, p.VerticalFade, p.Spikes, p.Curve, p.AntialiasEdges), nil
		case ShapeRectangle:
			return NewCurveRectangle(p.Diameter, p.Ratio, p.HorizontalFade, p.VerticalFade, p.Spikes, p.Curve, p.AntialiasEdges), nil
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, p.Kind)
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownShape, p.Shape)
}

// ParametersOf returns the parameters g was built from, with its current
// diameter. For soft generators Curve is a copy of the unsoftened curve.
func ParametersOf(g Generator) Parameters {
	b := g.base()
	p := Parameters{
		Diameter:       b.diameter,
		Ratio:          b.ratio,
		HorizontalFade: b.HorizontalFade(),
		VerticalFade:   b.VerticalFade(),
		Spikes:         b.spikes,
		AntialiasEdges: b.antialiasEdges,
		Shape:          b.shape,
		Kind:           b.kind,
	}
	if s := g.CurveString(); s != "" {
		p.Curve = curve.MustParse(s)
	}
	return p
}
