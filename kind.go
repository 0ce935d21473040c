package brushmask

import "fmt"

// Shape is the base silhouette of a mask generator.
type Shape uint8

const (
	// ShapeCircle is an ellipse inscribed in the diameter x diameter*ratio box.
	ShapeCircle Shape = iota
	// ShapeRectangle fills the diameter x diameter*ratio box.
	ShapeRectangle
)

// Kind selects how coverage falls off toward the edge of the shape.
type Kind uint8

const (
	// KindDefault uses the rational fade controlled by the fade fractions.
	KindDefault Kind = iota
	// KindSoft looks the falloff up in a user curve.
	KindSoft
	// KindGauss uses an error-function (Gaussian) falloff.
	KindGauss
)

var shapeNames = [...]string{
	ShapeCircle:    "circle",
	ShapeRectangle: "rect",
}

var kindNames = [...]string{
	KindDefault: "default",
	KindSoft:    "soft",
	KindGauss:   "gauss",
}

// String returns the serialized name of the shape.
func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("Shape(%d)", s)
}

// String returns the serialized id of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// ParseShape maps a serialized shape name back to a Shape.
func ParseShape(name string) (Shape, error) {
	for s, n := range shapeNames {
		if n == name {
			return Shape(s), nil // #nosec G115 -- index of a 2-element table
		}
	}
	return ShapeCircle, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// ParseKind maps a serialized generator id back to a Kind.
func ParseKind(id string) (Kind, error) {
	for k, n := range kindNames {
		if n == id {
			return Kind(k), nil // #nosec G115 -- index of a 3-element table
		}
	}
	return KindDefault, fmt.Errorf("%w: %q", ErrUnknownKind, id)
}
