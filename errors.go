package brushmask

import "errors"

var (
	// ErrInvalidAttribute is returned when a serialized mask generator
	// carries a value that cannot be parsed.
	ErrInvalidAttribute = errors.New("brushmask: invalid mask generator attribute")

	// ErrUnknownShape is returned for a shape name other than "circle" or "rect".
	ErrUnknownShape = errors.New("brushmask: unknown mask shape")

	// ErrUnknownKind is returned for a generator id other than
	// "default", "soft" or "gauss".
	ErrUnknownKind = errors.New("brushmask: unknown mask generator id")

	// ErrNoElement is returned when decoding input without a mask generator element.
	ErrNoElement = errors.New("brushmask: no MaskGenerator element")
)
