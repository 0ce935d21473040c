package brushmask

import "image"

// Device is a pixel buffer the applicators write into.
type Device interface {
	// Bounds is the device area in device coordinates.
	Bounds() image.Rectangle
	// Pix holds the pixels row by row starting at Bounds().Min.
	Pix() []byte
	// Stride is the number of bytes between vertically adjacent pixels.
	Stride() int
	ColorSpace() ColorSpace
}

// Mask is an 8-bit alpha device.
// Values range from 0 (fully transparent) to 255 (fully opaque).
type Mask struct {
	width  int
	height int
	data   []uint8
}

// NewMask creates a new empty mask with the given dimensions.
// All values are initialized to 0 (fully transparent).
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// Pix returns the underlying mask data slice.
func (m *Mask) Pix() []byte { return m.data }

// Stride returns the row length in bytes.
func (m *Mask) Stride() int { return m.width }

// ColorSpace returns Alpha8.
func (m *Mask) ColorSpace() ColorSpace { return Alpha8{} }

// At returns the mask value at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Set sets the mask value at (x, y).
// Coordinates outside the mask bounds are ignored.
func (m *Mask) Set(x, y int, value uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = value
}

// Fill fills the entire mask with a value.
func (m *Mask) Fill(value uint8) {
	for i := range m.data {
		m.data[i] = value
	}
}

// ToImage returns the mask as an *image.Gray, 255 rendering white.
// Preview tools use it; the data is copied.
func (m *Mask) ToImage() *image.Gray {
	img := image.NewGray(m.Bounds())
	copy(img.Pix, m.data)
	return img
}
