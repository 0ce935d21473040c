package brushmask

import (
	"fmt"
	"math"
)

// MaskProcessingData is the per-dab context an applicator reads while
// processing: the target device, the optional fill color and the dab
// placement. It is read-only during Process.
type MaskProcessingData struct {
	Device     Device
	ColorSpace ColorSpace
	PixelSize  int

	// Color, when non-nil, is copied into every processed pixel before the
	// coverage is applied. It holds exactly PixelSize bytes.
	Color []byte

	// Randomness in [0, 1] scales each alpha by a factor in [1-r, 1].
	Randomness float64
	// Density in [0, 1] is the probability of keeping a covered pixel.
	Density float64

	CenterX, CenterY float64
	// Cosa and Sina hold the dab rotation.
	Cosa, Sina float64
}

// NewMaskProcessingData builds the context for a dab centered at
// (centerX, centerY) in device coordinates and rotated by angle radians.
//
// It panics if color is non-nil and not exactly one pixel long.
func NewMaskProcessingData(dev Device, color []byte, randomness, density, centerX, centerY, angle float64) *MaskProcessingData {
	cs := dev.ColorSpace()
	if color != nil && len(color) != cs.PixelSize() {
		panic(fmt.Sprintf("brushmask: color has %d bytes, pixel size is %d", len(color), cs.PixelSize()))
	}
	return &MaskProcessingData{
		Device:     dev,
		ColorSpace: cs,
		PixelSize:  cs.PixelSize(),
		Color:      color,
		Randomness: min(max(randomness, 0), 1),
		Density:    min(max(density, 0), 1),
		CenterX:    centerX,
		CenterY:    centerY,
		Cosa:       math.Cos(angle),
		Sina:       math.Sin(angle),
	}
}

// row returns the bytes of the n pixels starting at (x, y).
func (d *MaskProcessingData) row(x, y, n int) []byte {
	b := d.Device.Bounds()
	start := (y-b.Min.Y)*d.Device.Stride() + (x-b.Min.X)*d.PixelSize
	return d.Device.Pix()[start : start+n*d.PixelSize]
}

// fillColor copies the fixed color into every pixel of row.
func (d *MaskProcessingData) fillColor(row []byte) {
	for i := 0; i < len(row); i += d.PixelSize {
		copy(row[i:i+d.PixelSize], d.Color)
	}
}
