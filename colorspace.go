package brushmask

import "github.com/gogpu/brushmask/internal/wide"

// ColorSpace multiplies mask coverage into the alpha of packed pixels.
type ColorSpace interface {
	// PixelSize is the number of bytes per pixel.
	PixelSize() int
	// ApplyAlphaMask multiplies the alpha of n pixels by alpha[i]/255.
	ApplyAlphaMask(pixels []byte, alpha []uint8, n int)
	// ApplyInverseNormalizedFloatMask multiplies the alpha of n pixels by
	// 1-mask[i], where mask holds normalized coverage (0 opaque, 1 clear).
	ApplyInverseNormalizedFloatMask(pixels []byte, mask []float32, n int)
}

// batch is the number of pixels handled per U16x16 operation.
const batch = 16

// Alpha8 is a single 8-bit alpha channel per pixel. Its methods implement
// ColorSpace as documented there, as do those of RGBA8.
type Alpha8 struct{}

func (Alpha8) PixelSize() int { return 1 }

func (Alpha8) ApplyAlphaMask(pixels []byte, alpha []uint8, n int) {
	i := 0
	for ; i+batch <= n; i += batch {
		wide.LoadU8(pixels[i:]).MulDiv255(wide.LoadU8(alpha[i:])).StoreStrided(pixels, i, 1)
	}
	for ; i < n; i++ {
		pixels[i] = wide.MulDiv255(pixels[i], alpha[i])
	}
}

func (Alpha8) ApplyInverseNormalizedFloatMask(pixels []byte, mask []float32, n int) {
	i := 0
	for ; i+batch <= n; i += batch {
		wide.LoadU8(pixels[i:]).MulDiv255(wide.FromInverseUnit(mask[i:])).StoreStrided(pixels, i, 1)
	}
	for ; i < n; i++ {
		pixels[i] = wide.MulDiv255(pixels[i], wide.InverseUnit(mask[i]))
	}
}

// RGBA8 is 8-bit non-premultiplied R, G, B, A. Only the alpha byte is
// touched by the mask.
type RGBA8 struct{}

const (
	rgbaSize   = 4
	alphaIndex = 3
)

func (RGBA8) PixelSize() int { return rgbaSize }

func (RGBA8) ApplyAlphaMask(pixels []byte, alpha []uint8, n int) {
	i := 0
	for ; i+batch <= n; i += batch {
		off := i*rgbaSize + alphaIndex
		a := wide.LoadStrided(pixels, off, rgbaSize)
		a.MulDiv255(wide.LoadU8(alpha[i:])).StoreStrided(pixels, off, rgbaSize)
	}
	for ; i < n; i++ {
		p := i*rgbaSize + alphaIndex
		pixels[p] = wide.MulDiv255(pixels[p], alpha[i])
	}
}

func (RGBA8) ApplyInverseNormalizedFloatMask(pixels []byte, mask []float32, n int) {
	i := 0
	for ; i+batch <= n; i += batch {
		off := i*rgbaSize + alphaIndex
		a := wide.LoadStrided(pixels, off, rgbaSize)
		a.MulDiv255(wide.FromInverseUnit(mask[i:])).StoreStrided(pixels, off, rgbaSize)
	}
	for ; i < n; i++ {
		p := i*rgbaSize + alphaIndex
		pixels[p] = wide.MulDiv255(pixels[p], wide.InverseUnit(mask[i]))
	}
}
