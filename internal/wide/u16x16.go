package wide

// U16x16 represents 16 uint16 values for SIMD-style operations.
// Designed for Go compiler auto-vectorization with fixed-size arrays.
// Color spaces use it to scale 16 alpha channels by 16 mask values at once.
type U16x16 [16]uint16

// LoadU8 widens 16 consecutive bytes of src.
// src must have at least 16 bytes.
func LoadU8(src []uint8) U16x16 {
	var result U16x16
	for i := range result {
		result[i] = uint16(src[i])
	}
	return result
}

// LoadStrided widens src[offset], src[offset+stride], ... (16 values).
// It reads one channel out of 16 interleaved pixels.
func LoadStrided(src []uint8, offset, stride int) U16x16 {
	var result U16x16
	for i := range result {
		result[i] = uint16(src[offset+i*stride])
	}
	return result
}

// StoreStrided narrows the lanes back into dst[offset+i*stride].
// Values must already be in [0, 255].
func (v U16x16) StoreStrided(dst []uint8, offset, stride int) {
	for i := range v {
		dst[offset+i*stride] = uint8(v[i]) // #nosec G115 -- lanes hold bytes
	}
}

// FromInverseUnit converts 16 normalized mask values m into 255*(1-m),
// rounded to nearest and clamped to [0, 255].
// src must have at least 16 elements.
func FromInverseUnit(src []float32) U16x16 {
	var result U16x16
	for i := range result {
		result[i] = uint16(InverseUnit(src[i]))
	}
	return result
}

// InverseUnit is the scalar form of FromInverseUnit.
func InverseUnit(m float32) uint8 {
	f := (1-m)*255 + 0.5
	switch {
	case f >= 255:
		return 255
	case f > 0:
		return uint8(f)
	default:
		return 0 // also NaN
	}
}

// MulDiv255 performs (v * other) / 255 for each element.
// Combines multiplication and division by 255 using fast approximation.
// The result is exact when either operand is 0 or 255.
func (v U16x16) MulDiv255(other U16x16) U16x16 {
	var result U16x16
	for i := range v {
		x := uint32(v[i]) * uint32(other[i])
		// Fast division by 255: (x + 1 + (x >> 8)) >> 8
		result[i] = uint16((x + 1 + (x >> 8)) >> 8) // #nosec G115
	}
	return result
}

// MulDiv255 is the scalar form of U16x16.MulDiv255 used for tail pixels.
func MulDiv255(a, b uint8) uint8 {
	x := uint32(a) * uint32(b)
	return uint8((x + 1 + (x >> 8)) >> 8) // #nosec G115 -- bounded by 255
}
