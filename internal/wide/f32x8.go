package wide

import "math"

// Lanes is the number of float32 lanes processed by one F32x8 operation.
const Lanes = 8

// F32x8 represents 8 float32 values for SIMD-style operations.
// Designed for Go compiler auto-vectorization with fixed-size arrays.
// Row processors evaluate one lane per pixel of a scanline.
type F32x8 [8]float32

// SplatF32 creates F32x8 with all elements set to n.
// This is useful for initializing constants or broadcasting a single value.
func SplatF32(n float32) F32x8 {
	var result F32x8
	for i := range result {
		result[i] = n
	}
	return result
}

// IotaF32 returns {start, start+1, ..., start+7}.
// Row processors use it to produce the x coordinate of each lane.
func IotaF32(start float32) F32x8 {
	var result F32x8
	for i := range result {
		result[i] = start + float32(i)
	}
	return result
}

// Store writes all 8 lanes into dst.
// dst must have at least 8 elements.
func (v F32x8) Store(dst []float32) {
	copy(dst[:Lanes], v[:])
}

// Add performs element-wise addition.
func (v F32x8) Add(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs element-wise subtraction.
func (v F32x8) Sub(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// Mul performs element-wise multiplication.
func (v F32x8) Mul(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// Div performs element-wise division.
// Note: Division by zero results in +Inf, -Inf, or NaN according to IEEE 754.
// Kernels discard such lanes with Select instead of branching.
func (v F32x8) Div(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] / other[i]
	}
	return result
}

// Scale multiplies every element by s.
func (v F32x8) Scale(s float32) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] * s
	}
	return result
}

// Square returns v[i] * v[i] for each element.
func (v F32x8) Square() F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] * v[i]
	}
	return result
}

// Sqrt computes square root of each element.
// Negative values result in NaN according to IEEE 754.
func (v F32x8) Sqrt() F32x8 {
	var result F32x8
	for i := range v {
		result[i] = float32(math.Sqrt(float64(v[i])))
	}
	return result
}

// Abs returns the absolute value of each element.
func (v F32x8) Abs() F32x8 {
	var result F32x8
	for i := range v {
		result[i] = math.Float32frombits(math.Float32bits(v[i]) &^ (1 << 31))
	}
	return result
}

// Clamp clamps each element to [minVal, maxVal].
func (v F32x8) Clamp(minVal, maxVal float32) F32x8 {
	var result F32x8
	for i := range v {
		switch {
		case v[i] < minVal:
			result[i] = minVal
		case v[i] > maxVal:
			result[i] = maxVal
		default:
			result[i] = v[i]
		}
	}
	return result
}

// Lerp performs linear interpolation: v + (other - v) * t.
// When t=0, returns v; when t=1, returns other.
// t is per-element interpolation factor.
func (v F32x8) Lerp(other F32x8, t F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] + (other[i]-v[i])*t[i]
	}
	return result
}

// Max performs element-wise maximum.
func (v F32x8) Max(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		if v[i] > other[i] {
			result[i] = v[i]
		} else {
			result[i] = other[i]
		}
	}
	return result
}

// Trunc converts each element to an int32 index, rounding toward zero.
func (v F32x8) Trunc() I32x8 {
	var result I32x8
	for i := range v {
		result[i] = int32(v[i])
	}
	return result
}

// Round converts each element to the nearest int32, halves away from zero.
func (v F32x8) Round() I32x8 {
	var result I32x8
	for i := range v {
		result[i] = int32(math.Round(float64(v[i])))
	}
	return result
}

// Gt returns a mask with lanes set where v[i] > other[i].
func (v F32x8) Gt(other F32x8) M32x8 {
	var result M32x8
	for i := range v {
		result[i] = v[i] > other[i]
	}
	return result
}

// Lt returns a mask with lanes set where v[i] < other[i].
func (v F32x8) Lt(other F32x8) M32x8 {
	var result M32x8
	for i := range v {
		result[i] = v[i] < other[i]
	}
	return result
}

// Select returns t[i] where m[i] is set and f[i] elsewhere.
// This is the lane-wise replacement for an if/else in scalar code.
func Select(m M32x8, t, f F32x8) F32x8 {
	var result F32x8
	for i := range m {
		if m[i] {
			result[i] = t[i]
		} else {
			result[i] = f[i]
		}
	}
	return result
}

// Erf approximation coefficients (Abramowitz and Stegun 7.1.26).
const (
	erfA1 = 0.254829592
	erfA2 = -0.284496736
	erfA3 = 1.421413741
	erfA4 = -1.453152027
	erfA5 = 1.061405429
	erfP  = 0.3275911

	// erfLimit is the magnitude beyond which erf is reported as +-1.
	// The polynomial loses precision past this point.
	erfLimit = 9.3
)

// Erf computes an approximation of the Gauss error function for each
// element. The maximum absolute error is about 1.5e-7. Arguments with
// |x| >= 9.3 are masked before evaluation and return +-1, so very large
// inputs never reach exp and never produce NaN.
func (v F32x8) Erf() F32x8 {
	var result F32x8
	for i := range v {
		x := v[i]
		sign := float32(1)
		if x < 0 {
			sign = -1
			x = -x
		}
		if x >= erfLimit || x != x {
			if x != x {
				result[i] = 0
			} else {
				result[i] = sign
			}
			continue
		}
		t := 1 / (1 + erfP*x)
		y := 1 - (((((erfA5*t+erfA4)*t)+erfA3)*t+erfA2)*t+erfA1)*t*float32(math.Exp(float64(-x*x)))
		result[i] = sign * y
	}
	return result
}
