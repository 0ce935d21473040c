package wide

// M32x8 is a lane mask matching F32x8.
// A set lane means the condition held for that element.
type M32x8 [8]bool

// Or returns the lane-wise union of two masks.
func (m M32x8) Or(other M32x8) M32x8 {
	var result M32x8
	for i := range m {
		result[i] = m[i] || other[i]
	}
	return result
}

// And returns the lane-wise intersection of two masks.
func (m M32x8) And(other M32x8) M32x8 {
	var result M32x8
	for i := range m {
		result[i] = m[i] && other[i]
	}
	return result
}

// I32x8 holds 8 int32 lane indices, typically lookup table positions.
type I32x8 [8]int32

// SplatI32 creates I32x8 with all elements set to n.
func SplatI32(n int32) I32x8 {
	var result I32x8
	for i := range result {
		result[i] = n
	}
	return result
}

// Add performs element-wise addition.
func (v I32x8) Add(other I32x8) I32x8 {
	var result I32x8
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs element-wise subtraction.
func (v I32x8) Sub(other I32x8) I32x8 {
	var result I32x8
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// Clamp clamps each index to [minVal, maxVal].
func (v I32x8) Clamp(minVal, maxVal int32) I32x8 {
	var result I32x8
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

// Float converts each index to float32.
func (v I32x8) Float() F32x8 {
	var result F32x8
	for i := range v {
		result[i] = float32(v[i])
	}
	return result
}

// Gather loads table[v[i]] for each lane.
// Indices must already be clamped into the table.
func Gather(table []float32, idx I32x8) F32x8 {
	var result F32x8
	for i := range idx {
		result[i] = table[idx[i]]
	}
	return result
}
