package wide

import (
	"math"
	"testing"
)

func TestSplatF32(t *testing.T) {
	tests := []struct {
		name  string
		value float32
	}{
		{"zero", 0.0},
		{"one", 1.0},
		{"half", 0.5},
		{"negative", -1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SplatF32(tt.value)
			for i, v := range result {
				if v != tt.value {
					t.Errorf("element %d = %f, want %f", i, v, tt.value)
				}
			}
		})
	}
}

func TestIotaF32(t *testing.T) {
	got := IotaF32(10)
	for i, v := range got {
		if v != float32(10+i) {
			t.Errorf("lane %d = %f, want %d", i, v, 10+i)
		}
	}
}

func TestF32x8_Arithmetic(t *testing.T) {
	a := F32x8{1, 2, 3, 4, 5, 6, 7, 8}
	b := SplatF32(2)

	tests := []struct {
		name string
		got  F32x8
		want F32x8
	}{
		{"add", a.Add(b), F32x8{3, 4, 5, 6, 7, 8, 9, 10}},
		{"sub", a.Sub(b), F32x8{-1, 0, 1, 2, 3, 4, 5, 6}},
		{"mul", a.Mul(b), F32x8{2, 4, 6, 8, 10, 12, 14, 16}},
		{"div", a.Div(b), F32x8{0.5, 1, 1.5, 2, 2.5, 3, 3.5, 4}},
		{"scale", a.Scale(0.5), F32x8{0.5, 1, 1.5, 2, 2.5, 3, 3.5, 4}},
		{"square", a.Square(), F32x8{1, 4, 9, 16, 25, 36, 49, 64}},
		{"max", a.Max(SplatF32(4)), F32x8{4, 4, 4, 4, 5, 6, 7, 8}},
		{"clamp", a.Clamp(2, 6), F32x8{2, 2, 3, 4, 5, 6, 6, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestF32x8_Abs(t *testing.T) {
	v := F32x8{-1, 1, -0.5, 0, -1000, 3, -2, 2}
	want := F32x8{1, 1, 0.5, 0, 1000, 3, 2, 2}
	if got := v.Abs(); got != want {
		t.Errorf("Abs() = %v, want %v", got, want)
	}
}

func TestF32x8_Sqrt(t *testing.T) {
	v := F32x8{0, 1, 4, 9, 16, 25, 36, 49}
	want := F32x8{0, 1, 2, 3, 4, 5, 6, 7}
	if got := v.Sqrt(); got != want {
		t.Errorf("Sqrt() = %v, want %v", got, want)
	}
}

func TestF32x8_Lerp(t *testing.T) {
	a := SplatF32(0)
	b := SplatF32(10)
	tv := F32x8{0, 0.1, 0.2, 0.5, 0.75, 0.9, 1, 0.3}
	got := a.Lerp(b, tv)
	for i := range got {
		want := 10 * tv[i]
		if math.Abs(float64(got[i]-want)) > 1e-5 {
			t.Errorf("lane %d = %f, want %f", i, got[i], want)
		}
	}
}

func TestF32x8_Compare(t *testing.T) {
	a := F32x8{0, 1, 2, 3, 4, 5, 6, 7}
	b := SplatF32(3)

	gt := a.Gt(b)
	lt := a.Lt(b)
	for i := range a {
		if gt[i] != (a[i] > 3) {
			t.Errorf("Gt lane %d = %v", i, gt[i])
		}
		if lt[i] != (a[i] < 3) {
			t.Errorf("Lt lane %d = %v", i, lt[i])
		}
	}
}

func TestSelect(t *testing.T) {
	m := M32x8{true, false, true, false, true, false, true, false}
	got := Select(m, SplatF32(1), SplatF32(-1))
	want := F32x8{1, -1, 1, -1, 1, -1, 1, -1}
	if got != want {
		t.Errorf("Select() = %v, want %v", got, want)
	}
}

func TestF32x8_TruncRound(t *testing.T) {
	v := F32x8{0.4, 0.5, 1.49, 1.5, 2.99, 7, 0, 3.5}

	wantTrunc := I32x8{0, 0, 1, 1, 2, 7, 0, 3}
	if got := v.Trunc(); got != wantTrunc {
		t.Errorf("Trunc() = %v, want %v", got, wantTrunc)
	}

	wantRound := I32x8{0, 1, 1, 2, 3, 7, 0, 4}
	if got := v.Round(); got != wantRound {
		t.Errorf("Round() = %v, want %v", got, wantRound)
	}
}

func TestF32x8_Erf(t *testing.T) {
	inputs := []float32{-12, -9.3, -3, -1, -0.25, 0, 0.1, 0.5, 1, 2, 3.5, 9.29, 100}
	for start := 0; start < len(inputs); start += Lanes {
		var v F32x8
		n := copy(v[:], inputs[start:])
		got := v.Erf()
		for i := 0; i < n; i++ {
			want := math.Erf(float64(v[i]))
			if math.Abs(float64(got[i])-want) > 1e-6 {
				t.Errorf("Erf(%f) = %.9f, want %.9f", v[i], got[i], want)
			}
		}
	}
}

func TestF32x8_ErfNaN(t *testing.T) {
	nan := float32(math.NaN())
	got := F32x8{nan, 0, 0, 0, 0, 0, 0, 0}.Erf()
	for i, v := range got {
		if v != v {
			t.Errorf("lane %d is NaN", i)
		}
	}
}

func TestIotaStore(t *testing.T) {
	dst := make([]float32, 9)
	IotaF32(1.5).Store(dst)
	for i := range Lanes {
		if want := 1.5 + float32(i); dst[i] != want {
			t.Errorf("dst[%d] = %f, want %f", i, dst[i], want)
		}
	}
	if dst[8] != 0 {
		t.Errorf("Store wrote past 8 lanes: dst[8] = %f", dst[8])
	}
}

func BenchmarkF32x8_Erf(b *testing.B) {
	v := F32x8{-2, -1, -0.5, 0, 0.5, 1, 2, 3}
	for i := 0; i < b.N; i++ {
		_ = v.Erf()
	}
}

func BenchmarkF32x8_Mul(b *testing.B) {
	a := SplatF32(1.5)
	c := SplatF32(2.5)
	for i := 0; i < b.N; i++ {
		_ = a.Mul(c)
	}
}
