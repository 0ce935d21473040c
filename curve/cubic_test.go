package curve

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func pointsEqual(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i].X-b[i].X) > epsilon || math.Abs(a[i].Y-b[i].Y) > epsilon {
			return false
		}
	}
	return true
}

func TestNew_DefaultIdentity(t *testing.T) {
	c := New()
	if !c.IsIdentity() {
		t.Fatalf("New() points = %v, want identity", c.Points())
	}
	for _, x := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if got := c.Value(x); math.Abs(got-x) > epsilon {
			t.Errorf("Value(%v) = %v, want %v", x, got, x)
		}
	}
}

func TestNew_SortsPoints(t *testing.T) {
	c := New(Pt(1, 0), Pt(0, 1), Pt(0.5, 0.3))
	want := []Point{{0, 1}, {0.5, 0.3}, {1, 0}}
	if got := c.Points(); !pointsEqual(got, want) {
		t.Errorf("Points() = %v, want %v", got, want)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Point
	}{
		{"two points", "0,1;1,0;", []Point{{0, 1}, {1, 0}}},
		{"no trailing semicolon", "0,0;0.5,0.8;1,1", []Point{{0, 0}, {0.5, 0.8}, {1, 1}}},
		{"spaces", " 0 , 0 ; 1 , 1 ; ", []Point{{0, 0}, {1, 1}}},
		{"unsorted", "1,1;0,0;", []Point{{0, 0}, {1, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if got := c.Points(); !pointsEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"", ";;", "0;1", "a,b;", "0,1;x,0;"} {
		if _, err := Parse(in); !errors.Is(err, ErrInvalidCurve) {
			t.Errorf("Parse(%q) error = %v, want ErrInvalidCurve", in, err)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	curves := []*Cubic{
		New(),
		New(Pt(0, 1), Pt(1, 0)),
		New(Pt(0, 1), Pt(0.1234567891, 0.987654321), Pt(0.6, 0.25), Pt(1, 0)),
		New(Pt(0, 0.3), Pt(1.0/3.0, 2.0/3.0), Pt(1, 1)),
	}

	for _, c := range curves {
		s := c.String()
		back, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", s, err)
		}
		if got, want := back.Points(), c.Points(); !pointsEqual(got, want) {
			t.Errorf("round trip %q = %v, want %v", s, got, want)
		}
		if back.String() != s {
			t.Errorf("second String() = %q, want %q", back.String(), s)
		}
	}
}

func TestString_Format(t *testing.T) {
	if got, want := New(Pt(0, 1), Pt(0.5, 0.25), Pt(1, 0)).String(), "0,1;0.5,0.25;1,0;"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestValue_PassesThroughControlPoints(t *testing.T) {
	pts := []Point{{0, 0.1}, {0.3, 0.7}, {0.6, 0.4}, {1, 0.9}}
	c := New(pts...)
	for _, p := range pts {
		if got := c.Value(p.X); math.Abs(got-p.Y) > 1e-9 {
			t.Errorf("Value(%v) = %v, want %v", p.X, got, p.Y)
		}
	}
}

func TestValue_ClampsOutsideRange(t *testing.T) {
	c := New(Pt(0.2, 0.3), Pt(0.8, 0.6))
	if got := c.Value(0); math.Abs(got-0.3) > epsilon {
		t.Errorf("Value(0) = %v, want 0.3", got)
	}
	if got := c.Value(1); math.Abs(got-0.6) > epsilon {
		t.Errorf("Value(1) = %v, want 0.6", got)
	}
}

func TestValue_ClampsToUnit(t *testing.T) {
	// The spline overshoots above 1 between the first two points.
	c := New(Pt(0, 0), Pt(0.1, 1), Pt(0.2, 1), Pt(1, 0))
	for x := 0.0; x <= 1; x += 0.01 {
		if v := c.Value(x); v < 0 || v > 1 {
			t.Fatalf("Value(%v) = %v, outside [0,1]", x, v)
		}
	}
}

func TestFloatTransfer_Range(t *testing.T) {
	c := New(Pt(0, 0), Pt(0.1, 1), Pt(0.5, 0), Pt(0.9, 1), Pt(1, 0))
	for _, size := range []int{1, 2, 17, 256, 1025} {
		table := c.FloatTransfer(size)
		if len(table) != size {
			t.Fatalf("len(FloatTransfer(%d)) = %d", size, len(table))
		}
		for i, v := range table {
			if v < 0 || v > 1 {
				t.Errorf("FloatTransfer(%d)[%d] = %v, outside [0,1]", size, i, v)
			}
		}
	}
}

func TestFloatTransfer_Endpoints(t *testing.T) {
	c := New(Pt(0, 1), Pt(1, 0))
	table := c.FloatTransfer(11)
	if table[0] != 1 || table[10] != 0 {
		t.Errorf("endpoints = %v, %v; want 1, 0", table[0], table[10])
	}
	if math.Abs(table[5]-0.5) > epsilon {
		t.Errorf("midpoint = %v, want 0.5", table[5])
	}
}

func TestTransfer_InvalidatedOnMutation(t *testing.T) {
	c := New(Pt(0, 0), Pt(1, 1))
	before := c.FloatTransfer(5)[2]
	if math.Abs(before-0.5) > epsilon {
		t.Fatalf("midpoint = %v, want 0.5", before)
	}

	c.AddPoint(Pt(0.5, 0.9))
	if got := c.FloatTransfer(5)[2]; math.Abs(got-0.9) > epsilon {
		t.Errorf("after AddPoint midpoint = %v, want 0.9", got)
	}

	c.SetPoint(1, Pt(0.5, 0.1))
	if got := c.Float32Transfer(5)[2]; math.Abs(float64(got)-0.1) > 1e-6 {
		t.Errorf("after SetPoint midpoint = %v, want 0.1", got)
	}

	c.RemovePoint(1)
	if got := c.Uint16Transfer(5)[2]; got != 0x8000 && got != 0x7FFF {
		t.Errorf("after RemovePoint midpoint = %#x, want ~0x8000", got)
	}
}

func TestUint16Transfer(t *testing.T) {
	c := New()
	table := c.Uint16Transfer(3)
	want := []uint16{0, 0x8000, 0xFFFF}
	for i := range want {
		if table[i] != want[i] {
			t.Errorf("Uint16Transfer(3)[%d] = %#x, want %#x", i, table[i], want[i])
		}
	}
}

func TestAddPoint_ReturnsSortedIndex(t *testing.T) {
	c := New(Pt(0, 0), Pt(1, 1))
	if got := c.AddPoint(Pt(0.5, 0.5)); got != 1 {
		t.Errorf("AddPoint index = %d, want 1", got)
	}
	if got := c.AddPoint(Pt(0.25, 0.5)); got != 1 {
		t.Errorf("AddPoint index = %d, want 1", got)
	}
	if got := c.SetPoint(1, Pt(0.75, 0.2)); got != 2 {
		t.Errorf("SetPoint index = %d, want 2", got)
	}
	if c.Len() != 4 {
		t.Errorf("Len() = %d, want 4", c.Len())
	}
}

func TestIsConstant(t *testing.T) {
	if !New(Pt(0, 0.5), Pt(1, 0.5)).IsConstant(0.5) {
		t.Error("IsConstant(0.5) = false, want true")
	}
	if New().IsConstant(0.5) {
		t.Error("identity IsConstant(0.5) = true, want false")
	}
}

func TestClone_Independent(t *testing.T) {
	c := New(Pt(0, 1), Pt(1, 0))
	c.SetName("soft")
	clone := c.Clone()
	clone.AddPoint(Pt(0.5, 0.9))
	if c.Len() != 2 {
		t.Errorf("original Len() = %d after clone mutation", c.Len())
	}
	if clone.Name() != "soft" {
		t.Errorf("clone Name() = %q", clone.Name())
	}
}

func TestDuplicateX(t *testing.T) {
	c := New(Pt(0, 0), Pt(0.5, 0.2), Pt(0.5, 0.8), Pt(1, 1))
	for x := 0.0; x <= 1; x += 0.05 {
		v := c.Value(x)
		if math.IsNaN(v) {
			t.Fatalf("Value(%v) is NaN", x)
		}
	}
}

func BenchmarkFloat32Transfer(b *testing.B) {
	c := New(Pt(0, 1), Pt(0.3, 0.8), Pt(0.7, 0.2), Pt(1, 0))
	for i := 0; i < b.N; i++ {
		c.SetPoint(1, Pt(0.3, 0.8))
		_ = c.Float32Transfer(4096)
	}
}
