package brushmask

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/gogpu/brushmask/curve"
)

// allGenerators builds one generator of every variant with the same shape
// parameters.
func allGenerators(diameter, ratio, fh, fv float64, spikes int, antialias bool) []Generator {
	return []Generator{
		NewCircle(diameter, ratio, fh, fv, spikes, antialias),
		NewRectangle(diameter, ratio, fh, fv, spikes, antialias),
		NewGaussCircle(diameter, ratio, fh, fv, spikes, antialias),
		NewGaussRectangle(diameter, ratio, fh, fv, spikes, antialias),
		NewCurveCircle(diameter, ratio, fh, fv, spikes, nil, antialias),
		NewCurveRectangle(diameter, ratio, fh, fv, spikes, nil, antialias),
	}
}

func typeName(v any) string { return fmt.Sprintf("%T", v) }

func generatorName(g Generator) string {
	return g.Kind().String() + "/" + g.Shape().String()
}

func TestNewGenerator_SelectsVariant(t *testing.T) {
	tests := []struct {
		kind  Kind
		shape Shape
		want  string
	}{
		{KindDefault, ShapeCircle, "*brushmask.Circle"},
		{KindDefault, ShapeRectangle, "*brushmask.Rectangle"},
		{KindGauss, ShapeCircle, "*brushmask.GaussCircle"},
		{KindGauss, ShapeRectangle, "*brushmask.GaussRectangle"},
		{KindSoft, ShapeCircle, "*brushmask.CurveCircle"},
		{KindSoft, ShapeRectangle, "*brushmask.CurveRectangle"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			p := DefaultParameters()
			p.Kind, p.Shape = tt.kind, tt.shape
			g, err := NewGenerator(p)
			if err != nil {
				t.Fatalf("NewGenerator() error = %v", err)
			}
			if got := typeName(g); got != tt.want {
				t.Errorf("NewGenerator() = %s, want %s", got, tt.want)
			}
			if g.Kind() != tt.kind || g.Shape() != tt.shape {
				t.Errorf("Kind/Shape = %v/%v, want %v/%v", g.Kind(), g.Shape(), tt.kind, tt.shape)
			}
		})
	}
}

func TestNewGenerator_Errors(t *testing.T) {
	p := DefaultParameters()
	p.Kind = Kind(9)
	if _, err := NewGenerator(p); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("unknown kind error = %v, want ErrUnknownKind", err)
	}
	p = DefaultParameters()
	p.Shape = Shape(7)
	if _, err := NewGenerator(p); !errors.Is(err, ErrUnknownShape) {
		t.Errorf("unknown shape error = %v, want ErrUnknownShape", err)
	}
}

func TestGenerator_Accessors(t *testing.T) {
	for _, g := range allGenerators(30, 0.5, 0.6, 0.2, 1, true) {
		t.Run(generatorName(g), func(t *testing.T) {
			if g.Diameter() != 30 || g.Ratio() != 0.5 {
				t.Errorf("Diameter/Ratio = %v/%v", g.Diameter(), g.Ratio())
			}
			if g.HorizontalFade() != 0.6 || g.VerticalFade() != 0.2 {
				t.Errorf("fades = %v/%v, want 0.6/0.2", g.HorizontalFade(), g.VerticalFade())
			}
			if g.Spikes() != 2 {
				t.Errorf("Spikes() = %d, want clamp to 2", g.Spikes())
			}
			if !g.AntialiasEdges() || g.Softness() != 1 {
				t.Errorf("AntialiasEdges/Softness = %v/%v", g.AntialiasEdges(), g.Softness())
			}
			if g.Width() != 30 || g.Height() != 15 {
				t.Errorf("Width/Height = %v/%v, want 30/15", g.Width(), g.Height())
			}

			g.SetScale(2, 3)
			if g.ScaleX() != 2 || g.ScaleY() != 3 {
				t.Errorf("scale = %v/%v", g.ScaleX(), g.ScaleY())
			}
			if g.EffectiveSrcWidth() != 60 || g.EffectiveSrcHeight() != 45 {
				t.Errorf("effective size = %v x %v, want 60 x 45", g.EffectiveSrcWidth(), g.EffectiveSrcHeight())
			}
		})
	}
}

func TestGenerator_SpikedHeight(t *testing.T) {
	g := NewCircle(40, 0.5, 0.5, 0.5, 5, false)
	if g.Height() != 40 {
		t.Errorf("spiked Height() = %v, want the diameter", g.Height())
	}
}

func TestGenerator_SupersampleAndVectorize(t *testing.T) {
	tests := []struct {
		name        string
		g           Generator
		supersample bool
		vectorize   bool
	}{
		{"large", NewCircle(40, 1, 0.5, 0.5, 2, true), false, true},
		{"small width", NewCircle(9, 1, 0.5, 0.5, 2, true), true, false},
		{"flat", NewRectangle(40, 0.2, 0.5, 0.5, 2, true), true, false},
		{"spiked", NewGaussCircle(40, 1, 0.5, 0.5, 4, true), false, false},
		{"empty", NewCurveCircle(0, 1, 0.5, 0.5, 2, nil, true), true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.ShouldSupersample(); got != tt.supersample {
				t.Errorf("ShouldSupersample() = %v, want %v", got, tt.supersample)
			}
			if got := tt.g.ShouldVectorize(); got != tt.vectorize {
				t.Errorf("ShouldVectorize() = %v, want %v", got, tt.vectorize)
			}
		})
	}
}

func TestGenerator_EmptyShape(t *testing.T) {
	var gens []Generator
	gens = append(gens, allGenerators(0, 1, 0.5, 0.5, 2, true)...)
	gens = append(gens, allGenerators(20, 0, 0.5, 0.5, 2, true)...)
	gens = append(gens, allGenerators(0, 0, 0, 0, 6, false)...)

	points := [][2]float64{{0, 0}, {0.5, -0.5}, {3, 7}, {-100, 40}, {1e6, -1e6}}
	for _, g := range gens {
		if !g.IsEmpty() {
			t.Errorf("%s d=%v ratio=%v: IsEmpty() = false", generatorName(g), g.Diameter(), g.Ratio())
		}
		for _, p := range points {
			if v := g.ValueAt(p[0], p[1]); v != 255 {
				t.Errorf("%s d=%v ratio=%v: ValueAt(%v, %v) = %d, want 255",
					generatorName(g), g.Diameter(), g.Ratio(), p[0], p[1], v)
			}
		}
	}
}

func TestGenerator_Monotonic(t *testing.T) {
	configs := []struct {
		diameter, ratio, fh, fv float64
		spikes                  int
		antialias               bool
	}{
		{40, 1, 0.5, 0.5, 2, true},
		{40, 0.6, 0.2, 0.8, 2, false},
		{30, 1, 0.7, 0.7, 5, true},
		{64, 0.8, 0.3, 0.3, 3, true},
		{20, 1, 0, 0, 2, true},
		{20, 1, 1, 1, 2, false},
	}
	for _, c := range configs {
		for _, g := range allGenerators(c.diameter, c.ratio, c.fh, c.fv, c.spikes, c.antialias) {
			for k := range 16 {
				theta := 2*math.Pi*float64(k)/16 + 0.05
				cos, sin := math.Cos(theta), math.Sin(theta)
				prev := uint8(0)
				for i := range 400 {
					r := float64(i) * 0.1
					v := g.ValueAt(r*cos, r*sin)
					if v < prev {
						t.Fatalf("%s %+v: value dropped from %d to %d at r=%.1f theta=%.2f",
							generatorName(g), c, prev, v, r, theta)
					}
					prev = v
				}
				if prev != 255 {
					t.Errorf("%s %+v: value at r=40 is %d, want 255", generatorName(g), c, prev)
				}
			}
		}
	}
}

func TestGenerator_CenterOpaque(t *testing.T) {
	for _, g := range allGenerators(40, 1, 0.5, 0.5, 2, true) {
		if v := g.ValueAt(0, 0); v > 2 {
			t.Errorf("%s: ValueAt(0, 0) = %d, want ~0", generatorName(g), v)
		}
	}
}

func TestCircle_LargeDabScenario(t *testing.T) {
	g := NewCircle(1000, 1, 0.5, 0.5, 2, true)
	if v := g.ValueAt(600, 0); v != 255 {
		t.Errorf("ValueAt(600, 0) = %d, want 255", v)
	}
	if v := g.ValueAt(0, 0); v > 10 {
		t.Errorf("ValueAt(0, 0) = %d, want <= 10", v)
	}
}

func TestGenerator_SpikeSymmetry(t *testing.T) {
	for _, n := range []int{3, 4, 5, 6, 7} {
		angle := 2 * math.Pi / float64(n)
		cos, sin := math.Cos(angle), math.Sin(angle)
		for _, g := range allGenerators(48, 1, 0.4, 0.4, n, true) {
			for k := range 40 {
				x := float64(k*7%23) - 11.3
				y := float64(k*5%19) - 9.7
				v1 := g.ValueAt(x, y)
				v2 := g.ValueAt(x*cos-y*sin, x*sin+y*cos)
				if diff := int(v1) - int(v2); diff > 1 || diff < -1 {
					t.Errorf("%s spikes=%d: ValueAt(%v, %v) = %d, rotated = %d",
						generatorName(g), n, x, y, v1, v2)
				}
			}
		}
	}
}

func TestGenerator_MirrorSymmetry(t *testing.T) {
	for _, g := range allGenerators(36, 0.7, 0.6, 0.3, 2, true) {
		for _, p := range [][2]float64{{3.2, 4.1}, {10.5, -2.25}, {-7, 9.9}} {
			v := g.ValueAt(p[0], p[1])
			for _, m := range [][2]float64{{-p[0], p[1]}, {p[0], -p[1]}, {-p[0], -p[1]}} {
				if got := g.ValueAt(m[0], m[1]); got != v {
					t.Errorf("%s: ValueAt%v = %d, mirror %v = %d", generatorName(g), p, v, m, got)
				}
			}
		}
	}
}

func TestGenerator_SetDiameterRescales(t *testing.T) {
	for _, g := range allGenerators(20, 1, 0.5, 0.5, 2, true) {
		fresh := allGenerators(60, 1, 0.5, 0.5, 2, true)
		g.SetDiameter(60)
		var ref Generator
		for _, f := range fresh {
			if f.Kind() == g.Kind() && f.Shape() == g.Shape() {
				ref = f
			}
		}
		for _, x := range []float64{0, 5, 12.5, 20, 27, 29.5, 31} {
			if got, want := g.ValueAt(x, x/3), ref.ValueAt(x, x/3); got != want {
				t.Errorf("%s: after SetDiameter ValueAt(%v) = %d, fresh generator = %d",
					generatorName(g), x, got, want)
			}
		}
	}
}

func TestGenerator_ScaleMatchesDiameter(t *testing.T) {
	// A 20 px circle scaled by 2 covers the same pixels as a 40 px circle.
	scaled := NewCircle(20, 1, 0.5, 0.5, 2, false)
	scaled.SetScale(2, 2)
	big := NewCircle(40, 1, 0.5, 0.5, 2, false)
	for _, x := range []float64{0, 4, 9, 14, 19, 21} {
		if a, b := scaled.ValueAt(x, 0), big.ValueAt(x, 0); a != b {
			t.Errorf("ValueAt(%v, 0): scaled = %d, larger = %d", x, a, b)
		}
	}
}

func TestCircle_SoftnessMovesFadeStart(t *testing.T) {
	ref := NewCircle(40, 1, 0.8, 0.8, 2, false)
	g := NewCircle(40, 1, 0.8, 0.8, 2, false)
	g.SetSoftness(0.5)
	if g.Softness() != 0.5 {
		t.Fatalf("Softness() = %v", g.Softness())
	}
	// At softness 1 the fade starts at 16 px; at 0.5 it starts at 8 px.
	if v := ref.ValueAt(12, 0); v != 0 {
		t.Errorf("softness 1: ValueAt(12, 0) = %d, want 0", v)
	}
	if v := g.ValueAt(12, 0); v < 50 || v > 70 {
		t.Errorf("softness 0.5: ValueAt(12, 0) = %d, want ~60", v)
	}
	g.SetSoftness(1)
	if a, b := g.ValueAt(12, 0), ref.ValueAt(12, 0); a != b {
		t.Errorf("softness back to 1: %d, want %d", a, b)
	}
}

func TestParametersOf(t *testing.T) {
	c := curve.MustParse("0,1;0.4,0.7;1,0;")
	p := Parameters{
		Diameter: 25, Ratio: 0.75, HorizontalFade: 0.3, VerticalFade: 0.9,
		Spikes: 4, AntialiasEdges: true, Shape: ShapeRectangle, Kind: KindSoft, Curve: c,
	}
	g, err := NewGenerator(p)
	if err != nil {
		t.Fatal(err)
	}
	got := ParametersOf(g)
	if got.Curve == nil || got.Curve.String() != c.String() {
		t.Fatalf("ParametersOf().Curve = %v, want %q", got.Curve, c.String())
	}
	got.Curve, p.Curve = nil, nil
	if got != p {
		t.Errorf("ParametersOf() = %+v, want %+v", got, p)
	}
}

func TestCurveGenerator_CopiesCurve(t *testing.T) {
	c := curve.MustParse("0,1;1,0;")
	g := NewCurveCircle(30, 1, 0.5, 0.5, 2, c, false)
	before := g.ValueAt(7, 0)
	c.AddPoint(curve.Pt(0.5, 0.05))
	if g.CurveString() != "0,1;1,0;" {
		t.Errorf("CurveString() = %q, curve was not copied", g.CurveString())
	}
	if after := g.ValueAt(7, 0); after != before {
		t.Errorf("ValueAt changed from %d to %d after editing the source curve", before, after)
	}
}

func TestCurveString(t *testing.T) {
	for _, g := range allGenerators(10, 1, 0.5, 0.5, 2, false) {
		want := ""
		if g.Kind() == KindSoft {
			want = DefaultSoftCurve
		}
		if got := g.CurveString(); got != want {
			t.Errorf("%s: CurveString() = %q, want %q", generatorName(g), got, want)
		}
	}
}

func BenchmarkValueAt(b *testing.B) {
	for _, g := range allGenerators(64, 1, 0.5, 0.5, 2, true) {
		b.Run(generatorName(g), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				x := float64(i%64) - 32
				_ = g.ValueAt(x, x*0.5)
			}
		})
	}
}
