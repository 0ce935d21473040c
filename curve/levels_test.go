package curve

import (
	"errors"
	"math"
	"testing"
)

func TestLevels_Identity(t *testing.T) {
	l := NewLevels()
	if !l.IsIdentity() {
		t.Fatal("NewLevels() is not identity")
	}
	for _, x := range []float64{0, 0.1, 0.5, 0.9, 1} {
		if got := l.Value(x); math.Abs(got-x) > epsilon {
			t.Errorf("Value(%v) = %v", x, got)
		}
	}
}

func TestLevels_Value(t *testing.T) {
	l := &Levels{InputBlack: 0.2, InputWhite: 0.6, Gamma: 1, OutputBlack: 0.1, OutputWhite: 0.9}
	tests := []struct {
		x, want float64
	}{
		{0, 0.1},
		{0.2, 0.1},
		{0.4, 0.5},
		{0.6, 0.9},
		{1, 0.9},
	}
	for _, tt := range tests {
		if got := l.Value(tt.x); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Value(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestLevels_Gamma(t *testing.T) {
	l := &Levels{InputWhite: 1, Gamma: 2, OutputWhite: 1}
	if got, want := l.Value(0.25), 0.5; math.Abs(got-want) > 1e-9 {
		t.Errorf("Value(0.25) with gamma 2 = %v, want %v", got, want)
	}
	l.Gamma = 0
	if v := l.Value(0.5); math.IsNaN(v) || v < 0 || v > 1 {
		t.Errorf("Value with gamma 0 = %v", v)
	}
}

func TestLevels_StringRoundTrip(t *testing.T) {
	l := &Levels{InputBlack: 0.05, InputWhite: 0.95, Gamma: 1.8, OutputBlack: 0, OutputWhite: 0.75}
	back, err := ParseLevels(l.String())
	if err != nil {
		t.Fatalf("ParseLevels(%q) error: %v", l.String(), err)
	}
	if back.params() != l.params() {
		t.Errorf("round trip = %v, want %v", back.params(), l.params())
	}
}

func TestParseLevels_Errors(t *testing.T) {
	for _, in := range []string{"", "0;1;1;0", "0;1;x;0;1", "0;1;1;0;1;2"} {
		if _, err := ParseLevels(in); !errors.Is(err, ErrInvalidCurve) {
			t.Errorf("ParseLevels(%q) error = %v, want ErrInvalidCurve", in, err)
		}
	}
}

func TestLevels_TransferRebuildsOnEdit(t *testing.T) {
	l := NewLevels()
	if got := l.FloatTransfer(3)[1]; math.Abs(got-0.5) > epsilon {
		t.Fatalf("midpoint = %v", got)
	}
	l.OutputWhite = 0.5
	if got := l.FloatTransfer(3)[1]; math.Abs(got-0.25) > epsilon {
		t.Errorf("midpoint after edit = %v, want 0.25", got)
	}
	if got := l.Uint16Transfer(3)[2]; got != 0x8000 {
		t.Errorf("Uint16Transfer end = %#x, want 0x8000", got)
	}
}
