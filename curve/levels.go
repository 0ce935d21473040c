package curve

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// minGamma keeps the gamma exponent finite.
const minGamma = 0.01

// Levels maps input values through black/white points and a gamma,
// then into an output range:
//
//	t = clamp((x - InputBlack) / (InputWhite - InputBlack), 0, 1)
//	y = OutputBlack + (OutputWhite - OutputBlack) * t^(1/Gamma)
type Levels struct {
	InputBlack, InputWhite   float64
	Gamma                    float64
	OutputBlack, OutputWhite float64

	floats  cached[[]float64]
	uint16s cached[[]uint16]
	key     [5]float64
}

// NewLevels returns the identity levels curve.
func NewLevels() *Levels {
	return &Levels{InputWhite: 1, Gamma: 1, OutputWhite: 1}
}

// ParseLevels reads the form "inputBlack;inputWhite;gamma;outputBlack;outputWhite".
func ParseLevels(s string) (*Levels, error) {
	fields := strings.Split(strings.TrimSuffix(strings.TrimSpace(s), ";"), ";")
	if len(fields) != 5 {
		return nil, fmt.Errorf("%w: levels need 5 fields, got %d", ErrInvalidCurve, len(fields))
	}
	var v [5]float64
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCurve, err)
		}
		v[i] = x
	}
	return &Levels{
		InputBlack:  v[0],
		InputWhite:  v[1],
		Gamma:       v[2],
		OutputBlack: v[3],
		OutputWhite: v[4],
	}, nil
}

// String returns the curve in the form accepted by ParseLevels.
func (l *Levels) String() string {
	parts := [5]string{}
	for i, v := range l.params() {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts[:], ";")
}

// IsIdentity reports whether the curve leaves every value unchanged.
func (l *Levels) IsIdentity() bool {
	return l.InputBlack == 0 && l.InputWhite == 1 && l.Gamma == 1 &&
		l.OutputBlack == 0 && l.OutputWhite == 1
}

// Value evaluates the curve at x. The result is clamped to [0, 1].
func (l *Levels) Value(x float64) float64 {
	var t float64
	switch {
	case x <= l.InputBlack:
		t = 0
	case x >= l.InputWhite:
		t = 1
	default:
		t = (x - l.InputBlack) / (l.InputWhite - l.InputBlack)
		gamma := math.Max(l.Gamma, minGamma)
		if gamma != 1 {
			t = math.Pow(t, 1/gamma)
		}
	}
	return clamp01(l.OutputBlack + (l.OutputWhite-l.OutputBlack)*t)
}

// FloatTransfer samples the curve at size evenly spaced positions.
// The table is rebuilt whenever a field changes or size differs.
func (l *Levels) FloatTransfer(size int) []float64 {
	l.checkKey()
	if !l.floats.valid || len(l.floats.data) != size {
		l.floats.data = transfer(l, size, 1.0, func(v float64) float64 { return v })
		l.floats.valid = true
	}
	return l.floats.data
}

// Uint16Transfer samples the curve scaled to [0, 0xFFFF].
func (l *Levels) Uint16Transfer(size int) []uint16 {
	l.checkKey()
	if !l.uint16s.valid || len(l.uint16s.data) != size {
		l.uint16s.data = transfer(l, size, 0xFFFF, func(v float64) uint16 {
			return uint16(math.Round(v)) // #nosec G115 -- v is in [0, 0xFFFF]
		})
		l.uint16s.valid = true
	}
	return l.uint16s.data
}

func (l *Levels) params() [5]float64 {
	return [5]float64{l.InputBlack, l.InputWhite, l.Gamma, l.OutputBlack, l.OutputWhite}
}

// checkKey invalidates the tables when exported fields were edited since
// the last build.
func (l *Levels) checkKey() {
	if p := l.params(); p != l.key {
		l.key = p
		l.floats.invalidate()
		l.uint16s.invalidate()
	}
}
