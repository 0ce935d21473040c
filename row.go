package brushmask

import "github.com/gogpu/brushmask/internal/wide"

// rowProcessor evaluates a generator over one scanline, wide.Lanes pixels
// at a time. It writes value/255 for pixels x0, x0+1, ... into dst, whose
// length is a multiple of wide.Lanes.
//
// A row processor holds a snapshot of the generator coefficients taken
// when it was created.
type rowProcessor interface {
	processRow(dst []float32, x0, y int, t rowTransform)
}

// rowTransform maps device pixels to mask coordinates.
type rowTransform struct {
	centerX, centerY float32
	cosa, sina       float32
}

func newRowTransform(d *MaskProcessingData) rowTransform {
	return rowTransform{
		centerX: float32(d.CenterX),
		centerY: float32(d.CenterY),
		cosa:    float32(d.Cosa),
		sina:    float32(d.Sina),
	}
}

// rowCoords precomputes the per-row terms of the rotation.
type rowCoords struct {
	x0         float32
	centerX    float32
	cosa, sina float32
	ySina      float32
	yCosa      float32
}

func (t rowTransform) row(x0, y int) rowCoords {
	y_ := float32(y) - t.centerY
	return rowCoords{
		x0:      float32(x0),
		centerX: t.centerX,
		cosa:    t.cosa,
		sina:    t.sina,
		ySina:   y_ * t.sina,
		yCosa:   y_ * t.cosa,
	}
}

// at returns the mask coordinates of the lanes starting at pixel x0+i.
func (r rowCoords) at(i int) (xr, yr wide.F32x8) {
	x_ := wide.IotaF32(r.x0 + float32(i)).Sub(wide.SplatF32(r.centerX))
	xr = x_.Scale(r.cosa).Sub(wide.SplatF32(r.ySina))
	yr = x_.Scale(r.sina).Add(wide.SplatF32(r.yCosa))
	return xr, yr
}

// storeValue writes value/255 for one lane group.
func storeValue(dst []float32, value wide.F32x8) {
	value.Scale(1.0 / 255).Store(dst)
}

// eachLaneGroup calls kernel for every lane group of dst on row y.
func eachLaneGroup(dst []float32, x0, y int, t rowTransform, kernel func(xr, yr wide.F32x8) wide.F32x8) {
	r := t.row(x0, y)
	for i := 0; i+wide.Lanes <= len(dst); i += wide.Lanes {
		xr, yr := r.at(i)
		storeValue(dst[i:], kernel(xr, yr))
	}
}

// rationalFadeLanes is the lane form of rationalFade.
func rationalFadeLanes(n, nf wide.F32x8) wide.F32x8 {
	one := wide.SplatF32(1)
	ramp := n.Mul(nf.Sub(one)).Div(nf.Sub(n))
	return wide.Select(nf.Gt(n), ramp, one)
}
