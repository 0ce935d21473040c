package curve

// spline is a natural cubic spline through a set of points sorted by x.
// Segment i covers [x[i], x[i+1]] and evaluates
//
//	y[i] + b[i]*t + c[i]/2*t^2 + d[i]/6*t^3,  t = x - x[i]
type spline struct {
	x, y    []float64
	b, c, d []float64
}

// fit builds the spline. Points sharing an x coordinate collapse to the
// last one, since a zero-width interval has no slope.
func fit(points []Point) spline {
	xs := make([]float64, 0, len(points))
	ys := make([]float64, 0, len(points))
	for _, p := range points {
		if n := len(xs); n > 0 && xs[n-1] == p.X {
			ys[n-1] = p.Y
			continue
		}
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
	}

	n := len(xs)
	s := spline{x: xs, y: ys}
	if n < 2 {
		return s
	}

	h := make([]float64, n-1)
	for i := range h {
		h[i] = xs[i+1] - xs[i]
	}

	// Second derivatives; natural boundary keeps c[0] = c[n-1] = 0.
	c := make([]float64, n)
	if n > 2 {
		// Thomas algorithm on the (n-2)x(n-2) tridiagonal system.
		m := n - 2
		diag := make([]float64, m)
		rhs := make([]float64, m)
		for i := 0; i < m; i++ {
			diag[i] = 2 * (h[i] + h[i+1])
			rhs[i] = 6 * ((ys[i+2]-ys[i+1])/h[i+1] - (ys[i+1]-ys[i])/h[i])
		}
		for i := 1; i < m; i++ {
			w := h[i] / diag[i-1]
			diag[i] -= w * h[i]
			rhs[i] -= w * rhs[i-1]
		}
		c[m] = rhs[m-1] / diag[m-1]
		for i := m - 2; i >= 0; i-- {
			c[i+1] = (rhs[i] - h[i+1]*c[i+2]) / diag[i]
		}
	}

	s.b = make([]float64, n-1)
	s.d = make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		s.b[i] = (ys[i+1]-ys[i])/h[i] - h[i]*(2*c[i]+c[i+1])/6
		s.d[i] = (c[i+1] - c[i]) / h[i]
	}
	s.c = c
	return s
}

// value evaluates the spline, clamping x into the fitted range.
func (s *spline) value(x float64) float64 {
	n := len(s.x)
	switch n {
	case 0:
		return 0
	case 1:
		return s.y[0]
	}
	if x <= s.x[0] {
		return s.y[0]
	}
	if x >= s.x[n-1] {
		return s.y[n-1]
	}

	// Binary search for the segment containing x.
	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if s.x[mid] <= x {
			lo = mid
		} else {
			hi = mid
		}
	}

	t := x - s.x[lo]
	return s.y[lo] + t*(s.b[lo]+t*(s.c[lo]/2+t*s.d[lo]/6))
}
