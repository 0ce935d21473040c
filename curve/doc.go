// Package curve provides the transfer curves used by soft brush masks.
//
// # Cubic
//
// Cubic is a list of control points in [0,1]x[0,1], kept sorted by x and
// interpolated by a natural cubic spline. The spline and the sampled
// transfer tables are computed lazily and cached; every mutation
// invalidates the caches.
//
//	c := curve.New(curve.Pt(0, 1), curve.Pt(0.5, 0.7), curve.Pt(1, 0))
//	lut := c.Float32Transfer(256) // 256 samples of the curve over [0,1]
//
// Curves round-trip through their string form:
//
//	s := c.String()          // "0,1;0.5,0.7;1,0;"
//	c2, err := curve.Parse(s)
//
// # Levels
//
// Levels is the classic input/output levels transfer with gamma.
//
// # Thread Safety
//
// Neither Cubic nor Levels is safe for concurrent use: reading a transfer
// may rebuild a cache. Take a copy of the table before sharing it.
package curve
