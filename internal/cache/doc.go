// Package cache provides a small generic LRU cache.
//
// Curve-based mask generators share their softened transfer tables through
// it, keyed by the curve, the softness and the table size:
//
//	tables := cache.New[key, []float32](64)
//	t := tables.GetOrCreate(k, func() []float32 { return build(k) })
//
// Values returned by the cache are shared; callers must treat them as
// read-only. The cache is safe for concurrent use and must not be copied.
package cache
