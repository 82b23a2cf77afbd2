// Package cache provides a generic soft-limit LRU cache.
//
//	c := cache.New[glyphKey, *mask](512)
//	m := c.GetOrCreate(key, func() *mask { return rasterize(key) })
//
// When an insertion takes the cache over its limit, the least recently
// used quarter of the entries is evicted in one batch.
//
// Cache is safe for concurrent use and must not be copied.
package cache
