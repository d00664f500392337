// Package cache provides a generic, size-bounded LRU cache.
//
// The cursor loader keeps decoded Xcursor frames here, keyed by file path
// and nominal size, so switching back to a previously used theme skips
// reading and decoding the file again.
//
//	c := cache.New[string, []byte](8)
//	data, err := c.GetOrLoad(path, func() ([]byte, error) {
//		return os.ReadFile(path)
//	})
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation
// (it contains a mutex).
package cache
