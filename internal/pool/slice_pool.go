package pool

import "sync"

// Typed slice pools for codec scratch work. Delta encoding and prefix-sum
// reconstruction both need a transient int64 slice sized to the element
// count; pooling it keeps the hot path allocation-free.
var int64SlicePool = sync.Pool{
	New: func() any { return &[]int64{} },
}

// GetInt64Slice retrieves and resizes an int64 slice from the pool.
//
// The returned slice has length size. The caller must call the returned
// cleanup function (typically with defer) to return the slice to the pool.
func GetInt64Slice(size int) ([]int64, func()) {
	ptr, _ := int64SlicePool.Get().(*[]int64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]int64, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { int64SlicePool.Put(ptr) }
}
