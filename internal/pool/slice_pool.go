package pool

import "sync"

var uint32SlicePool = sync.Pool{
	New: func() any { return &[]uint32{} },
}

// GetUint32Slice retrieves a uint32 slice of length size from the pool.
//
// Contents are not cleared. If the pooled slice has insufficient capacity a new
// one is allocated. The caller must call the returned cleanup function, typically
// with defer, to hand the slice back.
//
// Example:
//
//	scratch, cleanup := pool.GetUint32Slice(n)
//	defer cleanup()
//
// When the caller may grow the slice, skip cleanup and hand back the grown
// slice with PutUint32Slice instead:
//
//	decoded, _ := pool.GetUint32Slice(0)
//	decoded, err = c.Decode(encoded, decoded)
//	defer pool.PutUint32Slice(decoded)
func GetUint32Slice(size int) ([]uint32, func()) {
	ptr, _ := uint32SlicePool.Get().(*[]uint32)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]uint32, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { uint32SlicePool.Put(ptr) }
}

// PutUint32Slice returns a slice that grew after GetUint32Slice, keeping its capacity.
// Call it instead of the cleanup function when the caller replaced the slice header.
func PutUint32Slice(slice []uint32) {
	s := slice[:0]
	uint32SlicePool.Put(&s)
}
