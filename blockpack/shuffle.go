package blockpack

// Shuffle transposes src by typesize: all first bytes of each element,
// then all second bytes, and so on. For numeric payloads whose elements
// share high bytes (small deltas, same-sign floats) this groups near-equal
// bytes together, which block compressors exploit.
//
// dst must be at least len(src) bytes. A trailing remainder shorter than
// typesize is copied verbatim.
func Shuffle(dst, src []byte, typesize int) {
	if typesize <= 1 {
		copy(dst, src)
		return
	}

	elems := len(src) / typesize
	limit := elems * typesize
	for j := 0; j < typesize; j++ {
		for i := 0; i < elems; i++ {
			dst[j*elems+i] = src[i*typesize+j]
		}
	}
	copy(dst[limit:], src[limit:])
}

// Unshuffle reverses Shuffle with the same typesize.
func Unshuffle(dst, src []byte, typesize int) {
	if typesize <= 1 {
		copy(dst, src)
		return
	}

	elems := len(src) / typesize
	limit := elems * typesize
	for j := 0; j < typesize; j++ {
		for i := 0; i < elems; i++ {
			dst[i*typesize+j] = src[j*elems+i]
		}
	}
	copy(dst[limit:], src[limit:])
}
