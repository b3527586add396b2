package feistel

// xorBytes sets dst[i] = a[i] ^ b[i] for i < n = min(len(dst), len(a), len(b))
// and returns n. Each output byte depends only on the same index of the
// inputs, so dst may alias a or b exactly; partial overlaps at different
// offsets are not supported.
func xorBytes(dst, a, b []byte) int {
	n := len(dst)
	if len(a) < n {
		n = len(a)
	}
	if len(b) < n {
		n = len(b)
	}
	if n == 0 {
		return 0
	}
	_ = dst[n-1]
	_ = a[n-1]
	_ = b[n-1]
	for i := 0; i < n; i++ {
		dst[i] = a[i] ^ b[i]
	}
	return n
}
