//go:build amd64 || 386 || arm64 || arm || riscv64 || ppc64le || mipsle || mips64le || loong64

package keccak

import "unsafe"

func loadLanes(dst *[laneCount]uint64, b []byte) {
	_ = b[StateSize-1]
	if uintptr(unsafe.Pointer(&b[0]))&7 == 0 {
		*dst = *(*[laneCount]uint64)(unsafe.Pointer(&b[0]))
		return
	}
	loadLanesSlow(dst, b)
}

func storeLanes(b []byte, src *[laneCount]uint64) {
	_ = b[StateSize-1]
	if uintptr(unsafe.Pointer(&b[0]))&7 == 0 {
		*(*[laneCount]uint64)(unsafe.Pointer(&b[0])) = *src
		return
	}
	storeLanesSlow(b, src)
}
