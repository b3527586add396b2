//go:build !(amd64 || 386 || arm64 || arm || riscv64 || ppc64le || mipsle || mips64le || loong64)

package keccak

func loadLanes(dst *[laneCount]uint64, b []byte) {
	loadLanesSlow(dst, b)
}

func storeLanes(b []byte, src *[laneCount]uint64) {
	storeLanesSlow(b, src)
}
