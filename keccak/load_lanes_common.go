package keccak

import "encoding/binary"

func loadLanesSlow(dst *[laneCount]uint64, b []byte) {
	_ = b[StateSize-1]
	for i := 0; i < laneCount; i++ {
		dst[i] = binary.LittleEndian.Uint64(b[i*8:])
	}
}

func storeLanesSlow(b []byte, src *[laneCount]uint64) {
	_ = b[StateSize-1]
	for i := 0; i < laneCount; i++ {
		binary.LittleEndian.PutUint64(b[i*8:], src[i])
	}
}
