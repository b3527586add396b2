package keccak

import "math/bits"

type rhoPiStep struct {
	lane     int
	rotation int
}

// lfsr86540 advances the round-constant register and returns its previous
// low bit.
func lfsr86540(r *uint8) bool {
	out := *r&0x01 != 0
	if *r&0x80 != 0 {
		*r = (*r << 1) ^ lfsrPoly
	} else {
		*r <<= 1
	}
	return out
}

func deriveRoundConstants() [Rounds]uint64 {
	var rc [Rounds]uint64
	r := uint8(0x01)
	for round := 0; round < Rounds; round++ {
		for j := 0; j < 7; j++ {
			if lfsr86540(&r) {
				rc[round] ^= uint64(1) << (uint(1)<<j - 1)
			}
		}
	}
	return rc
}

func deriveRhoPi() [24]rhoPiStep {
	var steps [24]rhoPiStep
	x, y := 1, 0
	for t := 0; t < 24; t++ {
		x, y = y, (2*x+3*y)%5
		steps[t] = rhoPiStep{
			lane:     x + 5*y,
			rotation: ((t + 1) * (t + 2) / 2) % 64,
		}
	}
	return steps
}

func theta(a *[laneCount]uint64) {
	var c [5]uint64
	for x := 0; x < 5; x++ {
		c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
	}
	for x := 0; x < 5; x++ {
		d := c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
		for y := 0; y < 25; y += 5 {
			a[x+y] ^= d
		}
	}
}

// rhoAndPi carries each lane to its pi destination, rotating it on the way.
// The cycle starting at (1, 0) visits every lane except (0, 0) once.
func rhoAndPi(a *[laneCount]uint64) {
	current := a[1]
	for _, step := range rhoPi {
		next := a[step.lane]
		a[step.lane] = bits.RotateLeft64(current, step.rotation)
		current = next
	}
}

func chi(a *[laneCount]uint64) {
	var row [5]uint64
	for y := 0; y < 25; y += 5 {
		copy(row[:], a[y:y+5])
		for x := 0; x < 5; x++ {
			a[y+x] = row[x] ^ (^row[(x+1)%5] & row[(x+2)%5])
		}
	}
}

func permuteRounds(a *[laneCount]uint64, rounds int) {
	for round := 0; round < rounds; round++ {
		theta(a)
		rhoAndPi(a)
		chi(a)
		// iota
		a[0] ^= roundConstants[round]
	}
}

func keccakF1600(a *[laneCount]uint64) {
	permuteRounds(a, Rounds)
}

// Permute applies the full 24-round Keccak-f[1600] permutation to state in
// place. Lanes are read little-endian, lane (x, y) at byte 8*(x+5y).
func Permute(state *[StateSize]byte) {
	var a [laneCount]uint64
	loadLanes(&a, state[:])
	keccakF1600(&a)
	storeLanes(state[:], &a)
}
