package keccak

const (
	// Permutation width, in bits and bytes.
	Width     = 1600
	StateSize = Width / 8

	// Rounds is the number of rounds applied by Permute.
	Rounds = 24
)

const (
	laneCount = 25

	// paddingByte is the domain/padding delimiter XORed at the absorb offset.
	paddingByte byte = 0x06
	// finalBit terminates the padding in the last byte of the rate.
	finalBit byte = 0x80
)

// Rate/capacity presets, in bits.
const (
	Rate224     = 1152
	Capacity224 = 448
	Rate256     = 1088
	Capacity256 = 512
	Rate384     = 832
	Capacity384 = 768
	Rate512     = 576
	Capacity512 = 1024
)

// lfsrPoly is x^8+x^6+x^5+x^4+1 without the x^8 term.
const lfsrPoly = 0x71

var roundConstants = deriveRoundConstants()

// rhoPi follows lane (1, 0) through the pi cycle; entry t is the destination
// lane index and its rotation amount (t+1)(t+2)/2 mod 64.
var rhoPi = deriveRhoPi()
