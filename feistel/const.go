package feistel

import "github.com/TACITVS/Keccak-Feistel-Golang/keccak"

const (
	// BlockSize is the cipher block length in bytes.
	BlockSize = 1024
	// HalfSize is the length of each Feistel half.
	HalfSize = BlockSize / 2
	// Rounds is the number of Feistel rounds.
	Rounds = 4
)

// Sponge parameters of the round function. The round digest is a full block
// long even though only HalfSize bytes of it are used.
const (
	RoundRate      = keccak.Rate256
	RoundCapacity  = keccak.Capacity256
	RoundDigestLen = BlockSize
)

// parallelMinBlocks is the smallest ECB message spread across workers.
const parallelMinBlocks = 16
