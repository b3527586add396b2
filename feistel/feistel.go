package feistel

import (
	"errors"
	"fmt"
	"sync"

	"github.com/TACITVS/Keccak-Feistel-Golang/keccak"
)

// ErrBlockSize is returned by Apply for input that is not exactly one block.
var ErrBlockSize = errors.New("feistel: block must be exactly 1024 bytes")

type roundScratch struct {
	sponge *keccak.State
	digest [RoundDigestLen]byte
}

func newScratch() *roundScratch {
	s, err := keccak.NewWithOutputLen(RoundRate, RoundCapacity, RoundDigestLen)
	if err != nil {
		panic(err)
	}
	return &roundScratch{sponge: s}
}

var scratchPool = sync.Pool{
	New: func() any { return newScratch() },
}

func getScratch() *roundScratch {
	return scratchPool.Get().(*roundScratch)
}

func putScratch(sc *roundScratch) {
	scratchPool.Put(sc)
}

// round XORs the first HalfSize bytes of H(key || in) into target. The rest
// of the digest is discarded.
func (sc *roundScratch) round(target, in, key []byte) {
	sc.sponge.Reset()
	_ = sc.sponge.Absorb(key)
	_ = sc.sponge.Absorb(in)
	_ = sc.sponge.SqueezeInto(sc.digest[:])
	xorBytes(target, target, sc.digest[:HalfSize])
}

// applyBlock runs the Feistel rounds over src into dst. Both are BlockSize
// long; dst may alias src exactly but must not overlap key.
//
// Even rounds update the left half from the right, odd rounds the right from
// the left, so no explicit swap is needed and reversing the round order
// inverts the transform.
func applyBlock(dst, src, key []byte, forward bool, sc *roundScratch) {
	copy(dst, src)
	left, right := dst[:HalfSize], dst[HalfSize:BlockSize]
	for i := 0; i < Rounds; i++ {
		r := i
		if !forward {
			r = Rounds - 1 - i
		}
		if r%2 == 0 {
			sc.round(left, right, key)
		} else {
			sc.round(right, left, key)
		}
	}
}

// Apply returns a new block holding the Feistel transform of block under
// key: rounds 0..3 when forward, 3..0 otherwise. Apply(Apply(b, k, true), k,
// false) returns b.
func Apply(block, key []byte, forward bool) ([]byte, error) {
	if len(block) != BlockSize {
		return nil, fmt.Errorf("%w: got %d", ErrBlockSize, len(block))
	}
	out := make([]byte, BlockSize)
	sc := getScratch()
	applyBlock(out, block, key, forward, sc)
	putScratch(sc)
	return out, nil
}
