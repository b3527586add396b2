package keccak

import (
	"errors"
	"fmt"
	"hash"
)

var (
	// ErrInvalidWidth is returned when rate and capacity do not describe a
	// 1600-bit state split on byte boundaries.
	ErrInvalidWidth = errors.New("keccak: rate and capacity must be positive byte multiples summing to 1600 bits")
	// ErrInvalidOutputLen is returned for a negative output length, or an
	// output buffer whose length differs from the configured one.
	ErrInvalidOutputLen = errors.New("keccak: invalid output length")
	// ErrSqueezed is returned when a state is used after it was squeezed.
	ErrSqueezed = errors.New("keccak: state already squeezed")
)

// State is a Keccak sponge over the 1600-bit permutation. A State absorbs
// any number of inputs and is then squeezed exactly once.
type State struct {
	a            [StateSize]byte
	rateBits     int
	capacityBits int
	rate         int
	outputLen    int
	offset       int
	squeezed     bool
}

var _ hash.Hash = (*State)(nil)

func checkWidth(rateBits, capacityBits int) error {
	if rateBits <= 0 || capacityBits < 0 ||
		rateBits%8 != 0 || capacityBits%8 != 0 ||
		rateBits+capacityBits != Width {
		return fmt.Errorf("%w: rate=%d capacity=%d", ErrInvalidWidth, rateBits, capacityBits)
	}
	return nil
}

// New returns a sponge with the given rate and capacity in bits. The digest
// is capacityBits/8 bytes long.
func New(rateBits, capacityBits int) (*State, error) {
	return NewWithOutputLen(rateBits, capacityBits, capacityBits/8)
}

// NewWithOutputLen returns a sponge that squeezes outputLen bytes.
func NewWithOutputLen(rateBits, capacityBits, outputLen int) (*State, error) {
	if err := checkWidth(rateBits, capacityBits); err != nil {
		return nil, err
	}
	if outputLen < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOutputLen, outputLen)
	}
	return &State{
		rateBits:     rateBits,
		capacityBits: capacityBits,
		rate:         rateBits / 8,
		outputLen:    outputLen,
	}, nil
}

func mustNew(rateBits, capacityBits int) *State {
	s, err := New(rateBits, capacityBits)
	if err != nil {
		panic(err)
	}
	return s
}

// New224 returns a sponge with the 1152/448 split and a 56-byte digest.
func New224() *State { return mustNew(Rate224, Capacity224) }

// New256 returns a sponge with the 1088/512 split and a 64-byte digest.
func New256() *State { return mustNew(Rate256, Capacity256) }

// New384 returns a sponge with the 832/768 split and a 96-byte digest.
func New384() *State { return mustNew(Rate384, Capacity384) }

// New512 returns a sponge with the 576/1024 split and a 128-byte digest.
func New512() *State { return mustNew(Rate512, Capacity512) }

// Rate returns the rate in bits.
func (s *State) Rate() int { return s.rateBits }

// Capacity returns the capacity in bits.
func (s *State) Capacity() int { return s.capacityBits }

// Offset returns the number of bytes absorbed into the current, not yet
// permuted, block.
func (s *State) Offset() int { return s.offset }

// Squeezed reports whether the state has been consumed.
func (s *State) Squeezed() bool { return s.squeezed }

// Bytes returns a copy of the raw 200-byte state.
func (s *State) Bytes() [StateSize]byte { return s.a }

// Clone returns an independent copy of s.
func (s *State) Clone() *State {
	c := *s
	return &c
}

func (s *State) permute() {
	Permute(&s.a)
}

// Absorb XORs p into the state, permuting each time a full rate block has
// been absorbed. Splitting an input across several calls leaves the state
// identical to absorbing it in one call.
func (s *State) Absorb(p []byte) error {
	if s.squeezed {
		return ErrSqueezed
	}
	for len(p) > 0 {
		want := s.rate - s.offset
		if want > len(p) {
			want = len(p)
		}
		block := s.a[s.offset : s.offset+want]
		for i := range block {
			block[i] ^= p[i]
		}
		s.offset += want
		p = p[want:]

		if s.offset == s.rate {
			s.permute()
			s.offset = 0
		}
	}
	return nil
}

// Squeeze pads and permutes the state, then returns the digest. The state
// cannot be used again until Reset.
func (s *State) Squeeze() ([]byte, error) {
	if s.squeezed {
		return nil, ErrSqueezed
	}
	out := make([]byte, s.outputLen)
	s.squeeze(out)
	return out, nil
}

// SqueezeInto is Squeeze writing into out, which must be exactly Size bytes.
func (s *State) SqueezeInto(out []byte) error {
	if s.squeezed {
		return ErrSqueezed
	}
	if len(out) != s.outputLen {
		return fmt.Errorf("%w: have %d, want %d", ErrInvalidOutputLen, len(out), s.outputLen)
	}
	s.squeeze(out)
	return nil
}

// squeeze never permutes between the delimiter and the final bit: when the
// offset is rate-1 both land in the same byte.
func (s *State) squeeze(out []byte) {
	s.a[s.offset] ^= paddingByte
	s.a[s.rate-1] ^= finalBit
	s.permute()
	s.squeezed = true

	for len(out) > 0 {
		n := copy(out, s.a[:s.rate])
		out = out[n:]
		if len(out) > 0 {
			s.permute()
		}
	}
}

// Write absorbs p. It only fails once the state has been squeezed.
func (s *State) Write(p []byte) (int, error) {
	if err := s.Absorb(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Sum appends the digest of the data absorbed so far to b. It squeezes a
// copy, so s can keep absorbing. Sum panics if s was already squeezed.
func (s *State) Sum(b []byte) []byte {
	if s.squeezed {
		panic(ErrSqueezed)
	}
	c := *s
	out := make([]byte, s.outputLen)
	c.squeeze(out)
	return append(b, out...)
}

// Reset zeroes the state and keeps the rate, capacity and output length.
func (s *State) Reset() {
	clear(s.a[:])
	s.offset = 0
	s.squeezed = false
}

// Size returns the digest length in bytes.
func (s *State) Size() int { return s.outputLen }

// BlockSize returns the rate in bytes.
func (s *State) BlockSize() int { return s.rate }

// Sum returns the digest of data for the given rate and capacity.
func Sum(rateBits, capacityBits int, data []byte) ([]byte, error) {
	s, err := New(rateBits, capacityBits)
	if err != nil {
		return nil, err
	}
	_ = s.Absorb(data)
	return s.Squeeze()
}
