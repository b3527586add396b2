package keccak

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	magic         = "kcc\x01"
	marshaledSize = len(magic) + 4*4 + 1 + StateSize
)

// ErrInvalidEncoding is returned by UnmarshalBinary for malformed input.
var ErrInvalidEncoding = errors.New("keccak: invalid state encoding")

// MarshalBinary encodes the configuration, absorb offset and raw state so
// that an in-progress sponge can cross a process or language boundary.
func (s *State) MarshalBinary() ([]byte, error) {
	return s.AppendBinary(make([]byte, 0, marshaledSize))
}

// AppendBinary appends the encoding produced by MarshalBinary to b.
func (s *State) AppendBinary(b []byte) ([]byte, error) {
	b = append(b, magic...)
	b = binary.BigEndian.AppendUint32(b, uint32(s.rateBits))
	b = binary.BigEndian.AppendUint32(b, uint32(s.capacityBits))
	b = binary.BigEndian.AppendUint32(b, uint32(s.outputLen))
	b = binary.BigEndian.AppendUint32(b, uint32(s.offset))
	if s.squeezed {
		b = append(b, 1)
	} else {
		b = append(b, 0)
	}
	return append(b, s.a[:]...), nil
}

// UnmarshalBinary restores a state encoded by MarshalBinary.
func (s *State) UnmarshalBinary(b []byte) error {
	if len(b) != marshaledSize || string(b[:len(magic)]) != magic {
		return ErrInvalidEncoding
	}
	b = b[len(magic):]
	rateBits := int(binary.BigEndian.Uint32(b))
	capacityBits := int(binary.BigEndian.Uint32(b[4:]))
	outputLen := int(binary.BigEndian.Uint32(b[8:]))
	offset := int(binary.BigEndian.Uint32(b[12:]))
	flag := b[16]
	b = b[17:]

	if err := checkWidth(rateBits, capacityBits); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	if outputLen < 0 || offset < 0 || offset >= rateBits/8 || flag > 1 {
		return ErrInvalidEncoding
	}

	s.rateBits = rateBits
	s.capacityBits = capacityBits
	s.rate = rateBits / 8
	s.outputLen = outputLen
	s.offset = offset
	s.squeezed = flag == 1
	copy(s.a[:], b)
	return nil
}
