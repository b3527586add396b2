package keccak

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarshalRoundTrip(t *testing.T) {
	input := patternBytes(1000)

	s, err := NewWithOutputLen(Rate384, Capacity384, 300)
	require.NoError(t, err)
	require.NoError(t, s.Absorb(input[:413]))

	enc, err := s.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, enc, marshaledSize)

	var restored State
	require.NoError(t, restored.UnmarshalBinary(enc))
	require.Equal(t, s.Bytes(), restored.Bytes())
	require.Equal(t, s.Offset(), restored.Offset())
	require.Equal(t, s.Size(), restored.Size())
	require.Equal(t, s.Rate(), restored.Rate())

	require.NoError(t, s.Absorb(input[413:]))
	require.NoError(t, restored.Absorb(input[413:]))
	want, err := s.Squeeze()
	require.NoError(t, err)
	got, err := restored.Squeeze()
	require.NoError(t, err)
	require.Equal(t, want, got)

	// The squeezed flag survives the trip.
	enc, err = restored.MarshalBinary()
	require.NoError(t, err)
	var done State
	require.NoError(t, done.UnmarshalBinary(enc))
	require.True(t, done.Squeezed())
	_, err = done.Squeeze()
	require.ErrorIs(t, err, ErrSqueezed)
}

func TestUnmarshalRejectsMalformed(t *testing.T) {
	s := New256()
	_, _ = s.Write(patternBytes(10))
	good, err := s.MarshalBinary()
	require.NoError(t, err)

	corrupt := func(f func(b []byte) []byte) []byte {
		b := append([]byte(nil), good...)
		return f(b)
	}

	cases := map[string][]byte{
		"short":     good[:len(good)-1],
		"long":      append(append([]byte(nil), good...), 0),
		"magic":     corrupt(func(b []byte) []byte { b[0] = 'x'; return b }),
		"width":     corrupt(func(b []byte) []byte { b[7] ^= 0x08; return b }),
		"offset":    corrupt(func(b []byte) []byte { b[19] = 0xff; return b }),
		"flag":      corrupt(func(b []byte) []byte { b[20] = 2; return b }),
		"empty":     nil,
		"magicOnly": []byte(magic),
	}
	for name, b := range cases {
		var st State
		require.ErrorIs(t, st.UnmarshalBinary(b), ErrInvalidEncoding, name)
	}
}
