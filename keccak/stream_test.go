package keccak

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type stalledReader struct{}

func (stalledReader) Read([]byte) (int, error) { return 0, nil }

func TestHashReader(t *testing.T) {
	input := patternBytes(10_000)
	want, err := Sum(Rate512, Capacity512, input)
	require.NoError(t, err)

	var calls int
	var last Progress
	got, err := HashReader(bytes.NewReader(input), Rate512, Capacity512, 777, func(p Progress) {
		calls++
		last = p
	})
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.Greater(t, calls, 1)
	require.Equal(t, uint64(len(input)), last.Processed)
	require.Zero(t, last.Total)
}

func TestHashReaderErrors(t *testing.T) {
	_, err := HashReader(bytes.NewReader(nil), 1000, 608, 0, nil)
	require.ErrorIs(t, err, ErrInvalidWidth)

	_, err = HashReader(stalledReader{}, Rate256, Capacity256, 0, nil)
	require.ErrorIs(t, err, io.ErrNoProgress)
}

func TestHashFile(t *testing.T) {
	input := patternBytes(3000)
	path := filepath.Join(t.TempDir(), "input.bin")
	require.NoError(t, os.WriteFile(path, input, 0o600))

	var last Progress
	got, err := HashFile(path, Rate256, Capacity256, 512, func(p Progress) { last = p })
	require.NoError(t, err)

	want, err := Sum(Rate256, Capacity256, input)
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.Equal(t, uint64(len(input)), last.Total)
	require.Equal(t, uint64(len(input)), last.Processed)

	_, err = HashFile(filepath.Join(t.TempDir(), "missing"), Rate256, Capacity256, 0, nil)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteReaderAfterSqueeze(t *testing.T) {
	s := New256()
	_, err := s.Squeeze()
	require.NoError(t, err)
	_, err = s.WriteReader(bytes.NewReader([]byte("x")), nil, 0, nil)
	require.ErrorIs(t, err, ErrSqueezed)
}
