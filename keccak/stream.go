package keccak

import (
	"io"
	"os"
	"time"
)

const DefaultBufferSize = 256 * 1024
const maxEmptyReads = 8

type Progress struct {
	Processed uint64
	Total     uint64
	Elapsed   time.Duration
}

type ProgressFunc func(Progress)

// WriteReader absorbs data from r using buf and reports progress.
// If total is unknown, pass 0. The callback can call s.Sum(nil) to snapshot
// the current digest when needed.
func (s *State) WriteReader(r io.Reader, buf []byte, total uint64, onProgress ProgressFunc) (int64, error) {
	if s.squeezed {
		return 0, ErrSqueezed
	}
	if len(buf) == 0 {
		buf = make([]byte, DefaultBufferSize)
	}

	start := time.Now()
	var processed uint64
	emptyReads := 0

	for {
		n, err := r.Read(buf)
		if n > 0 {
			emptyReads = 0
			_ = s.Absorb(buf[:n])
			processed += uint64(n)
			if onProgress != nil {
				onProgress(Progress{
					Processed: processed,
					Total:     total,
					Elapsed:   time.Since(start),
				})
			}
		}

		if err == io.EOF {
			if n == 0 && onProgress != nil {
				onProgress(Progress{
					Processed: processed,
					Total:     total,
					Elapsed:   time.Since(start),
				})
			}
			return int64(processed), nil
		}
		if err != nil {
			return int64(processed), err
		}
		if n == 0 {
			emptyReads++
			if emptyReads >= maxEmptyReads {
				return int64(processed), io.ErrNoProgress
			}
		}
	}
}

// HashReader absorbs r into a new sponge and returns its digest.
func HashReader(r io.Reader, rateBits, capacityBits, bufSize int, onProgress ProgressFunc) ([]byte, error) {
	s, err := New(rateBits, capacityBits)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, bufferSizeOrDefault(bufSize))
	if _, err := s.WriteReader(r, buf, 0, onProgress); err != nil {
		return nil, err
	}
	return s.Squeeze()
}

// HashFile absorbs a file into a new sponge and reports progress against the
// file size.
func HashFile(path string, rateBits, capacityBits, bufSize int, onProgress ProgressFunc) ([]byte, error) {
	s, err := New(rateBits, capacityBits)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	buf := make([]byte, bufferSizeOrDefault(bufSize))
	if _, err := s.WriteReader(f, buf, uint64(info.Size()), onProgress); err != nil {
		return nil, err
	}
	return s.Squeeze()
}

func bufferSizeOrDefault(n int) int {
	if n > 0 {
		return n
	}
	return DefaultBufferSize
}
