package feistel

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
)

var (
	// ErrMessageLength is returned for input that is not a whole number of
	// blocks. Partial blocks are never padded.
	ErrMessageLength = errors.New("feistel: message length must be a multiple of 1024 bytes")
	// ErrIVLength is returned when the IV is not exactly one block.
	ErrIVLength = errors.New("feistel: iv must be exactly 1024 bytes")
	// ErrUnknownMode is returned for a mode outside ECB..OFB.
	ErrUnknownMode = errors.New("feistel: unknown cipher mode")
)

// crypter threads one chaining variable through consecutive blocks.
type crypter struct {
	key     []byte
	iv      []byte
	mode    Mode
	decrypt bool
	tmp     []byte
	sc      *roundScratch
}

func newCrypter(key, iv []byte, mode Mode, decrypt bool, sc *roundScratch) *crypter {
	return &crypter{
		key:     key,
		iv:      iv,
		mode:    mode,
		decrypt: decrypt,
		tmp:     make([]byte, BlockSize),
		sc:      sc,
	}
}

func checkArgs(n int, iv []byte, mode Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
	if n%BlockSize != 0 {
		return fmt.Errorf("%w: got %d", ErrMessageLength, n)
	}
	if len(iv) != BlockSize {
		return fmt.Errorf("%w: got %d", ErrIVLength, len(iv))
	}
	return nil
}

// cryptBlocks processes whole blocks of src into dst. dst may alias src
// exactly.
func (c *crypter) cryptBlocks(dst, src []byte) {
	if c.mode == ECB && shouldParallel(len(src)/BlockSize) {
		ecbParallel(dst, src, c.key, !c.decrypt)
		return
	}
	for len(src) > 0 {
		if c.decrypt {
			c.decryptBlock(dst[:BlockSize], src[:BlockSize])
		} else {
			c.encryptBlock(dst[:BlockSize], src[:BlockSize])
		}
		src = src[BlockSize:]
		dst = dst[BlockSize:]
	}
}

// encryptBlock reads all of pt before writing ct, so ct may alias pt.
func (c *crypter) encryptBlock(ct, pt []byte) {
	iv, tmp := c.iv, c.tmp
	switch c.mode {
	case ECB:
		applyBlock(ct, pt, c.key, true, c.sc)
	case CBC:
		xorBytes(iv, iv, pt)
		applyBlock(ct, iv, c.key, true, c.sc)
		copy(iv, ct)
	case PCBC:
		copy(tmp, pt)
		xorBytes(iv, iv, tmp)
		applyBlock(ct, iv, c.key, true, c.sc)
		xorBytes(iv, ct, tmp)
	case CFB:
		applyBlock(tmp, iv, c.key, true, c.sc)
		xorBytes(ct, tmp, pt)
		copy(iv, ct)
	case OFB:
		applyBlock(iv, iv, c.key, true, c.sc)
		xorBytes(ct, iv, pt)
	}
}

// decryptBlock mirrors encryptBlock. CFB and OFB run the forward transform.
func (c *crypter) decryptBlock(pt, ct []byte) {
	iv, tmp := c.iv, c.tmp
	switch c.mode {
	case ECB:
		applyBlock(pt, ct, c.key, false, c.sc)
	case CBC:
		applyBlock(tmp, ct, c.key, false, c.sc)
		xorBytes(tmp, tmp, iv)
		copy(iv, ct)
		copy(pt, tmp)
	case PCBC:
		applyBlock(tmp, ct, c.key, false, c.sc)
		xorBytes(tmp, tmp, iv)
		xorBytes(iv, tmp, ct)
		copy(pt, tmp)
	case CFB:
		applyBlock(tmp, iv, c.key, true, c.sc)
		xorBytes(tmp, tmp, ct)
		copy(iv, ct)
		copy(pt, tmp)
	case OFB:
		applyBlock(iv, iv, c.key, true, c.sc)
		xorBytes(pt, iv, ct)
	}
}

func shouldParallel(blocks int) bool {
	if blocks < parallelMinBlocks {
		return false
	}
	return runtime.GOMAXPROCS(0) > 1
}

// ecbParallel splits whole blocks evenly across GOMAXPROCS workers. Blocks
// share no state in ECB, so the result equals serial processing.
func ecbParallel(dst, src, key []byte, forward bool) {
	blocks := len(src) / BlockSize
	workers := runtime.GOMAXPROCS(0)
	if workers > blocks {
		workers = blocks
	}
	var wg sync.WaitGroup
	start := 0
	base := blocks / workers
	extra := blocks % workers
	for i := 0; i < workers; i++ {
		n := base
		if i < extra {
			n++
		}
		end := start + n
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			sc := getScratch()
			for b := start; b < end; b++ {
				lo, hi := b*BlockSize, (b+1)*BlockSize
				applyBlock(dst[lo:hi], src[lo:hi], key, forward, sc)
			}
			putScratch(sc)
		}(start, end)
		start = end
	}
	wg.Wait()
}

// Encrypt encrypts plaintext, a whole number of blocks, under key in the
// given mode and returns a new ciphertext buffer.
//
// iv must be one block long. It is updated in place to the chaining value
// left after the last block, so a message can be encrypted across several
// calls; copy it first to reuse the original value. ECB leaves iv untouched.
// iv must not overlap plaintext or key. On error nothing is written.
func Encrypt(plaintext, key, iv []byte, mode Mode) ([]byte, error) {
	return crypt(plaintext, key, iv, mode, false)
}

// Decrypt reverses Encrypt with the same key, mode and starting iv, which it
// updates in place the same way.
func Decrypt(ciphertext, key, iv []byte, mode Mode) ([]byte, error) {
	return crypt(ciphertext, key, iv, mode, true)
}

func crypt(in, key, iv []byte, mode Mode, decrypt bool) ([]byte, error) {
	if err := checkArgs(len(in), iv, mode); err != nil {
		return nil, err
	}
	out := make([]byte, len(in))
	sc := getScratch()
	newCrypter(key, iv, mode, decrypt, sc).cryptBlocks(out, in)
	putScratch(sc)
	return out, nil
}
