package feistel

import (
	"crypto/cipher"
	"unsafe"
)

type blockMode crypter

var _ cipher.BlockMode = (*blockMode)(nil)

// NewEncrypter returns a cipher.BlockMode that encrypts in the given mode.
// It keeps private copies of key and iv and carries the chaining value
// between CryptBlocks calls. It panics if iv is not one block or the mode is
// unknown.
func NewEncrypter(key, iv []byte, mode Mode) cipher.BlockMode {
	return newBlockMode(key, iv, mode, false)
}

// NewDecrypter is the decrypting counterpart of NewEncrypter.
func NewDecrypter(key, iv []byte, mode Mode) cipher.BlockMode {
	return newBlockMode(key, iv, mode, true)
}

func newBlockMode(key, iv []byte, mode Mode, decrypt bool) *blockMode {
	if err := checkArgs(0, iv, mode); err != nil {
		panic(err)
	}
	c := newCrypter(dup(key), dup(iv), mode, decrypt, newScratch())
	return (*blockMode)(c)
}

func (x *blockMode) BlockSize() int { return BlockSize }

// CryptBlocks processes whole blocks; dst and src may overlap only exactly.
func (x *blockMode) CryptBlocks(dst, src []byte) {
	if len(src)%BlockSize != 0 {
		panic("feistel: input not full blocks")
	}
	if len(dst) < len(src) {
		panic("feistel: output smaller than input")
	}
	if inexactOverlap(dst[:len(src)], src) {
		panic("feistel: invalid buffer overlap")
	}
	(*crypter)(x).cryptBlocks(dst, src)
}

func dup(p []byte) []byte {
	q := make([]byte, len(p))
	copy(q, p)
	return q
}

func anyOverlap(x, y []byte) bool {
	return len(x) > 0 && len(y) > 0 &&
		uintptr(unsafe.Pointer(&x[0])) <= uintptr(unsafe.Pointer(&y[len(y)-1])) &&
		uintptr(unsafe.Pointer(&y[0])) <= uintptr(unsafe.Pointer(&x[len(x)-1]))
}

func inexactOverlap(x, y []byte) bool {
	if len(x) == 0 || len(y) == 0 || &x[0] == &y[0] {
		return false
	}
	return anyOverlap(x, y)
}
