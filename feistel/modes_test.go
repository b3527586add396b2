package feistel

import (
	"encoding/hex"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

var testKey = []byte("feistel-test-key")

func TestModeGoldenSingleBlock(t *testing.T) {
	vectors := loadVectors(t)
	key := mustHex(t, vectors.Key)
	require.Len(t, vectors.SingleBlock, len(Modes()))

	for _, v := range vectors.SingleBlock {
		mode, err := ParseMode(v.Mode)
		require.NoError(t, err)

		iv := make([]byte, BlockSize)
		ct, err := Encrypt(make([]byte, BlockSize), key, iv, mode)
		require.NoError(t, err)
		require.Equal(t, v.Ciphertext, hex.EncodeToString(ct), mode.String())

		iv = make([]byte, BlockSize)
		pt, err := Decrypt(ct, key, iv, mode)
		require.NoError(t, err)
		require.Equal(t, make([]byte, BlockSize), pt, mode.String())
	}
}

func TestModeGoldenMultiBlock(t *testing.T) {
	vectors := loadVectors(t)
	key := mustHex(t, vectors.Key)
	startIV := mustHex(t, vectors.MultiIV)
	plaintext := patternBytes(3 * BlockSize)

	for _, v := range vectors.MultiBlock {
		mode, err := ParseMode(v.Mode)
		require.NoError(t, err)

		iv := append([]byte(nil), startIV...)
		ct, err := Encrypt(plaintext, key, iv, mode)
		require.NoError(t, err)
		ctSum := sha3.Sum256(ct)
		ivSum := sha3.Sum256(iv)
		require.Equal(t, v.CiphertextSHA256, hex.EncodeToString(ctSum[:]), mode.String())
		require.Equal(t, v.FinalIVSHA256, hex.EncodeToString(ivSum[:]), mode.String())

		decIV := append([]byte(nil), startIV...)
		pt, err := Decrypt(ct, key, decIV, mode)
		require.NoError(t, err)
		require.Equal(t, plaintext, pt, mode.String())
		require.Equal(t, iv, decIV, "%s: encrypt and decrypt must end on the same chaining value", mode)
	}
}

func TestRoundTrip(t *testing.T) {
	keys := [][]byte{nil, testKey, patternBytes(2000)}
	for _, mode := range Modes() {
		for _, key := range keys {
			for _, blocks := range []int{0, 1, 2, 5} {
				plaintext := patternBytes(blocks * BlockSize)
				iv := patternBytes(BlockSize + 7)[7:]

				encIV := append([]byte(nil), iv...)
				ct, err := Encrypt(plaintext, key, encIV, mode)
				require.NoError(t, err)
				require.Len(t, ct, len(plaintext))
				if blocks > 0 {
					require.NotEqual(t, plaintext, ct, "%s blocks=%d", mode, blocks)
				}

				decIV := append([]byte(nil), iv...)
				pt, err := Decrypt(ct, key, decIV, mode)
				require.NoError(t, err)
				require.Equal(t, plaintext, pt, "%s blocks=%d key=%d", mode, blocks, len(key))
			}
		}
	}
}

func TestSplitCallsContinueChain(t *testing.T) {
	plaintext := patternBytes(4 * BlockSize)
	iv := patternBytes(BlockSize)

	for _, mode := range Modes() {
		oneIV := append([]byte(nil), iv...)
		whole, err := Encrypt(plaintext, testKey, oneIV, mode)
		require.NoError(t, err)

		splitIV := append([]byte(nil), iv...)
		first, err := Encrypt(plaintext[:BlockSize], testKey, splitIV, mode)
		require.NoError(t, err)
		rest, err := Encrypt(plaintext[BlockSize:], testKey, splitIV, mode)
		require.NoError(t, err)
		require.Equal(t, whole, append(first, rest...), mode.String())
		require.Equal(t, oneIV, splitIV, mode.String())

		decIV := append([]byte(nil), iv...)
		p1, err := Decrypt(whole[:3*BlockSize], testKey, decIV, mode)
		require.NoError(t, err)
		p2, err := Decrypt(whole[3*BlockSize:], testKey, decIV, mode)
		require.NoError(t, err)
		require.Equal(t, plaintext, append(p1, p2...), mode.String())
	}
}

func TestIVUpdates(t *testing.T) {
	plaintext := patternBytes(BlockSize)
	for _, mode := range Modes() {
		iv := make([]byte, BlockSize)
		ct, err := Encrypt(plaintext, testKey, iv, mode)
		require.NoError(t, err)

		switch mode {
		case ECB:
			require.Equal(t, make([]byte, BlockSize), iv)
		case CBC, CFB:
			require.Equal(t, ct, iv, mode.String())
		case PCBC:
			want := make([]byte, BlockSize)
			xorBytes(want, ct, plaintext)
			require.Equal(t, want, iv)
		case OFB:
			keystream, err := Apply(make([]byte, BlockSize), testKey, true)
			require.NoError(t, err)
			require.Equal(t, keystream, iv)
		}
	}
}

func TestStreamModesUseForwardTransform(t *testing.T) {
	iv := patternBytes(BlockSize)
	keystream, err := Apply(iv, testKey, true)
	require.NoError(t, err)

	ct := patternBytes(BlockSize + 3)[3:]
	for _, mode := range []Mode{CFB, OFB} {
		pt, err := Decrypt(ct, testKey, append([]byte(nil), iv...), mode)
		require.NoError(t, err)
		want := make([]byte, BlockSize)
		xorBytes(want, keystream, ct)
		require.Equal(t, want, pt, mode.String())
	}
}

func TestECBBlockIndependence(t *testing.T) {
	b1 := patternBytes(BlockSize)
	b2 := make([]byte, BlockSize)
	for i := range b2 {
		b2[i] = byte(i * 13)
	}
	iv := make([]byte, BlockSize)

	both, err := Encrypt(append(append([]byte(nil), b1...), b2...), testKey, iv, ECB)
	require.NoError(t, err)
	c1, err := Encrypt(b1, testKey, iv, ECB)
	require.NoError(t, err)
	c2, err := Encrypt(b2, testKey, iv, ECB)
	require.NoError(t, err)
	require.Equal(t, append(c1, c2...), both)

	// Identical plaintext blocks give identical ciphertext blocks.
	twice, err := Encrypt(append(append([]byte(nil), b1...), b1...), testKey, iv, ECB)
	require.NoError(t, err)
	require.Equal(t, twice[:BlockSize], twice[BlockSize:])
}

func TestECBParallelMatchesSerial(t *testing.T) {
	prev := runtime.GOMAXPROCS(4)
	defer runtime.GOMAXPROCS(prev)

	blocks := parallelMinBlocks + 3
	require.True(t, shouldParallel(blocks))
	plaintext := patternBytes(blocks * BlockSize)

	ct, err := Encrypt(plaintext, testKey, make([]byte, BlockSize), ECB)
	require.NoError(t, err)
	for i := 0; i < blocks; i++ {
		want, err := Apply(plaintext[i*BlockSize:(i+1)*BlockSize], testKey, true)
		require.NoError(t, err)
		require.Equal(t, want, ct[i*BlockSize:(i+1)*BlockSize], "block %d", i)
	}

	pt, err := Decrypt(ct, testKey, make([]byte, BlockSize), ECB)
	require.NoError(t, err)
	require.Equal(t, plaintext, pt)
}

func TestPreconditionsAreAtomic(t *testing.T) {
	iv := patternBytes(BlockSize)
	orig := append([]byte(nil), iv...)

	for _, fn := range []func([]byte, []byte, []byte, Mode) ([]byte, error){Encrypt, Decrypt} {
		out, err := fn(make([]byte, BlockSize+1), testKey, iv, CBC)
		require.ErrorIs(t, err, ErrMessageLength)
		require.Nil(t, out)

		out, err = fn(make([]byte, 100), testKey, iv, OFB)
		require.ErrorIs(t, err, ErrMessageLength)
		require.Nil(t, out)

		out, err = fn(make([]byte, BlockSize), testKey, iv[:BlockSize-1], CFB)
		require.ErrorIs(t, err, ErrIVLength)
		require.Nil(t, out)

		out, err = fn(make([]byte, BlockSize), testKey, nil, ECB)
		require.ErrorIs(t, err, ErrIVLength)
		require.Nil(t, out)

		out, err = fn(make([]byte, BlockSize), testKey, iv, Mode(5))
		require.ErrorIs(t, err, ErrUnknownMode)
		require.Nil(t, out)

		out, err = fn(make([]byte, BlockSize), testKey, iv, Mode(-1))
		require.ErrorIs(t, err, ErrUnknownMode)
		require.Nil(t, out)

		require.Equal(t, orig, iv)
	}
}

func TestEmptyMessage(t *testing.T) {
	iv := patternBytes(BlockSize)
	for _, mode := range Modes() {
		out, err := Encrypt(nil, testKey, iv, mode)
		require.NoError(t, err)
		require.Empty(t, out)
		require.Equal(t, patternBytes(BlockSize), iv)
	}
}
