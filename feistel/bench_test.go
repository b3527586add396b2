package feistel

import "testing"

func BenchmarkApply(b *testing.B) {
	block := patternBytes(BlockSize)
	b.SetBytes(BlockSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Apply(block, testKey, true)
	}
}

func benchmarkEncrypt(b *testing.B, mode Mode) {
	data := patternBytes(64 * BlockSize)
	iv := make([]byte, BlockSize)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Encrypt(data, testKey, iv, mode)
	}
}

func BenchmarkEncryptECB_64K(b *testing.B) { benchmarkEncrypt(b, ECB) }
func BenchmarkEncryptCBC_64K(b *testing.B) { benchmarkEncrypt(b, CBC) }
func BenchmarkEncryptOFB_64K(b *testing.B) { benchmarkEncrypt(b, OFB) }
