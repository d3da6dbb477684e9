package driver

import (
	"crypto/sha256"
	"encoding/binary"
)

// Digest is a SHA-256 cache key.
type Digest [32]byte

// cacheKey: H(schema || content hash). Смена схемы кэша меняет все ключи.
func cacheKey(content [32]byte) Digest {
	h := sha256.New()
	var schema [2]byte
	binary.BigEndian.PutUint16(schema[:], diskCacheSchemaVersion)
	_, _ = h.Write(schema[:])
	_, _ = h.Write(content[:])
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
