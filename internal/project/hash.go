package project

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest is a 256-bit content hash, compatible with source.File.Hash.
type Digest [32]byte

// Sum hashes data.
func Sum(data []byte) Digest {
	return Digest(sha256.Sum256(data))
}

// Combine hashes content followed by every part in order: H(content || p1 || p2 ...).
// Callers must pass parts in a deterministic order.
func Combine(content Digest, parts ...Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, d := range parts {
		_, _ = h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

func (d Digest) IsZero() bool {
	return d == Digest{}
}

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}
