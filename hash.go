package easysig

import (
	"crypto/sha256"
	"hash"

	"golang.org/x/crypto/ripemd160"
)

// HashLength is the length of a message digest accepted by the hash-taking
// operations.
const HashLength = sha256.Size

// Hash256 returns the SHA-256 digest of data. This is the digest that gets
// signed, verified and recovered against.
func Hash256(data []byte) []byte {
	h := sha256.Sum256(data)
	return h[:]
}

// Calculate the hash of hasher over buf.
func calcHash(buf []byte, hasher hash.Hash) []byte {
	hasher.Write(buf)
	return hasher.Sum(nil)
}

// Hash160 calculates the hash ripemd160(sha256(b)).
func Hash160(buf []byte) []byte {
	return calcHash(calcHash(buf, sha256.New()), ripemd160.New())
}

// checksum returns the first four bytes of ripemd160(buf || suffix).
func checksum(buf []byte, suffix string) []byte {
	hasher := ripemd160.New()
	hasher.Write(buf)
	hasher.Write([]byte(suffix))
	return hasher.Sum(nil)[:4]
}
