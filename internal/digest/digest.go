// Package digest implements the commutative hash chain used to prove to the
// ledger that the client and server agree on every statement and parameter
// executed within a transaction.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
)

// Size is the length of a non-empty digest in bytes.
const Size = sha256.Size

// Digest is either a 256-bit hash or the special empty (identity) value.
type Digest []byte

// Empty returns the identity digest.
func Empty() Digest {
	return nil
}

// Hash returns the digest of the canonical wire encoding of a value.
func Hash(encoded []byte) Digest {
	h := sha256.Sum256(encoded)

	return h[:]
}

// IsEmpty reports whether d is the identity.
func (d Digest) IsEmpty() bool {
	return len(d) == 0
}

// Dot combines two digests into one. The identity combines to the other
// argument. Otherwise the two hashes are ordered by their signed byte values
// read from the most significant byte down, concatenated smaller-first and
// hashed again. Dot is commutative.
func (d Digest) Dot(that Digest) Digest {
	if d.IsEmpty() {
		return that
	}
	if that.IsEmpty() {
		return d
	}
	concatenated := make([]byte, 0, 2*Size)
	if compare(d, that) < 0 {
		concatenated = append(append(concatenated, d...), that...)
	} else {
		concatenated = append(append(concatenated, that...), d...)
	}
	h := sha256.Sum256(concatenated)

	return h[:]
}

// Equal reports whether two digests hold the same value.
func (d Digest) Equal(that Digest) bool {
	if d.IsEmpty() || that.IsEmpty() {
		return d.IsEmpty() && that.IsEmpty()
	}
	if len(d) != len(that) {
		return false
	}

	return compare(d, that) == 0
}

func (d Digest) String() string {
	return hex.EncodeToString(d)
}

// compare orders two 32-byte hashes by their signed byte values in
// little-endian order (most significant byte at index 31).
func compare(h1, h2 Digest) int {
	for i := len(h1) - 1; i >= 0; i-- {
		difference := int(int8(h1[i])) - int(int8(h2[i]))
		if difference != 0 {
			return difference
		}
	}

	return 0
}
