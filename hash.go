package tknormalizer

import (
	"crypto/sha256"
	"encoding/hex"
)

// hashString returns the SHA-256 digest of s, hex-encoded. The digests are
// fixed-length indexable keys, not authentication material, so there is no
// salt involved.
func hashString(s string) string {
	digest := sha256.Sum256([]byte(s))
	return hex.EncodeToString(digest[:])
}
