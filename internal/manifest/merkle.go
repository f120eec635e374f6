package manifest

import (
	"crypto/sha256"
	"encoding/hex"
)

// MerkleRoot computes a simple binary Merkle root over hex-encoded SHA-256
// leaf digests, duplicating the last leaf at any level with an odd number
// of nodes. Returns the empty string for an empty leaf set.
func MerkleRoot(leaves []string) string {
	if len(leaves) == 0 {
		return ""
	}

	level := make([][]byte, len(leaves))
	for i, hexLeaf := range leaves {
		b, err := hex.DecodeString(hexLeaf)
		if err != nil {
			// A malformed leaf is a caller bug — every leaf here is
			// produced internally by chunkLeaves as a hex SHA-256 digest.
			panic("manifest: leaf is not valid hex: " + err.Error())
		}
		level[i] = b
	}

	for len(level) > 1 {
		var next [][]byte
		for i := 0; i < len(level); i += 2 {
			var pair []byte
			if i+1 == len(level) {
				pair = append(append([]byte(nil), level[i]...), level[i]...)
			} else {
				pair = append(append([]byte(nil), level[i]...), level[i+1]...)
			}
			h := sha256.Sum256(pair)
			next = append(next, h[:])
		}
		level = next
	}

	return hex.EncodeToString(level[0])
}
