package kzg

import "crypto/sha256"

// sha256Sum hashes msg with SHA-256, the one non-curve primitive the
// backend façade exposes.
func sha256Sum(msg []byte) [32]byte {
	return sha256.Sum256(msg)
}
