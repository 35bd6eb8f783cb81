// Package cryptox holds key-derivation helpers.
package cryptox

import "golang.org/x/crypto/argon2"

// SigningSalt is the fixed salt for deriving the session snapshot signing key.
// Only a single local session record is persisted, so there is nowhere to keep
// a per-install salt.
var SigningSalt = []byte("healthguard/session-snapshot/v1")

// DeriveKey stretches secret into a 32-byte key with Argon2id.
func DeriveKey(secret []byte, salt []byte) []byte {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, 32)
}
