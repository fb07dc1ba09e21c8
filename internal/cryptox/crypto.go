// Package cryptox derives login verifiers from passwords. The password never
// leaves the client: the server stores a per-user salt and the verifier.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

// argon2id parameters. Changing them invalidates every stored verifier.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	keyLength    = 32
)

// SaltSize is the length of a freshly generated user salt.
const SaltSize = 32

// DeriveKey stretches password with salt using argon2id.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, keyLength)
}

// MakeVerifier hashes a derived key into the value sent to and stored by the
// server.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// VerifierFor is DeriveKey followed by MakeVerifier.
func VerifierFor(password []byte, salt []byte) []byte {
	return MakeVerifier(DeriveKey(password, salt))
}

// Equal compares two verifiers in constant time.
func Equal(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
