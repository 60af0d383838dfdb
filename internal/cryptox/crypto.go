// Package cryptox implements the password credential transform used by the
// account store: argon2id with a per-account random salt, encoded as a
// self-describing string so parameters can change without a migration.
package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophfx/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	scheme     = "argon2id"
	saltLength = 16

	argonTime    uint32 = 1
	argonMemory  uint32 = 64 * 1024
	argonThreads uint8  = 4
	argonKeyLen  uint32 = 32

	// Upper bounds accepted from stored credentials.
	maxMemory = argonMemory * 4
	maxTime   = 16
	maxKeyLen = 128
)

// ErrMalformedCredential is returned when a stored credential cannot be decoded.
var ErrMalformedCredential = errors.New("malformed credential")

// DeriveKey stretches password with salt using the default argon2id parameters.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// HashPassword returns the encoded credential for password:
//
//	argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
//
// salt and key are unpadded standard base64.
func HashPassword(password []byte) string {
	salt := common.GenerateRandByteArray(saltLength)
	key := DeriveKey(password, salt)

	return fmt.Sprintf("%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		scheme, argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
}

// VerifyPassword reports whether password matches the encoded credential.
// The key comparison is constant-time.
func VerifyPassword(encoded string, password []byte) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 5 || parts[0] != scheme {
		return false, ErrMalformedCredential
	}

	var version int
	if _, err := fmt.Sscanf(parts[1], "v=%d", &version); err != nil || version != argon2.Version {
		return false, ErrMalformedCredential
	}

	var (
		memory, time uint32
		threads      uint8
	)
	if _, err := fmt.Sscanf(parts[2], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false, ErrMalformedCredential
	}
	// argon2.IDKey panics on zero rounds or threads.
	if time < 1 || time > maxTime || threads < 1 || memory < 8*uint32(threads) || memory > maxMemory {
		return false, ErrMalformedCredential
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil {
		return false, ErrMalformedCredential
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(key) == 0 || len(key) > maxKeyLen {
		return false, ErrMalformedCredential
	}

	candidate := argon2.IDKey(password, salt, time, memory, threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}
