package cryptox

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("fixed-salt")

	key1 := DeriveKey(password, salt)
	key2 := DeriveKey(password, salt)

	if !bytes.Equal(key1, key2) {
		t.Errorf("expected same result for same inputs, got different")
	}

	expectedHex := "34f7a1c64df63ab1ad5b5ee06e64db5713b35f81839823304db63e8e5e6a6a39"
	if hex.EncodeToString(key1) != expectedHex {
		t.Errorf("expected %s, got %s", expectedHex, hex.EncodeToString(key1))
	}
}

func TestDeriveKey_DifferentSalts(t *testing.T) {
	password := []byte("secret-password")

	key1 := DeriveKey(password, []byte("salt-1"))
	key2 := DeriveKey(password, []byte("salt-2"))

	if bytes.Equal(key1, key2) {
		t.Errorf("expected different results for different salts, got same")
	}
}

func TestHashPassword_Format(t *testing.T) {
	encoded := HashPassword([]byte("pw1"))

	assert.True(t, strings.HasPrefix(encoded, "argon2id$v=19$m=65536,t=1,p=4$"), encoded)
	assert.Len(t, strings.Split(encoded, "$"), 5)
	assert.NotContains(t, encoded, "pw1")
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	a := HashPassword([]byte("same"))
	b := HashPassword([]byte("same"))
	assert.NotEqual(t, a, b, "two hashes of one password must differ by salt")
}

func TestVerifyPassword(t *testing.T) {
	encoded := HashPassword([]byte("pw1"))

	ok, err := VerifyPassword(encoded, []byte("pw1"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword(encoded, []byte("wrong"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPassword_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"plaintext", "pw1"},
		{"wrong scheme", "bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$a2V5"},
		{"wrong version", "argon2id$v=16$m=65536,t=1,p=4$c2FsdA$a2V5"},
		{"bad params", "argon2id$v=19$m=x,t=1,p=4$c2FsdA$a2V5"},
		{"bad salt", "argon2id$v=19$m=65536,t=1,p=4$***$a2V5"},
		{"empty key", "argon2id$v=19$m=65536,t=1,p=4$c2FsdA$"},
		{"zero rounds", "argon2id$v=19$m=65536,t=0,p=4$c2FsdA$a2V5"},
		{"too many rounds", "argon2id$v=19$m=65536,t=1000000,p=4$c2FsdA$a2V5"},
		{"zero threads", "argon2id$v=19$m=65536,t=1,p=0$c2FsdA$a2V5"},
		{"memory below threads", "argon2id$v=19$m=16,t=1,p=4$c2FsdA$a2V5"},
		{"oversized memory", "argon2id$v=19$m=4294967295,t=1,p=4$c2FsdA$a2V5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				ok, err := VerifyPassword(tt.encoded, []byte("pw1"))
				require.ErrorIs(t, err, ErrMalformedCredential)
				assert.False(t, ok)
			})
		})
	}
}
