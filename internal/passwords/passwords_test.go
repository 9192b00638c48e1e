package passwords

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSHA256_Deterministic(t *testing.T) {
	h := SHA256{}

	first, err := h.Hash("pw1")
	require.NoError(t, err)
	second, err := h.Hash("pw1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, h.Deterministic())
	// base64 of a 32 byte digest
	assert.Len(t, first, 44)
}

func TestSHA256_NoCollisions(t *testing.T) {
	h := SHA256{}
	seen := make(map[string]string)

	for i := 0; i < 1000; i++ {
		plain := fmt.Sprintf("password-%d", i)
		hash, err := h.Hash(plain)
		require.NoError(t, err)

		prev, dup := seen[hash]
		assert.False(t, dup, "collision between %q and %q", prev, plain)
		seen[hash] = plain
	}
}

func TestSHA256_KnownVector(t *testing.T) {
	hash, err := SHA256{}.Hash("")
	require.NoError(t, err)
	assert.Equal(t, "47DEQpj8HBSa+/TImW+5JCeuQeRkm5NMpJWZG3hSuFU=", hash)
}

func TestCompare(t *testing.T) {
	hashers := map[string]Hasher{
		"sha256": SHA256{},
		"bcrypt": Bcrypt{Cost: 4},
	}

	for name, h := range hashers {
		t.Run(name, func(t *testing.T) {
			hash, err := h.Hash("pw1")
			require.NoError(t, err)
			assert.NotEqual(t, "pw1", hash)

			assert.NoError(t, h.Compare(hash, "pw1"))
			assert.ErrorIs(t, h.Compare(hash, "pw2"), ErrMismatch)
		})
	}
}

func TestBcrypt_Salted(t *testing.T) {
	h := Bcrypt{Cost: 4}

	a, err := h.Hash("pw1")
	require.NoError(t, err)
	b, err := h.Hash("pw1")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.False(t, h.Deterministic())
}

func TestNew(t *testing.T) {
	h, err := New("")
	require.NoError(t, err)
	assert.IsType(t, SHA256{}, h)

	h, err = New("bcrypt")
	require.NoError(t, err)
	assert.IsType(t, Bcrypt{}, h)

	_, err = New("md5")
	assert.Error(t, err)
}
