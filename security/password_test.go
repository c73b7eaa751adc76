package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	digest, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", digest)

	assert.True(t, VerifyPassword("secret123", digest))
	assert.False(t, VerifyPassword("secret124", digest))
	assert.False(t, VerifyPassword("", digest))
}

func TestArbitraryLengthSecrets(t *testing.T) {
	// bcrypt truncates input beyond 72 bytes; the prehash must keep long
	// secrets distinguishable past that boundary
	base := strings.Repeat("a", 100)
	digest, err := HashPassword(base)
	require.NoError(t, err)

	assert.True(t, VerifyPassword(base, digest))
	assert.False(t, VerifyPassword(base+"b", digest))
}
