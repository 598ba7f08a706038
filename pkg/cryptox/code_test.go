package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateCode(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for range 50 {
		code, err := GenerateCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		require.GreaterOrEqual(t, code, "100000")
		require.LessOrEqual(t, code, "999999")
		seen[code] = struct{}{}
	}

	// 50 draws from a ~900k space colliding down to a handful would mean a
	// broken generator.
	require.Greater(t, len(seen), 40)
}

func TestHashAndVerifyCode(t *testing.T) {
	t.Parallel()

	hash, err := HashCode("482913")
	require.NoError(t, err)

	parts := strings.Split(hash, "$")
	require.Len(t, parts, 6)
	require.Equal(t, "argon2id", parts[1])

	require.NoError(t, VerifyCode("482913", hash))
	require.ErrorIs(t, VerifyCode("482914", hash), ErrCodeMismatch)
}

func TestHashCodeSaltsDiffer(t *testing.T) {
	t.Parallel()

	h1, err := HashCode("123456")
	require.NoError(t, err)
	h2, err := HashCode("123456")
	require.NoError(t, err)

	require.NotEqual(t, h1, h2)
	require.NoError(t, VerifyCode("123456", h1))
	require.NoError(t, VerifyCode("123456", h2))
}

func TestVerifyCodeRejectsMalformedHash(t *testing.T) {
	t.Parallel()

	require.Error(t, VerifyCode("123456", "not-a-hash"))
	require.Error(t, VerifyCode("123456", "$argon2i$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA"))
}
