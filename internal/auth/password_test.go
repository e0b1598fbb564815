package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashSecretRoundTrip(t *testing.T) {
	req := require.New(t)

	hash, err := HashSecret("p1")
	req.NoError(err)
	req.NotEqual("p1", hash)

	req.True(SecretMatches(hash, "p1"))
	req.False(SecretMatches(hash, "wrong"))
	req.False(SecretMatches(hash, ""))
}

func TestSecretMatchesEmptyHash(t *testing.T) {
	require.False(t, SecretMatches("", ""))
	require.False(t, SecretMatches("", "anything"))
}

func TestHashSecretLongSecrets(t *testing.T) {
	cases := map[string]string{
		"ascii over bcrypt cap": strings.Repeat("x", 100),
		"multibyte 40 runes":    strings.Repeat("é", 40),
	}
	for name, secret := range cases {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)

			hash, err := HashSecret(secret)
			req.NoError(err)
			req.True(SecretMatches(hash, secret))
			// Differs only past byte 72.
			req.False(SecretMatches(hash, secret[:len(secret)-2]+"zz"))
		})
	}
}
