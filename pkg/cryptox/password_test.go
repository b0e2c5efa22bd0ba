package cryptox_test

import (
	"path/filepath"
	"testing"

	"github.com/medibook/medibook/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func useTempPepper(t *testing.T) {
	t.Helper()
	cryptox.SetPepperPath(filepath.Join(t.TempDir(), "pepper"))
}

func TestHashAndVerifySecret(t *testing.T) {
	useTempPepper(t)

	hash, err := cryptox.HashSecret("correct horse battery staple")
	require.NoError(t, err)
	require.Contains(t, hash, "$argon2id$v=19$")

	require.NoError(t, cryptox.VerifySecret("correct horse battery staple", hash))
	require.ErrorIs(t, cryptox.VerifySecret("wrong secret", hash), cryptox.ErrMismatch)
}

func TestHashSecretSaltsEachCall(t *testing.T) {
	useTempPepper(t)

	a, err := cryptox.HashSecret("same-secret")
	require.NoError(t, err)
	b, err := cryptox.HashSecret("same-secret")
	require.NoError(t, err)

	require.NotEqual(t, a, b)
	require.NoError(t, cryptox.VerifySecret("same-secret", a))
	require.NoError(t, cryptox.VerifySecret("same-secret", b))
}

func TestVerifySecretRejectsMangledHashes(t *testing.T) {
	useTempPepper(t)

	cases := map[string]string{
		"empty":           "",
		"not phc":         "plainhash",
		"wrong algorithm": "$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"wrong version":   "$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"missing parts":   "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA",
		"bad salt":        "$argon2id$v=19$m=19456,t=2,p=1$!!!$aGFzaA",
	}

	for name, hash := range cases {
		t.Run(name, func(t *testing.T) {
			require.Error(t, cryptox.VerifySecret("anything", hash))
		})
	}
}
