package auth_test

import (
	"testing"

	"github.com/medibook/medibook/pkg/authsdk"
	"github.com/stretchr/testify/require"
)

func TestHealthProbes(t *testing.T) {
	baseURL, cleanup := setupAuthContainer(t)
	defer cleanup()

	client := authsdk.NewClient(baseURL)

	require.NoError(t, client.Livez(t.Context()), "livez should report ok")
	require.NoError(t, client.Readyz(t.Context()), "readyz should report ok")
}
