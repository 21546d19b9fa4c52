package apiclient_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ekthaa/internal/apiclient"
	"ekthaa/internal/domain"
)

func TestFileCredentials_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "credentials.json")
	creds, err := apiclient.NewFileCredentials(path)
	require.NoError(t, err)

	token, err := creds.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token, "missing file means logged out")

	require.NoError(t, creds.SetToken(ctx, "tok-1", &domain.User{ID: "u1", BusinessName: "Ekthaa Stores"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	token, err = creds.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	user, err := creds.User(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Ekthaa Stores", user.BusinessName)

	require.NoError(t, creds.ClearToken(ctx))
	token, err = creds.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, creds.ClearToken(ctx), "clearing twice is fine")
}

func TestFileCredentials_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	creds, err := apiclient.NewFileCredentials(path)
	require.NoError(t, err)
	_, err = creds.Token(context.Background())
	assert.Error(t, err)
}

func TestMemoryCredentials(t *testing.T) {
	ctx := context.Background()
	m := apiclient.NewMemoryCredentials("a")

	tok, _ := m.Token(ctx)
	assert.Equal(t, "a", tok)

	require.NoError(t, m.SetToken(ctx, "b", nil))
	tok, _ = m.Token(ctx)
	assert.Equal(t, "b", tok)

	require.NoError(t, m.ClearToken(ctx))
	tok, _ = m.Token(ctx)
	assert.Empty(t, tok)
}

var (
	_ apiclient.CredentialProvider = (*apiclient.MemoryCredentials)(nil)
	_ apiclient.TokenSetter        = (*apiclient.FileCredentials)(nil)
)
