package file_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/mohammadpnp/user-accounts/internal/domain/account"
	"github.com/mohammadpnp/user-accounts/internal/infrastructure/file"
)

func TestLoadDefaultSeed(t *testing.T) {
	t.Parallel()

	users, err := file.NewSeedSource("").Load(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, users, 3)

	assert.Equal(t, "maria", users[0].Name)
	assert.Empty(t, users[0].Addresses)
	assert.Equal(t, "João Souza", users[1].FullName)
	assert.Len(t, users[1].Addresses, 2)
	assert.Equal(t, "ericson", users[2].Name)
	assert.Len(t, users[2].Addresses, 1)
}

func TestLoadSeedFromBaseDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	doc := `[{"name":"ana","full_name":"Ana Costa","addresses":["ana@email.com"]}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"), []byte(doc), 0o600))

	users, err := file.NewSeedSource(dir).Load(context.Background(), "users.json")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "ana@email.com", users[0].Addresses[0].EmailAddress)
}

func TestLoadSeedMissingFile(t *testing.T) {
	t.Parallel()

	_, err := file.NewSeedSource(t.TempDir()).Load(context.Background(), "missing.json")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeSeedRejectsInvalidDocuments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{name: "not json", doc: `{"name":`},
		{name: "not an array", doc: `{"name":"ana"}`},
		{name: "bad email", doc: `[{"name":"ana","full_name":"Ana","addresses":["nope"]}]`, wantErr: domain.ErrInvalidEmail},
		{name: "name too long", doc: `[{"name":"anastasia-maria","full_name":"Ana"}]`, wantErr: domain.ErrFieldTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := file.DecodeSeed(strings.NewReader(tt.doc))
			require.ErrorIs(t, err, file.ErrInvalidSeed)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
