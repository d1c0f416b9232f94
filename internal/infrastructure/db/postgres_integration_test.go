package db_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohammadpnp/user-accounts/internal/infrastructure/db"
)

func TestSchemaManagerPostgresIntegration(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	ctx := context.Background()
	gdb, err := db.Open(ctx, db.Config{
		Driver: db.DriverPostgres,
		DSN:    dsn,
		Logger: slog.New(slog.DiscardHandler),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(gdb) })

	schema := db.NewSchemaManager(gdb)
	require.NoError(t, schema.DropSchema(ctx))
	require.NoError(t, schema.CreateSchema(ctx))
	t.Cleanup(func() { _ = schema.DropSchema(ctx) })

	info, err := schema.Inspect(ctx)
	require.NoError(t, err)
	assert.True(t, info.Present["user_account"])
	assert.True(t, info.Present["address"])
	assert.Equal(t, "public", info.DefaultSchema)
}
