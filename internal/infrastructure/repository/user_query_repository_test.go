package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/mohammadpnp/user-accounts/internal/domain/account"
)

func fullNames(users []domain.User) []string {
	names := make([]string, 0, len(users))
	for _, user := range users {
		names = append(names, user.FullName)
	}
	return names
}

func TestFindUsersByNames(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newSeededStore(t)

	require.NoError(t, store.WithSession(ctx, func(s domain.Session) error {
		users, err := s.FindUsersByNames(ctx, "ericson", "joao")
		require.NoError(t, err)
		assert.Equal(t, []string{"João Souza", "Ericson Lima"}, fullNames(users))

		none, err := s.FindUsersByNames(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, none)
		return nil
	}))
}

func TestFindAddressesByUserID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newSeededStore(t)

	require.NoError(t, store.WithSession(ctx, func(s domain.Session) error {
		addresses, err := s.FindAddressesByUserID(ctx, 2)
		require.NoError(t, err)
		require.Len(t, addresses, 2)
		assert.Equal(t, "joao@email.com", addresses[0].EmailAddress)
		assert.Equal(t, "joao@email.org", addresses[1].EmailAddress)
		for _, address := range addresses {
			assert.Equal(t, int64(2), address.UserID)
		}

		maria, err := s.FindAddressesByUserID(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, maria)
		return nil
	}))
}

func TestListUsersByFullNameDesc(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newSeededStore(t)

	require.NoError(t, store.WithSession(ctx, func(s domain.Session) error {
		users, err := s.ListUsersByFullNameDesc(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Maria Silva", "João Souza", "Ericson Lima"}, fullNames(users))
		return nil
	}))
}

func TestListUserEmails(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newSeededStore(t)

	require.NoError(t, store.WithSession(ctx, func(s domain.Session) error {
		rows, err := s.ListUserEmails(ctx)
		require.NoError(t, err)
		assert.Equal(t, []domain.UserEmail{
			{FullName: "Ericson Lima", EmailAddress: "ericson@email.com"},
			{FullName: "João Souza", EmailAddress: "joao@email.com"},
			{FullName: "João Souza", EmailAddress: "joao@email.org"},
		}, rows)
		return nil
	}))
}

func TestCountUsers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newSeededStore(t)

	require.NoError(t, store.WithSession(ctx, func(s domain.Session) error {
		count, err := s.CountUsers(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
		return nil
	}))
}

func TestGetUserPreloadsAddresses(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newSeededStore(t)

	require.NoError(t, store.WithSession(ctx, func(s domain.Session) error {
		user, err := s.GetUser(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "joao", user.Name)
		require.Len(t, user.Addresses, 2)
		assert.Equal(t, "joao@email.com", user.Addresses[0].EmailAddress)

		_, err = s.GetUser(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		return nil
	}))
}
