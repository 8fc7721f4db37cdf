package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	users := NewUserService(store)

	user, err := users.Register(ctx, "alice", "hunter22")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)

	t.Run("duplicate username is refused", func(t *testing.T) {
		_, err := users.Register(ctx, "alice", "hunter22")
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("usernames are case sensitive", func(t *testing.T) {
		other, err := users.Register(ctx, "Alice", "hunter22")
		require.NoError(t, err)
		assert.NotEqual(t, user.ID, other.ID)
	})

	t.Run("short password is rejected", func(t *testing.T) {
		_, err := users.Register(ctx, "carol", "abc")
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "password", validationErr.Field)
	})

	t.Run("good credentials authenticate", func(t *testing.T) {
		got, err := users.Authenticate(ctx, "alice", "hunter22")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("wrong password and unknown user look alike", func(t *testing.T) {
		got, err := users.Authenticate(ctx, "alice", "wrong")
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = users.Authenticate(ctx, "nobody", "hunter22")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestRename(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	users := NewUserService(store)
	alice, err := users.Register(ctx, "alice", "hunter22")
	require.NoError(t, err)
	_, err = users.Register(ctx, "bob", "hunter22")
	require.NoError(t, err)

	t.Run("taken name is refused", func(t *testing.T) {
		_, err := users.Rename(ctx, alice.ID, "bob")
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("renaming to yourself is a no-op", func(t *testing.T) {
		got, err := users.Rename(ctx, alice.ID, "alice")
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Username)
	})

	t.Run("rename sticks", func(t *testing.T) {
		got, err := users.Rename(ctx, alice.ID, "alexandra")
		require.NoError(t, err)
		assert.Equal(t, "alexandra", got.Username)

		reread, err := users.Get(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, "alexandra", reread.Username)
	})
}
