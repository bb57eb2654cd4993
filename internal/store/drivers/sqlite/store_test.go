package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/apitrail/apitrail/internal/domain"
	"github.com/apitrail/apitrail/internal/store"
	"github.com/apitrail/apitrail/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedUser(t *testing.T, s store.Store, username, email string) domain.User {
	t.Helper()

	now := time.Now().UTC()
	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdHNhbHQ$ZGlnZXN0",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u
}

func TestWithTx(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	t.Run("commits when fn succeeds", func(t *testing.T) {
		var id string
		err := s.WithTx(ctx, func(tx store.Tx) error {
			u := seedUserIn(t, tx)
			id = u.ID
			return nil
		})
		require.NoError(t, err)

		_, err = s.Users().GetUserByID(ctx, id)
		require.NoError(t, err)
	})

	t.Run("rolls back when fn fails", func(t *testing.T) {
		boom := errors.New("boom")

		var id string
		err := s.WithTx(ctx, func(tx store.Tx) error {
			u := seedUserIn(t, tx)
			id = u.ID
			return boom
		})
		require.ErrorIs(t, err, boom)

		_, err = s.Users().GetUserByID(ctx, id)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("rejects nested transactions", func(t *testing.T) {
		err := s.WithTx(ctx, func(tx store.Tx) error {
			_, err := tx.Tx(ctx)
			require.ErrorIs(t, err, sql.ErrTxDone)
			return tx.WithTx(ctx, func(store.Tx) error { return nil })
		})
		require.ErrorIs(t, err, sql.ErrTxDone)
	})
}

// seedUserIn inserts a fresh user through whatever store it is given, so
// transactional paths get exercised too.
func seedUserIn(t *testing.T, s store.Store) domain.User {
	t.Helper()

	id := idx.New().String()
	return seedUser(t, s, "user-"+id, "user-"+id+"@example.com")
}
