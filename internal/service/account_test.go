package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/apitrail/apitrail/internal/store"
	"github.com/apitrail/apitrail/internal/store/drivers/sqlite"
	"github.com/apitrail/apitrail/pkg/cryptox"
	"github.com/apitrail/apitrail/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "apitrail-test"

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func newAccountService(t *testing.T) (*AccountService, store.Store) {
	t.Helper()

	s := newTestStore(t)

	signer, err := jwtx.NewHS256(testSecret, testIssuer)
	require.NoError(t, err)

	svc := &AccountService{
		Store:      s,
		Hasher:     cryptox.NewHasher(cryptox.DefaultParams()),
		Sessions:   signer,
		Issuer:     testIssuer,
		SessionTTL: time.Hour,
	}
	return svc, s
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc, s := newAccountService(t)

	t.Run("creates user with default progress", func(t *testing.T) {
		user, token, err := svc.Register(ctx, "alice", "alice@example.com", "hunter2hunter2")
		require.NoError(t, err)

		require.NotEmpty(t, user.ID)
		require.Equal(t, "alice", user.Username)
		require.Equal(t, "alice@example.com", user.Email)
		require.True(t, strings.HasPrefix(user.PasswordHash, "$argon2id$"))
		require.NotEmpty(t, token)

		progress, err := s.Progress().Get(ctx, user.ID)
		require.NoError(t, err)
		require.Equal(t, 1, progress.CurrentLevel)
		require.Empty(t, progress.CompletedLevels)
		require.Zero(t, progress.Points)
	})

	t.Run("issued token carries the user id", func(t *testing.T) {
		user, token, err := svc.Register(ctx, "bob", "bob@example.com", "hunter2hunter2")
		require.NoError(t, err)

		verifier, err := jwtx.NewHS256(testSecret, testIssuer)
		require.NoError(t, err)

		claims, err := verifier.Verify(token)
		require.NoError(t, err)
		require.Equal(t, user.ID, claims.Subject)
		require.Equal(t, "bob", claims.Username)
	})

	t.Run("trims username and normalizes email", func(t *testing.T) {
		user, _, err := svc.Register(ctx, "  carol  ", "  Carol@Example.COM  ", "hunter2hunter2")
		require.NoError(t, err)
		require.Equal(t, "carol", user.Username)
		require.Equal(t, "carol@example.com", user.Email)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		_, _, err := svc.Register(ctx, "", "dave@example.com", "hunter2hunter2")
		require.ErrorIs(t, err, ErrMissingFields)

		_, _, err = svc.Register(ctx, "dave", "", "hunter2hunter2")
		require.ErrorIs(t, err, ErrMissingFields)

		_, _, err = svc.Register(ctx, "dave", "dave@example.com", "")
		require.ErrorIs(t, err, ErrMissingFields)

		_, _, err = svc.Register(ctx, "   ", "dave@example.com", "hunter2hunter2")
		require.ErrorIs(t, err, ErrMissingFields)
	})

	t.Run("rejects taken username", func(t *testing.T) {
		_, _, err := svc.Register(ctx, "alice", "other@example.com", "hunter2hunter2")
		require.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("rejects registered email", func(t *testing.T) {
		_, _, err := svc.Register(ctx, "someone", "alice@example.com", "hunter2hunter2")
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("email conflicts are case-insensitive", func(t *testing.T) {
		_, _, err := svc.Register(ctx, "someone", "ALICE@EXAMPLE.COM", "hunter2hunter2")
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("usernames stay case-sensitive", func(t *testing.T) {
		user, _, err := svc.Register(ctx, "Alice", "alice2@example.com", "hunter2hunter2")
		require.NoError(t, err)
		require.Equal(t, "Alice", user.Username)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAccountService(t)

	registered, _, err := svc.Register(ctx, "alice", "alice@example.com", "correct horse battery staple")
	require.NoError(t, err)

	t.Run("returns token for valid credentials", func(t *testing.T) {
		user, token, err := svc.Login(ctx, "alice@example.com", "correct horse battery staple")
		require.NoError(t, err)
		require.Equal(t, registered.ID, user.ID)
		require.NotEmpty(t, token)
	})

	t.Run("accepts differently cased email", func(t *testing.T) {
		user, _, err := svc.Login(ctx, "  Alice@Example.COM ", "correct horse battery staple")
		require.NoError(t, err)
		require.Equal(t, registered.ID, user.ID)
	})

	t.Run("rejects unknown email", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nobody@example.com", "correct horse battery staple")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "alice@example.com", "wrong password")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "", "correct horse battery staple")
		require.ErrorIs(t, err, ErrMissingFields)

		_, _, err = svc.Login(ctx, "alice@example.com", "")
		require.ErrorIs(t, err, ErrMissingFields)
	})
}

func TestGetAccount(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAccountService(t)

	registered, _, err := svc.Register(ctx, "alice", "alice@example.com", "hunter2hunter2")
	require.NoError(t, err)

	t.Run("returns the stored user", func(t *testing.T) {
		user, err := svc.GetAccount(ctx, registered.ID)
		require.NoError(t, err)
		require.Equal(t, registered.Username, user.Username)
		require.Equal(t, registered.Email, user.Email)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.GetAccount(ctx, "01K00000000000000000000000")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestDeleteAccount(t *testing.T) {
	ctx := context.Background()
	svc, s := newAccountService(t)

	t.Run("removes the user and their progress", func(t *testing.T) {
		user, _, err := svc.Register(ctx, "alice", "alice@example.com", "hunter2hunter2")
		require.NoError(t, err)

		require.NoError(t, svc.DeleteAccount(ctx, user.ID))

		_, err = s.Users().GetUserByID(ctx, user.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = s.Progress().Get(ctx, user.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		err := svc.DeleteAccount(ctx, "01K00000000000000000000000")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}
