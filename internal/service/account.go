package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/apitrail/apitrail/internal/domain"
	"github.com/apitrail/apitrail/internal/store"
	"github.com/apitrail/apitrail/pkg/cryptox"
	"github.com/apitrail/apitrail/pkg/idx"
	"github.com/apitrail/apitrail/pkg/jwtx"
	"github.com/apitrail/apitrail/pkg/slogx"
)

var (
	ErrMissingFields      = errors.New("username, email and password are required")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AccountService implements registration, login and account removal.
type AccountService struct {
	Store      store.Store
	Hasher     *cryptox.Hasher
	Sessions   jwtx.Signer
	Issuer     string
	SessionTTL time.Duration
}

// Register creates a new account with its default progress entry and
// returns the stored user plus a fresh session token.
// It performs the following steps:
// 1. Trims inputs and normalizes the email
// 2. Pre-checks username/email availability for attributed conflicts
// 3. Hashes the password with argon2id
// 4. Creates the user and its starting progress atomically
// 5. Issues a session token
func (s *AccountService) Register(ctx context.Context, username, email, password string) (domain.User, string, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input. Usernames stay byte-exact beyond trimming; emails
	// are matched case-insensitively, so they normalize before storage.
	username = strings.TrimSpace(username)
	email = normalizeEmail(email)
	if username == "" || email == "" || password == "" {
		log.Warn("registration missing required fields")
		return domain.User{}, "", ErrMissingFields
	}

	// 2. Pre-check availability so conflicts can name the offending field.
	// The unique indexes stay the authority; this is best-effort attribution.
	usernameTaken, emailTaken, err := s.Store.Users().Exists(ctx, username, email)
	if err != nil {
		log.Error("failed to check account availability", slog.Any("error", err))
		return domain.User{}, "", err
	}
	if usernameTaken {
		log.Warn("registration attempted with taken username", slog.String("username", username))
		return domain.User{}, "", ErrUsernameTaken
	}
	if emailTaken {
		log.Warn("registration attempted with registered email")
		return domain.User{}, "", ErrEmailTaken
	}

	// 3. Hash the password using Argon2id
	passwordHash, err := s.Hasher.Hash(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, "", err
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// 4. Create the user and its starting progress atomically: an account
	// never exists without a progress entry.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			return err
		}
		if _, err := tx.Progress().CreateDefault(ctx, user.ID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Lost a race with a concurrent registration between the
			// pre-check and the insert; re-attribute the conflict.
			return domain.User{}, "", s.attributeConflict(ctx, username, email)
		}
		log.Error("failed to create account",
			slog.String("username", username),
			slog.Any("error", err),
		)
		return domain.User{}, "", err
	}

	// 5. Issue the session token
	token, err := s.issueToken(user)
	if err != nil {
		log.Error("failed to issue session token",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return domain.User{}, "", err
	}

	log.Info("account registered",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return user, token, nil
}

// Login verifies credentials and returns the user plus a fresh session token.
func (s *AccountService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	log := slogx.FromContext(ctx)

	email = normalizeEmail(email)
	if email == "" || password == "" {
		log.Warn("login missing required fields")
		return domain.User{}, "", ErrMissingFields
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn a hash so an unknown email costs about as much as a
			// wrong password; response timing should not leak which it was.
			_, _ = s.Hasher.Hash(password)
			log.Info("login attempted with unknown email")
			return domain.User{}, "", ErrInvalidCredentials
		}
		log.Error("failed to fetch user for login", slog.Any("error", err))
		return domain.User{}, "", err
	}

	if err := s.Hasher.Verify(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			log.Info("login password verification failed", slog.String("user_id", user.ID))
			return domain.User{}, "", ErrInvalidCredentials
		}
		log.Error("failed to verify password",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return domain.User{}, "", err
	}

	token, err := s.issueToken(user)
	if err != nil {
		log.Error("failed to issue session token",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return domain.User{}, "", err
	}

	log.Info("user logged in",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return user, token, nil
}

// GetAccount fetches an account by id.
func (s *AccountService) GetAccount(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// DeleteAccount permanently removes an account. The schema cascade takes
// the progress entry with it.
func (s *AccountService) DeleteAccount(ctx context.Context, userID string) error {
	log := slogx.FromContext(ctx)

	if err := s.Store.Users().DeleteUser(ctx, userID); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Error("failed to delete account",
				slog.String("user_id", userID),
				slog.Any("error", err),
			)
		}
		return err
	}

	log.Info("account deleted", slog.String("user_id", userID))
	return nil
}

// issueToken signs a session token for the user.
func (s *AccountService) issueToken(user domain.User) (string, error) {
	claims := jwtx.NewSessionClaims(user.ID, user.Username, s.Issuer, s.SessionTTL, time.Now())
	return s.Sessions.Sign(claims)
}

// attributeConflict re-checks which unique field a raced insert collided
// on, so the caller still gets a field-specific sentinel.
func (s *AccountService) attributeConflict(ctx context.Context, username, email string) error {
	usernameTaken, emailTaken, err := s.Store.Users().Exists(ctx, username, email)
	if err != nil {
		return err
	}
	if emailTaken && !usernameTaken {
		return ErrEmailTaken
	}
	return ErrUsernameTaken
}

// normalizeEmail lowers and trims an email address. Uniqueness is
// effectively case-insensitive because every path goes through here.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
