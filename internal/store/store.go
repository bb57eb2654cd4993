package store

import (
	"context"
	"errors"

	"github.com/apitrail/apitrail/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement this. Sub-repositories keep concerns tidy and make
// it obvious which operations participate in a transaction: the Tx you get
// back exposes the same repos, scoped to that transaction.
type Store interface {
	Users() Users
	Progress() Progress

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing when fn returns
	// nil and rolling back otherwise. Prefer this over Tx.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by the app via ULID).
	// A username or email collision surfaces ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login. The email must already be
	// normalized; no case folding happens here.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// Exists reports which of the two unique fields are already taken,
	// so registration conflicts can name the offending field.
	Exists(ctx context.Context, username, email string) (usernameTaken, emailTaken bool, err error)

	// DeleteUser removes the user; the schema cascades to progress.
	DeleteUser(ctx context.Context, userID string) error
}

type Progress interface {
	// CreateDefault inserts the starting entry for a user: level one,
	// nothing completed, zero points. A second insert for the same user
	// surfaces ErrAlreadyExists; a missing user surfaces ErrNotFound.
	CreateDefault(ctx context.Context, userID string) (domain.Progress, error)

	// Get returns the entry for a user, or ErrNotFound.
	Get(ctx context.Context, userID string) (domain.Progress, error)

	// Update replaces the mutable fields wholesale and bumps updated_at.
	// There is no merging and no version check: last write wins.
	// Returns ErrNotFound when no entry exists yet.
	Update(ctx context.Context, userID string, currentLevel int, completed domain.LevelSet, points int) (domain.Progress, error)
}
