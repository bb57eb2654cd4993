package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/apitrail/apitrail/internal/domain"
	"github.com/apitrail/apitrail/internal/store"
)

type progressRepo struct {
	db dbtx
}

func (r *progressRepo) CreateDefault(ctx context.Context, userID string) (domain.Progress, error) {
	p := domain.NewDefaultProgress(userID)
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	completed, err := json.Marshal(p.CompletedLevels)
	if err != nil {
		return domain.Progress{}, fmt.Errorf("encode completed levels: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO progress (user_id, current_level, completed_levels, points, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		p.UserID, p.CurrentLevel, string(completed), p.Points, p.CreatedAt, p.UpdatedAt,
	)
	switch {
	case isUniqueViolation(err):
		return domain.Progress{}, store.ErrAlreadyExists
	case isForeignKeyViolation(err):
		// No such user to attach progress to
		return domain.Progress{}, store.ErrNotFound
	case err != nil:
		return domain.Progress{}, err
	}

	return p, nil
}

func (r *progressRepo) Get(ctx context.Context, userID string) (domain.Progress, error) {
	var (
		p   domain.Progress
		raw string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, current_level, completed_levels, points, created_at, updated_at
		 FROM progress WHERE user_id = ?`,
		userID,
	).Scan(&p.UserID, &p.CurrentLevel, &raw, &p.Points, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Progress{}, mapNotFound(err)
	}

	p.CompletedLevels, err = decodeLevels(raw)
	if err != nil {
		return domain.Progress{}, err
	}
	return p, nil
}

func (r *progressRepo) Update(ctx context.Context, userID string, currentLevel int, completed domain.LevelSet, points int) (domain.Progress, error) {
	encoded, err := json.Marshal(completed)
	if err != nil {
		return domain.Progress{}, fmt.Errorf("encode completed levels: %w", err)
	}

	now := time.Now().UTC()
	p := domain.Progress{
		UserID:          userID,
		CurrentLevel:    currentLevel,
		CompletedLevels: completed,
		Points:          points,
		UpdatedAt:       now,
	}

	err = r.db.QueryRowContext(ctx,
		`UPDATE progress
		 SET current_level = ?, completed_levels = ?, points = ?, updated_at = ?
		 WHERE user_id = ?
		 RETURNING created_at`,
		currentLevel, string(encoded), points, now, userID,
	).Scan(&p.CreatedAt)
	if err != nil {
		return domain.Progress{}, mapNotFound(err)
	}

	return p, nil
}

// decodeLevels parses the stored JSON array and re-normalizes it, so rows
// touched outside the app still come back canonical.
func decodeLevels(raw string) (domain.LevelSet, error) {
	var ids []int
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("decode completed levels: %w", err)
	}
	return domain.NewLevelSet(ids...), nil
}
