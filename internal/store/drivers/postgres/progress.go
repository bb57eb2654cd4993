package postgres

import (
	"context"
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

	_, err := r.db.Exec(ctx,
		`INSERT INTO progress (user_id, current_level, completed_levels, points, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.UserID, p.CurrentLevel, encodeLevels(p.CompletedLevels), p.Points, p.CreatedAt, p.UpdatedAt,
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
		raw []int32
	)
	err := r.db.QueryRow(ctx,
		`SELECT user_id, current_level, completed_levels, points, created_at, updated_at
		 FROM progress WHERE user_id = $1`,
		userID,
	).Scan(&p.UserID, &p.CurrentLevel, &raw, &p.Points, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Progress{}, mapNotFound(err)
	}

	p.CompletedLevels = decodeLevels(raw)
	return p, nil
}

func (r *progressRepo) Update(ctx context.Context, userID string, currentLevel int, completed domain.LevelSet, points int) (domain.Progress, error) {
	now := time.Now().UTC()
	p := domain.Progress{
		UserID:          userID,
		CurrentLevel:    currentLevel,
		CompletedLevels: completed,
		Points:          points,
		UpdatedAt:       now,
	}

	err := r.db.QueryRow(ctx,
		`UPDATE progress
		 SET current_level = $1, completed_levels = $2, points = $3, updated_at = $4
		 WHERE user_id = $5
		 RETURNING created_at`,
		currentLevel, encodeLevels(completed), points, now, userID,
	).Scan(&p.CreatedAt)
	if err != nil {
		return domain.Progress{}, mapNotFound(err)
	}

	return p, nil
}

// The column is INTEGER[], so levels cross the wire as int32.

func encodeLevels(set domain.LevelSet) []int32 {
	out := make([]int32, len(set))
	for i, id := range set {
		out[i] = int32(id)
	}
	return out
}

func decodeLevels(raw []int32) domain.LevelSet {
	ids := make([]int, len(raw))
	for i, id := range raw {
		ids[i] = int(id)
	}
	// Re-normalize so rows touched outside the app still come back canonical.
	return domain.NewLevelSet(ids...)
}
