package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/apitrail/apitrail/internal/domain"
	"github.com/apitrail/apitrail/internal/store"
	"github.com/apitrail/apitrail/pkg/slogx"
)

var (
	ErrInvalidLevel  = errors.New("levels must be positive integers")
	ErrInvalidPoints = errors.New("points must not be negative")
)

// ProgressService reads and replaces per-user progress. Registration seeds
// an entry for every account, so a miss here means the row predates that
// guarantee or was removed out of band; both GetProgress and UpdateProgress
// recreate the default entry rather than failing.
type ProgressService struct {
	Store store.Store
}

// GetProgress returns the user's progress, creating the default entry if
// none exists yet.
func (s *ProgressService) GetProgress(ctx context.Context, userID string) (domain.Progress, error) {
	log := slogx.FromContext(ctx)

	progress, err := s.Store.Progress().Get(ctx, userID)
	if err == nil {
		return progress, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to fetch progress",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return domain.Progress{}, err
	}

	progress, err = s.healMissingEntry(ctx, userID)
	if err != nil {
		return domain.Progress{}, err
	}
	return progress, nil
}

// UpdateProgress replaces the user's progress wholesale. There is no
// merging and no version check: last write wins.
func (s *ProgressService) UpdateProgress(ctx context.Context, userID string, currentLevel int, completed []int, points int) (domain.Progress, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate before touching storage
	if currentLevel < 1 {
		log.Warn("progress update with invalid current level",
			slog.String("user_id", userID),
			slog.Int("current_level", currentLevel),
		)
		return domain.Progress{}, ErrInvalidLevel
	}
	for _, id := range completed {
		if id < 1 {
			log.Warn("progress update with invalid completed level",
				slog.String("user_id", userID),
				slog.Int("level", id),
			)
			return domain.Progress{}, ErrInvalidLevel
		}
	}
	if points < 0 {
		log.Warn("progress update with negative points",
			slog.String("user_id", userID),
			slog.Int("points", points),
		)
		return domain.Progress{}, ErrInvalidPoints
	}

	// 2. Canonicalize the completed set: sorted, deduplicated
	set := domain.NewLevelSet(completed...)

	// 3. Replace the entry, recreating it first if it went missing
	progress, err := s.Store.Progress().Update(ctx, userID, currentLevel, set, points)
	if errors.Is(err, store.ErrNotFound) {
		if _, healErr := s.healMissingEntry(ctx, userID); healErr != nil {
			return domain.Progress{}, healErr
		}
		progress, err = s.Store.Progress().Update(ctx, userID, currentLevel, set, points)
	}
	if err != nil {
		log.Error("failed to update progress",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return domain.Progress{}, err
	}

	log.Info("progress updated",
		slog.String("user_id", userID),
		slog.Int("current_level", progress.CurrentLevel),
		slog.Int("points", progress.Points),
	)

	return progress, nil
}

// healMissingEntry recreates the default progress entry for a user whose
// row went missing. A concurrent heal is fine: whoever loses the insert
// race just reads the winner's row. ErrNotFound here means the user row
// itself is gone, which the caller should surface as-is.
func (s *ProgressService) healMissingEntry(ctx context.Context, userID string) (domain.Progress, error) {
	log := slogx.FromContext(ctx)

	progress, err := s.Store.Progress().CreateDefault(ctx, userID)
	if err == nil {
		log.Info("recreated missing progress entry", slog.String("user_id", userID))
		return progress, nil
	}
	if errors.Is(err, store.ErrAlreadyExists) {
		return s.Store.Progress().Get(ctx, userID)
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to recreate progress entry",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
	}
	return domain.Progress{}, err
}
