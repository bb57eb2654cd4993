package http

import (
	"time"

	"github.com/apitrail/apitrail/internal/domain"
	"github.com/apitrail/apitrail/pkg/trailsdk"
)

// profileFromUser converts a stored user to its outward profile. The
// password hash never leaves this package.
func profileFromUser(u domain.User) trailsdk.UserProfile {
	return trailsdk.UserProfile{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// progressResponse converts a progress entry to its wire form.
// CompletedLevels always serializes as an array, never null.
func progressResponse(p domain.Progress) trailsdk.ProgressResponse {
	completed := make([]int, len(p.CompletedLevels))
	copy(completed, p.CompletedLevels)

	return trailsdk.ProgressResponse{
		UserID:          p.UserID,
		CurrentLevel:    p.CurrentLevel,
		CompletedLevels: completed,
		Points:          p.Points,
		CreatedAt:       p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
