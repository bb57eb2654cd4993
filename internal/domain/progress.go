package domain

import (
	"slices"
	"time"
)

// StartLevel is where every fresh account begins.
const StartLevel = 1

// Progress is the per-user tutorial state. At most one entry exists per
// user; updates replace the mutable fields wholesale.
type Progress struct {
	UserID          string
	CurrentLevel    int
	CompletedLevels LevelSet
	Points          int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewDefaultProgress is the state a new account starts from: level one,
// nothing completed, zero points.
func NewDefaultProgress(userID string) Progress {
	return Progress{
		UserID:          userID,
		CurrentLevel:    StartLevel,
		CompletedLevels: NewLevelSet(),
		Points:          0,
	}
}

// LevelSet is a duplicate-free collection of level identifiers in ascending
// order. The ordering makes the serialized form canonical, so two equal
// sets always encode identically.
type LevelSet []int

// NewLevelSet normalizes arbitrary identifiers into a LevelSet, dropping
// duplicates and sorting. The result is never nil, so it serializes as []
// rather than null.
func NewLevelSet(ids ...int) LevelSet {
	set := make(LevelSet, 0, len(ids))
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		set = append(set, id)
	}
	slices.Sort(set)
	return set
}

// Contains reports whether id is in the set.
func (s LevelSet) Contains(id int) bool {
	return slices.Contains(s, id)
}

// Equal reports whether two canonical sets hold the same identifiers.
func (s LevelSet) Equal(other LevelSet) bool {
	return slices.Equal(s, other)
}
