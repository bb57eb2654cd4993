// Package catalog serves the lesson content compiled into the binary.
// Content is static; the catalog never changes at runtime.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/apitrail/apitrail/pkg/trailsdk"
)

//go:embed levels.json
var levelsJSON []byte

// Catalog holds the validated lesson levels in order.
type Catalog struct {
	levels []trailsdk.Level
	byID   map[int]trailsdk.Level
}

// Load parses and validates the embedded lesson content. Ids must be
// contiguous from 1, so a stored current_level always points at a real
// lesson or the one right after the last. Called once during app wiring;
// a failure here is a build defect, not a runtime condition.
func Load() (*Catalog, error) {
	var levels []trailsdk.Level
	if err := json.Unmarshal(levelsJSON, &levels); err != nil {
		return nil, fmt.Errorf("parse embedded levels: %w", err)
	}
	if len(levels) == 0 {
		return nil, errors.New("embedded catalog is empty")
	}

	byID := make(map[int]trailsdk.Level, len(levels))
	for i, lvl := range levels {
		if lvl.ID != i+1 {
			return nil, fmt.Errorf("level ids must be contiguous from 1: index %d holds id %d", i, lvl.ID)
		}
		if lvl.Title == "" {
			return nil, fmt.Errorf("level %d: empty title", lvl.ID)
		}
		byID[lvl.ID] = lvl
	}

	return &Catalog{levels: levels, byID: byID}, nil
}

// Levels returns all levels in lesson order. Callers must not mutate the
// returned slice.
func (c *Catalog) Levels() []trailsdk.Level {
	return c.levels
}

// Get returns the level with the given id.
func (c *Catalog) Get(id int) (trailsdk.Level, bool) {
	lvl, ok := c.byID[id]
	return lvl, ok
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	return len(c.levels)
}
