// Package testutil provides shared test fixtures for packages that consume
// the taxonomy engine.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/feederwatch/dashboard/internal/taxonomy"
)

// SampleSpecies returns a small directory with two families that have an
// active member and one family with none:
//
//	Cardinalidae* (1) ─ Cardinalis (2) ─ Northern Cardinal (3, 4 obs)
//	                  │                └ Pyrrhuloxia (4)
//	                  └ Passerina (5) ── Indigo Bunting (6, 2 obs)
//	Corvidae (7) ────── Blue Jay* (8, 9 obs)
//	Paridae (9) ─────── Tufted Titmouse (10)
//
// Entries marked * are regionally active.
func SampleSpecies() []taxonomy.Species {
	p := taxonomy.ParentOf
	return []taxonomy.Species{
		{ID: 1, Name: "Cardinalidae", Active: true},
		{ID: 2, Name: "Cardinalis", ParentID: p(1)},
		{ID: 3, Name: "Northern Cardinal", ParentID: p(2), ObservationCount: 4},
		{ID: 4, Name: "Pyrrhuloxia", ParentID: p(2)},
		{ID: 5, Name: "Passerina", ParentID: p(1)},
		{ID: 6, Name: "Indigo Bunting", ParentID: p(5), ObservationCount: 2},
		{ID: 7, Name: "Corvidae"},
		{ID: 8, Name: "Blue Jay", ParentID: p(7), Active: true, ObservationCount: 9},
		{ID: 9, Name: "Paridae"},
		{ID: 10, Name: "Tufted Titmouse", ParentID: p(9)},
	}
}

// WriteFile writes content to name inside dir and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
