// SPDX-License-Identifier: MIT

// Package survey holds the rows collected from percolation participants.
//
// A Record pairs a participant with its category and its true backbone
// degree. Records are plain values; a Table is an ordered sequence of them
// whose order carries no meaning for estimation.
package survey

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/rdsim/core"
)

// Sentinel errors for survey construction and validation.
var (
	// ErrGraphNil indicates a nil backbone graph.
	ErrGraphNil = errors.New("survey: graph is nil")

	// ErrNegativeDegree indicates a record reporting degree < 0.
	ErrNegativeDegree = errors.New("survey: negative degree")

	// ErrEmptyCategory indicates a record with an empty category label.
	ErrEmptyCategory = errors.New("survey: empty category")

	// ErrParticipantNotFound indicates a participant outside 0..N-1.
	ErrParticipantNotFound = errors.New("survey: participant not found")

	// ErrCategoryCount indicates the category assignment does not cover the graph.
	ErrCategoryCount = errors.New("survey: category assignment size mismatch")
)

// Record is one survey response.
type Record struct {
	ParticipantID int    `json:"participant_id"`
	Category      string `json:"category"`
	Degree        int    `json:"degree"`
}

// Table is an ordered collection of records.
type Table []Record

// Build produces one record per participant, reading the category from
// categories[v] and the degree from g.
//
// Errors: ErrGraphNil, ErrCategoryCount when len(categories) != g.Order(),
// ErrParticipantNotFound, ErrEmptyCategory.
// Complexity: O(len(participants)).
func Build(g *core.Graph, participants []int, categories []string) (Table, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(categories) != g.Order() {
		return nil, fmt.Errorf("Build: %d categories for %d vertices: %w", len(categories), g.Order(), ErrCategoryCount)
	}

	t := make(Table, 0, len(participants))
	for _, v := range participants {
		if !g.HasVertex(v) {
			return nil, fmt.Errorf("Build: participant %d: %w", v, ErrParticipantNotFound)
		}
		if categories[v] == "" {
			return nil, fmt.Errorf("Build: participant %d: %w", v, ErrEmptyCategory)
		}
		t = append(t, Record{ParticipantID: v, Category: categories[v], Degree: g.Degree(v)})
	}

	return t, nil
}

// Validate checks every record; the first offending row is reported.
func (t Table) Validate() error {
	for i, r := range t {
		if r.Degree < 0 {
			return fmt.Errorf("Validate: row %d (participant %d, degree %d): %w", i, r.ParticipantID, r.Degree, ErrNegativeDegree)
		}
		if r.Category == "" {
			return fmt.Errorf("Validate: row %d (participant %d): %w", i, r.ParticipantID, ErrEmptyCategory)
		}
	}
	return nil
}

// Len returns the number of rows.
func (t Table) Len() int { return len(t) }

// Degrees returns the degree column.
func (t Table) Degrees() []int {
	out := make([]int, len(t))
	for i, r := range t {
		out[i] = r.Degree
	}
	return out
}

// Categories returns the distinct category labels, sorted.
func (t Table) Categories() []string {
	seen := make(map[string]struct{})
	for _, r := range t {
		seen[r.Category] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
