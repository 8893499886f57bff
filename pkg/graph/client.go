// Package graph is the genealogy engine: it resolves source events against
// the known person population, links resolved persons into parent and spouse
// edges, and exposes tree assembly, bounded traversal, and person merging
// over the accumulated graph.
package graph

import (
	"errors"

	"github.com/wolyn-genealogy/explorer/pkg/store"
)

const (
	// DefaultMatchThreshold is the minimum averaged name similarity a
	// candidate needs to be considered the same person.
	DefaultMatchThreshold = 0.8

	// DefaultGenerations bounds ancestor and descendant expansion when the
	// caller does not ask for a specific depth.
	DefaultGenerations = 3
)

// Confidence defaults per source kind. Parish register entries are trusted
// fully; census rows and free-text death notes are indirect evidence.
const (
	confidenceRegister = 1.0
	confidenceCensus   = 0.8
	confidenceNotes    = 0.7
)

// GraphClient is the main client for working with the family graph. It
// carries the storage handle that acts as the person population, the match
// threshold for entity resolution, and the census import parallelism.
//
// A GraphClient should be created using NewGraphClient.
type GraphClient struct {
	store          store.Storage
	matchThreshold float64
	censusWorkers  int
	extractor      NoteExtractor
}

// NewGraphClientParams defines the configuration parameters for creating
// a new GraphClient.
//
// Store is the person/relationship/marriage population the client resolves
// against. MatchThreshold overrides the default similarity cutoff.
// CensusWorkers controls how many surname buckets are imported in parallel.
// NoteExtractor replaces the built-in Polish death-note extractor.
type NewGraphClientParams struct {
	Store          store.Storage
	MatchThreshold float64
	CensusWorkers  int
	NoteExtractor  NoteExtractor
}

// NewGraphClient creates and returns a new GraphClient configured with
// the provided parameters.
func NewGraphClient(params NewGraphClientParams) (*GraphClient, error) {
	if params.Store == nil {
		return nil, errors.New("graph: storage handle is required")
	}

	threshold := params.MatchThreshold
	if threshold <= 0 {
		threshold = DefaultMatchThreshold
	}

	workers := params.CensusWorkers
	if workers <= 0 {
		workers = 4
	}

	extractor := params.NoteExtractor
	if extractor == nil {
		extractor = NewPolishNoteExtractor()
	}

	g := &GraphClient{
		store:          params.Store,
		matchThreshold: threshold,
		censusWorkers:  workers,
		extractor:      extractor,
	}

	return g, nil
}
