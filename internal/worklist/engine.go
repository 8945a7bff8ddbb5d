// Package worklist maintains the working list of companies selected for the
// active sourcing session, merging filtered search results with manual picks.
package worklist

import (
	"context"

	"github.com/lsrecruit/sourcer/internal/types"
)

// Searcher is the collaborator that runs a filtered company search. Results
// arrive with AddedManually unset; the engine owns provenance.
type Searcher interface {
	SearchCompanies(ctx context.Context, filters types.SearchFilters) ([]types.CompanyRecord, error)
}

// Engine holds one working list and applies the merge and mutation rules
// that keep ids unique and the added_manually flag consistent.
type Engine struct {
	searcher Searcher
	working  []types.CompanyRecord
	keywords string

	// issued is the sequence number of the most recently issued search.
	// A completing search only applies if it is still the latest, so an
	// out-of-order response from an overlapping search cannot clobber the
	// list (last-issued wins, not last-arrived).
	issued uint64
}

// NewEngine creates an engine with an empty working list.
func NewEngine(searcher Searcher) *Engine {
	return &Engine{searcher: searcher}
}

// Working returns a copy of the current working list.
func (e *Engine) Working() []types.CompanyRecord {
	out := make([]types.CompanyRecord, len(e.working))
	copy(out, e.working)
	return out
}

// Keywords returns the keyword string carried alongside the working list.
func (e *Engine) Keywords() string {
	return e.keywords
}

// SetKeywords replaces the keyword string.
func (e *Engine) SetKeywords(keywords string) {
	e.keywords = keywords
}

// Restore replaces the working list and keywords wholesale, used when a
// saved search is loaded.
func (e *Engine) Restore(list []types.CompanyRecord, keywords string) {
	e.working = make([]types.CompanyRecord, len(list))
	copy(e.working, list)
	e.keywords = keywords
}

// RunSearch calls the search collaborator and merges the fresh results into
// the working list: fresh results first, then previously manual records whose
// id is absent from the fresh set, in their prior relative order. All other
// prior records are discarded. A record that was manual but now appears in
// the fresh results keeps the fresh copy, with the manual flag cleared.
//
// On collaborator failure the working list is left untouched and the error
// is returned; no partial merge occurs. A response that was superseded by a
// later RunSearch call is discarded with ErrStaleSearch.
func (e *Engine) RunSearch(ctx context.Context, filters types.SearchFilters, keywords string) ([]types.CompanyRecord, error) {
	e.issued++
	seq := e.issued

	fresh, err := e.searcher.SearchCompanies(ctx, filters)
	if err != nil {
		return nil, &SearchError{Cause: err}
	}
	if seq != e.issued {
		return nil, ErrStaleSearch
	}

	merged := make([]types.CompanyRecord, 0, len(fresh))
	seen := make(map[string]bool, len(fresh))
	for _, rec := range fresh {
		if seen[rec.ID] {
			continue
		}
		seen[rec.ID] = true
		rec.AddedManually = false
		merged = append(merged, rec)
	}
	for _, rec := range e.working {
		if rec.AddedManually && !seen[rec.ID] {
			seen[rec.ID] = true
			merged = append(merged, rec)
		}
	}

	e.working = merged
	e.keywords = keywords
	return e.Working(), nil
}

// AddManual appends the directory entry with the given id to the working
// list, flagged as manually added. Unknown ids and ids already present in
// the list are no-ops; in particular a fresh search hit is never promoted
// to manual by re-adding it.
func (e *Engine) AddManual(companyID string, directory []types.CompanyRecord) []types.CompanyRecord {
	for _, rec := range e.working {
		if rec.ID == companyID {
			return e.Working()
		}
	}
	for _, rec := range directory {
		if rec.ID == companyID {
			rec.AddedManually = true
			e.working = append(e.working, rec)
			break
		}
	}
	return e.Working()
}

// RemoveManual removes the record with the given id from the working list,
// regardless of how it got there. This is how a user deselects either a
// manual pick or a search hit.
func (e *Engine) RemoveManual(companyID string) []types.CompanyRecord {
	kept := e.working[:0]
	for _, rec := range e.working {
		if rec.ID != companyID {
			kept = append(kept, rec)
		}
	}
	e.working = kept
	return e.Working()
}

// AvailableForManualSelection returns the directory entries that can be
// toggled from the manual picker: everything not in the working list, plus
// entries that are in the list but were added manually (so they stay
// deselectable). Fresh search hits are excluded.
func (e *Engine) AvailableForManualSelection(directory []types.CompanyRecord) []types.CompanyRecord {
	inList := make(map[string]bool, len(e.working))
	manual := make(map[string]bool)
	for _, rec := range e.working {
		inList[rec.ID] = true
		if rec.AddedManually {
			manual[rec.ID] = true
		}
	}

	available := make([]types.CompanyRecord, 0, len(directory))
	for _, rec := range directory {
		if !inList[rec.ID] || manual[rec.ID] {
			available = append(available, rec)
		}
	}
	return available
}
