// Package gallery is the UI state machine behind the portfolio view: the
// active filter, the project open in the detail modal, and the scroll
// indicator.
package gallery

import (
	"github.com/qyinm/folio/catalog"
	"github.com/qyinm/folio/types"
)

// Direction steps the open project backwards or forwards.
type Direction int

const (
	Prev Direction = iota
	Next
)

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case Prev:
		return "prev"
	case Next:
		return "next"
	default:
		return "unknown"
	}
}

// State is owned by a single view and mutated only from its event loop.
type State struct {
	catalog    *catalog.Catalog
	filter     string
	selectedID string
	indicator  int
}

// New returns a State over c with the filter on types.FilterAll, nothing
// selected and the indicator at the start.
func New(c *catalog.Catalog) *State {
	return &State{catalog: c, filter: types.FilterAll}
}

// Catalog returns the catalog the state reads from.
func (s *State) Catalog() *catalog.Catalog { return s.catalog }

// SetFilter changes the active filter. The value is not validated; an unknown
// category simply filters everything out. Selection and indicator are kept.
func (s *State) SetFilter(filter string) {
	s.filter = filter
}

// ActiveFilter returns the current filter value.
func (s *State) ActiveFilter() string { return s.filter }

// FilteredItems returns the projects visible under the active filter.
func (s *State) FilteredItems() []types.Project {
	return s.catalog.Filter(s.filter)
}

// Select opens p in the detail modal.
func (s *State) Select(p types.Project) {
	s.selectedID = p.ID
}

// Close closes the detail modal.
func (s *State) Close() {
	s.selectedID = ""
}

// IsOpen reports whether a project is selected.
func (s *State) IsOpen() bool { return s.selectedID != "" }

// Selected returns the open project.
func (s *State) Selected() (types.Project, bool) {
	if s.selectedID == "" {
		return types.Project{}, false
	}
	return s.catalog.Lookup(s.selectedID)
}

// Navigate moves the selection one step within its navigation scope and
// reports whether it moved.
//
// The scope is the whole catalog while the filter is types.FilterAll, and
// otherwise the selected project's own category. It ignores a
// filter changed after the modal opened. Stepping past either end, or having
// nothing open, leaves the selection as it is.
func (s *State) Navigate(dir Direction) bool {
	scope, i, ok := s.scope()
	if !ok {
		return false
	}

	switch dir {
	case Prev:
		if i > 0 {
			s.selectedID = scope[i-1].ID
			return true
		}
	case Next:
		if i < len(scope)-1 {
			s.selectedID = scope[i+1].ID
			return true
		}
	}
	return false
}

// Position returns the 1-based position of the selection within its
// navigation scope and the scope size.
func (s *State) Position() (index, total int, ok bool) {
	scope, i, ok := s.scope()
	if !ok {
		return 0, 0, false
	}
	return i + 1, len(scope), true
}

func (s *State) scope() ([]types.Project, int, bool) {
	selected, ok := s.Selected()
	if !ok {
		return nil, -1, false
	}
	scope := s.catalog.Scope(s.filter, selected)
	for i, p := range scope {
		if p.ID == selected.ID {
			return scope, i, true
		}
	}
	return nil, -1, false
}

// Track records the bucket for the latest scroll metrics.
func (s *State) Track(m Metrics) {
	s.SetIndicator(Bucket(m))
}

// SetIndicator stores a bucket computed elsewhere, such as by a Tracker.
// Values outside 0..2 are clamped.
func (s *State) SetIndicator(bucket int) {
	switch {
	case bucket < 0:
		bucket = 0
	case bucket > Buckets-1:
		bucket = Buckets - 1
	}
	s.indicator = bucket
}

// Indicator returns the current scroll bucket.
func (s *State) Indicator() int { return s.indicator }
