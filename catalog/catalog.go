// Package catalog holds the immutable project set and the ways to load it.
package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/qyinm/folio/types"
	"github.com/sahilm/fuzzy"
)

var (
	ErrEmptyCatalog    = errors.New("catalog has no projects")
	ErrUnknownCategory = errors.New("unknown category")
	ErrDuplicateID     = errors.New("duplicate project id")
)

// Catalog is an ordered, read-only set of projects.
type Catalog struct {
	projects []types.Project
	index    map[string]int
}

// New validates projects and assigns an ID to every project missing one.
// Generated IDs are slugs of the title, suffixed until unique.
func New(projects []types.Project) (*Catalog, error) {
	c := &Catalog{
		projects: make([]types.Project, 0, len(projects)),
		index:    make(map[string]int, len(projects)),
	}

	// Explicit IDs claim their slot first so generated ones never collide.
	for _, p := range projects {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			continue
		}
		if _, ok := c.index[id]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, id)
		}
		c.index[id] = -1
	}

	for i, p := range projects {
		category, ok := types.ParseCategory(string(p.Category))
		if !ok {
			return nil, fmt.Errorf("project %d (%q): %w %q", i+1, p.Name, ErrUnknownCategory, p.Category)
		}
		p.Category = category
		p.ID = strings.TrimSpace(p.ID)
		if p.ID == "" {
			p.ID = c.uniqueID(slugify(p.Name))
		}
		p.Tags = append([]string(nil), p.Tags...)
		p.Details.Services = append([]string(nil), p.Details.Services...)

		c.index[p.ID] = len(c.projects)
		c.projects = append(c.projects, p)
	}

	return c, nil
}

func (c *Catalog) uniqueID(base string) string {
	if base == "" {
		base = "project"
	}
	id := base
	for n := 2; ; n++ {
		if _, taken := c.index[id]; !taken {
			return id
		}
		id = base + "-" + strconv.Itoa(n)
	}
}

func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Len returns the number of projects.
func (c *Catalog) Len() int { return len(c.projects) }

// Items returns every project in catalog order.
func (c *Catalog) Items() []types.Project {
	return append([]types.Project(nil), c.projects...)
}

// Filter returns the projects visible under filter, preserving catalog order.
// types.FilterAll yields the whole catalog; a filter naming no known category
// yields an empty slice.
func (c *Catalog) Filter(filter string) []types.Project {
	if filter == types.FilterAll {
		return c.Items()
	}
	out := make([]types.Project, 0)
	for _, p := range c.projects {
		if string(p.Category) == filter {
			out = append(out, p)
		}
	}
	return out
}

// Scope returns the prev/next navigation range for selected.
//
// Under types.FilterAll the range is the whole catalog. Under any other filter
// it is the selected project's own category, whatever the filter now says, so
// navigation stays within the category the project was opened from.
func (c *Catalog) Scope(filter string, selected types.Project) []types.Project {
	if filter == types.FilterAll {
		return c.Items()
	}
	return c.Filter(string(selected.Category))
}

// Lookup finds a project by ID.
func (c *Catalog) Lookup(id string) (types.Project, bool) {
	i, ok := c.index[id]
	if !ok || i < 0 {
		return types.Project{}, false
	}
	return c.projects[i], true
}

// Counts returns the number of projects per category.
func (c *Catalog) Counts() map[types.Category]int {
	counts := make(map[types.Category]int, len(types.Categories))
	for _, p := range c.projects {
		counts[p.Category]++
	}
	return counts
}

// Search fuzzy-matches query against title, description and tags and returns
// matches best first. An empty query returns the whole catalog.
func (c *Catalog) Search(query string) []types.Project {
	query = strings.TrimSpace(query)
	if query == "" {
		return c.Items()
	}

	haystack := make([]string, len(c.projects))
	for i, p := range c.projects {
		haystack[i] = p.Name + " " + p.Summary + " " + strings.Join(p.Tags, " ")
	}

	matches := fuzzy.Find(query, haystack)
	out := make([]types.Project, 0, len(matches))
	for _, m := range matches {
		out = append(out, c.projects[m.Index])
	}
	return out
}
