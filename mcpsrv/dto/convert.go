package dto

import (
	"github.com/qyinm/folio/types"
)

func FromProject(p types.Project) Project {
	return Project{
		ID:          p.ID,
		Title:       p.Name,
		Description: p.Summary,
		Category:    string(p.Category),
		ImageURL:    p.Image,
		Tags:        nonNil(p.Tags),
		Details: Details{
			Client:   p.Details.Client,
			Duration: p.Details.Duration,
			Location: p.Details.Location,
			Services: nonNil(p.Details.Services),
		},
	}
}

func FromProjects(projects []types.Project) []Project {
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		out = append(out, FromProject(p))
	}
	return out
}

// FromCounts lists every category in display order, including empty ones.
func FromCounts(counts map[types.Category]int) []Category {
	out := make([]Category, 0, len(types.Categories))
	for _, c := range types.Categories {
		out = append(out, Category{Name: string(c), Count: counts[c]})
	}
	return out
}

// nonNil copies values so JSON renders an empty list instead of null.
func nonNil(values []string) []string {
	return append(make([]string, 0, len(values)), values...)
}
