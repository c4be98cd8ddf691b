package types

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
)

// Category is the kind of cabinetry work a project showcases.
type Category string

const (
	Kitchen  Category = "Kitchen"
	Bathroom Category = "Bathroom"
	Closet   Category = "Closet"
	Office   Category = "Office"
	Bedroom  Category = "Bedroom"
)

// FilterAll is the synthetic filter value matching every category.
// It is never stored on a project.
const FilterAll = "All"

// Categories lists the known categories in filter bar order.
var Categories = []Category{Kitchen, Bathroom, Closet, Office, Bedroom}

// Filters returns every filter value in display order, starting with FilterAll.
func Filters() []string {
	out := make([]string, 0, len(Categories)+1)
	out = append(out, FilterAll)
	for _, c := range Categories {
		out = append(out, string(c))
	}
	return out
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory matches raw against the known categories, ignoring case and
// surrounding space.
func ParseCategory(raw string) (Category, bool) {
	v := strings.TrimSpace(raw)
	for _, c := range Categories {
		if strings.EqualFold(v, string(c)) {
			return c, true
		}
	}
	return "", false
}

// Details is the engagement record shown in the project modal.
type Details struct {
	Client   string   `yaml:"client"`
	Duration string   `yaml:"duration"`
	Location string   `yaml:"location"`
	Services []string `yaml:"services"`
}

// Project is one showcased piece of work.
// ID is the identity; Title is display text only.
type Project struct {
	ID       string   `yaml:"id,omitempty"`
	Image    string   `yaml:"image"`
	Name     string   `yaml:"title"`
	Summary  string   `yaml:"description"`
	Category Category `yaml:"category"`
	Tags     []string `yaml:"tags"`
	Details  Details  `yaml:"details"`
}

// list.Item interface implementation
func (p Project) Title() string       { return p.Name }
func (p Project) Description() string { return p.Summary }
func (p Project) FilterValue() string { return p.Name + " " + strings.Join(p.Tags, " ") }

// Compile-time check that Project implements list.Item
var _ list.Item = Project{}

// ProjectSource is the core abstraction for catalog data access.
// Sync methods only, no bubbletea dependency.
type ProjectSource interface {
	Projects() ([]Project, error)
}
