package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/qyinm/folio/types"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML string

type document struct {
	Projects []types.Project `yaml:"projects"`
}

// Parse decodes a YAML catalog document and validates it.
func Parse(r io.Reader) (*Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyCatalog
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(doc.Projects) == 0 {
		return nil, ErrEmptyCatalog
	}
	return New(doc.Projects)
}

// Encode writes projects in the format Parse reads.
func Encode(w io.Writer, projects []types.Project) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Projects: projects}); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return enc.Close()
}

// Default returns the built-in showcase catalog.
func Default() *Catalog {
	c, err := Parse(strings.NewReader(defaultYAML))
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return c
}

// LoadFile reads a YAML catalog from path. An empty path returns Default.
func LoadFile(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return c, nil
}

// FileSource serves projects from a YAML file, or the built-in catalog when
// Path is empty.
type FileSource struct {
	Path string
}

// Compile-time interface check
var _ types.ProjectSource = FileSource{}

func (s FileSource) Projects() ([]types.Project, error) {
	c, err := LoadFile(s.Path)
	if err != nil {
		return nil, err
	}
	return c.Items(), nil
}

// Load builds a Catalog from any source.
func Load(source types.ProjectSource) (*Catalog, error) {
	projects, err := source.Projects()
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, ErrEmptyCatalog
	}
	return New(projects)
}
