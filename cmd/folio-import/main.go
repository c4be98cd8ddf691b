// Command folio-import converts an HTML project gallery into a YAML catalog.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/qyinm/folio/catalog"
	"github.com/qyinm/folio/types"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("folio-import", flag.ContinueOnError)
	out := fs.String("o", "", "Write the catalog to this file instead of stdout")
	url := fs.String("url", "", "Fetch the gallery page from this URL")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: folio-import [-o catalog.yaml] (-url URL | gallery.html)")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	projects, err := readGallery(*url, fs.Args())
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		return catalog.ErrEmptyCatalog
	}
	c, err := catalog.New(projects)
	if err != nil {
		return err
	}

	w := stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return fmt.Errorf("create %s: %w", *out, err)
		}
		defer f.Close()
		w = f
	}
	return catalog.Encode(w, c.Items())
}

func readGallery(url string, args []string) ([]types.Project, error) {
	switch {
	case url != "" && len(args) > 0:
		return nil, errors.New("give either -url or a file, not both")
	case url != "":
		return catalog.NewFetcher(url).Projects()
	case len(args) == 1:
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return catalog.ParseGallery(f)
	default:
		return nil, errors.New("expected exactly one HTML file or -url")
	}
}
