package catalog

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/qyinm/folio/types"
)

func TestParseGallery(t *testing.T) {
	f, err := os.Open("../testdata/gallery.html")
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer f.Close()

	projects, err := ParseGallery(f)
	if err != nil {
		t.Fatalf("ParseGallery: %v", err)
	}

	if len(projects) != 3 {
		t.Fatalf("projects count = %d, want 3", len(projects))
	}

	kitchen := projects[0]
	if kitchen.Name != "Modern Kitchen Renovation" {
		t.Errorf("first title = %q", kitchen.Name)
	}
	if kitchen.Category != types.Kitchen {
		t.Errorf("first category = %q", kitchen.Category)
	}
	if kitchen.Image != "https://images.example/kitchen.jpg" {
		t.Errorf("first image = %q", kitchen.Image)
	}
	if strings.Join(kitchen.Tags, ",") != "Kitchen,Modern,Custom" {
		t.Errorf("tags out of order: %v", kitchen.Tags)
	}
	d := kitchen.Details
	if d.Client != "Private Residence" || d.Duration != "6 weeks" || d.Location != "Oak Bay, Victoria" {
		t.Errorf("details = %+v", d)
	}
	if len(d.Services) != 2 || d.Services[0] != "Custom cabinet design and manufacturing" {
		t.Errorf("services = %v", d.Services)
	}

	vanity := projects[1]
	if vanity.ID != "vanity" {
		t.Errorf("data-id = %q, want vanity", vanity.ID)
	}
	if vanity.Category != types.Bathroom {
		t.Errorf("lowercase data-category should normalize, got %q", vanity.Category)
	}

	office := projects[2]
	if office.Category != types.Office {
		t.Errorf(".category text fallback = %q, want Office", office.Category)
	}
	if len(office.Tags) != 0 {
		t.Errorf("expected no tags, got %v", office.Tags)
	}
}

func TestParseGalleryUnknownCategory(t *testing.T) {
	html := `<article class="project" data-category="Garage"><h3>Garage Shelving</h3></article>`
	_, err := ParseGallery(strings.NewReader(html))
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
	if !strings.Contains(err.Error(), "Garage Shelving") {
		t.Errorf("error should name the card: %v", err)
	}
}

func TestParseGalleryNoCards(t *testing.T) {
	projects, err := ParseGallery(strings.NewReader("<html><body><p>nothing here</p></body></html>"))
	if err != nil {
		t.Fatalf("ParseGallery: %v", err)
	}
	if len(projects) != 0 {
		t.Errorf("expected no projects, got %d", len(projects))
	}
}
