package catalog

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/qyinm/folio/types"
)

// ParseGallery parses portfolio page HTML and returns its project cards in
// document order. A card is any element carrying data-project, or an
// article.project.
func ParseGallery(reader io.Reader) ([]types.Project, error) {
	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return nil, err
	}

	var (
		projects []types.Project
		parseErr error
	)

	doc.Find("[data-project], article.project").EachWithBreak(func(i int, s *goquery.Selection) bool {
		title := strings.TrimSpace(s.Find("h3").First().Text())
		if title == "" {
			return true
		}

		rawCategory, ok := s.Attr("data-category")
		if !ok {
			rawCategory = s.Find(".category").First().Text()
		}
		category, ok := types.ParseCategory(rawCategory)
		if !ok {
			parseErr = fmt.Errorf("card %d (%q): %w %q", i+1, title, ErrUnknownCategory, strings.TrimSpace(rawCategory))
			return false
		}

		id, _ := s.Attr("data-id")
		image, _ := s.Find("img").First().Attr("src")

		var tags []string
		s.Find(".tag").Each(func(_ int, t *goquery.Selection) {
			if tag := strings.TrimSpace(t.Text()); tag != "" {
				tags = append(tags, tag)
			}
		})

		projects = append(projects, types.Project{
			ID:       strings.TrimSpace(id),
			Image:    strings.TrimSpace(image),
			Name:     title,
			Summary:  strings.TrimSpace(s.Find("p").First().Text()),
			Category: category,
			Tags:     tags,
			Details:  parseDetails(s),
		})
		return true
	})

	if parseErr != nil {
		return nil, parseErr
	}
	return projects, nil
}

// parseDetails reads the dt/dd pairs and the services list of a card.
func parseDetails(s *goquery.Selection) types.Details {
	var d types.Details

	s.Find("dl dt").Each(func(_ int, dt *goquery.Selection) {
		value := strings.TrimSpace(dt.NextFiltered("dd").Text())
		switch strings.ToLower(strings.TrimSuffix(strings.TrimSpace(dt.Text()), ":")) {
		case "client":
			d.Client = value
		case "duration":
			d.Duration = value
		case "location":
			d.Location = value
		}
	})

	s.Find(".services li").Each(func(_ int, li *goquery.Selection) {
		if svc := strings.TrimSpace(li.Text()); svc != "" {
			d.Services = append(d.Services, svc)
		}
	})

	return d
}
