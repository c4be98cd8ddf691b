package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/qyinm/folio/gallery"
	"github.com/qyinm/folio/types"
)

// strip is the horizontally scrolling row of project cards. offset is the
// number of columns scrolled past the left edge; cursor is the focused card.
type strip struct {
	cursor int
	offset int
	width  int
	count  int
}

// contentWidth is the full width of the laid-out cards, padding included.
func (s strip) contentWidth() int {
	if s.count == 0 {
		return 0
	}
	return 2*stripPadding + s.count*cardWidth + (s.count-1)*cardGap
}

func (s strip) maxOffset() int {
	return max(0, s.contentWidth()-s.width)
}

// metrics reports the strip as a scroll container.
func (s strip) metrics() gallery.Metrics {
	return gallery.Metrics{
		Left:        s.offset,
		Width:       max(s.contentWidth(), s.width),
		ClientWidth: s.width,
	}
}

func (s *strip) setWidth(width int) {
	s.width = max(0, width)
	s.ensureVisible()
}

// setCount replaces the number of cards, keeping cursor and offset in range.
func (s *strip) setCount(n int) {
	s.count = max(0, n)
	switch {
	case s.count == 0:
		s.cursor = 0
	case s.cursor >= s.count:
		s.cursor = s.count - 1
	}
	s.clampOffset()
}

// reset moves back to the first card.
func (s *strip) reset() {
	s.cursor = 0
	s.offset = 0
}

// moveCursor focuses the card delta positions away, scrolling it into view.
// Returns true if the cursor changed.
func (s *strip) moveCursor(delta int) bool {
	if s.count == 0 {
		return false
	}
	next := min(max(s.cursor+delta, 0), s.count-1)
	if next == s.cursor {
		return false
	}
	s.cursor = next
	s.ensureVisible()
	return true
}

// scrollBy pans the strip without moving the cursor.
// Returns true if the offset changed.
func (s *strip) scrollBy(delta int) bool {
	before := s.offset
	s.offset += delta
	s.clampOffset()
	return s.offset != before
}

// ensureVisible scrolls just enough to show the focused card with its margin.
func (s *strip) ensureVisible() {
	if s.count == 0 || s.width == 0 {
		s.clampOffset()
		return
	}
	left := s.cursor * (cardWidth + cardGap)
	right := left + cardWidth + 2*stripPadding

	if left < s.offset {
		s.offset = left
	}
	if right > s.offset+s.width {
		s.offset = right - s.width
	}
	s.clampOffset()
}

func (s *strip) clampOffset() {
	s.offset = min(max(s.offset, 0), s.maxOffset())
}

// view renders the visible slice of the card row.
func (s strip) view(projects []types.Project) string {
	if len(projects) == 0 {
		return lipgloss.PlaceHorizontal(s.width, lipgloss.Center, EmptyStyle.Render("No projects to show."))
	}

	pad := strings.Repeat(" ", stripPadding)
	gap := strings.Repeat(" ", cardGap)
	parts := make([]string, 0, 2*len(projects)+1)
	parts = append(parts, pad)
	for i, p := range projects {
		if i > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, renderCard(p, i == s.cursor))
	}
	parts = append(parts, pad)
	row := lipgloss.JoinHorizontal(lipgloss.Top, parts...)

	lines := strings.Split(row, "\n")
	for i, line := range lines {
		lines[i] = ansi.Cut(line, s.offset, s.offset+s.width)
	}
	return strings.Join(lines, "\n")
}

// renderIndicator draws the three scroll segments with the active one lit.
func renderIndicator(active, width int) string {
	segments := make([]string, gallery.Buckets)
	for i := range segments {
		if i == active {
			segments[i] = IndicatorActiveStyle.Render("━━━━")
		} else {
			segments[i] = IndicatorInactiveStyle.Render("━━━━")
		}
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(segments, " "))
}
