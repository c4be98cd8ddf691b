package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/qyinm/folio/types"
)

// ModalConfig is everything the detail modal needs from its owner. Callbacks
// are plain tea.Cmd functions so the owner decides what message each produces.
type ModalConfig struct {
	IsOpen         bool
	Item           *types.Project
	OnClose        func() tea.Msg
	OnPrevious     func() tea.Msg
	OnNext         func() tea.Msg
	ShowNavigation bool

	// Position is an optional "2 / 5" style label; HasPrev and HasNext dim
	// the arrows at the ends of the navigation scope.
	Position string
	HasPrev  bool
	HasNext  bool
}

// Modal shows one project's details. It treats the item as read-only and only
// invokes callbacks in response to key presses.
type Modal struct {
	cfg      ModalConfig
	width    int
	height   int
	renderer *glamour.TermRenderer
}

// NewModal creates a closed modal.
func NewModal() Modal {
	return Modal{}
}

// Configure replaces the modal's configuration.
func (m Modal) Configure(cfg ModalConfig) Modal {
	m.cfg = cfg
	return m
}

// IsOpen reports whether the modal has something to show.
func (m Modal) IsOpen() bool {
	return m.cfg.IsOpen && m.cfg.Item != nil
}

// SetSize sets the space available to the modal and rebuilds the markdown
// renderer for the new wrap width.
func (m *Modal) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.renderer = nil
	if w := m.contentWidth(); w > 0 {
		r, err := glamour.NewTermRenderer(
			glamour.WithStylePath("dark"),
			glamour.WithWordWrap(w),
		)
		if err == nil {
			m.renderer = r
		}
	}
}

func (m Modal) contentWidth() int {
	w := min(m.width-8, 72)
	return max(w, 0)
}

// Update handles key presses while the modal is open.
func (m Modal) Update(msg tea.Msg) (Modal, tea.Cmd) {
	if !m.IsOpen() {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Close):
		return m, m.cfg.OnClose
	case key.Matches(keyMsg, keys.Prev):
		if m.cfg.ShowNavigation {
			return m, m.cfg.OnPrevious
		}
	case key.Matches(keyMsg, keys.Next):
		if m.cfg.ShowNavigation {
			return m, m.cfg.OnNext
		}
	case key.Matches(keyMsg, keys.Copy):
		if m.cfg.Item.Image != "" {
			return m, copyToClipboard(m.cfg.Item.Image)
		}
	}
	return m, nil
}

// View renders the modal box, or nothing when closed.
func (m Modal) View() string {
	if !m.IsOpen() {
		return ""
	}
	p := m.cfg.Item
	width := m.contentWidth()

	var b strings.Builder

	header := DetailTitleStyle.Render(p.Name)
	if m.cfg.Position != "" {
		header += "  " + StatusBarStyle.Render(m.cfg.Position)
	}
	b.WriteString(header + "\n")
	b.WriteString(CardCategoryStyle.Render(string(p.Category)) + "  " + DetailTaglineStyle.Render(p.Summary) + "\n")

	b.WriteString(m.renderBody(p))

	if p.Image != "" {
		b.WriteString("\n" + StatusBarStyle.Render("Image: "+truncate(p.Image, max(width-7, 1))))
	}

	if m.cfg.ShowNavigation {
		b.WriteString("\n\n" + m.renderNavigation(width))
	}

	return ModalStyle.Render(b.String())
}

func (m Modal) renderBody(p *types.Project) string {
	md := projectMarkdown(p)
	if m.renderer != nil {
		if out, err := m.renderer.Render(md); err == nil {
			return out
		}
	}
	return "\n" + md
}

func (m Modal) renderNavigation(width int) string {
	prevStyle, nextStyle := NavArrowStyle, NavArrowStyle
	if !m.cfg.HasPrev {
		prevStyle = NavArrowDimStyle
	}
	if !m.cfg.HasNext {
		nextStyle = NavArrowDimStyle
	}
	prev := prevStyle.Render("← Previous")
	next := nextStyle.Render("Next →")
	gap := max(width-lipgloss.Width(prev)-lipgloss.Width(next), 1)
	return prev + strings.Repeat(" ", gap) + next
}

// projectMarkdown lays out the detail body as markdown.
func projectMarkdown(p *types.Project) string {
	var b strings.Builder

	d := p.Details
	for _, row := range []struct{ label, value string }{
		{"Client", d.Client},
		{"Duration", d.Duration},
		{"Location", d.Location},
	} {
		if row.value != "" {
			fmt.Fprintf(&b, "**%s:** %s  \n", row.label, row.value)
		}
	}

	if len(d.Services) > 0 {
		b.WriteString("\n## Services\n\n")
		for _, svc := range d.Services {
			fmt.Fprintf(&b, "- %s\n", svc)
		}
	}

	if len(p.Tags) > 0 {
		b.WriteString("\n")
		for i, tag := range p.Tags {
			if i > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "`%s`", tag)
		}
		b.WriteString("\n")
	}

	return b.String()
}
