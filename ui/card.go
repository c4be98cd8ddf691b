package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/qyinm/folio/types"
)

const (
	// cardWidth is the outer width of a card, border included.
	cardWidth = 34
	// cardGap separates neighbouring cards.
	cardGap = 2
	// stripPadding is the blank margin before the first and after the last card.
	stripPadding = 2
)

// renderCard renders a single project card, cardWidth columns wide.
func renderCard(p types.Project, focused bool) string {
	style := CardStyle
	if focused {
		style = FocusedCardStyle
	}
	inner := cardWidth - style.GetHorizontalFrameSize()

	// Line 1: Category label
	line1 := CardCategoryStyle.Render(truncate(strings.ToUpper(string(p.Category)), inner))

	// Line 2: Title
	titleStyle := CardTitleStyle
	if focused {
		titleStyle = titleStyle.Foreground(DraculaPink)
	}
	line2 := titleStyle.Render(truncate(p.Name, inner))

	// Line 3: Description
	line3 := HelpDescStyle.Render(truncate(p.Summary, inner))

	// Line 4: Tags in insertion order
	line4 := CardTagStyle.Render(truncate(strings.Join(p.Tags, " · "), inner))

	link := "View Project ↗"
	if focused {
		link = CardLinkStyle.Bold(true).Render(link)
	} else {
		link = CardLinkStyle.Render(link)
	}

	body := lipgloss.JoinVertical(lipgloss.Left, line1, line2, line3, line4, link)
	return style.Width(inner + style.GetHorizontalPadding()).Render(body)
}

// truncate cuts s to width terminal cells, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
