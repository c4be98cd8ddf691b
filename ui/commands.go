package ui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/qyinm/folio/catalog"
	"github.com/qyinm/folio/gallery"
	"github.com/qyinm/folio/types"
)

// Message types for async operations

type catalogLoadedMsg struct {
	catalog *catalog.Catalog
	err     error
}

type clipboardMsg struct {
	text string
	err  error
}

// Messages produced by the detail modal callbacks

type closeModalMsg struct{}

type navigateMsg struct {
	dir gallery.Direction
}

// loadCatalog returns a tea.Cmd that loads the catalog asynchronously
func loadCatalog(source types.ProjectSource) tea.Cmd {
	return func() tea.Msg {
		c, err := catalog.Load(source)
		return catalogLoadedMsg{catalog: c, err: err}
	}
}

// copyToClipboard returns a tea.Cmd that writes text to the system clipboard
func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{text: text, err: clipboard.WriteAll(text)}
	}
}
