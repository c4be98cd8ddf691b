package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/qyinm/folio/catalog"
	"github.com/qyinm/folio/types"
)

func sampleProject(t *testing.T) *types.Project {
	t.Helper()
	p, ok := catalog.Default().Lookup("luxury-bathroom-vanity")
	if !ok {
		t.Fatal("default catalog missing luxury-bathroom-vanity")
	}
	return &p
}

type modalCalls struct {
	close, prev, next int
}

func (c *modalCalls) config(p *types.Project, nav bool) ModalConfig {
	return ModalConfig{
		IsOpen:         true,
		Item:           p,
		OnClose:        func() tea.Msg { c.close++; return nil },
		OnPrevious:     func() tea.Msg { c.prev++; return nil },
		OnNext:         func() tea.Msg { c.next++; return nil },
		ShowNavigation: nav,
	}
}

func sendModal(m Modal, k tea.KeyMsg) Modal {
	m, cmd := m.Update(k)
	if cmd != nil {
		cmd()
	}
	return m
}

func TestModalClosedRendersNothing(t *testing.T) {
	m := NewModal()
	m.SetSize(100, 40)
	if m.IsOpen() {
		t.Fatal("new modal should be closed")
	}
	if got := m.View(); got != "" {
		t.Fatalf("closed modal rendered %q", got)
	}

	// Open without an item is still closed.
	m = m.Configure(ModalConfig{IsOpen: true})
	if m.IsOpen() || m.View() != "" {
		t.Fatal("modal without an item should render nothing")
	}

	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc}); cmd != nil {
		t.Fatal("closed modal should ignore keys")
	}
}

func TestModalCallbacks(t *testing.T) {
	var calls modalCalls
	m := NewModal().Configure(calls.config(sampleProject(t), true))

	m = sendModal(m, tea.KeyMsg{Type: tea.KeyLeft})
	m = sendModal(m, tea.KeyMsg{Type: tea.KeyRight})
	m = sendModal(m, runes("l"))
	m = sendModal(m, tea.KeyMsg{Type: tea.KeyEsc})
	sendModal(m, runes("q"))

	if calls.prev != 1 || calls.next != 2 || calls.close != 2 {
		t.Fatalf("unexpected calls: %+v", calls)
	}
}

func TestModalWithoutNavigationIgnoresArrows(t *testing.T) {
	var calls modalCalls
	m := NewModal().Configure(calls.config(sampleProject(t), false))
	m.SetSize(100, 40)

	m = sendModal(m, tea.KeyMsg{Type: tea.KeyLeft})
	m = sendModal(m, tea.KeyMsg{Type: tea.KeyRight})
	if calls.prev != 0 || calls.next != 0 {
		t.Fatalf("arrows should be ignored: %+v", calls)
	}
	if strings.Contains(ansi.Strip(m.View()), "Previous") {
		t.Fatal("navigation arrows should be hidden")
	}
}

func TestModalNilCallbacks(t *testing.T) {
	m := NewModal().Configure(ModalConfig{IsOpen: true, Item: sampleProject(t), ShowNavigation: true})
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc}); cmd != nil {
		t.Fatal("nil OnClose should produce no command")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight}); cmd != nil {
		t.Fatal("nil OnNext should produce no command")
	}
}

func TestModalCopyNeedsImage(t *testing.T) {
	p := sampleProject(t)
	m := NewModal().Configure(ModalConfig{IsOpen: true, Item: p})
	if _, cmd := m.Update(runes("y")); cmd == nil {
		t.Fatal("y should copy the image url")
	}

	noImage := *p
	noImage.Image = ""
	m = m.Configure(ModalConfig{IsOpen: true, Item: &noImage})
	if _, cmd := m.Update(runes("y")); cmd != nil {
		t.Fatal("y without an image should do nothing")
	}
}

func TestModalView(t *testing.T) {
	p := sampleProject(t)
	cfg := ModalConfig{
		IsOpen:         true,
		Item:           p,
		ShowNavigation: true,
		Position:       "2 / 5",
		HasPrev:        true,
		HasNext:        true,
	}
	m := NewModal().Configure(cfg)
	m.SetSize(120, 40)
	view := ansi.Strip(m.View())

	for _, want := range []string{
		"Luxury Bathroom Vanity",
		"2 / 5",
		"Floating vanity in rich mahogany finish",
		"Luxury Condo",
		"Custom vanity design",
		"Storage solutions",
		"← Previous",
		"Next →",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestModalViewWithoutRenderer(t *testing.T) {
	m := NewModal().Configure(ModalConfig{IsOpen: true, Item: sampleProject(t)})
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "## Services") {
		t.Fatalf("expected raw markdown fallback, got:\n%s", view)
	}
}

func TestProjectMarkdown(t *testing.T) {
	p := &types.Project{
		Name: "Bare",
		Tags: []string{"One", "Two"},
		Details: types.Details{
			Client: "Someone",
		},
	}
	md := projectMarkdown(p)
	if !strings.Contains(md, "**Client:** Someone") {
		t.Fatalf("missing client row:\n%s", md)
	}
	if strings.Contains(md, "Duration") || strings.Contains(md, "Services") {
		t.Fatalf("empty fields should be omitted:\n%s", md)
	}
	if !strings.Contains(md, "`One` `Two`") {
		t.Fatalf("tags out of order:\n%s", md)
	}
}
