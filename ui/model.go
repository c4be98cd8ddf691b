package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/qyinm/folio/gallery"
	"github.com/qyinm/folio/types"
)

// Model is the main TUI model
type Model struct {
	source    types.ProjectSource
	state     *gallery.State
	tracker   *gallery.Tracker
	detach    func()
	strip     strip
	modal     Modal
	search    textinput.Model
	searching bool
	spinner   spinner.Model
	help      help.Model
	keys      keyMap
	logger    *slog.Logger
	width     int
	height    int
	loading   bool
	err       error
	statusMsg string
}

// NewModel creates a new Model that loads its catalog from source.
// A nil logger discards log output.
func NewModel(source types.ProjectSource, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "search projects"
	ti.CharLimit = 64

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = CardLinkStyle

	h := help.New()
	h.Styles.ShortKey = HelpKeyStyle
	h.Styles.ShortDesc = HelpDescStyle
	h.Styles.FullKey = HelpKeyStyle
	h.Styles.FullDesc = HelpDescStyle

	return Model{
		source:    source,
		tracker:   &gallery.Tracker{},
		modal:     NewModal(),
		search:    ti,
		spinner:   s,
		help:      h,
		keys:      keys,
		logger:    logger,
		loading:   true,
		statusMsg: "Loading catalog…",
	}
}

// Init starts loading the catalog
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadCatalog(m.source))
}

// State exposes the gallery state; nil until the catalog has loaded.
func (m Model) State() *gallery.State { return m.state }

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizePanes()
		m.attachTracker()
		m.observeScroll()
		return m, nil

	case catalogLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.statusMsg = "Failed to load catalog"
			m.logger.Error("catalog load failed", "err", msg.err)
			return m, nil
		}
		m.err = nil
		m.state = gallery.New(msg.catalog)
		m.statusMsg = fmt.Sprintf("%d projects", msg.catalog.Len())
		m.logger.Info("catalog loaded", "projects", msg.catalog.Len())
		m.refreshStrip()
		m.attachTracker()
		m.observeScroll()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case closeModalMsg:
		if m.state != nil {
			m.state.Close()
		}
		return m, nil

	case navigateMsg:
		if m.state != nil && !m.state.Navigate(msg.dir) {
			m.logger.Debug("navigation at scope boundary", "direction", msg.dir.String())
		}
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.statusMsg = "Copy failed: " + msg.err.Error()
			m.logger.Warn("clipboard write failed", "err", msg.err)
		} else {
			m.statusMsg = "Copied " + msg.text
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.teardown()
		return m, tea.Quit
	}

	if m.searching {
		return m.updateSearch(msg)
	}

	if m.state == nil {
		if key.Matches(msg, m.keys.Quit) {
			m.teardown()
			return m, tea.Quit
		}
		return m, nil
	}

	// Filter keys work with the modal open; the open project keeps its scope.
	switch {
	case key.Matches(msg, m.keys.Tab):
		m.cycleFilter(1)
		return m, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.cycleFilter(-1)
		return m, nil
	case key.Matches(msg, m.keys.Filter):
		m.applyFilter(filterForKey(msg.String()))
		return m, nil
	}

	if m.state.IsOpen() {
		var cmd tea.Cmd
		m.modal = m.modal.Configure(m.modalConfig())
		m.modal, cmd = m.modal.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.teardown()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Home):
		m.moveCursor(-m.strip.count)
	case key.Matches(msg, m.keys.End):
		m.moveCursor(m.strip.count)
	case key.Matches(msg, m.keys.ScrollLeft):
		m.scrollBy(-m.strip.width / 2)
	case key.Matches(msg, m.keys.ScrollRight):
		m.scrollBy(m.strip.width / 2)
	case key.Matches(msg, m.keys.Enter):
		if p, ok := m.focused(); ok {
			m.state.Select(p)
			m.logger.Debug("project opened", "id", p.ID)
		}
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Back):
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.refreshStrip()
			m.observeScroll()
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizePanes()
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		return m, nil
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.refreshStrip()
		m.observeScroll()
		return m, nil
	}

	var cmd tea.Cmd
	before := m.search.Value()
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before && m.state != nil {
		m.strip.reset()
		m.refreshStrip()
		m.observeScroll()
	}
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	if m.state == nil || m.state.IsOpen() || msg.Action != tea.MouseActionPress {
		return m
	}
	switch msg.Button {
	case tea.MouseButtonWheelLeft, tea.MouseButtonWheelUp:
		m.scrollBy(-4)
	case tea.MouseButtonWheelRight, tea.MouseButtonWheelDown:
		m.scrollBy(4)
	}
	return m
}

// visible returns the cards on the strip: the active filter, narrowed and
// ranked by the search query when there is one.
func (m Model) visible() []types.Project {
	if m.state == nil {
		return nil
	}
	query := strings.TrimSpace(m.search.Value())
	if query == "" {
		return m.state.FilteredItems()
	}
	filter := m.state.ActiveFilter()
	out := make([]types.Project, 0)
	for _, p := range m.state.Catalog().Search(query) {
		if filter == types.FilterAll || string(p.Category) == filter {
			out = append(out, p)
		}
	}
	return out
}

func (m Model) focused() (types.Project, bool) {
	items := m.visible()
	if m.strip.cursor < 0 || m.strip.cursor >= len(items) {
		return types.Project{}, false
	}
	return items[m.strip.cursor], true
}

func (m *Model) moveCursor(delta int) {
	if m.strip.moveCursor(delta) {
		m.observeScroll()
	}
}

func (m *Model) scrollBy(delta int) {
	if m.strip.scrollBy(delta) {
		m.observeScroll()
	}
}

func (m *Model) applyFilter(filter string) {
	if filter == "" || m.state == nil || filter == m.state.ActiveFilter() {
		return
	}
	m.state.SetFilter(filter)
	m.strip.reset()
	m.refreshStrip()
	m.observeScroll()
	m.logger.Debug("filter changed", "filter", filter)
}

func (m *Model) cycleFilter(step int) {
	filters := types.Filters()
	current := 0
	for i, f := range filters {
		if f == m.state.ActiveFilter() {
			current = i
		}
	}
	next := (current + step + len(filters)) % len(filters)
	m.applyFilter(filters[next])
}

// filterForKey maps the digit keys onto the filter bar, 1 being All.
func filterForKey(k string) string {
	filters := types.Filters()
	if len(k) != 1 || k[0] < '1' {
		return ""
	}
	i := int(k[0] - '1')
	if i >= len(filters) {
		return ""
	}
	return filters[i]
}

func (m *Model) refreshStrip() {
	m.strip.setCount(len(m.visible()))
}

// attachTracker subscribes the indicator to strip scroll events once the
// strip exists, which needs both a catalog and a window size.
func (m *Model) attachTracker() {
	if m.detach != nil || m.state == nil || m.width == 0 {
		return
	}
	m.detach = m.tracker.Attach(m.state.SetIndicator)
}

// teardown releases the scroll subscription.
func (m *Model) teardown() {
	if m.detach != nil {
		m.detach()
		m.detach = nil
	}
}

// observeScroll feeds the strip's current metrics to the tracker.
func (m *Model) observeScroll() {
	m.tracker.Observe(m.strip.metrics())
}

func (m Model) modalConfig() ModalConfig {
	cfg := ModalConfig{
		OnClose:        func() tea.Msg { return closeModalMsg{} },
		OnPrevious:     func() tea.Msg { return navigateMsg{dir: gallery.Prev} },
		OnNext:         func() tea.Msg { return navigateMsg{dir: gallery.Next} },
		ShowNavigation: true,
	}
	if m.state == nil {
		return cfg
	}
	if p, ok := m.state.Selected(); ok {
		cfg.IsOpen = true
		cfg.Item = &p
	}
	if i, total, ok := m.state.Position(); ok {
		cfg.Position = fmt.Sprintf("%d / %d", i, total)
		cfg.HasPrev = i > 1
		cfg.HasNext = i < total
	}
	return cfg
}

// View renders the current view
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	if m.state != nil && m.state.IsOpen() {
		modal := m.modal.Configure(m.modalConfig())
		if modal.IsOpen() {
			body := lipgloss.Place(m.width, max(m.height-1, 0), lipgloss.Center, lipgloss.Center, modal.View())
			return body + "\n" + m.help.View(modalKeyMap{keyMap: m.keys, navigation: true})
		}
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Our Portfolio") + "\n")
	b.WriteString(SubtitleStyle.Render("Premium cabinetry and renovation projects, each crafted with precision and care.") + "\n\n")

	switch {
	case m.loading:
		b.WriteString("  " + m.spinner.View() + " " + m.statusMsg + "\n")
	case m.err != nil:
		b.WriteString("  " + ErrorStyle.Render(m.err.Error()) + "\n")
	default:
		b.WriteString(m.renderFilterBar() + "\n\n")
		b.WriteString(m.strip.view(m.visible()) + "\n\n")
		b.WriteString(renderIndicator(m.state.Indicator(), m.width) + "\n")
	}

	b.WriteString("\n" + m.renderStatusBar() + "\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderFilterBar() string {
	counts := m.state.Catalog().Counts()
	tabs := make([]string, 0, len(types.Categories)+1)
	for i, f := range types.Filters() {
		n := m.state.Catalog().Len()
		if f != types.FilterAll {
			n = counts[types.Category(f)]
		}
		label := fmt.Sprintf("%d %s %s", i+1, f, TabCountStyle.Render(fmt.Sprintf("(%d)", n)))
		if f == m.state.ActiveFilter() {
			tabs = append(tabs, ActiveTabStyle.Render(fmt.Sprintf("%d %s (%d)", i+1, f, n)))
		} else {
			tabs = append(tabs, InactiveTabStyle.Render(label))
		}
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (m Model) renderStatusBar() string {
	if m.searching || m.search.Value() != "" {
		return " " + m.search.View()
	}
	if m.err != nil {
		return " " + ErrorStyle.Render(m.statusMsg)
	}
	return " " + StatusBarStyle.Render(m.statusMsg)
}

// resizePanes adjusts the strip and modal dimensions based on window size
func (m *Model) resizePanes() {
	m.help.Width = m.width
	m.strip.setWidth(m.width)
	m.modal.SetSize(m.width, m.height)
}
