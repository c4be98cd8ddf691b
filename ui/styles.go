package ui

import "github.com/charmbracelet/lipgloss"

// 16-color ANSI Dracula palette
var (
	DraculaBackground = lipgloss.AdaptiveColor{Light: "0", Dark: "0"}
	DraculaForeground = lipgloss.AdaptiveColor{Light: "255", Dark: "255"}
	DraculaPurple     = lipgloss.AdaptiveColor{Light: "5", Dark: "5"}
	DraculaPink       = lipgloss.AdaptiveColor{Light: "13", Dark: "13"}
	DraculaCyan       = lipgloss.AdaptiveColor{Light: "14", Dark: "14"}
	DraculaGreen      = lipgloss.AdaptiveColor{Light: "10", Dark: "10"}
	DraculaComment    = lipgloss.AdaptiveColor{Light: "7", Dark: "7"}
	DraculaOrange     = lipgloss.AdaptiveColor{Light: "3", Dark: "3"}
	DraculaRed        = lipgloss.AdaptiveColor{Light: "1", Dark: "1"}

	// Filter bar styles
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(DraculaBackground).
			Background(DraculaPink).
			Bold(true).
			Padding(0, 1)
	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(DraculaComment).
				Padding(0, 1)
	TabCountStyle = lipgloss.NewStyle().
			Foreground(DraculaPurple)

	// Header styles
	TitleStyle = lipgloss.NewStyle().
			Foreground(DraculaPink).
			Bold(true).
			Padding(0, 1)
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(DraculaComment).
			Padding(0, 1)

	// Card styles
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DraculaComment).
			Padding(0, 1)
	FocusedCardStyle = CardStyle.
				BorderForeground(DraculaPink)
	CardTitleStyle = lipgloss.NewStyle().
			Foreground(DraculaCyan).
			Bold(true)
	CardCategoryStyle = lipgloss.NewStyle().
				Foreground(DraculaOrange)
	CardTagStyle = lipgloss.NewStyle().
			Foreground(DraculaComment)
	CardLinkStyle = lipgloss.NewStyle().
			Foreground(DraculaGreen)

	// Scroll indicator
	IndicatorActiveStyle = lipgloss.NewStyle().
				Foreground(DraculaPink)
	IndicatorInactiveStyle = lipgloss.NewStyle().
				Foreground(DraculaComment).
				Faint(true)

	// Detail modal styles
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DraculaPurple).
			Padding(1, 2)
	DetailTitleStyle = lipgloss.NewStyle().
				Foreground(DraculaPink).
				Bold(true)
	DetailTaglineStyle = lipgloss.NewStyle().
				Foreground(DraculaCyan).
				Italic(true)
	NavArrowStyle = lipgloss.NewStyle().
			Foreground(DraculaCyan).
			Bold(true)
	NavArrowDimStyle = lipgloss.NewStyle().
				Foreground(DraculaComment).
				Faint(true)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(DraculaComment)
	ErrorStyle = lipgloss.NewStyle().
			Foreground(DraculaRed)
	EmptyStyle = lipgloss.NewStyle().
			Foreground(DraculaComment).
			Italic(true)

	// Help
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(DraculaPink).
			Bold(true)
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DraculaForeground)
)
