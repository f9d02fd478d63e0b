package ui

import "github.com/charmbracelet/lipgloss"

// Roast palette: dark crema background, espresso surfaces, caramel accent.
var (
	ColorBase    = lipgloss.Color("#1E1814")
	ColorSurface = lipgloss.Color("#2E2520")
	ColorMuted   = lipgloss.Color("#8C7B6E")
	ColorText    = lipgloss.Color("#EADFD3")
	ColorAccent  = lipgloss.Color("#C8905A")
	ColorGreen   = lipgloss.Color("#9FBF8F")
	ColorRed     = lipgloss.Color("#D9665B")
	ColorYellow  = lipgloss.Color("#E3C07A")
)

var (
	accentText = lipgloss.NewStyle().Foreground(ColorAccent)
	mutedText  = lipgloss.NewStyle().Foreground(ColorMuted)
	boldAccent = accentText.Bold(true)
	boxed      = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(ColorMuted)
)

// Text
var (
	LabelStyle            = boldAccent
	HeaderStyle           = boldAccent.Padding(0, 1)
	HelpKeyStyle          = accentText
	HelpDescStyle         = mutedText
	BreadcrumbStyle       = mutedText
	BreadcrumbActiveStyle = accentText
	StatusBarStyle        = mutedText.Padding(0, 1)
	EmptyStateStyle       = mutedText.Italic(true).Padding(2, 4)
	ErrorStyle            = lipgloss.NewStyle().Foreground(ColorRed).Padding(0, 1)
	SuccessStyle          = lipgloss.NewStyle().Foreground(ColorGreen).Padding(0, 1)
)

// Frames
var (
	TitleStyle        = boxed.BorderBottom(true).Foreground(ColorAccent).Bold(true).Padding(0, 1)
	FooterStyle       = boxed.BorderTop(true).Foreground(ColorMuted).Padding(0, 1)
	BorderStyle       = boxed.Padding(0, 1)
	ActiveBorderStyle = BorderStyle.BorderForeground(ColorAccent)
	PanelStyle        = boxed.Padding(1, 2)
	ModalStyle        = boxed.BorderStyle(lipgloss.RoundedBorder()).BorderForeground(ColorAccent).Padding(1, 3)
	SidebarStyle      = boxed.BorderRight(true).Padding(0, 1)
)

// Shop table and sidebar
var (
	TableHeaderStyle   = boldAccent.Padding(0, 1).Background(ColorSurface)
	NormalRowStyle     = lipgloss.NewStyle().Foreground(ColorText)
	SelectedRowStyle   = lipgloss.NewStyle().Foreground(ColorBase).Background(ColorAccent)
	SidebarActiveStyle = boldAccent
	FavoriteStyle      = lipgloss.NewStyle().Foreground(ColorRed)
	BadgeStyle         = lipgloss.NewStyle().Foreground(ColorBase).Background(ColorRed).Padding(0, 1)
)
