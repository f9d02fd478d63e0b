package ui

import (
	"strings"

	"roast/internal/model"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// Display-only bindings; the keys themselves are handled elsewhere.
var (
	doneEditing = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done (note saves as you type)"))
	closeHelp   = key.NewBinding(key.WithKeys("esc", "q", "?"), key.WithHelp("esc", "close help"))
)

func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = HelpKeyStyle
	h.Styles.ShortDesc = HelpDescStyle
	h.Styles.ShortSeparator = HelpDescStyle
	h.Styles.FullKey = HelpKeyStyle
	h.Styles.FullDesc = HelpDescStyle
	h.Styles.FullSeparator = HelpDescStyle
	h.Styles.Ellipsis = HelpDescStyle
	return h
}

type helpGroup struct {
	title    string
	bindings []key.Binding
}

// footerBindings picks the bindings worth a footer slot on the current screen.
func footerBindings(screen model.Screen, mode model.Mode, k KeyMap, f FormKeyMap) []key.Binding {
	switch {
	case screen == model.ScreenAuth:
		return []key.Binding{f.NextField, f.PrevField, f.Submit, f.SwitchView, f.Cancel}
	case mode == model.ModeInsert:
		return []key.Binding{doneEditing}
	case screen == model.ScreenShopDetail:
		return []key.Binding{k.Back, k.Favorite, k.EditNote, k.Undo, k.Redo, k.Help}
	default:
		return []key.Binding{
			k.Down, k.Up, k.PrevNeighborhood, k.NextNeighborhood, k.AllShops,
			k.Favorite, k.Open, k.Undo, k.Login, k.Signup, k.Help, k.Quit,
		}
	}
}

func helpGroups(k KeyMap, f FormKeyMap) []helpGroup {
	return []helpGroup{
		{"Navigation", []key.Binding{k.Down, k.Up, k.Top, k.Bottom, k.HalfPageDown, k.HalfPageUp, k.Help, k.Quit}},
		{"Shops", []key.Binding{k.PrevNeighborhood, k.NextNeighborhood, k.AllShops, k.Favorite, k.Open, k.Undo, k.Redo, k.Login, k.Signup}},
		{"Shop detail", []key.Binding{k.EditNote, doneEditing, k.Favorite, k.Back}},
		{"Log in / Sign up", []key.Binding{f.NextField, f.PrevField, f.Submit, f.SwitchView, f.Cancel}},
	}
}

func (m Model) renderFooter(screen model.Screen) string {
	h := m.help
	h.Width = max(m.width-2, 0)
	return FooterStyle.Width(m.width).Render(h.ShortHelpView(footerBindings(screen, m.mode, m.keys, m.formKeys)))
}

func (m Model) renderFullHelp() string {
	var sections []string
	for _, g := range helpGroups(m.keys, m.formKeys) {
		sections = append(sections, LabelStyle.Render(g.title)+"\n"+m.help.FullHelpView([][]key.Binding{g.bindings}))
	}

	body := lipgloss.NewStyle().
		Width(m.width-4).
		Height(max(m.height-6, 1)).
		Padding(1, 2).
		Render(strings.Join(sections, "\n\n"))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Width(m.width).Render("Help"),
		body,
		FooterStyle.Width(m.width).Render(m.help.ShortHelpView([]key.Binding{closeHelp})),
	)
}
