package ui

import (
	"strings"
	"time"

	"roast/internal/util"
	"roast/internal/view"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ShopDetailModel represents the shop detail screen and its notes editor.
type ShopDetailModel struct {
	entry view.Entry
	today time.Weekday
	notes textarea.Model

	// note text when editing started, for undo
	editStart string
}

// NewShopDetailModel creates a detail model for entry.
func NewShopDetailModel(entry view.Entry, today time.Weekday) *ShopDetailModel {
	ta := textarea.New()
	ta.Placeholder = "Add your notes about this shop..."
	ta.ShowLineNumbers = false
	// Notes written through the CLI have no length limit; the editor must not trim them.
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetHeight(4)
	ta.SetValue(entry.Note)
	ta.Blur()

	return &ShopDetailModel{
		entry: entry,
		today: today,
		notes: ta,
	}
}

// ShopID returns the id of the shop being shown.
func (m *ShopDetailModel) ShopID() string { return m.entry.Shop.ID }

// SetEntry refreshes the favorite flag and note after a session change.
// The editor contents are replaced only while it is not being edited.
func (m *ShopDetailModel) SetEntry(entry view.Entry) {
	m.entry = entry
	if !m.Editing() {
		m.notes.SetValue(entry.Note)
	}
}

// Editing reports whether the notes editor has focus.
func (m *ShopDetailModel) Editing() bool { return m.notes.Focused() }

// StartEditing focuses the notes editor.
func (m *ShopDetailModel) StartEditing() tea.Cmd {
	m.editStart = m.notes.Value()
	return m.notes.Focus()
}

// StopEditing blurs the editor and returns the note text from before and after
// the edit.
func (m *ShopDetailModel) StopEditing() (before, after string) {
	m.notes.Blur()
	return m.editStart, m.notes.Value()
}

// Note returns the current editor contents.
func (m *ShopDetailModel) Note() string { return m.notes.Value() }

// Update forwards input to the notes editor.
func (m ShopDetailModel) Update(msg tea.Msg) (ShopDetailModel, tea.Cmd) {
	var cmd tea.Cmd
	m.notes, cmd = m.notes.Update(msg)
	return m, cmd
}

// View renders the shop detail.
func (m *ShopDetailModel) View(width, height int) string {
	s := m.entry.Shop

	shortcuts := HelpDescStyle.Render("f favorite  i edit note  esc back")
	if m.Editing() {
		shortcuts = HelpDescStyle.Render("esc done editing")
	}
	header := lipgloss.NewStyle().
		Width(width - 4).
		Align(lipgloss.Right).
		Render(shortcuts)

	var sections []string

	title := LabelStyle.Render(s.Name)
	if m.entry.IsFavorite {
		title += " " + FavoriteStyle.Render("♥ favorite")
	}
	rating := lipgloss.NewStyle().Foreground(ColorYellow).Render(util.FormatRatingStars(s.Rating)) +
		" " + NormalRowStyle.Render(util.FormatRating(s.Rating)) +
		"  " + HelpDescStyle.Render("("+util.FormatReviewCount(s.ReviewCount)+")")
	sections = append(sections, title+"\n"+rating)

	var fields []string
	fields = append(fields, renderField("Neighborhood", s.Neighborhood))
	fields = append(fields, renderField("Address", s.Address))
	if link, ok := view.WebsiteLink(s.Website); ok {
		fields = append(fields, renderField("Website", link.Host))
	}
	if s.DrinkOfTheDay != nil {
		fields = append(fields, renderField("Drink of the day", util.FormatOptional(s.DrinkOfTheDay)))
	}
	if s.HasMatcha != nil {
		fields = append(fields, renderField("Matcha", util.FormatMatcha(s.HasMatcha)))
	}
	if hours, ok := view.TodayHours(s.Hours, m.today); ok {
		fields = append(fields, renderField("Open today", hours))
	}
	sections = append(sections, strings.Join(fields, "\n"))

	if s.Description != nil && strings.TrimSpace(*s.Description) != "" {
		sections = append(sections, lipgloss.NewStyle().Width(width-12).Render(NormalRowStyle.Render(*s.Description)))
	}

	if len(s.Hours) > 0 {
		sections = append(sections, LabelStyle.Render("Hours")+"\n"+m.renderSchedule())
	}

	m.notes.SetWidth(max(20, width-12))
	notesStyle := BorderStyle
	if m.notes.Focused() {
		notesStyle = ActiveBorderStyle
	}
	sections = append(sections, LabelStyle.Render("My notes")+"\n"+notesStyle.Render(m.notes.View()))

	info := PanelStyle.
		Width(width - 4).
		Render(strings.Join(sections, "\n\n"))

	return lipgloss.JoinVertical(lipgloss.Left, header, info)
}

func (m *ShopDetailModel) renderSchedule() string {
	var lines []string
	for _, d := range view.Schedule(m.entry.Shop.Hours, m.today) {
		hours := d.Hours
		if hours == "" {
			hours = "—"
		}
		line := lipgloss.NewStyle().Width(12).Render(d.Day.String()) + hours
		if d.Today {
			lines = append(lines, BreadcrumbActiveStyle.Render("▸ "+line))
		} else {
			lines = append(lines, HelpDescStyle.Render("  "+line))
		}
	}
	return strings.Join(lines, "\n")
}

func renderField(label, value string) string {
	if value == "" {
		value = "—"
	}
	return LabelStyle.Render(label+":") + " " + NormalRowStyle.Render(value)
}
