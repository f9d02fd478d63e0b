package ui

import (
	"fmt"
	"strings"

	"roast/internal/util"
	"roast/internal/view"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize/english"
)

type shopColumn struct {
	label string
	width int
}

var shopColumns = []shopColumn{
	{label: "♥", width: 2},
	{label: "name", width: 24},
	{label: "neighborhood", width: 18},
	{label: "rating", width: 8},
	{label: "reviews", width: 9},
	{label: "address", width: 30},
	{label: "note", width: 4},
}

// ShopsModel represents the shop table on the main screen.
type ShopsModel struct {
	rows   []view.Entry
	cursor int
	offset int

	viewportHeight int
}

// NewShopsModel creates a new shops model.
func NewShopsModel(rows []view.Entry) *ShopsModel {
	m := &ShopsModel{}
	m.SetRows(rows)
	return m
}

// SetRows replaces the rows, keeping the cursor on the same shop when it is
// still listed.
func (m *ShopsModel) SetRows(rows []view.Entry) {
	selected, ok := m.Selected()
	m.rows = rows
	if ok {
		for i, r := range rows {
			if r.Shop.ID == selected.Shop.ID {
				m.cursor = i
				m.clampCursor()
				return
			}
		}
		m.cursor = 0
		m.offset = 0
	}
	m.clampCursor()
}

// Selected returns the row under the cursor.
func (m *ShopsModel) Selected() (view.Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return view.Entry{}, false
	}
	return m.rows[m.cursor], true
}

// Len returns the number of rows.
func (m *ShopsModel) Len() int { return len(m.rows) }

func (m *ShopsModel) clampCursor() {
	if len(m.rows) == 0 {
		m.cursor = 0
		m.offset = 0
		return
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.offset > m.cursor {
		m.offset = m.cursor
	}
}

func (m *ShopsModel) viewport() int {
	if m.viewportHeight <= 0 {
		return 10
	}
	return m.viewportHeight
}

// View renders the shop table.
func (m *ShopsModel) View(width, height int) string {
	if len(m.rows) == 0 {
		emptyMsg := `    No shops in this neighborhood.
    Press  0  to show all shops.`
		return EmptyStateStyle.
			Width(width).
			Height(height).
			Render(emptyMsg)
	}

	widths := make([]int, len(shopColumns))
	headers := make([]string, len(shopColumns))
	total := 0
	for i, col := range shopColumns {
		widths[i] = col.width + 2
		headers[i] = strings.ToUpper(col.label)
		total += widths[i]
	}
	// The address column absorbs spare width.
	if extra := width - total - 2; extra > 0 {
		widths[5] += extra
	}

	header := renderTableRow(headers, widths, TableHeaderStyle)
	divider := renderTableDivider(widths)

	visibleHeight := max(1, height-3)
	m.viewportHeight = visibleHeight
	if m.cursor >= m.offset+visibleHeight {
		m.offset = m.cursor - visibleHeight + 1
	}

	var rows []string
	for i := m.offset; i < len(m.rows) && i < m.offset+visibleHeight; i++ {
		e := m.rows[i]
		style := NormalRowStyle
		if i == m.cursor {
			style = SelectedRowStyle
		}

		heart := " "
		if e.IsFavorite {
			heart = "♥"
		}
		note := ""
		if strings.TrimSpace(e.Note) != "" {
			note = "✎"
		}
		cells := []string{
			heart,
			util.TruncateString(e.Shop.Name, widths[1]-2),
			util.TruncateString(e.Shop.Neighborhood, widths[2]-2),
			util.FormatRatingWithStar(e.Shop.Rating),
			util.FormatCount(e.Shop.ReviewCount),
			util.TruncateString(e.Shop.Address, widths[5]-2),
			note,
		}
		rows = append(rows, renderTableRow(cells, widths, style))
	}

	favorites := 0
	for _, e := range m.rows {
		if e.IsFavorite {
			favorites++
		}
	}
	status := StatusBarStyle.Render(fmt.Sprintf("%s  ·  row %d/%d  ·  %s",
		util.FormatShopCount(len(m.rows)), m.cursor+1, len(m.rows), english.Plural(favorites, "favorite", "")))

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		divider,
		strings.Join(rows, "\n"),
	)
	spacerHeight := max(0, height-lipgloss.Height(content)-lipgloss.Height(status))
	spacer := lipgloss.NewStyle().Height(spacerHeight).Render("")

	return lipgloss.JoinVertical(lipgloss.Left, content, spacer, status)
}

// MoveDown moves the cursor down.
func (m *ShopsModel) MoveDown() {
	if m.cursor < len(m.rows)-1 {
		m.cursor++
		if m.cursor >= m.offset+m.viewport() {
			m.offset++
		}
	}
}

// MoveUp moves the cursor up.
func (m *ShopsModel) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
		if m.cursor < m.offset {
			m.offset--
		}
	}
}

// JumpToTop jumps to the first item.
func (m *ShopsModel) JumpToTop() {
	m.cursor = 0
	m.offset = 0
}

// JumpToBottom jumps to the last item.
func (m *ShopsModel) JumpToBottom() {
	if len(m.rows) == 0 {
		return
	}
	m.cursor = len(m.rows) - 1
	if vh := m.viewport(); m.cursor >= vh {
		m.offset = m.cursor - vh + 1
	}
}

// HalfPageDown moves down half a page.
func (m *ShopsModel) HalfPageDown(pageSize int) {
	if len(m.rows) == 0 {
		return
	}
	m.cursor = min(m.cursor+max(1, pageSize/2), len(m.rows)-1)
	if vh := m.viewport(); m.cursor >= m.offset+vh {
		m.offset = m.cursor - vh + 1
	}
}

// HalfPageUp moves up half a page.
func (m *ShopsModel) HalfPageUp(pageSize int) {
	m.cursor = max(m.cursor-max(1, pageSize/2), 0)
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
}

func renderTableRow(cells []string, widths []int, style lipgloss.Style) string {
	var parts []string
	for i, cell := range cells {
		if i >= len(widths) {
			continue
		}
		parts = append(parts, style.Width(widths[i]).MaxHeight(1).Padding(0, 1).Render(cell))
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, parts...)
}

func renderTableDivider(widths []int) string {
	total := 0
	for _, w := range widths {
		total += w
	}
	return lipgloss.NewStyle().Foreground(ColorMuted).Render(strings.Repeat("─", total))
}
