package ui

import (
	"fmt"
	"strings"

	"roast/internal/model"
	"roast/internal/util"
)

const sidebarWidth = 28

// neighborhoodIndex returns the menu position of selected; -1 means all shops.
func neighborhoodIndex(menu []model.NeighborhoodCount, selected *string) int {
	if selected == nil {
		return -1
	}
	for i, n := range menu {
		if n.Name == *selected {
			return i
		}
	}
	return -1
}

// stepNeighborhood moves through [all, menu...] by delta, wrapping around.
func stepNeighborhood(menu []model.NeighborhoodCount, selected *string, delta int) *string {
	n := len(menu) + 1
	pos := (neighborhoodIndex(menu, selected) + 1 + delta) % n
	if pos < 0 {
		pos += n
	}
	if pos == 0 {
		return nil
	}
	name := menu[pos-1].Name
	return &name
}

func renderSidebar(menu []model.NeighborhoodCount, selected *string, total, height int) string {
	active := neighborhoodIndex(menu, selected)

	lines := []string{LabelStyle.Render("Neighborhoods"), ""}
	lines = append(lines, sidebarLine("All shops", total, active == -1))
	for i, n := range menu {
		lines = append(lines, sidebarLine(n.Name, n.Count, i == active))
	}

	return SidebarStyle.
		Width(sidebarWidth).
		Height(height).
		Render(strings.Join(lines, "\n"))
}

func sidebarLine(name string, count int, active bool) string {
	label := util.TruncateString(name, sidebarWidth-9)
	line := fmt.Sprintf("%-*s %5s", sidebarWidth-9, label, util.FormatCount(count))
	if active {
		return SidebarActiveStyle.Render("▸ " + line)
	}
	return NormalRowStyle.Render("  " + line)
}
