package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"roast/internal/util"
	"roast/internal/view"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/urfave/cli/v3"
)

var errMissingShopID = errors.New("missing shop id")

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
}

func listShops(cmd *cli.Command, a *app, out io.Writer) error {
	var filter *string
	if cmd.IsSet("neighborhood") {
		n := cmd.String("neighborhood")
		filter = &n
	}
	a.session.OnSelectNeighborhood(filter)

	var entries []view.Entry
	for _, e := range a.session.Entries() {
		if cmd.Bool("favorites") && !e.IsFavorite {
			continue
		}
		entries = append(entries, e)
	}
	if len(entries) == 0 {
		_, err := fmt.Fprintln(out, "No shops found.")
		return err
	}

	t := newTable("", "ID", "NAME", "NEIGHBORHOOD", "RATING", "REVIEWS", "NOTE")
	for _, e := range entries {
		heart := ""
		if e.IsFavorite {
			heart = "♥"
		}
		t.Row(
			heart,
			e.Shop.ID,
			e.Shop.Name,
			e.Shop.Neighborhood,
			util.FormatRating(e.Shop.Rating),
			util.FormatCount(e.Shop.ReviewCount),
			util.TruncateString(strings.ReplaceAll(e.Note, "\n", " "), 40),
		)
	}
	_, err := fmt.Fprintln(out, t.Render())
	return err
}

func listNeighborhoods(_ *cli.Command, a *app, out io.Writer) error {
	t := newTable("NEIGHBORHOOD", "SHOPS")
	t.Row("All shops", util.FormatCount(len(a.session.Shops())))
	for _, n := range a.session.Neighborhoods() {
		t.Row(n.Name, util.FormatCount(n.Count))
	}
	_, err := fmt.Fprintln(out, t.Render())
	return err
}

func shopLabel(a *app, id string) string {
	if shop, ok := view.FindShop(a.session.Shops(), id); ok {
		return shop.Name
	}
	return id + " (not in catalog)"
}

func toggleFavorite(cmd *cli.Command, a *app, out io.Writer) error {
	id := cmd.Args().First()
	if id == "" {
		return fmt.Errorf("favorite: %w", errMissingShopID)
	}

	label := shopLabel(a, id)
	if a.session.OnToggleFavorite(id) {
		_, err := fmt.Fprintf(out, "♥ %s added to favorites\n", label)
		return err
	}
	_, err := fmt.Fprintf(out, "%s removed from favorites\n", label)
	return err
}

func editNote(cmd *cli.Command, a *app, out io.Writer) error {
	id := cmd.Args().First()
	if id == "" {
		return fmt.Errorf("note: %w", errMissingShopID)
	}

	if cmd.Args().Len() == 1 {
		note := a.session.Notes().Get(id)
		if note == "" {
			_, err := fmt.Fprintf(out, "No note for %s\n", shopLabel(a, id))
			return err
		}
		_, err := fmt.Fprintln(out, note)
		return err
	}

	text := strings.Join(cmd.Args().Tail(), " ")
	a.session.OnNoteChange(id, text)
	_, err := fmt.Fprintf(out, "Saved note for %s\n", shopLabel(a, id))
	return err
}
