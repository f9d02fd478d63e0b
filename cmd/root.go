package cmd

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"roast/internal/config"
	"roast/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
)

// NewCommand builds the roast command tree. Command output goes to out.
func NewCommand(version string, out io.Writer) *cli.Command {
	defaultConfig := "config.yaml"
	if dir, err := config.DefaultDir(); err == nil {
		defaultConfig = filepath.Join(dir, "config.yaml")
	}

	return &cli.Command{
		Name:    "roast",
		Usage:   "Browse coffee shops by neighborhood, keep favorites and notes",
		Version: version,
		Action:  runTUI,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				Value:       defaultConfig,
				DefaultText: "~/.roast/config.yaml",
				Sources:     cli.EnvVars("ROAST_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "db",
				Usage:   "Path to SQLite database file (default: ~/.roast/roast.db)",
				Sources: cli.EnvVars("ROAST_DB"),
			},
			&cli.StringSliceFlag{
				Name:  "catalog",
				Usage: "Catalog file glob, e.g. 'shops/**/*.yaml' (repeatable; default: built-in Atlanta catalog)",
			},
			&cli.BoolFlag{
				Name:  "ephemeral",
				Usage: "Keep favorites and notes in memory only",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn, error",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Print shops with favorite and note markers",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "neighborhood",
						Aliases: []string{"n"},
						Usage:   "Only shops in this neighborhood (exact match)",
					},
					&cli.BoolFlag{
						Name:    "favorites",
						Aliases: []string{"f"},
						Usage:   "Only favorite shops",
					},
				},
				Action: withApp(out, listShops),
			},
			{
				Name:   "neighborhoods",
				Usage:  "Print neighborhoods with shop counts",
				Action: withApp(out, listNeighborhoods),
			},
			{
				Name:      "favorite",
				Usage:     "Toggle a shop as favorite",
				ArgsUsage: "<shop-id>",
				Action:    withApp(out, toggleFavorite),
			},
			{
				Name:      "note",
				Usage:     "Show or set the note for a shop",
				ArgsUsage: "<shop-id> [text...]",
				Action:    withApp(out, editNote),
			},
		},
	}
}

func runTUI(ctx context.Context, cmd *cli.Command) error {
	a, err := setup(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	p := tea.NewProgram(ui.New(a.session, a.logger), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	a.logger.Info("session ended")
	return nil
}

func withApp(out io.Writer, fn func(*cli.Command, *app, io.Writer) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		a, err := setup(ctx, cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		return fn(cmd, a, out)
	}
}
