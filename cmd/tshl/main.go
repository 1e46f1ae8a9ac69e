package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/arjunmahishi/tshl/language"
	"github.com/arjunmahishi/tshl/output"
	"github.com/arjunmahishi/tshl/theme"
)

func main() {
	app := &cli.Command{
		Name:  "tshl",
		Usage: "tree-sitter language registry and syntax highlighter",
		Commands: []*cli.Command{
			languagesCommand(),
			selectCommand(),
			capturesCommand(),
			themeMapCommand(),
			highlightCommand(),
			scanCommand(),
			themesCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		output.WriteError(os.Stderr, err)
		os.Exit(1)
	}
}

// commonFlags returns the flags every registry-backed command accepts.
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "theme",
			Value: theme.DefaultName,
			Usage: "built-in theme or chroma style name",
		},
		&cli.StringFlag{
			Name:  "theme-file",
			Usage: "path to a TOML theme file (overrides --theme)",
		},
		&cli.BoolFlag{
			Name:  "compact",
			Usage: "minimize output",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "log debug output to stderr",
		},
	}
}

func newLogger(cmd *cli.Command) *slog.Logger {
	level := slog.LevelWarn
	if cmd.Bool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadRegistry builds the registry from the embedded bundle and applies the
// requested theme.
func loadRegistry(cmd *cli.Command) (*language.Registry, error) {
	registry, err := language.Load(language.WithLogger(newLogger(cmd)))
	if err != nil {
		return nil, err
	}

	th, err := resolveTheme(cmd.String("theme"), cmd.String("theme-file"))
	if err != nil {
		return nil, err
	}
	registry.SetTheme(th)
	return registry, nil
}

func resolveTheme(name, filePath string) (*theme.Theme, error) {
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, err
		}
		return theme.Parse(data)
	}
	if name == "" {
		return nil, errors.New("--theme or --theme-file is required")
	}
	return theme.Named(name)
}

func writeJSON(cmd *cli.Command, v any) error {
	return output.New(output.Config{Compact: cmd.Bool("compact")}).Write(v)
}
