package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/urfave/cli/v3"

	"github.com/arjunmahishi/tshl/highlight"
	"github.com/arjunmahishi/tshl/language"
	"github.com/arjunmahishi/tshl/scanner"
	"github.com/arjunmahishi/tshl/theme"
)

type languageInfo struct {
	Name         string   `json:"name"`
	PathSuffixes []string `json:"path_suffixes"`
	Grammar      string   `json:"grammar"`
	Captures     []string `json:"captures"`
}

func languagesCommand() *cli.Command {
	return &cli.Command{
		Name:   "languages",
		Usage:  "list registered languages in selection order",
		Flags:  commonFlags(),
		Action: runLanguages,
	}
}

func runLanguages(_ context.Context, cmd *cli.Command) error {
	registry, err := loadRegistry(cmd)
	if err != nil {
		return err
	}

	infos := make([]languageInfo, 0)
	for _, l := range registry.Languages() {
		cfg := l.Config()
		infos = append(infos, languageInfo{
			Name:         cfg.Name,
			PathSuffixes: cfg.PathSuffixes,
			Grammar:      cfg.Grammar,
			Captures:     l.HighlightQuery().CaptureNames(),
		})
	}
	return writeJSON(cmd, infos)
}

type selection struct {
	Path     string  `json:"path"`
	Language *string `json:"language"`
}

func selectCommand() *cli.Command {
	return &cli.Command{
		Name:      "select",
		Usage:     "show which language applies to each path",
		ArgsUsage: "<path>...",
		Flags:     commonFlags(),
		Action:    runSelect,
	}
}

func runSelect(_ context.Context, cmd *cli.Command) error {
	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		return errors.New("at least one path is required")
	}

	registry, err := loadRegistry(cmd)
	if err != nil {
		return err
	}

	out := make([]selection, 0, len(paths))
	for _, p := range paths {
		s := selection{Path: p}
		if l := registry.Select(p); l != nil {
			name := l.Name()
			s.Language = &name
		}
		out = append(out, s)
	}
	return writeJSON(cmd, out)
}

func languageFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "language",
		Aliases:  []string{"l"},
		Usage:    "language name (required)",
		Required: true,
	}
}

func lookupLanguage(registry *language.Registry, name string) (*language.Language, error) {
	l := registry.Get(name)
	if l == nil {
		return nil, fmt.Errorf("%s language not registered", name)
	}
	return l, nil
}

func capturesCommand() *cli.Command {
	return &cli.Command{
		Name:   "captures",
		Usage:  "list the capture names of a language's highlight query",
		Flags:  append(commonFlags(), languageFlag()),
		Action: runCaptures,
	}
}

func runCaptures(_ context.Context, cmd *cli.Command) error {
	registry, err := loadRegistry(cmd)
	if err != nil {
		return err
	}
	l, err := lookupLanguage(registry, cmd.String("language"))
	if err != nil {
		return err
	}
	return writeJSON(cmd, l.HighlightQuery().CaptureNames())
}

func themeMapCommand() *cli.Command {
	return &cli.Command{
		Name:   "theme-map",
		Usage:  "show the capture → style mapping for a language",
		Flags:  append(commonFlags(), languageFlag()),
		Action: runThemeMap,
	}
}

func runThemeMap(_ context.Context, cmd *cli.Command) error {
	registry, err := loadRegistry(cmd)
	if err != nil {
		return err
	}
	l, err := lookupLanguage(registry, cmd.String("language"))
	if err != nil {
		return err
	}
	return writeJSON(cmd, l.ThemeMapping())
}

func highlightCommand() *cli.Command {
	return &cli.Command{
		Name:  "highlight",
		Usage: "highlight a file",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "file to highlight (required)",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print spans as JSON instead of styled text",
			},
		),
		Action: runHighlight,
	}
}

func runHighlight(ctx context.Context, cmd *cli.Command) error {
	registry, err := loadRegistry(cmd)
	if err != nil {
		return err
	}

	file := cmd.String("file")
	l := registry.Select(file)
	if l == nil {
		return fmt.Errorf("no language for %s", file)
	}

	source, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	spans, err := highlight.Spans(ctx, l, source)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return writeJSON(cmd, spans)
	}
	return highlight.Render(os.Stdout, source, spans, l.ThemeMapping())
}

func scanCommand() *cli.Command {
	return &cli.Command{
		Name:  "scan",
		Usage: "classify and highlight every recognised file under a path",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:  "path",
				Value: ".",
				Usage: "root path to scan",
			},
			&cli.IntFlag{
				Name:    "jobs",
				Aliases: []string{"j"},
				Value:   runtime.NumCPU(),
				Usage:   "number of parallel workers",
			},
			&cli.Int64Flag{
				Name:  "max-bytes",
				Value: 2 * 1024 * 1024,
				Usage: "skip files larger than this",
			},
		),
		Action: runScan,
	}
}

func runScan(ctx context.Context, cmd *cli.Command) error {
	registry, err := loadRegistry(cmd)
	if err != nil {
		return err
	}

	sc := scanner.New(scanner.Config{
		Root:     cmd.String("path"),
		Registry: registry,
		MaxBytes: cmd.Int64("max-bytes"),
	})
	files, err := sc.Collect()
	if err != nil {
		return err
	}

	return writeJSON(cmd, scanner.Run(ctx, registry, files, cmd.Int("jobs")))
}

func themesCommand() *cli.Command {
	return &cli.Command{
		Name:  "themes",
		Usage: "list available themes",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "compact",
				Usage: "minimize output",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return writeJSON(cmd, theme.Names())
		},
	}
}
