package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/tqa/internal/config"
	"github.com/standardbeagle/tqa/internal/glossary"
	"github.com/standardbeagle/tqa/internal/model"
	"github.com/standardbeagle/tqa/internal/tqa"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	app := &cli.App{
		Name:    "tqa",
		Usage:   "bilingual translation quality assurance",
		Version: Version,
		Commands: []*cli.Command{
			lintCommand(),
			glossaryCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("tqa: %v", err)
	}
}

func lintCommand() *cli.Command {
	return &cli.Command{
		Name:      "lint",
		Usage:     "run QA rules against one or more translation bundles",
		ArgsUsage: "<pattern>...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "project root to search for .tqa.kdl / .tqa.yaml",
				Value:   ".",
			},
			&cli.StringFlag{
				Name:  "glossary",
				Usage: "glossary file overriding the config's glossary entry",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "output format: text or json",
				Value: "text",
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "exit with status 1 when any error-severity issue is found",
				Value: true,
			},
		},
		Action: lintAction,
	}
}

func lintAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("lint requires at least one file pattern", 1)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	files, err := expandPatterns(c.Args().Slice())
	if err != nil {
		return cli.Exit(err, 1)
	}
	if len(files) == 0 {
		return cli.Exit("no files matched the given patterns", 1)
	}

	results := make([]*model.QAResult, 0, len(files))
	hasError := false

	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return cli.Exit(fmt.Errorf("reading %s: %w", path, err), 1)
		}

		file, err := tqa.Parse(path, data)
		if err != nil {
			return cli.Exit(err, 1)
		}

		result, err := tqa.Analyze(file, cfg)
		if err != nil {
			return cli.Exit(err, 1)
		}
		if result.Stats.Errors > 0 {
			hasError = true
		}
		results = append(results, result)
	}

	if err := printResults(c, results); err != nil {
		return cli.Exit(err, 1)
	}

	if hasError && c.Bool("fail-on-error") {
		return cli.Exit("", 1)
	}
	return nil
}

func loadConfig(c *cli.Context) (*config.QAConfig, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	glossaryPath := c.String("glossary")
	if glossaryPath == "" {
		glossaryPath = cfg.GlossaryPath
	}
	if glossaryPath != "" {
		terms, err := loadGlossaryFile(glossaryPath)
		if err != nil {
			return nil, err
		}
		cfg.Glossary = terms
	}

	return cfg, nil
}

func loadGlossaryFile(path string) ([]model.GlossaryTerm, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return glossary.LoadCSV(path, data)
	case ".tsv":
		return glossary.LoadTSV(path, data)
	case ".tmx":
		return glossary.LoadTMX(path, data)
	case ".xlsx":
		return glossary.LoadXLSX(path, data)
	default:
		return nil, fmt.Errorf("unsupported glossary extension for %s", path)
	}
}

// expandPatterns resolves shell-style glob patterns (including ** via
// doublestar) against the working directory, deduplicating matches.
func expandPatterns(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			if info, statErr := os.Stat(pattern); statErr == nil && !info.IsDir() {
				matches = []string{pattern}
			}
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	return out, nil
}

func printResults(c *cli.Context, results []*model.QAResult) error {
	switch c.String("format") {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	default:
		return printResultsText(results)
	}
}

func printResultsText(results []*model.QAResult) error {
	for _, result := range results {
		fmt.Printf("%s: %d units, %d issues (%d errors, %d warnings, %d info)\n",
			result.Filename, result.TotalUnits, result.Stats.Total,
			result.Stats.Errors, result.Stats.Warnings, result.Stats.Info)
		for _, issue := range result.Issues {
			fmt.Printf("  [%s] %s %s: %s\n", issue.Severity, issue.UnitKey, issue.Type, issue.Message)
		}
	}
	return nil
}

func glossaryCommand() *cli.Command {
	return &cli.Command{
		Name:      "glossary",
		Usage:     "load and validate a glossary file",
		ArgsUsage: "<path>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("glossary requires exactly one file path", 1)
			}
			terms, err := loadGlossaryFile(c.Args().First())
			if err != nil {
				return cli.Exit(err, 1)
			}
			fmt.Printf("%s: %d glossary terms\n", c.Args().First(), len(terms))
			return nil
		},
	}
}
