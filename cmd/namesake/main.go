package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/standardbeagle/namesake/internal/config"
	"github.com/standardbeagle/namesake/internal/debug"
	"github.com/standardbeagle/namesake/internal/display"
	"github.com/standardbeagle/namesake/internal/entity"
	"github.com/standardbeagle/namesake/internal/match"
	"github.com/standardbeagle/namesake/internal/names"
	"github.com/standardbeagle/namesake/internal/version"

	"github.com/urfave/cli/v2"
)

// loadConfig reads the --config file, or returns the defaults when none is given
func loadConfig(c *cli.Context) (*config.Config, error) {
	path := c.String("config")
	if path == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	return cfg, nil
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:                   "namesake",
		Usage:                  "Score whether two entity records name the same person, company or vessel",
		Version:                version.String(),
		Writer:                 out,
		ErrWriter:              os.Stderr,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Scoring config file (.kdl or .toml)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Write debug logs to stderr",
			},
			&cli.BoolFlag{
				Name:  "debug-log",
				Usage: "Write debug logs to a file in the temp directory",
			},
		},
		Before: func(c *cli.Context) error {
			switch {
			case c.Bool("debug-log"):
				path, err := debug.InitDebugLogFile()
				if err != nil {
					return err
				}
				debug.EnableDebug = "true"
				fmt.Fprintf(c.App.ErrWriter, "Debug log: %s\n", path)
			case c.Bool("debug"):
				debug.EnableDebug = "true"
				debug.SetDebugOutput(os.Stderr)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "match",
				Usage:     "Compare two names or two JSON entities",
				ArgsUsage: "<query> <result>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "schema",
						Aliases: []string{"s"},
						Usage:   "Schema for plain-text names",
						Value:   entity.SchemaPerson,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output as JSON",
					},
				},
				Action: matchCommand,
			},
			{
				Name:      "names",
				Usage:     "Show how names are analyzed into parts and symbols",
				ArgsUsage: "<name or JSON entity>...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "schema",
						Aliases: []string{"s"},
						Usage:   "Schema for plain-text names",
						Value:   entity.SchemaPerson,
					},
					&cli.BoolFlag{
						Name:  "query",
						Usage: "Analyze as the query side (adds initials)",
						Value: true,
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format: text, compact or json",
						Value:   "text",
					},
					&cli.BoolFlag{
						Name:  "spans",
						Usage: "Show the symbols covering each part",
						Value: true,
					},
				},
				Action: namesCommand,
			},
			{
				Name:      "batch",
				Usage:     "Score query entities against candidate entity files",
				ArgsUsage: "<candidate glob>...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "queries",
						Aliases:  []string{"q"},
						Usage:    "JSON lines file of query entities",
						Required: true,
					},
					&cli.Float64Flag{
						Name:    "threshold",
						Aliases: []string{"t"},
						Usage:   "Only print results scoring at least this much",
						Value:   0.7,
					},
					&cli.IntFlag{
						Name:    "workers",
						Aliases: []string{"w"},
						Usage:   "Parallel comparisons (overrides config, 0 = config or NumCPU)",
					},
				},
				Action: batchCommand,
			},
			{
				Name:  "config",
				Usage: "Configuration management",
				Subcommands: []*cli.Command{
					{
						Name:   "show",
						Usage:  "Show the effective configuration",
						Action: configShowCommand,
					},
					{
						Name:      "validate",
						Usage:     "Validate a configuration file",
						ArgsUsage: "<file>",
						Action:    configValidateCommand,
					},
				},
			},
		},
	}
}

func main() {
	defer func() {
		_ = debug.CloseDebugLog()
	}()

	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// parseEntityArg accepts either a JSON entity or a plain name of the given schema
func parseEntityArg(arg, schema string) (*entity.Proxy, error) {
	trimmed := strings.TrimSpace(arg)
	if strings.HasPrefix(trimmed, "{") {
		return entity.DecodeProxyAt("argument", 0, []byte(trimmed))
	}
	if _, ok := entity.LookupSchema(schema); !ok {
		return nil, fmt.Errorf("unknown schema %q", schema)
	}
	return entity.NewProxy(schema).Add("name", trimmed), nil
}

func matchCommand(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("match requires exactly two arguments, got %d", c.NArg())
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	query, err := parseEntityArg(c.Args().Get(0), c.String("schema"))
	if err != nil {
		return err
	}
	result, err := parseEntityArg(c.Args().Get(1), c.String("schema"))
	if err != nil {
		return err
	}

	res := match.NameMatch(query, result, &cfg.Scoring)
	if c.Bool("json") {
		enc := json.NewEncoder(c.App.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	fmt.Fprintf(c.App.Writer, "%.4f %s\n", res.Score, res.Detail)
	return nil
}

func namesCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("names requires at least one argument")
	}
	formatter := display.NewNameFormatter(display.FormatterOptions{
		Format:    c.String("format"),
		ShowSpans: c.Bool("spans"),
	})
	for _, arg := range c.Args().Slice() {
		e, err := parseEntityArg(arg, c.String("schema"))
		if err != nil {
			return err
		}
		tag := entity.TypeTag(e.Schema())
		analyzed := names.EntityNames(tag, e, c.Bool("query"))
		if len(analyzed) == 0 {
			fmt.Fprintf(c.App.Writer, "%s (%s): no names\n", arg, tag)
			continue
		}
		for _, n := range analyzed {
			fmt.Fprintln(c.App.Writer, strings.TrimRight(formatter.Format(n), "\n"))
		}
	}
	return nil
}

func configShowCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, "scoring:")
	for _, key := range config.Keys() {
		v, _ := cfg.Scoring.Get(key)
		fmt.Fprintf(c.App.Writer, "  %-20s %g\n", key, v)
	}
	fmt.Fprintln(c.App.Writer, "engine:")
	fmt.Fprintf(c.App.Writer, "  %-20s %d\n", "cache_size", cfg.Engine.CacheSize)
	fmt.Fprintf(c.App.Writer, "  %-20s %d\n", "workers", cfg.Engine.Workers)
	return nil
}

func configValidateCommand(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		path = c.String("config")
	}
	if path == "" {
		return fmt.Errorf("no configuration file given")
	}
	if _, err := config.Load(path); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	fmt.Fprintf(c.App.Writer, "Configuration file is valid: %s\n", path)
	return nil
}
