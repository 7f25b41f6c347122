// Package cli implements the crucible command: load a digit grid, run the
// configured searches and report the results.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/crucible/crucible"
	"github.com/katalvlaran/crucible/gridgraph"
)

// job is one labelled query.
type job struct {
	label string
	query crucible.Query
}

// Run is the main entry point. Returns exit code.
func Run(ctx context.Context, in io.Reader, out, errOut io.Writer, args []string, env map[string]string) int {
	if len(args) == 0 {
		args = []string{"crucible"}
	}

	f, err := parseFlags(args[1:])
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}
	if f.help {
		printUsage(out, f.fs.FlagUsages())

		return 0
	}

	workDir, err := os.Getwd()
	if err != nil {
		fprintln(errOut, "error: cannot get working directory:", err)

		return 1
	}

	cfg, source, err := LoadConfig(workDir, f.configPath, env)
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}
	cfg = f.apply(cfg)
	if err := validateConfig(cfg); err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	level, _ := parseLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))
	if source != "" {
		logger.Debug("config loaded", slog.String("path", source))
	}

	g, err := loadGrid(in, f.input, cfg)
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}
	logger.Debug("grid loaded", slog.Int("width", g.Width), slog.Int("height", g.Height))

	jobs, err := buildJobs(g, f, cfg)
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	queries := make([]crucible.Query, len(jobs))
	for i, j := range jobs {
		queries[i] = j.query
	}
	opts := []crucible.Option{
		crucible.WithMaxExpansions(cfg.MaxExpansions),
		crucible.WithLogger(logger),
	}
	if cfg.ShowPath {
		opts = append(opts, crucible.WithReturnPath())
	}

	results, err := crucible.SearchAll(ctx, g, queries, cfg.Workers, opts...)
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}
	for i, res := range results {
		writeResult(out, jobs[i].label, res, cfg.ShowPath)
	}

	return 0
}

// loadGrid parses the grid from the named file, or from in when name is "" or "-".
func loadGrid(in io.Reader, name string, cfg Config) (*gridgraph.GridGraph, error) {
	opts := gridgraph.DefaultGridOptions()
	if cfg.WallThreshold != 0 {
		opts.WallThreshold = cfg.WallThreshold
	}
	if name == "" || name == "-" {
		return gridgraph.Parse(in, opts)
	}

	file, err := os.Open(name) //nolint:gosec // path is intentionally user-controlled
	if err != nil {
		return nil, fmt.Errorf("cannot open grid: %w", err)
	}
	defer file.Close()

	g, err := gridgraph.Parse(file, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return g, nil
}

// buildJobs turns the preset or explicit run bounds into labelled queries.
// Explicit bounds win over the preset; a missing bound falls back to the
// basic discipline.
func buildJobs(g *gridgraph.GridGraph, f *flags, cfg Config) ([]job, error) {
	origin, err := parseCell(f.from)
	if err != nil {
		return nil, err
	}
	dest := g.Corner()
	if f.to != "" {
		if dest, err = parseCell(f.to); err != nil {
			return nil, err
		}
	}
	q := crucible.Query{Origin: origin, Destination: dest}

	if cfg.MinRun != nil || cfg.MaxRun != nil {
		q.MinRun, q.MaxRun = 1, 3
		if cfg.MinRun != nil {
			q.MinRun = *cfg.MinRun
		}
		if cfg.MaxRun != nil {
			q.MaxRun = *cfg.MaxRun
		}

		return []job{{label: "custom", query: q}}, nil
	}

	basic, ultra := q, q
	basic.MinRun, basic.MaxRun = 1, 3
	ultra.MinRun, ultra.MaxRun = 4, 10
	switch cfg.Preset {
	case PresetCrucible:
		return []job{{"basic", basic}}, nil
	case PresetUltra:
		return []job{{"ultra", ultra}}, nil
	default:
		return []job{{"basic", basic}, {"ultra", ultra}}, nil
	}
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}
