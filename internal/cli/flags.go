package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/katalvlaran/crucible/gridgraph"
)

// flags holds the parsed command line.
type flags struct {
	fs *flag.FlagSet

	help          bool
	configPath    string
	preset        string
	minRun        int
	maxRun        int
	from          string
	to            string
	showPath      bool
	maxExpansions int
	wall          int
	workers       int
	verbose       bool

	input string // grid file; "" or "-" reads stdin
}

func parseFlags(args []string) (*flags, error) {
	f := &flags{fs: flag.NewFlagSet("crucible", flag.ContinueOnError)}
	fs := f.fs
	fs.BoolVarP(&f.help, "help", "h", false, "Show help")
	fs.StringVarP(&f.configPath, "config", "c", "", "Config file (JSONC)")
	fs.StringVarP(&f.preset, "preset", "p", "", "Run discipline: crucible (1..3), ultra (4..10) or both")
	fs.IntVar(&f.minRun, "min-run", 0, "Steps required in a direction before turning or stopping")
	fs.IntVar(&f.maxRun, "max-run", 0, "Most steps allowed in one direction")
	fs.StringVar(&f.from, "from", "0,0", "Origin cell as x,y")
	fs.StringVar(&f.to, "to", "", "Destination cell as x,y (default bottom-right)")
	fs.BoolVar(&f.showPath, "path", false, "Print the optimal path")
	fs.IntVar(&f.maxExpansions, "max-expansions", 0, "Give up after this many finalized states (0 = unlimited)")
	fs.IntVar(&f.wall, "wall", 0, "Treat cells with cost >= this value as walls (0 = none)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "Queries run in parallel (0 = all)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "Debug logging")
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	rest := fs.Args()
	if len(rest) > 1 {
		return nil, fmt.Errorf("%w: %s", errTooManyArgs, strings.Join(rest, " "))
	}
	if len(rest) == 1 {
		f.input = rest[0]
	}

	return f, nil
}

// apply overlays explicitly given flags onto cfg.
func (f *flags) apply(cfg Config) Config {
	if f.fs.Changed("preset") {
		cfg.Preset = f.preset
		// Bounds from the config file would shadow the preset.
		if !f.fs.Changed("min-run") && !f.fs.Changed("max-run") {
			cfg.MinRun, cfg.MaxRun = nil, nil
		}
	}
	if f.fs.Changed("min-run") {
		v := f.minRun
		cfg.MinRun = &v
	}
	if f.fs.Changed("max-run") {
		v := f.maxRun
		cfg.MaxRun = &v
	}
	if f.fs.Changed("wall") {
		cfg.WallThreshold = f.wall
	}
	if f.fs.Changed("max-expansions") {
		cfg.MaxExpansions = f.maxExpansions
	}
	if f.fs.Changed("workers") {
		cfg.Workers = f.workers
	}
	if f.showPath {
		cfg.ShowPath = true
	}
	if f.verbose {
		cfg.LogLevel = "debug"
	}

	return cfg
}

// parseCell reads "x,y".
func parseCell(s string) (gridgraph.Cell, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return gridgraph.Cell{}, fmt.Errorf("%w: %q", errBadCell, s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return gridgraph.Cell{}, fmt.Errorf("%w: %q", errBadCell, s)
	}

	return gridgraph.Cell{X: x, Y: y}, nil
}
