package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/crucible/crucible"
)

// writeResult prints one query outcome:
//
//	basic: 102
//	ultra: unreachable
//	custom: aborted after 500 expansions
//
// followed by a path line when showPath is set and a path exists.
func writeResult(w io.Writer, label string, res crucible.Result, showPath bool) {
	switch res.Status {
	case crucible.Solved:
		fmt.Fprintf(w, "%s: %d\n", label, res.Cost)
	case crucible.Exhausted:
		fmt.Fprintf(w, "%s: unreachable\n", label)
	default:
		fmt.Fprintf(w, "%s: %s after %d expansions\n", label, res.Status, res.Expanded)
	}
	if !showPath || len(res.Path) == 0 {
		return
	}
	cells := make([]string, len(res.Path))
	for i, c := range res.Path {
		cells[i] = c.String()
	}
	fmt.Fprintf(w, "  path: %s\n", strings.Join(cells, " "))
}

func printUsage(w io.Writer, fs string) {
	fmt.Fprintln(w, "Usage: crucible [flags] [FILE]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Reads a grid of digit costs from FILE (or stdin) and prints the cheapest")
	fmt.Fprintln(w, "run-length constrained path cost from the origin to the destination.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs)
}
