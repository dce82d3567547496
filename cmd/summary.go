package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// printSummary writes the aggregate deployment summary: totals, then the
// failed tokens in the order they were attempted.
func printSummary(w io.Writer, s summary) {
	green := color.New(color.FgGreen).SprintfFunc()
	red := color.New(color.FgRed).SprintfFunc()

	failed := len(s.Failed)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", 40))
	_, _ = fmt.Fprintf(w, "Targets:   %d\n", s.Total)
	_, _ = fmt.Fprintf(w, "Succeeded: %s\n", green("%d", s.Succeeded))
	if failed > 0 {
		_, _ = fmt.Fprintf(w, "Failed:    %s\n", red("%d", failed))
		_, _ = fmt.Fprintln(w, "Failed hosts:")
		for _, tok := range s.Failed {
			_, _ = fmt.Fprintf(w, "  - %s\n", red("%s", tok))
		}
		return
	}
	_, _ = fmt.Fprintf(w, "Failed:    %d\n", failed)
}
