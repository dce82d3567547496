package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// checkCmd validates the run configuration without opening a single
// connection: flags, script and identity files, hosts file ingestion, and
// every target specifier. Useful before pointing the tool at a fleet.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate flags, hosts file, and target specifiers without connecting",
	RunE: func(cmd *cobra.Command, args []string) error {
		targets, err := gatherTargets()
		if err != nil {
			return err
		}
		for _, t := range targets {
			_, _ = fmt.Fprintf(os.Stdout, "%s -> %s@%s\n", t.token, t.spec.User, t.spec.addr())
		}
		_, _ = fmt.Fprintf(os.Stdout, "%d target(s) OK\n", len(targets))
		return nil
	},
}
