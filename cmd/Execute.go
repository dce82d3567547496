package cmd

import (
	"errors"
	"fmt"
	"os"
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errDeployFailed) {
			// The summary has already been printed; just flag the run.
			_, _ = fmt.Fprintln(os.Stderr, err)
			exitFunc(1)
			return
		}
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		// Usage and configuration errors happen before any device is
		// touched; show the usage text so the operator can correct the
		// invocation. Deployment failures above deliberately don't.
		_, _ = fmt.Fprint(os.Stderr, rootCmd.UsageString())
		exitFunc(1)
		return
	}
}
