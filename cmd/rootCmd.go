package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ros-deploy",
	Short: "Deploy a RouterOS configuration script to one or more devices",
	Long: "Pushes a RouterOS script to each target over SCP, then imports it and removes the uploaded copy in a " +
		"single SSH invocation. Targets come from --host and/or a hosts list file; the run fails if any target fails.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		initLogging(cfgVerbose)
		if cfgNoColor {
			color.NoColor = true
		}

		targets, err := gatherTargets()
		if err != nil {
			return err
		}

		if info := describeAgentKey(); info != "" {
			_, _ = fmt.Fprintf(os.Stderr, "ssh-agent key: %s\n", info)
		}

		results := runDeployments(targets)
		sum := summarize(results)

		if cfgReport != "" {
			if err := writeReport(cfgReport, cfgScript, results); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
		}

		printSummary(os.Stdout, sum)
		if len(sum.Failed) > 0 {
			return errDeployFailed
		}
		return nil
	},
}

// target pairs the original token with its parsed form. The token is kept
// because failures are reported against what the operator actually wrote.
type target struct {
	token string
	spec  hostSpec
}

// gatherTargets validates the configuration and builds the ordered target
// list: the single --host target first, then every hosts-file entry in file
// order. Any validation or parse failure aborts before a device is touched.
func gatherTargets() ([]target, error) {
	if cfgScript == "" {
		return nil, errors.New("--script is required (path to the RouterOS script)")
	}
	if _, err := os.Stat(cfgScript); err != nil {
		return nil, fmt.Errorf("script file: %w", err)
	}
	if cfgHost == "" && cfgHostsFile == "" {
		return nil, errors.New("--host or --hosts is required")
	}
	if cfgTimeout <= 0 {
		return nil, fmt.Errorf("--timeout must be a positive integer, got %d", cfgTimeout)
	}
	if cfgParallel < 1 {
		return nil, fmt.Errorf("--parallel must be at least 1, got %d", cfgParallel)
	}
	if cfgIdentity != "" {
		if _, err := os.Stat(cfgIdentity); err != nil {
			return nil, fmt.Errorf("identity file: %w", err)
		}
	}

	var targets []target
	if cfgHost != "" {
		spec, err := parseHostSpec(cfgHost)
		if err != nil {
			return nil, err
		}
		targets = append(targets, target{cfgHost, spec})
	}
	if cfgHostsFile != "" {
		tokens, err := loadHosts(cfgHostsFile)
		if err != nil {
			return nil, err
		}
		for _, tok := range tokens {
			spec, err := parseHostSpec(tok)
			if err != nil {
				return nil, err
			}
			targets = append(targets, target{tok, spec})
		}
	}
	return targets, nil
}

// runDeployments deploys to every target and returns the results indexed by
// target position, so the summary stays in original order even when the
// deployments themselves run concurrently. One host failing never stops the
// others.
func runDeployments(targets []target) []hostResult {
	connTimeout := time.Duration(cfgTimeout) * time.Second
	results := make([]hostResult, len(targets))

	run := func(i int) {
		t := targets[i]
		_, _ = fmt.Fprintf(os.Stderr, "[%d/%d] deploying to %s\n", i+1, len(targets), t.token)
		results[i] = deployHostFunc(t.spec, t.token, cfgScript, connTimeout, cfgCmdTimeout, cfgIdentity, cfgKnownHosts)
		if r := results[i]; r.Status != statusSuccess {
			_, _ = fmt.Fprintf(os.Stderr, "[%d/%d] %s: %s: %v\n", i+1, len(targets), t.token, r.Status, r.Err)
		}
	}

	if cfgParallel <= 1 {
		for i := range targets {
			run(i)
		}
		return results
	}

	p := newPool(cfgParallel)
	for i := range targets {
		i := i
		p.submit(func() { run(i) })
	}
	p.wait()
	return results
}
