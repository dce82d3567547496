package cmd

import (
	"errors"
	"time"
)

// Version is the CLI version string injected at build time via -ldflags.
var Version = "0.1.0"

// errDeployFailed signals that at least one target failed; the summary has
// already been printed when this is returned.
var errDeployFailed = errors.New("one or more deployments failed")

var (
	// Global configuration populated by flags and/or environment variables.
	cfgHost       string
	cfgHostsFile  string
	cfgScript     string
	cfgTimeout    int
	cfgIdentity   string
	cfgKnownHosts string
	cfgReport     string
	cfgParallel   int
	cfgCmdTimeout time.Duration
	cfgNoColor    bool
	cfgVerbose    bool
)

// Allow tests to stub dialing, upload, and command execution
var (
	dialSSHFunc          = dialSSH
	uploadScriptFunc     = uploadScript
	runRemoteCommandFunc = runRemoteCommand
	deployHostFunc       = deployHost
)
