// Package cmd implements the ros-deploy command-line interface.
//
// The package wires the cobra root command and the helpers it is built from:
// host specifier parsing, hosts file ingestion, SSH connectivity with an
// accept-new host key policy, SCP upload of the configuration script, the
// combined import-and-remove remote invocation, and summary/report emission.
//
// New contributors should start with rootCmd.go to see how the deployment
// loop is assembled, deploy.go for the per-host upload/import/cleanup
// sequence, and dialSSH.go for authentication and host key handling.
package cmd
