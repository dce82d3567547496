package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
)

// initLogging configures logrus for CLI use: plain text on stderr, debug
// level only when --verbose is given.
func initLogging(verbose bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}
}
