package cmd

import (
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// init configures the root command's persistent flags, binds them to
// environment variables via Viper, and registers subcommands. The default
// help shorthand is not used because -h belongs to --host.
func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgHost, "host", "h", "", "Single target, format [user@]hostname[:port]")
	rootCmd.PersistentFlags().StringVarP(&cfgHostsFile, "hosts", "H", "", "Path to hosts list file (one target per line, # comments)")
	rootCmd.PersistentFlags().StringVarP(&cfgScript, "script", "s", "", "Path to the RouterOS script to deploy")
	rootCmd.PersistentFlags().IntVarP(&cfgTimeout, "timeout", "t", 5, "Connect timeout in seconds (positive integer)")
	rootCmd.PersistentFlags().StringVarP(&cfgIdentity, "identity", "i", "", "Path to SSH private key (PEM, OpenSSH)")
	rootCmd.PersistentFlags().StringVar(&cfgKnownHosts, "known-hosts", filepath.Join(os.Getenv("HOME"), ".ssh", "known_hosts"), "Path to known_hosts file")
	rootCmd.PersistentFlags().StringVar(&cfgReport, "report", "", "Write a YAML deployment report to this path")
	rootCmd.PersistentFlags().IntVar(&cfgParallel, "parallel", 1, "Deploy to up to N hosts at once (1 = sequential)")
	rootCmd.PersistentFlags().DurationVar(&cfgCmdTimeout, "cmd-timeout", 0, "Timeout for the remote import (e.g., 30s). 0 disables")
	rootCmd.PersistentFlags().BoolVar(&cfgNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&cfgVerbose, "verbose", false, "Enable debug logging")

	// Claim the help flag without a shorthand so -h stays with --host.
	rootCmd.PersistentFlags().Bool("help", false, "Print usage and exit")

	// Bind env with Viper
	_ = viper.BindPFlag("host", rootCmd.PersistentFlags().Lookup("host"))
	_ = viper.BindPFlag("hosts", rootCmd.PersistentFlags().Lookup("hosts"))
	_ = viper.BindPFlag("script", rootCmd.PersistentFlags().Lookup("script"))
	_ = viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("identity", rootCmd.PersistentFlags().Lookup("identity"))
	_ = viper.BindPFlag("known-hosts", rootCmd.PersistentFlags().Lookup("known-hosts"))
	_ = viper.BindPFlag("report", rootCmd.PersistentFlags().Lookup("report"))
	_ = viper.BindPFlag("parallel", rootCmd.PersistentFlags().Lookup("parallel"))
	_ = viper.BindPFlag("cmd-timeout", rootCmd.PersistentFlags().Lookup("cmd-timeout"))
	_ = viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	viper.SetEnvPrefix("ROS_DEPLOY")
	viper.AutomaticEnv()

	// Pull in environment overrides on init
	cobra.OnInitialize(func() {
		if v := viper.GetString("host"); v != "" {
			cfgHost = v
		}
		if v := viper.GetString("hosts"); v != "" {
			cfgHostsFile = v
		}
		if v := viper.GetString("script"); v != "" {
			cfgScript = v
		}
		if viper.IsSet("timeout") {
			cfgTimeout = viper.GetInt("timeout")
		}
		if v := viper.GetString("identity"); v != "" {
			cfgIdentity = v
		}
		if v := viper.GetString("known-hosts"); v != "" {
			cfgKnownHosts = v
		}
		if v := viper.GetString("report"); v != "" {
			cfgReport = v
		}
		if viper.IsSet("parallel") {
			cfgParallel = viper.GetInt("parallel")
		}
		if v := viper.GetString("cmd-timeout"); v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				cfgCmdTimeout = d
			} else {
				logrus.Warnf("ignoring invalid cmd-timeout %q: %v", v, err)
			}
		}
		// Booleans
		if viper.IsSet("no-color") {
			cfgNoColor = viper.GetBool("no-color")
		}
		if viper.IsSet("verbose") {
			cfgVerbose = viper.GetBool("verbose")
		}
	})

	// Add subcommands
	rootCmd.AddCommand(checkCmd)
}
