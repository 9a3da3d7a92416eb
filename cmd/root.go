package cmd

import (
	"fmt"
	"os"

	"github.com/CosmoTheDev/cmsprobe/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var (
	cfgFile string
	verbose bool
	logger  = zap.NewNop()
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "cmsprobe",
	Short: "Host compatibility checks for Drupal 11.1.x deployments",
	Long: `cmsprobe probes the local host (PHP runtime, extensions, OS release,
web server, file system and php.ini limits), scores how well it can run a
Drupal 11.1.x site, and validates the layout of a project checkout.

Get started:
  cmsprobe doctor     Full compatibility report with a verdict
  cmsprobe setup      Quick PHP readiness check before composer install
  cmsprobe validate   Check project syntax, config files and structure`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(verbose)
		if err != nil {
			return fmt.Errorf("initialising logger: %w", err)
		}
		logger = l
		logger.Debug("Verbose logging enabled")
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute is the entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ~/.cmsprobe/config.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable verbose/debug output")

	rootCmd.Version = Version
	rootCmd.AddCommand(
		doctorCmd,
		setupCmd,
		validateCmd,
		configCmd,
	)
}
