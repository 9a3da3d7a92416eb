package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/CosmoTheDev/cmsprobe/internal/compat"
	"github.com/CosmoTheDev/cmsprobe/internal/config"
	"github.com/CosmoTheDev/cmsprobe/internal/probe"
	"github.com/CosmoTheDev/cmsprobe/internal/report"
	"github.com/spf13/cobra"
)

var setupOutput string

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Check the PHP runtime is ready for composer install",
	Long: `Prints the PHP version and SAPI, checks the extensions Drupal needs at
install time, verifies the minimum PHP version and that composer runs, then
echoes the relevant php.ini limits and lists anything that needs fixing.`,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().StringVarP(&setupOutput, "output", "o", "text",
		"Output format: text, json or yaml")
}

func runSetup(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	env := probe.NewPHPEnvironment(cfg.PHP, cfg.Host, logger)
	r := compat.CheckReadiness(ctx, env, cfg, logger)

	return render(cmd.OutOrStdout(), setupOutput, r, func(w io.Writer) error {
		return report.Setup(w, r)
	})
}
