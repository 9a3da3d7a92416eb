package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/CosmoTheDev/cmsprobe/internal/compat"
	"github.com/CosmoTheDev/cmsprobe/internal/config"
	"github.com/CosmoTheDev/cmsprobe/internal/database"
	"github.com/CosmoTheDev/cmsprobe/internal/probe"
	"github.com/CosmoTheDev/cmsprobe/internal/report"
	"github.com/spf13/cobra"
)

var doctorOutput string

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Score this host's compatibility with Drupal 11.1.x",
	Long: `Runs every compatibility check (OS, PHP version and extensions, web
server, database drivers, file system, performance limits), prints the
per-category scores, the overall percentage with its verdict, and a list of
recommended fixes.

Configured database DSNs are also opened and pinged; their status is shown
for information and does not affect the score.`,
	RunE: runDoctor,
}

func init() {
	doctorCmd.Flags().StringVarP(&doctorOutput, "output", "o", "text",
		"Output format: text, json or yaml")
}

func runDoctor(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	env := probe.NewPHPEnvironment(cfg.PHP, cfg.Host, logger)
	a := compat.NewAssessor(env, cfg, logger).Run(ctx)
	a.Connectivity = database.Probe(ctx, cfg.Database, logger)

	return render(cmd.OutOrStdout(), doctorOutput, a, func(w io.Writer) error {
		return report.Doctor(w, a)
	})
}
