package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/CosmoTheDev/cmsprobe/internal/config"
	"github.com/CosmoTheDev/cmsprobe/internal/report"
	"github.com/CosmoTheDev/cmsprobe/internal/validate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	validateRoot   string
	validateOutput string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate project syntax, config files and directory layout",
	Long: `Lints the configured PHP files with php -l, parses the JSON and YAML
config files, and checks that the expected directories exist and key files
are readable. Exits 1 when any check fails.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateRoot, "root", "",
		"Project root (default: project.root from config, then the working directory)")
	validateCmd.Flags().StringVarP(&validateOutput, "output", "o", "text",
		"Output format: text, json or yaml")
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	root := validateRoot
	if root == "" {
		root = cfg.Project.Root
	}
	if root == "" {
		if root, err = os.Getwd(); err != nil {
			return fmt.Errorf("resolving project root: %w", err)
		}
	}

	linter := validate.PHPLinter{Binary: cfg.PHP.Binary, Timeout: cfg.PHP.Timeout}
	res := validate.New(root, linter, logger).Run(ctx, validate.ManifestFromConfig(cfg.Project))

	err = render(cmd.OutOrStdout(), validateOutput, res, func(w io.Writer) error {
		return report.Validation(w, res)
	})
	if err != nil {
		return err
	}

	if code := res.ExitCode(); code != 0 {
		logger.Debug("Validation failed", zap.Int("errors", res.Total()))
		_ = logger.Sync()
		os.Exit(code)
	}
	return nil
}
