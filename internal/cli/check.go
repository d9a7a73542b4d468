package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/desclint/desclint/internal/control"
	"github.com/desclint/desclint/internal/models"
	"github.com/desclint/desclint/internal/validator"
)

// NewCheckCmd creates the check command
func NewCheckCmd() *cobra.Command {
	var configPath string
	var recursive bool

	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Validate DESCRIPTION metadata",
		Long: `Parses each input and reports every finding at once: blocking
errors (missing required fields, bad versions, missing creator) and
advisory warnings (long titles, wide description lines, duplicate
dependencies, unrecognized licenses).

Exits non-zero if any input has blocking errors.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}

			cfg := models.DefaultLintConfig()
			if configPath != "" {
				loaded, err := models.LoadLintConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
				logrus.Debugf("Loaded config from %s: %+v", configPath, cfg)
			}

			inputs, err := resolveInputs(cmd.Context(), args, recursive)
			if err != nil {
				return err
			}
			if len(inputs) == 0 {
				logrus.Warn("No metadata inputs found")
				return nil
			}

			v := validator.New(cfg)
			var errorCount, warningCount, failed int
			var blocked int

			for _, input := range inputs {
				data, err := loadDescription(input)
				if err != nil {
					logrus.Errorf("%s: %v", input.Path, err)
					failed++
					continue
				}

				rec, err := control.Parse(data)
				if err != nil {
					fmt.Printf("%s\n  %v\n", input.Path, err)
					failed++
					continue
				}

				result := v.Validate(rec)
				printResult(input.Path, result)
				errorCount += len(result.Errors)
				warningCount += len(result.Warnings)
				if result.Blocking() {
					blocked++
				}
			}

			logrus.Infof("Checked %d input(s): %d error(s), %d warning(s)", len(inputs), errorCount, warningCount)

			if failed > 0 || blocked > 0 {
				return fmt.Errorf("%d input(s) with blocking errors", failed+blocked)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to YAML lint config")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Scan directories for DESCRIPTION files and bundles")

	return cmd
}

func printResult(path string, result *models.Result) {
	if !result.Blocking() && len(result.Warnings) == 0 {
		logrus.Debugf("%s: clean", path)
		return
	}

	fmt.Printf("%s\n", path)
	for _, violation := range result.Errors {
		fmt.Printf("  %s\n", violation)
	}
	for _, violation := range result.Warnings {
		fmt.Printf("  %s\n", violation)
	}
}
