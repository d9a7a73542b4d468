package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/desclint/desclint/internal/control"
	"github.com/desclint/desclint/internal/depends"
	"github.com/desclint/desclint/internal/models"
)

// NewDepsCmd creates the deps command
func NewDepsCmd() *cobra.Command {
	var fieldFilter string

	cmd := &cobra.Command{
		Use:   "deps <path>",
		Short: "List parsed dependency specs",
		Long: `Parses the dependency fields (Depends, Imports, Suggests,
LinkingTo, Enhances) of one DESCRIPTION input and prints each entry
with its version constraint, if any.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := resolveInputs(cmd.Context(), args, false)
			if err != nil {
				return err
			}

			data, err := loadDescription(inputs[0])
			if err != nil {
				return err
			}

			rec, err := control.Parse(data)
			if err != nil {
				return err
			}

			var parseErrs []error
			for _, field := range models.DependencyFields {
				if fieldFilter != "" && field != fieldFilter {
					continue
				}
				value, ok := rec.Get(field)
				if !ok {
					continue
				}

				specs, errs := depends.ParseField(field, value)
				parseErrs = append(parseErrs, errs...)

				fmt.Printf("%s:\n", field)
				for _, spec := range specs {
					fmt.Printf("  %s\n", spec)
				}
			}

			for _, err := range parseErrs {
				fmt.Printf("  %v\n", err)
			}
			if len(parseErrs) > 0 {
				return fmt.Errorf("%d unparsable dependency entries", len(parseErrs))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fieldFilter, "field", "", "Only show one dependency field (e.g. Imports)")

	return cmd
}
