package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/desclint/desclint/internal/control"
)

// NewFmtCmd creates the fmt command
func NewFmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt <path>",
		Short: "Rewrite a DESCRIPTION in canonical form",
		Long: `Parses one DESCRIPTION input and prints it back in canonical
form: "Field: value" with single-space continuation indents and " ."
for blank lines, preserving field order. Canonical input round-trips
byte for byte.`,
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

			return control.Write(os.Stdout, rec)
		},
	}
}
