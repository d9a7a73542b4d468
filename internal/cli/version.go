package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/desclint/desclint/internal/models"
	"github.com/desclint/desclint/internal/version"
)

// NewVersionCmd creates the version command and its subcommands
func NewVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Compare and sort package versions",
	}

	cmd.AddCommand(newVersionCmpCmd())
	cmd.AddCommand(newVersionSortCmd())
	cmd.AddCommand(newVersionSatisfiesCmd())

	return cmd
}

func newVersionCmpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cmp <a> <b>",
		Short: "Compare two versions",
		Long: `Compares two versions component-wise, zero-extending the shorter
one, and prints "<", "=" or ">". 1.9 and 1.9.0 compare equal.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmp, err := version.CompareStrings(args[0], args[1])
			if err != nil {
				return err
			}

			switch {
			case cmp < 0:
				fmt.Println("<")
			case cmp > 0:
				fmt.Println(">")
			default:
				fmt.Println("=")
			}
			return nil
		},
	}
}

func newVersionSatisfiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "satisfies <version> <op> <version>",
		Short: "Check a version against a constraint",
		Long:  `Checks a version against a constraint, e.g. "satisfies 1.9.0 '>=' 1.9". Prints true or false; exits non-zero when the constraint is not met.`,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := version.Satisfies(args[0], models.ConstraintOp(args[1]), args[2])
			if err != nil {
				return err
			}

			fmt.Println(ok)
			if !ok {
				return fmt.Errorf("%s does not satisfy %s %s", args[0], args[1], args[2])
			}
			return nil
		},
	}
}

func newVersionSortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort <version>...",
		Short: "Sort versions ascending",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			versions := append([]string(nil), args...)
			if err := version.Sort(versions); err != nil {
				return err
			}

			for _, v := range versions {
				fmt.Println(v)
			}
			return nil
		},
	}
}
