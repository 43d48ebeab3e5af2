package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"form-binder/definition"
)

func registerCheckCmd(parent *cobra.Command, root *rootOptions) {
	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Report problems of a form definition file",
		Example: `  # Check a definition, exits non-zero on errors
  form-binder check forms.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := definition.LoadFile(args[0])
			if err != nil {
				return err
			}

			diags := definition.Check(file, definition.NewRegistry(), dataTypes().Names())
			root.logger.Debugw("definition checked", "file", args[0],
				"errors", len(diags.Errors), "warnings", len(diags.Warnings))

			out := cmd.OutOrStdout()
			for _, d := range diags.All() {
				fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
			}

			if diags.HasErrors() {
				return fmt.Errorf("%s: %d error(s)", args[0], len(diags.Errors))
			}

			fmt.Fprintf(out, "%s: ok, %d form(s)\n", args[0], len(file.Forms))

			return nil
		},
	}

	parent.AddCommand(cmd)
}
