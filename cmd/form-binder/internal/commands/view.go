package commands

import (
	"github.com/spf13/cobra"
)

type viewOptions struct {
	output string
	data   string
}

func registerViewCmd(parent *cobra.Command, root *rootOptions) {
	opts := &viewOptions{}

	cmd := &cobra.Command{
		Use:   "view FILE [FORM]",
		Short: "Print the view model of a form",
		Example: `  # View the first form of a file
  form-binder view forms.yaml

  # View a form filled with default values
  form-binder view forms.yaml person --data person.json -o yaml`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadForm(args[0], formArg(args))
			if err != nil {
				return err
			}

			f.SetLogger(root.logger)

			if opts.data != "" {
				data, err := readJSON(cmd.InOrStdin(), opts.data)
				if err != nil {
					return err
				}

				if err := f.SetValue(data); err != nil {
					return err
				}
			}

			return write(cmd.OutOrStdout(), opts.output, f.View())
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "json", "Output format (json, yaml)")
	cmd.Flags().StringVar(&opts.data, "data", "", "JSON file with default values, - for stdin")

	parent.AddCommand(cmd)
}
