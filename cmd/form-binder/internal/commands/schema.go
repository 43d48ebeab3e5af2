package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"form-binder/definition"
)

func registerSchemaCmd(parent *cobra.Command) {
	var output string

	cmd := &cobra.Command{
		Use:   "schema FILE [FORM]",
		Short: "Print the JSON Schema of the values a form accepts",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadForm(args[0], formArg(args))
			if err != nil {
				return err
			}

			// Type keywords only survive the JSON encoding of a schema.
			data, err := json.Marshal(definition.Schema(f))
			if err != nil {
				return err
			}

			var doc map[string]any
			if err := json.Unmarshal(data, &doc); err != nil {
				return err
			}

			return write(cmd.OutOrStdout(), output, doc)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "json", "Output format (json, yaml)")

	parent.AddCommand(cmd)
}
