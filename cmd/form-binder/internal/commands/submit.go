package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"form-binder/binding"
	"form-binder/definition"
	"form-binder/form"
	"form-binder/provider"
)

type submitOptions struct {
	output string
	data   string
	query  string
	object string
	strict bool
	dump   bool
}

type submitResult struct {
	Submitted bool                `json:"submitted" yaml:"submitted"`
	Valid     bool                `json:"valid" yaml:"valid"`
	Errors    map[string][]string `json:"errors,omitempty" yaml:"errors,omitempty"`
	Object    any                 `json:"object" yaml:"object"`
}

func registerSubmitCmd(parent *cobra.Command, root *rootOptions) {
	opts := &submitOptions{}

	cmd := &cobra.Command{
		Use:   "submit FILE [FORM]",
		Short: "Submit a payload to a form and print the hydrated object",
		Long: `Submit a JSON or urlencoded payload to a form bound to a map. When the
submission is valid the map holds the hydrated values, otherwise the errors of
every invalid element are listed by element name.`,
		Example: `  # Submit a JSON payload
  form-binder submit forms.yaml person --data payload.json

  # Submit bracketed form data, as a browser would
  form-binder submit forms.yaml person --query 'person[last_name]=Giron&person[tags][]=a'

  # Check the payload against the form JSON Schema first
  cat payload.json | form-binder submit forms.yaml --data - --strict`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadForm(args[0], formArg(args))
			if err != nil {
				return err
			}

			return runSubmit(cmd, root, f, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "json", "Output format (json, yaml)")
	cmd.Flags().StringVar(&opts.data, "data", "", "JSON payload file, - for stdin")
	cmd.Flags().StringVar(&opts.query, "query", "", "urlencoded payload with bracketed names")
	cmd.Flags().StringVar(&opts.object, "object", "", "JSON file with the object the form is bound to")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Validate the payload against the form JSON Schema")
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "Dump the hydrated object instead of encoding it")
	cmd.MarkFlagsMutuallyExclusive("data", "query")
	cmd.MarkFlagsOneRequired("data", "query")

	parent.AddCommand(cmd)
}

func runSubmit(cmd *cobra.Command, root *rootOptions, f *form.Form, opts *submitOptions) error {
	payload, err := readPayload(cmd.InOrStdin(), opts)
	if err != nil {
		return err
	}

	if opts.strict {
		if err := definition.ValidatePayload(f, payload); err != nil {
			return fmt.Errorf("payload does not match the form schema: %w", err)
		}
	}

	object := map[string]any{}
	if opts.object != "" {
		if object, err = readJSON(cmd.InOrStdin(), opts.object); err != nil {
			return err
		}
	}

	f.SetLogger(root.logger)
	f.SetMapped(object)

	b := binding.New(binding.WithLogger(root.logger))
	if err := b.Seed(f); err != nil {
		return err
	}

	if _, err := b.Bind(f, payload); err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if opts.dump {
		spew.Fdump(out, object)
		return nil
	}

	result := submitResult{
		Submitted: f.IsSubmitted(),
		Valid:     f.IsValid(),
		Errors:    map[string][]string{},
		Object:    object,
	}
	collectErrors(f.View(), result.Errors)

	return write(out, opts.output, result)
}

func collectErrors(v *form.View, out map[string][]string) {
	if len(v.Errors) > 0 {
		out[v.Name] = v.Errors
	}

	for _, c := range v.Children {
		collectErrors(c, out)
	}
}

func readPayload(stdin io.Reader, opts *submitOptions) (map[string]any, error) {
	if opts.query != "" {
		values, err := url.ParseQuery(opts.query)
		if err != nil {
			return nil, fmt.Errorf("failed to parse query: %w", err)
		}

		return provider.ParseValues(values), nil
	}

	return readJSON(stdin, opts.data)
}

// readJSON decodes a JSON object from a file, or from stdin for "-".
func readJSON(stdin io.Reader, path string) (map[string]any, error) {
	var (
		data []byte
		err  error
	)

	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return out, nil
}
