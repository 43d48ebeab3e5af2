// Package commands contains the form-binder command definitions.
package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"form-binder/binding"
	"form-binder/definition"
	"form-binder/form"
)

type rootOptions struct {
	debug  bool
	logger *zap.SugaredLogger
}

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{logger: zap.NewNop().Sugar()}

	cmd := &cobra.Command{
		Use:           "form-binder",
		Short:         "Check, render and submit YAML form definitions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			logger, err := newLogger(opts.debug)
			if err != nil {
				return err
			}

			opts.logger = logger

			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Log form handling events to stderr")

	registerCheckCmd(cmd, opts)
	registerViewCmd(cmd, opts)
	registerSubmitCmd(cmd, opts)
	registerSchemaCmd(cmd)

	return cmd
}

func newLogger(debug bool) (*zap.SugaredLogger, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if debug {
		z := zap.NewDevelopmentConfig()
		z.OutputPaths = []string{"stderr"}
		logger, err = z.Build()
	} else {
		logger, err = zap.NewProduction()
	}

	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger.Sugar(), nil
}

// dataTypes are the names the CLI can instantiate.
func dataTypes() *binding.Registry {
	return binding.NewRegistry()
}

// loadForm checks a definition file and builds one of its forms, the first
// one when name is empty.
func loadForm(path, name string) (*form.Form, error) {
	file, err := definition.LoadFile(path)
	if err != nil {
		return nil, err
	}

	reg := definition.NewRegistry()

	diags := definition.Check(file, reg, dataTypes().Names())
	if err := diags.Error(); err != nil {
		return nil, err
	}

	if name == "" {
		if len(file.Forms) == 0 {
			return nil, fmt.Errorf("%s defines no form", path)
		}

		name = file.Forms[0].Name
	}

	f, err := definition.BuildNamed(file, name, reg)
	if err != nil {
		return nil, err
	}

	if err := f.Build(); err != nil {
		return nil, err
	}

	return f, nil
}

func formArg(args []string) string {
	if len(args) > 1 {
		return args[1]
	}

	return ""
}

func write(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(v)

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		defer func() { _ = enc.Close() }()

		return enc.Encode(v)
	}

	return fmt.Errorf("unknown output format %q, expected json or yaml", format)
}
