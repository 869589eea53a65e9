package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/benjaminschreck/go-tablefill/pkg/tablefill"
)

type rootOptions struct {
	configFile string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "tablefill",
		Short:         "Fill DOCX template tables with rows of data",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.apply(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "YAML config file (defaults to TABLEFILL_* environment variables)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error, off")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "Log format: text, json")

	cmd.AddCommand(newFillCmd(), newBatchCmd(), newRunsCmd(), newVersionCmd())
	return cmd
}

// apply loads the configuration, applies flag overrides and installs it globally.
func (o *rootOptions) apply(cmd *cobra.Command) error {
	config := tablefill.ConfigFromEnvironment()
	if o.configFile != "" {
		loaded, err := tablefill.LoadConfigFile(o.configFile)
		if err != nil {
			return err
		}
		config = loaded
	}
	if o.logLevel != "" {
		config.LogLevel = strings.ToLower(o.logLevel)
	}
	if o.logFormat != "" {
		config.LogFormat = strings.ToLower(o.logFormat)
	}
	if err := config.Validate(); err != nil {
		return err
	}

	tablefill.SetGlobalConfig(config)
	tablefill.SetLogger(tablefill.NewLoggerFromConfig(cmd.ErrOrStderr(), config))
	return nil
}
