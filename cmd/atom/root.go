// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"github.com/bassosimone/atom/logging"
	"github.com/spf13/cobra"
)

// loggerName is the registry key of the command line logger.
const loggerName = "atom"

// rootOptions contains the persistent flags and the state they produce.
type rootOptions struct {
	logConfig string
	logLevel  string
	registry  *logging.Registry
}

// logger returns the command line logger, or the registry default logger
// when the configuration does not name one.
func (o *rootOptions) logger() logging.Logger {
	if o.registry == nil {
		return logging.Null
	}
	return o.registry.GetOrDefault(loggerName)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "atom",
		Short:         "Foundation library command line tool",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			registry, err := newRegistry(cmd, opts)
			if err != nil {
				return err
			}
			opts.registry = registry
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if opts.registry == nil {
				return nil
			}
			return opts.registry.FlushAll()
		},
	}
	cmd.PersistentFlags().StringVar(&opts.logConfig, "log-config", "", "YAML file configuring the loggers")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "Info", "minimum level of the console logger")

	cmd.AddCommand(newUUIDCmd(opts))
	cmd.AddCommand(newHashCmd(opts))
	cmd.AddCommand(newRunCmd(opts))
	return cmd
}

// newRegistry builds the logger registry from --log-config when set,
// otherwise it registers a console logger writing to the command stderr.
func newRegistry(cmd *cobra.Command, opts *rootOptions) (*logging.Registry, error) {
	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		return nil, err
	}
	factory := logging.NewFactory()
	factory.Writer = cmd.ErrOrStderr()
	factory.Level = level

	if opts.logConfig != "" {
		config, err := logging.LoadConfigFile(opts.logConfig)
		if err != nil {
			return nil, err
		}
		return config.Build(factory)
	}

	registry := logging.NewRegistry()
	logger := factory.CreateLogger(loggerName)
	if err := registry.Register(logger); err != nil {
		return nil, err
	}
	registry.SetDefaultLogger(logger)
	return registry, nil
}
