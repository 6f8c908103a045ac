package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mizrahidaniel/api-sonification/internal/config"
)

// newConfigCommand groups the configuration management subcommands.
func newConfigCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the apisonify configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		newConfigInitCommand(),
		newConfigValidateCommand(ctx),
	)

	return cmd
}

// newConfigInitCommand builds config init, which writes the annotated
// sample configuration so users have something to edit.
func newConfigInitCommand() *cobra.Command {
	var (
		pathFlag  string
		overwrite bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a sample configuration file",
		Args:  cobra.NoArgs,
		Annotations: map[string]string{
			"skipConfigLoad": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := pathFlag
			if path == "" {
				var err error
				path, err = config.DefaultConfigPath()
				if err != nil {
					return err
				}
			}

			if err := config.WriteSample(path, overwrite); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&pathFlag, "path", "p", "", "where to write the config file (default: user config dir)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace an existing config file")

	return cmd
}

// newConfigValidateCommand builds config validate, which reports whether
// the effective configuration parses and passes validation.
func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration file for problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// PersistentPreRunE already loaded and validated; reaching
			// this point means the configuration is usable.
			_, path, exists, err := config.Load(ctx.configFlag)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !exists {
				fmt.Fprintf(out, "No configuration file at %s, defaults apply\n", path)
				return nil
			}
			fmt.Fprintf(out, "Configuration at %s is valid\n", path)
			return nil
		},
	}
}
