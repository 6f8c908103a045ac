package main

import (
	"github.com/spf13/cobra"
)

// newRootCommand builds the apisonify command tree.
func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	cmd := &cobra.Command{
		Use:   "apisonify",
		Short: "Turn HTTP access logs into music",
		Long: `apisonify reads HTTP access logs (JSON lines, nginx combined or
Apache common format) and renders them as a multi-track MIDI score.

Each status class plays on its own track: 2xx on a major-scale melody,
3xx on a minor-scale harmony, 4xx on a diminished bass line and 5xx on
chromatic percussion. Response times pick the pitch, body sizes set the
note length.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			return ctx.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&ctx.configFlag, "config", "c", "", "path to config file")
	flags.StringVar(&ctx.logLevelFlag, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&ctx.logFormatFlag, "log-format", "", "log format (console, json)")
	flags.BoolVar(&ctx.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(
		newSonifyCommand(ctx),
		newListenCommand(ctx),
		newDemoCommand(ctx),
		newConfigCommand(ctx),
	)

	return cmd
}

// shouldSkipConfig reports whether the command opted out of config loading,
// for example config init on a machine with no config file yet.
func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
