package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mizrahidaniel/api-sonification/internal/accesslog"
	"github.com/mizrahidaniel/api-sonification/internal/demo"
	"github.com/mizrahidaniel/api-sonification/internal/sonify"
)

// newDemoCommand builds the demo subcommand. It writes a synthetic access
// log that exercises every track, then sonifies it.
func newDemoCommand(ctx *commandContext) *cobra.Command {
	var (
		outputFlag string
		logFlag    string
		tempoFlag  int
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Generate a sample access log and sonify it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eff := ctx.cfg.Sonify
			eff.Tempo = tempoFlag
			eff.Output = outputFlag
			eff.Limit = 0
			if err := ctx.validateSonify(eff); err != nil {
				return err
			}

			if err := demo.Generate(logFlag); err != nil {
				return fmt.Errorf("write sample log: %w", err)
			}

			in, err := accesslog.Open(logFlag)
			if err != nil {
				return fmt.Errorf("open sample log: %w", err)
			}
			defer in.Close()

			res, err := sonify.Run(ctx.logger, in, eff.Output, sonify.Options{
				Tempo:        eff.Tempo,
				TicksPerBeat: eff.TicksPerBeat,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Sample log: %s (%d requests)\n", logFlag, demo.TotalRequests())
			for _, line := range demo.Describe() {
				fmt.Fprintf(out, "  %s\n", line)
			}
			fmt.Fprintln(out)
			printSummary(out, res, ctx.noColor)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "demo_music.mid", "output MIDI file path")
	cmd.Flags().StringVar(&logFlag, "log", "demo_access.log", "path for the generated sample log")
	cmd.Flags().IntVarP(&tempoFlag, "tempo", "t", demo.DefaultTempo, "tempo in beats per minute")

	return cmd
}
