package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mizrahidaniel/api-sonification/internal/accesslog"
	"github.com/mizrahidaniel/api-sonification/internal/sonify"
)

// newSonifyCommand builds the sonify subcommand.
func newSonifyCommand(ctx *commandContext) *cobra.Command {
	var (
		outputFlag string
		tempoFlag  int
		limitFlag  int
	)

	cmd := &cobra.Command{
		Use:   "sonify <logfile>",
		Short: "Convert an access log into a MIDI file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eff, err := ctx.sonifySettings(cmd, tempoFlag, limitFlag, outputFlag)
			if err != nil {
				return err
			}

			in, err := accesslog.Open(args[0])
			if err != nil {
				return fmt.Errorf("open log: %w", err)
			}
			defer in.Close()

			res, err := sonify.Run(ctx.logger, in, eff.Output, sonify.Options{
				Tempo:        eff.Tempo,
				TicksPerBeat: eff.TicksPerBeat,
				Limit:        eff.Limit,
			})
			if err != nil {
				return err
			}

			printSummary(cmd.OutOrStdout(), res, ctx.noColor)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "output MIDI file path")
	cmd.Flags().IntVarP(&tempoFlag, "tempo", "t", 0, "tempo in beats per minute")
	cmd.Flags().IntVarP(&limitFlag, "limit", "n", 0, "stop after this many parsed events (0 = no limit)")

	return cmd
}
