package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mizrahidaniel/api-sonification/internal/accesslog"
	"github.com/mizrahidaniel/api-sonification/internal/score"
	"github.com/mizrahidaniel/api-sonification/internal/sonify"
)

// newListenCommand builds the listen subcommand, a dry run that prints the
// note each log line would play without writing a file.
func newListenCommand(ctx *commandContext) *cobra.Command {
	var (
		limitFlag  int
		classFlag  string
		methodFlag string
		pathFlag   string
	)

	cmd := &cobra.Command{
		Use:   "listen <logfile>",
		Short: "Preview the notes an access log would play",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := buildFilter(classFlag, methodFlag, pathFlag)
			if err != nil {
				return err
			}

			eff := ctx.cfg.Sonify
			if cmd.Flags().Changed("limit") {
				eff.Limit = limitFlag
			}
			if err := ctx.validateSonify(eff); err != nil {
				return err
			}

			in, err := accesslog.Open(args[0])
			if err != nil {
				return fmt.Errorf("open log: %w", err)
			}
			defer in.Close()

			out := cmd.OutOrStdout()
			colored := !ctx.noColor && shouldColorize(out)

			res, err := sonify.Preview(ctx.logger, in, sonify.Options{
				Tempo:        eff.Tempo,
				TicksPerBeat: eff.TicksPerBeat,
				Limit:        eff.Limit,
				Filter:       filter,
			}, func(ev accesslog.Event, note score.NoteEvent) {
				status := colorize(fmt.Sprintf("%3d", ev.Status), classColor(ev.Class()), colored)
				fmt.Fprintf(out, "%s %-6s %-32s track=%d pitch=%3d vel=%3d dur=%.2f\n",
					status, ev.Method, ev.Path, note.Track, note.Pitch, note.Velocity, note.Duration)
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(out)
			printSummary(out, res, ctx.noColor)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limitFlag, "limit", "n", 0, "stop after this many parsed events (0 = no limit)")
	cmd.Flags().StringVar(&classFlag, "class", "", "only play events in this status class (2xx, 3xx, 4xx, 5xx, other)")
	cmd.Flags().StringVar(&methodFlag, "method", "", "only play events with this HTTP method")
	cmd.Flags().StringVar(&pathFlag, "path", "", "only play events whose path contains this substring")

	return cmd
}
