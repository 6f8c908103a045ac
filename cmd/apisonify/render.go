package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/mizrahidaniel/api-sonification/internal/accesslog"
	"github.com/mizrahidaniel/api-sonification/internal/score"
	"github.com/mizrahidaniel/api-sonification/internal/sonify"
)

const (
	ansiReset  = "\x1b[0m"
	ansiGreen  = "\x1b[32m"
	ansiCyan   = "\x1b[36m"
	ansiYellow = "\x1b[33m"
	ansiRed    = "\x1b[31m"
	ansiDim    = "\x1b[2m"
)

// shouldColorize reports whether the writer is an interactive terminal.
func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// classColor picks the ANSI color for a status class.
func classColor(class string) string {
	switch class {
	case accesslog.ClassSuccess:
		return ansiGreen
	case accesslog.ClassRedirect:
		return ansiCyan
	case accesslog.ClassClientError:
		return ansiYellow
	case accesslog.ClassServerError:
		return ansiRed
	default:
		return ansiDim
	}
}

// colorize wraps s in the given ANSI color when enabled.
func colorize(s, color string, enabled bool) string {
	if !enabled {
		return s
	}
	return color + s + ansiReset
}

// renderTable renders headers and rows in the shared rounded style.
// rightCols lists 1-based column numbers to right-align.
func renderTable(headers table.Row, rows []table.Row, rightCols ...int) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(headers)
	tw.AppendRows(rows)

	configs := make([]table.ColumnConfig, 0, len(rightCols))
	for _, col := range rightCols {
		configs = append(configs, table.ColumnConfig{
			Number:      col,
			Align:       text.AlignRight,
			AlignHeader: text.AlignRight,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

// printSummary renders the per-class breakdown and the run totals.
func printSummary(w io.Writer, res *sonify.Result, noColor bool) {
	colored := !noColor && shouldColorize(w)
	configs := score.Configs()

	rows := make([]table.Row, 0, len(accesslog.Classes))
	for i, class := range accesslog.Classes {
		track := i
		if track >= score.NumTracks {
			track = score.NumTracks - 1
		}
		cfg := configs[track]
		rows = append(rows, table.Row{
			colorize(class, classColor(class), colored),
			res.ClassCounts[class],
			cfg.Name,
			cfg.ScaleName,
		})
	}

	fmt.Fprintln(w, renderTable(table.Row{"CLASS", "EVENTS", "TRACK", "SCALE"}, rows, 2))
	fmt.Fprintf(w, "Parsed %d events, skipped %d malformed lines\n", res.Parsed, res.Skipped)
	fmt.Fprintf(w, "Score: %.2f beats at %d BPM (~%s)\n",
		res.TotalBeats, res.Tempo, res.Duration.Round(100*time.Millisecond))
	if res.OutputPath != "" {
		fmt.Fprintf(w, "Wrote %d bytes to %s\n", res.OutputBytes, res.OutputPath)
	}
}
