package sonify

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/mizrahidaniel/api-sonification/internal/accesslog"
	"github.com/mizrahidaniel/api-sonification/internal/logging"
	"github.com/mizrahidaniel/api-sonification/internal/midi"
	"github.com/mizrahidaniel/api-sonification/internal/score"
)

// ErrNoEvents means the input produced zero usable events; there is
// nothing to sonify and no file is written.
var ErrNoEvents = errors.New("no events to sonify in input")

// Options configure one pipeline run.
type Options struct {
	Tempo        int
	TicksPerBeat int
	Limit        int // stop after this many parsed events; 0 means no limit
	Filter       accesslog.Filter
}

// progressEvery is the debug-log cadence while consuming large logs.
const progressEvery = 1000

// Run drives the full pipeline: events are iterated out of r, mapped onto
// notes, laid on per-track timelines, encoded, and written atomically to
// outPath. Nothing is written unless at least one event makes it through.
func Run(log *logging.Logger, r io.Reader, outPath string, opts Options) (*Result, error) {
	res, seq, err := assemble(log, r, opts, nil)
	if err != nil {
		return nil, err
	}

	n, err := midi.WriteFile(outPath, seq)
	if err != nil {
		return nil, fmt.Errorf("write sequence: %w", err)
	}
	res.OutputPath = outPath
	res.OutputBytes = n

	log.Infow("sonification complete",
		"run_id", res.RunID,
		"parsed", res.Parsed,
		"skipped", res.Skipped,
		"beats", res.TotalBeats,
		"output", outPath,
		"bytes", n,
	)
	return res, nil
}

// Preview runs the parse and mapping stages without encoding anything,
// calling fn for every event together with its placed note.
func Preview(log *logging.Logger, r io.Reader, opts Options, fn func(accesslog.Event, score.NoteEvent)) (*Result, error) {
	res, _, err := assemble(log, r, opts, fn)
	if err != nil {
		return nil, err
	}

	log.Infow("preview complete",
		"run_id", res.RunID,
		"parsed", res.Parsed,
		"skipped", res.Skipped,
		"beats", res.TotalBeats,
	)
	return res, nil
}

func assemble(log *logging.Logger, r io.Reader, opts Options, observe func(accesslog.Event, score.NoteEvent)) (*Result, *score.Sequence, error) {
	runID := uuid.NewString()
	log.Infow("sonification started", "run_id", runID, "tempo", opts.Tempo, "limit", opts.Limit)

	it := accesslog.NewIterator(r, opts.Filter, opts.Limit)
	seqr := score.NewSequencer()
	classCounts := make(map[string]int)

	for it.Next() {
		ev := it.Event()
		note := seqr.Add(score.MapEvent(ev))
		classCounts[ev.Class()]++

		if observe != nil {
			observe(ev, note)
		}
		if it.Matched()%progressEvery == 0 {
			log.Debugw("mapping progress", "run_id", runID, "events", it.Matched(), "skipped", it.Skipped())
		}
	}
	if err := it.Error(); err != nil {
		return nil, nil, fmt.Errorf("read input: %w", err)
	}
	if it.Matched() == 0 {
		return nil, nil, ErrNoEvents
	}

	res := &Result{
		RunID:       runID,
		Parsed:      it.Matched(),
		Skipped:     it.Skipped(),
		ClassCounts: classCounts,
		TotalBeats:  seqr.TotalBeats(),
		Tempo:       opts.Tempo,
		Duration:    playingTime(seqr.TotalBeats(), opts.Tempo),
	}
	return res, seqr.Build(opts.Tempo, opts.TicksPerBeat), nil
}
