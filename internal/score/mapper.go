package score

import "github.com/mizrahidaniel/api-sonification/internal/accesslog"

// Response-time registers. Fast responses sit high on the keyboard, slow
// ones low. Times beyond registerLowMax are clamped for pitch purposes.
const (
	registerHighMax = 0.1 // seconds, exclusive
	registerMidMax  = 1.0 // seconds, inclusive
	registerLowMax  = 5.0

	baseHigh = 72
	baseMid  = 60
	baseLow  = 48
)

// Duration buckets by response size, in bytes. Lower bucket is
// exclusive-upper so boundary values resolve deterministically.
const (
	smallBodyLimit = 1024
	largeBodyLimit = 10240
)

// MapEvent converts one traffic event into its note. The mapping is a pure
// function: equal events always yield equal notes, and no event can fail it.
// StartBeat is left zero for the sequencer.
func MapEvent(ev accesslog.Event) NoteEvent {
	track := TrackForStatus(ev.Status)
	cfg := trackConfigs[track]

	return NoteEvent{
		Track:      track,
		Instrument: cfg.Instrument,
		Pitch:      pitchFor(ev.ResponseTime, cfg.Scale),
		Duration:   durationFor(ev.Bytes),
		Velocity:   cfg.Velocity,
	}
}

// pitchFor picks a register from the response time, then maps the position
// inside the register linearly onto the scale: faster responses get higher
// degrees. At a register's fast edge t reaches 1.0 and the index wraps to
// degree zero.
func pitchFor(rt float64, scale []int) int {
	var (
		base   int
		lo, hi float64
	)
	switch {
	case rt < registerHighMax:
		base, lo, hi = baseHigh, 0, registerHighMax
	case rt <= registerMidMax:
		base, lo, hi = baseMid, registerHighMax, registerMidMax
	default:
		base, lo, hi = baseLow, registerMidMax, registerLowMax
	}

	if rt > hi {
		rt = hi
	}
	t := (hi - rt) / (hi - lo)
	idx := int(t*float64(len(scale))) % len(scale)

	pitch := base + scale[idx]
	if pitch < 0 {
		pitch = 0
	}
	if pitch > 127 {
		pitch = 127
	}
	return pitch
}

// durationFor buckets the response size into note lengths: small bodies are
// sixteenth notes, medium eighths, large quarters. A strict step function,
// never interpolated.
func durationFor(bytes int64) float64 {
	switch {
	case bytes < smallBodyLimit:
		return 0.25
	case bytes < largeBodyLimit:
		return 0.5
	default:
		return 1.0
	}
}
