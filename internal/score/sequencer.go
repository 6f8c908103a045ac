package score

// Sequencer lays mapped notes onto per-track timelines. Each track keeps
// its own beat cursor and advances by the durations of its own notes only,
// so a burst of errors packs the percussion track without stretching the
// melody. Tracks are not synchronized to real log time.
type Sequencer struct {
	cursors [NumTracks]float64
	events  [NumTracks][]NoteEvent
}

func NewSequencer() *Sequencer {
	return &Sequencer{}
}

// Add places the note at its track's cursor, advances that cursor by the
// note's duration, and returns the placed note.
func (s *Sequencer) Add(n NoteEvent) NoteEvent {
	n.StartBeat = s.cursors[n.Track]
	s.cursors[n.Track] += n.Duration
	s.events[n.Track] = append(s.events[n.Track], n)
	return n
}

// TotalBeats returns the length of the longest track timeline.
func (s *Sequencer) TotalBeats() float64 {
	var longest float64
	for _, c := range s.cursors {
		if c > longest {
			longest = c
		}
	}
	return longest
}

// Build assembles the final sequence. Tracks that received no notes stay
// present so the encoder always writes the full four-track layout.
func (s *Sequencer) Build(tempo, ticksPerBeat int) *Sequence {
	seq := &Sequence{Tempo: tempo, TicksPerBeat: ticksPerBeat}
	for i, cfg := range trackConfigs {
		seq.Tracks[i] = Track{
			ID:         cfg.ID,
			Name:       cfg.Name,
			Instrument: cfg.Instrument,
			Scale:      cfg.ScaleName,
			Events:     s.events[i],
		}
	}
	return seq
}
