package score

// NumTracks is fixed: one track per status class, 5xx and unknown shared.
const NumTracks = 4

// NoteEvent is one musical event derived from exactly one traffic event.
// The mapper fills everything except StartBeat, which the sequencer assigns
// when the note is placed on its track's timeline.
type NoteEvent struct {
	Track      int     // 0..3
	Instrument int     // General MIDI program number, fixed per track
	Pitch      int     // 0..127, quantized onto the track's scale
	Duration   float64 // beats; one of 0.25, 0.5, 1.0
	Velocity   int     // 1..127, louder with severity
	StartBeat  float64 // non-decreasing within a track
}

// Track is an ordered run of notes sharing one instrument and scale.
type Track struct {
	ID         int
	Name       string
	Instrument int
	Scale      string
	Events     []NoteEvent
}

// Sequence is the full score: a tempo, a time division and exactly four
// tracks (empty ones included). It is built once per run and never mutated
// afterwards.
type Sequence struct {
	Tempo        int // beats per minute
	TicksPerBeat int
	Tracks       [NumTracks]Track
}

// NoteCount returns the total number of notes across all tracks.
func (s *Sequence) NoteCount() int {
	n := 0
	for i := range s.Tracks {
		n += len(s.Tracks[i].Events)
	}
	return n
}
