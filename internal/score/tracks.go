package score

import "github.com/mizrahidaniel/api-sonification/internal/accesslog"

// Scale interval tables, in semitones from the register base.
var (
	scaleMajor      = []int{0, 2, 4, 5, 7, 9, 11}
	scaleMinor      = []int{0, 2, 3, 5, 7, 8, 10}
	scaleDiminished = []int{0, 2, 3, 5, 6, 8, 9, 11}
	scaleChromatic  = []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
)

// TrackConfig fixes the musical identity of one track. The four configs
// below are static lookup data; nothing mutates them at runtime.
type TrackConfig struct {
	ID         int
	Name       string
	Class      string // status class the track voices
	Instrument int    // General MIDI program number, as sent on the wire
	ScaleName  string
	Scale      []int
	Velocity   int
}

// Severity rises with the track number, and so does the velocity tier:
// healthy 2xx traffic plays quietest, 5xx and unknown codes play loudest.
var trackConfigs = [NumTracks]TrackConfig{
	{ID: 0, Name: "melody", Class: accesslog.ClassSuccess, Instrument: 1, ScaleName: "major", Scale: scaleMajor, Velocity: 60},
	{ID: 1, Name: "harmony", Class: accesslog.ClassRedirect, Instrument: 4, ScaleName: "minor", Scale: scaleMinor, Velocity: 80},
	{ID: 2, Name: "bass", Class: accesslog.ClassClientError, Instrument: 33, ScaleName: "diminished", Scale: scaleDiminished, Velocity: 100},
	{ID: 3, Name: "percussion", Class: accesslog.ClassServerError, Instrument: 118, ScaleName: "chromatic", Scale: scaleChromatic, Velocity: 120},
}

// Configs returns the four static track configurations in track order.
func Configs() [NumTracks]TrackConfig {
	return trackConfigs
}

// TrackForStatus assigns a status code to its track. Codes outside 200-599
// land on the percussion track: an unknown code should sound alarming, not
// vanish.
func TrackForStatus(status int) int {
	switch status / 100 {
	case 2:
		return 0
	case 3:
		return 1
	case 4:
		return 2
	case 5:
		return 3
	default:
		return 3
	}
}
