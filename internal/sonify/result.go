package sonify

import "time"

// Result summarizes one pipeline run for logs and the command-line report.
type Result struct {
	RunID       string
	Parsed      int
	Skipped     int
	ClassCounts map[string]int
	TotalBeats  float64
	Tempo       int
	Duration    time.Duration // playing time of the score at the run tempo
	OutputPath  string        // empty for preview runs
	OutputBytes int
}

// playingTime converts a beat count at a tempo into wall-clock duration.
func playingTime(beats float64, tempo int) time.Duration {
	if tempo <= 0 {
		return 0
	}
	seconds := beats * 60.0 / float64(tempo)
	return time.Duration(seconds * float64(time.Second))
}
