package midi

import (
	"fmt"
	"os"

	"github.com/mizrahidaniel/api-sonification/internal/score"
)

// WriteFile encodes the sequence and writes it atomically: bytes land in a
// temp file that is renamed into place only once complete, so a failed run
// never leaves a partial file behind. Returns the number of bytes written.
func WriteFile(path string, seq *score.Sequence) (int, error) {
	data, err := Encode(seq)
	if err != nil {
		return 0, err
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return 0, fmt.Errorf("write %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("rename to %s: %w", path, err)
	}
	return len(data), nil
}
