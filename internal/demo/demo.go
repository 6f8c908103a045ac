package demo

import (
	"fmt"
	"io"
	"os"
)

// DefaultTempo is the tempo demo traffic is scored at. Slightly brisk, so
// the error spike lands with some urgency.
const DefaultTempo = 140

// phase is one segment of the scripted traffic story.
type phase struct {
	count  int
	method string
	path   string
	status int
	size   int
	label  string
}

// The story arc: healthy traffic, a few redirects, rising client errors,
// a server error spike, then recovery. Each phase occupies one minute of
// log time.
var phases = []phase{
	{count: 20, method: "GET", path: "/api/users", status: 200, size: 1234, label: "happy traffic (major scale)"},
	{count: 5, method: "GET", path: "/old-path", status: 301, size: 0, label: "redirects (minor scale)"},
	{count: 10, method: "GET", path: "/api/missing", status: 404, size: 512, label: "client errors (diminished scale, tense)"},
	{count: 8, method: "POST", path: "/api/process", status: 500, size: 256, label: "server error spike (chromatic, loud)"},
	{count: 15, method: "GET", path: "/api/health", status: 200, size: 89, label: "recovery (back to major)"},
}

// TotalRequests returns how many log lines the sample contains.
func TotalRequests() int {
	total := 0
	for _, ph := range phases {
		total += ph.count
	}
	return total
}

// Describe returns the phase guide shown after a demo run, in order.
func Describe() []string {
	lines := make([]string, len(phases))
	for i, ph := range phases {
		lines[i] = fmt.Sprintf("%2d requests: %s", ph.count, ph.label)
	}
	return lines
}

// WriteSampleLog writes the scripted access log in Apache common format.
// The output is fixed: same timestamps, same sizes, byte-for-byte identical
// on every call.
func WriteSampleLog(w io.Writer) error {
	for minute, ph := range phases {
		for i := 0; i < ph.count; i++ {
			_, err := fmt.Fprintf(w, "127.0.0.1 - - [01/Feb/2026:10:%02d:%02d] \"%s %s HTTP/1.1\" %d %d\n",
				minute, i, ph.method, ph.path, ph.status, ph.size)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// Generate writes the sample log to path.
func Generate(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create demo log: %w", err)
	}
	if err := WriteSampleLog(f); err != nil {
		f.Close()
		return fmt.Errorf("write demo log: %w", err)
	}
	return f.Close()
}
