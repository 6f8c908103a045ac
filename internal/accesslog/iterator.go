package accesslog

import (
	"bufio"
	"io"
	"strings"
)

// maxLineBytes caps a single log line. A line that outgrows the cap is
// skipped like any other malformed line rather than ending the run.
const maxLineBytes = 1024 * 1024

// Iterator provides an event-by-event view of an access log. Lines that
// fail to parse are counted and skipped; input order is preserved.
type Iterator struct {
	reader *bufio.Reader
	parser *Parser
	filter Filter
	limit  int

	curr    Event
	scanned int
	skipped int
	matched int
	err     error
}

// NewIterator wraps r with a line iterator. A zero Filter matches every
// event; limit > 0 stops iteration after that many matched events.
func NewIterator(r io.Reader, filter Filter, limit int) *Iterator {
	return &Iterator{
		reader: bufio.NewReaderSize(r, 64*1024),
		parser: NewParser(),
		filter: filter,
		limit:  limit,
	}
}

// Next advances to the next matching event. It returns false when the
// input is exhausted, the limit is reached, or reading fails.
func (it *Iterator) Next() bool {
	if it.err != nil {
		return false
	}
	if it.limit > 0 && it.matched >= it.limit {
		return false
	}

	for {
		raw, oversized, err := it.readLine()
		if err != nil && err != io.EOF {
			it.err = err
			return false
		}

		if oversized {
			// An oversized line counts as one malformed record.
			it.scanned++
			it.skipped++
		} else if line := strings.TrimSpace(raw); line != "" {
			// Blank lines are not records and do not count as failures.
			it.scanned++

			ev, perr := it.parser.ParseLine(line)
			switch {
			case perr != nil:
				it.skipped++
			case it.filter.Matches(ev):
				it.curr = ev
				it.matched++
				return true
			}
		}

		if err == io.EOF {
			return false
		}
	}
}

// readLine returns the next line, terminator included. A line that grows
// past maxLineBytes is drained to its end and reported oversized instead
// of failing the read.
func (it *Iterator) readLine() (string, bool, error) {
	var (
		line      []byte
		oversized bool
	)
	for {
		chunk, err := it.reader.ReadSlice('\n')
		if !oversized {
			line = append(line, chunk...)
			if len(line) > maxLineBytes {
				line = nil
				oversized = true
			}
		}
		if err == bufio.ErrBufferFull {
			continue
		}
		return string(line), oversized, err
	}
}

// Event returns the event found by the last successful Next.
func (it *Iterator) Event() Event {
	return it.curr
}

// Error reports a read failure, if any. Parse failures are never errors
// here; they show up in Skipped.
func (it *Iterator) Error() error {
	return it.err
}

// Scanned returns the number of non-blank lines examined so far.
func (it *Iterator) Scanned() int {
	return it.scanned
}

// Skipped returns the number of lines that failed to parse.
func (it *Iterator) Skipped() int {
	return it.skipped
}

// Matched returns the number of events emitted so far.
func (it *Iterator) Matched() int {
	return it.matched
}

// ReadAll drains r and returns every parseable event in input order along
// with the count of skipped lines.
func ReadAll(r io.Reader, limit int) ([]Event, int, error) {
	it := NewIterator(r, Filter{}, limit)

	var events []Event
	for it.Next() {
		events = append(events, it.Event())
	}
	return events, it.Skipped(), it.Error()
}

// ParseAll parses raw lines already held in memory. Blank lines are
// ignored; the second result counts lines that failed to parse.
func ParseAll(lines []string) ([]Event, int) {
	p := NewParser()

	var events []Event
	skipped := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		ev, err := p.ParseLine(line)
		if err != nil {
			skipped++
			continue
		}
		events = append(events, ev)
	}
	return events, skipped
}
