package accesslog

import "strings"

// Status classes used for track assignment and reporting.
const (
	ClassSuccess     = "2xx"
	ClassRedirect    = "3xx"
	ClassClientError = "4xx"
	ClassServerError = "5xx"
	ClassOther       = "other"
)

// Classes lists the status classes in severity order.
var Classes = []string{ClassSuccess, ClassRedirect, ClassClientError, ClassServerError, ClassOther}

// Event is a single normalized access-log record.
// Status is always set after a successful parse; the other fields fall back
// to neutral defaults when the source format does not carry them.
type Event struct {
	Method       string
	Path         string
	Status       int
	Bytes        int64
	ResponseTime float64 // seconds; zero when the format has no timing field
}

// Class buckets the status code into "2xx".."5xx", or "other" for anything
// outside 200-599 (including malformed codes like 42 or 700).
func (e Event) Class() string {
	switch e.Status / 100 {
	case 2:
		return ClassSuccess
	case 3:
		return ClassRedirect
	case 4:
		return ClassClientError
	case 5:
		return ClassServerError
	default:
		return ClassOther
	}
}

// Filter defines criteria for event selection.
type Filter struct {
	Class        string // status class ("2xx".."5xx", "other"); empty matches all
	Method       string // HTTP method, case-insensitive exact match
	PathContains string // substring match against the request path
}

// Matches reports whether the event satisfies every set criterion.
func (f Filter) Matches(e Event) bool {
	if f.Class != "" && e.Class() != f.Class {
		return false
	}
	if f.Method != "" && !strings.EqualFold(e.Method, f.Method) {
		return false
	}
	if f.PathContains != "" && !strings.Contains(e.Path, f.PathContains) {
		return false
	}
	return true
}
