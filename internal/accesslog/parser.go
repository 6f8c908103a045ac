package accesslog

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/valyala/fastjson"
)

var (
	// ErrUnrecognizedFormat marks a line that matches none of the supported
	// log formats. Iterators count these lines and keep going.
	ErrUnrecognizedFormat = errors.New("unrecognized log line format")

	// ErrMissingStatus marks a structured record without a usable status
	// code. Status is the one field that never defaults.
	ErrMissingStatus = errors.New("record has no status code")

	errNotObject = errors.New("not a JSON object")
)

// Nginx combined and Apache common formats. The combined format is the
// common format plus the quoted referer and user-agent fields, so it must
// be tried first. A "-" in the bytes field means no body was sent.
var (
	nginxPattern = regexp.MustCompile(`^(?P<host>\S+) - (?P<user>\S+) \[(?P<time>[^\]]+)\] "(?P<method>\S+) (?P<path>\S+) (?P<protocol>\S+)" (?P<status>\d+) (?P<bytes>\d+|-) "(?P<referer>[^"]*)" "(?P<agent>[^"]*)"`)

	apachePattern = regexp.MustCompile(`^(?P<host>\S+) - (?P<user>\S+) \[(?P<time>[^\]]+)\] "(?P<method>\S+) (?P<path>\S+) (?P<protocol>\S+)" (?P<status>\d+) (?P<bytes>\d+|-)`)
)

// Parser normalizes raw access-log lines into Events. It is cheap to
// construct and safe to reuse across an entire run.
type Parser struct {
	pool fastjson.ParserPool
}

func NewParser() *Parser {
	return &Parser{}
}

// ParseLine converts one raw line into an Event. Formats are tried in
// order: JSON object, nginx combined, Apache common. A line that fits no
// format returns ErrUnrecognizedFormat; a JSON record without a status
// returns ErrMissingStatus. Both are recoverable per-line failures.
func (p *Parser) ParseLine(line string) (Event, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Event{}, ErrUnrecognizedFormat
	}

	// 1. JSON lines
	if line[0] == '{' {
		ev, err := p.parseJSON(line)
		if err == nil {
			return ev, nil
		}
		if errors.Is(err, ErrMissingStatus) {
			return Event{}, err
		}
		// Malformed JSON falls through to the text formats.
	}

	// 2. Nginx combined
	if ev, ok := parseCombined(line, nginxPattern); ok {
		return ev, nil
	}

	// 3. Apache common
	if ev, ok := parseCombined(line, apachePattern); ok {
		return ev, nil
	}

	return Event{}, ErrUnrecognizedFormat
}

func (p *Parser) parseJSON(line string) (Event, error) {
	pj := p.pool.Get()
	defer p.pool.Put(pj)

	v, err := pj.Parse(line)
	if err != nil {
		return Event{}, err
	}
	if v.Type() != fastjson.TypeObject {
		return Event{}, errNotObject
	}

	status, err := jsonStatus(v)
	if err != nil {
		return Event{}, err
	}

	ev := Event{
		Method: "GET",
		Path:   "/",
		Status: status,
	}
	if m := v.GetStringBytes("method"); len(m) > 0 {
		ev.Method = string(m)
	}
	if pth := v.GetStringBytes("path"); len(pth) > 0 {
		ev.Path = string(pth)
	}
	if b := jsonNumber(v, "bytes"); b > 0 {
		ev.Bytes = int64(b)
	}
	if rt := jsonNumber(v, "response_time"); rt > 0 {
		ev.ResponseTime = rt
	}
	return ev, nil
}

// jsonStatus extracts the status code, tolerating codes encoded as strings
// ("404"). Anything else is ErrMissingStatus.
func jsonStatus(v *fastjson.Value) (int, error) {
	sv := v.Get("status")
	if sv == nil {
		return 0, ErrMissingStatus
	}
	switch sv.Type() {
	case fastjson.TypeNumber:
		f, err := sv.Float64()
		if err != nil {
			return 0, ErrMissingStatus
		}
		return int(f), nil
	case fastjson.TypeString:
		n, err := strconv.Atoi(strings.TrimSpace(string(sv.GetStringBytes())))
		if err != nil {
			return 0, ErrMissingStatus
		}
		return n, nil
	default:
		return 0, ErrMissingStatus
	}
}

// jsonNumber reads an optional numeric field. Missing, malformed and
// negative values all collapse to zero, as do values too large for an
// int64.
func jsonNumber(v *fastjson.Value, key string) float64 {
	fv := v.Get(key)
	if fv == nil {
		return 0
	}

	var (
		f   float64
		err error
	)
	switch fv.Type() {
	case fastjson.TypeNumber:
		f, err = fv.Float64()
	case fastjson.TypeString:
		f, err = strconv.ParseFloat(strings.TrimSpace(string(fv.GetStringBytes())), 64)
	default:
		return 0
	}

	// 1<<63 is the first float64 past math.MaxInt64; values at or beyond
	// it do not fit the int64 bytes field.
	if err != nil || math.IsNaN(f) || f < 0 || f >= 1<<63 {
		return 0
	}
	return f
}

func parseCombined(line string, re *regexp.Regexp) (Event, bool) {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return Event{}, false
	}

	status, err := strconv.Atoi(m[re.SubexpIndex("status")])
	if err != nil {
		return Event{}, false
	}

	ev := Event{
		Method: m[re.SubexpIndex("method")],
		Path:   m[re.SubexpIndex("path")],
		Status: status,
	}
	if b := m[re.SubexpIndex("bytes")]; b != "-" {
		if n, err := strconv.ParseInt(b, 10, 64); err == nil {
			ev.Bytes = n
		}
	}
	return ev, true
}
