package accesslog

import (
	"errors"
	"testing"
)

func TestParseLineJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Event
	}{
		{
			name:  "full record",
			input: `{"method":"POST","path":"/api/process","status":500,"bytes":2048,"response_time":1.32}`,
			expected: Event{
				Method:       "POST",
				Path:         "/api/process",
				Status:       500,
				Bytes:        2048,
				ResponseTime: 1.32,
			},
		},
		{
			name:     "defaults for optional fields",
			input:    `{"status":204}`,
			expected: Event{Method: "GET", Path: "/", Status: 204},
		},
		{
			name:     "status encoded as string",
			input:    `{"status":"404","path":"/missing"}`,
			expected: Event{Method: "GET", Path: "/missing", Status: 404},
		},
		{
			name:     "negative bytes collapse to zero",
			input:    `{"status":200,"bytes":-512}`,
			expected: Event{Method: "GET", Path: "/", Status: 200},
		},
		{
			name:     "garbage numeric fields collapse to zero",
			input:    `{"status":200,"bytes":"lots","response_time":"slow"}`,
			expected: Event{Method: "GET", Path: "/", Status: 200},
		},
		{
			name:     "bytes beyond int64 collapse to zero",
			input:    `{"status":200,"bytes":1e300}`,
			expected: Event{Method: "GET", Path: "/", Status: 200},
		},
		{
			name:     "non-finite numeric strings collapse to zero",
			input:    `{"status":200,"bytes":"Inf","response_time":"NaN"}`,
			expected: Event{Method: "GET", Path: "/", Status: 200},
		},
	}

	p := NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := p.ParseLine(tt.input)
			if err != nil {
				t.Fatalf("ParseLine(%q) error: %v", tt.input, err)
			}
			if ev != tt.expected {
				t.Errorf("got %+v, want %+v", ev, tt.expected)
			}
		})
	}
}

func TestParseLineNginx(t *testing.T) {
	p := NewParser()

	line := `192.168.1.10 - alice [10/Oct/2024:13:55:36 +0000] "GET /api/users HTTP/1.1" 200 1234 "https://example.com/" "Mozilla/5.0"`
	ev, err := p.ParseLine(line)
	if err != nil {
		t.Fatalf("ParseLine error: %v", err)
	}

	want := Event{Method: "GET", Path: "/api/users", Status: 200, Bytes: 1234}
	if ev != want {
		t.Errorf("got %+v, want %+v", ev, want)
	}
}

func TestParseLineApache(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Event
	}{
		{
			name:     "common format",
			input:    `10.0.0.5 - - [10/Oct/2024:13:55:36 +0000] "POST /api/process HTTP/1.0" 500 512`,
			expected: Event{Method: "POST", Path: "/api/process", Status: 500, Bytes: 512},
		},
		{
			name:     "dash bytes means no body",
			input:    `10.0.0.5 - - [10/Oct/2024:13:55:36 +0000] "GET /health HTTP/1.1" 204 -`,
			expected: Event{Method: "GET", Path: "/health", Status: 204, Bytes: 0},
		},
		{
			name:     "hostname instead of IP",
			input:    `edge-7.internal - - [10/Oct/2024:13:55:36 +0000] "GET /api/users HTTP/1.1" 301 98`,
			expected: Event{Method: "GET", Path: "/api/users", Status: 301, Bytes: 98},
		},
	}

	p := NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := p.ParseLine(tt.input)
			if err != nil {
				t.Fatalf("ParseLine(%q) error: %v", tt.input, err)
			}
			if ev != tt.expected {
				t.Errorf("got %+v, want %+v", ev, tt.expected)
			}
		})
	}
}

func TestParseLineFailures(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty line", "", ErrUnrecognizedFormat},
		{"plain text", "hello world", ErrUnrecognizedFormat},
		{"truncated access line", `192.168.1.10 - - [10/Oct/2024:13:55:36 +0000] "GET`, ErrUnrecognizedFormat},
		{"malformed JSON", `{"status": 200`, ErrUnrecognizedFormat},
		{"JSON without status", `{"method":"GET","path":"/"}`, ErrMissingStatus},
		{"JSON status not numeric", `{"status":"teapot"}`, ErrMissingStatus},
		{"JSON status null", `{"status":null}`, ErrMissingStatus},
	}

	p := NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.ParseLine(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseLine(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestEventClass(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{200, ClassSuccess},
		{204, ClassSuccess},
		{299, ClassSuccess},
		{301, ClassRedirect},
		{404, ClassClientError},
		{500, ClassServerError},
		{599, ClassServerError},
		{100, ClassOther},
		{42, ClassOther},
		{700, ClassOther},
		{0, ClassOther},
		{-1, ClassOther},
	}

	for _, tt := range tests {
		if got := (Event{Status: tt.status}).Class(); got != tt.want {
			t.Errorf("Class() for status %d = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestFilterMatches(t *testing.T) {
	ev := Event{Method: "POST", Path: "/api/orders/42", Status: 503}

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"zero filter matches all", Filter{}, true},
		{"class match", Filter{Class: ClassServerError}, true},
		{"class mismatch", Filter{Class: ClassSuccess}, false},
		{"method match is case-insensitive", Filter{Method: "post"}, true},
		{"method mismatch", Filter{Method: "GET"}, false},
		{"path substring", Filter{PathContains: "/orders"}, true},
		{"path mismatch", Filter{PathContains: "/users"}, false},
		{"all criteria must hold", Filter{Class: ClassServerError, Method: "GET"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(ev); got != tt.want {
				t.Errorf("Matches = %v, want %v", got, tt.want)
			}
		})
	}
}
