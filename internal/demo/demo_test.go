package demo

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mizrahidaniel/api-sonification/internal/accesslog"
)

func TestWriteSampleLogDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	if err := WriteSampleLog(&a); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := WriteSampleLog(&b); err != nil {
		t.Fatalf("second write: %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("two sample logs differ")
	}

	lines := strings.Count(a.String(), "\n")
	if lines != TotalRequests() {
		t.Errorf("sample has %d lines, TotalRequests says %d", lines, TotalRequests())
	}
	if TotalRequests() != 58 {
		t.Errorf("TotalRequests = %d, want 58", TotalRequests())
	}
}

func TestSampleLogParsesCompletely(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSampleLog(&buf); err != nil {
		t.Fatalf("write sample: %v", err)
	}

	events, skipped, err := accesslog.ReadAll(&buf, 0)
	if err != nil {
		t.Fatalf("ReadAll error: %v", err)
	}
	if skipped != 0 {
		t.Fatalf("sample log has %d unparseable lines", skipped)
	}
	if len(events) != TotalRequests() {
		t.Fatalf("parsed %d events, want %d", len(events), TotalRequests())
	}

	counts := make(map[string]int)
	for _, ev := range events {
		counts[ev.Class()]++
	}
	want := map[string]int{
		accesslog.ClassSuccess:     35,
		accesslog.ClassRedirect:    5,
		accesslog.ClassClientError: 10,
		accesslog.ClassServerError: 8,
	}
	for class, n := range want {
		if counts[class] != n {
			t.Errorf("class %s: %d events, want %d", class, counts[class], n)
		}
	}
}

func TestGenerate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo_access.log")
	if err := Generate(path); err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	rc, err := accesslog.Open(path)
	if err != nil {
		t.Fatalf("open generated log: %v", err)
	}
	defer rc.Close()

	events, skipped, err := accesslog.ReadAll(rc, 0)
	if err != nil || skipped != 0 {
		t.Fatalf("generated log unreadable: err=%v skipped=%d", err, skipped)
	}
	if len(events) != TotalRequests() {
		t.Errorf("parsed %d events, want %d", len(events), TotalRequests())
	}
}

func TestDescribeCoversEveryPhase(t *testing.T) {
	guide := Describe()
	if len(guide) != len(phases) {
		t.Fatalf("guide has %d lines, want %d", len(guide), len(phases))
	}
	for i, line := range guide {
		if !strings.Contains(line, "requests:") {
			t.Errorf("guide line %d looks wrong: %q", i, line)
		}
	}
}
