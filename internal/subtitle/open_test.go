package subtitle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseSRT(t *testing.T) {
	content := `1
00:00:01,000 --> 00:00:04,000
Hello, world!

2
00:00:05,500 --> 00:00:08,200
This is a test.
With multiple lines.

3
00:00:10,000 --> 00:00:12,500
Final subtitle.
`
	tmpDir := t.TempDir()
	srtPath := filepath.Join(tmpDir, "test.srt")
	if err := os.WriteFile(srtPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	sub, err := Open(srtPath)
	if err != nil {
		t.Fatalf("failed to open SRT file: %v", err)
	}

	if sub.Format != string(FormatSRT) {
		t.Errorf("expected format srt, got %s", sub.Format)
	}
	if len(sub.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(sub.Entries))
	}

	if sub.Entries[0].StartTime != 1*time.Second {
		t.Errorf(
			"entry 0: expected start 1s, got %v",
			sub.Entries[0].StartTime,
		)
	}
	if sub.Entries[0].EndTime != 4*time.Second {
		t.Errorf("entry 0: expected end 4s, got %v", sub.Entries[0].EndTime)
	}
	if sub.Entries[0].Text != "Hello, world!" {
		t.Errorf(
			"entry 0: expected 'Hello, world!', got %q",
			sub.Entries[0].Text,
		)
	}

	expectedText := "This is a test.\nWith multiple lines."
	if sub.Entries[1].Text != expectedText {
		t.Errorf(
			"entry 1: expected %q, got %q",
			expectedText,
			sub.Entries[1].Text,
		)
	}
}

func TestParseVTT(t *testing.T) {
	content := `WEBVTT

NOTE this block is skipped
still part of the note

1
00:00:01.000 --> 00:00:04.000
Hello, world!

00:05.500 --> 00:08.200
Short timestamps work too.
`
	parser := &VTTParser{}
	sub, err := parser.Parse(strings.NewReader(content))
	if err != nil {
		t.Fatalf("failed to parse VTT: %v", err)
	}

	if len(sub.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(sub.Entries))
	}
	if sub.Entries[0].Text != "Hello, world!" {
		t.Errorf("entry 0: got %q", sub.Entries[0].Text)
	}
	if sub.Entries[1].StartTime != 5500*time.Millisecond {
		t.Errorf(
			"entry 1: expected start 5.5s, got %v",
			sub.Entries[1].StartTime,
		)
	}
}

func TestParseLRC(t *testing.T) {
	content := `[ar:Some Artist]
[ti:Some Title]
[00:12.00]First line
[00:17.20]Second line
[00:21.100]Third line

[01:02.05][02:10.00]Repeated chorus
`
	parser := &LRCParser{}
	sub, err := parser.Parse(strings.NewReader(content))
	if err != nil {
		t.Fatalf("failed to parse LRC: %v", err)
	}

	if len(sub.Entries) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(sub.Entries))
	}
	if sub.Entries[0].StartTime != 12*time.Second {
		t.Errorf("entry 0: expected start 12s, got %v", sub.Entries[0].StartTime)
	}
	// Each line ends where the next begins.
	if sub.Entries[0].EndTime != 17200*time.Millisecond {
		t.Errorf("entry 0: expected end 17.2s, got %v", sub.Entries[0].EndTime)
	}
	// Three-digit fraction is milliseconds.
	if sub.Entries[2].StartTime != 21100*time.Millisecond {
		t.Errorf("entry 2: expected start 21.1s, got %v", sub.Entries[2].StartTime)
	}
	if sub.Entries[3].Text != "Repeated chorus" ||
		sub.Entries[4].Text != "Repeated chorus" {
		t.Errorf("repeated tags should yield one entry per timestamp")
	}
	// Final line gets the fixed tail duration.
	last := sub.Entries[4]
	if last.EndTime != last.StartTime+lrcLastLineDuration {
		t.Errorf("last entry: expected end %v, got %v",
			last.StartTime+lrcLastLineDuration, last.EndTime)
	}
}

func TestOpenUnsupportedFormat(t *testing.T) {
	_, err := Open("whatever.sub")
	if err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestParserForRejectsUnknownFormat(t *testing.T) {
	_, err := ParserFor(Format("ass"))
	if err == nil {
		t.Error("expected error for unknown format")
	}
}
