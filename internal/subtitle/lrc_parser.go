package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// duration given to the final lyric line, which has no successor to end it
const lrcLastLineDuration = 5 * time.Second

// LRC lyric format. Lines carry only a start tag; each line ends where
// the next one begins.
type LRCParser struct{}

var lrcTagRegex = regexp.MustCompile(`\[(\d{1,3}):(\d{2})(?:\.(\d{1,3}))?\]`)

func (p *LRCParser) Parse(r io.Reader) (*Subtitle, error) {
	type timedText struct {
		at   time.Duration
		text string
	}
	var stamped []timedText

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		line := scanner.Text()
		lineNum++
		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		tags := lrcTagRegex.FindAllStringSubmatch(line, -1)
		if len(tags) == 0 {
			// Metadata tags like [ar:], [ti:] and plain text fall here.
			continue
		}
		text := strings.TrimSpace(lrcTagRegex.ReplaceAllString(line, ""))

		// A line may carry several tags when the same lyric repeats.
		for _, tag := range tags {
			at, err := parseLRCTimestamp(tag[1], tag[2], tag[3])
			if err != nil {
				return nil, fmt.Errorf(
					"invalid timestamp at line %d: %w", lineNum, err,
				)
			}
			stamped = append(stamped, timedText{at: at, text: text})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading LRC data: %w", err)
	}

	sort.SliceStable(stamped, func(i, j int) bool {
		return stamped[i].at < stamped[j].at
	})

	entries := make([]Entry, 0, len(stamped))
	for i, s := range stamped {
		end := s.at + lrcLastLineDuration
		if i+1 < len(stamped) {
			end = stamped[i+1].at
		}
		entries = append(entries, Entry{
			Index:     i + 1,
			StartTime: s.at,
			EndTime:   end,
			Text:      s.text,
		})
	}

	return &Subtitle{Entries: entries, Format: string(FormatLRC)}, nil
}

func parseLRCTimestamp(minutes, seconds, fraction string) (time.Duration, error) {
	m, err := strconv.Atoi(minutes)
	if err != nil {
		return 0, err
	}
	s, err := strconv.Atoi(seconds)
	if err != nil {
		return 0, err
	}

	var millis int
	if fraction != "" {
		// Two digits are centiseconds, three are milliseconds.
		f, err := strconv.Atoi(fraction)
		if err != nil {
			return 0, err
		}
		switch len(fraction) {
		case 1:
			millis = f * 100
		case 2:
			millis = f * 10
		default:
			millis = f
		}
	}

	return time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(millis)*time.Millisecond, nil
}
