package subtitle

import (
	"sort"
	"strconv"
	"time"

	"github.com/mgpai22/dhwani/internal/playback"
)

// Track converts the subtitle to a playback track: entry times become
// float64 seconds and every line gets a stable id from its position in
// the file.
func (s *Subtitle) Track() *playback.Track {
	lines := make([]playback.TimedLine, 0, len(s.Entries))
	for i, entry := range s.Entries {
		lines = append(lines, playback.TimedLine{
			ID:    strconv.Itoa(i + 1),
			Start: entry.StartTime.Seconds(),
			End:   entry.EndTime.Seconds(),
			Text:  entry.Text,
		})
	}
	return playback.NewTrack(lines)
}

// FromTrack converts a playback track back to a subtitle, e.g. for
// persisting a shifted timeline.
func FromTrack(track *playback.Track, format Format) *Subtitle {
	lines := track.Lines()
	entries := make([]Entry, 0, len(lines))
	for i, line := range lines {
		entries = append(entries, Entry{
			Index:     i + 1,
			StartTime: secondsToDuration(line.Start),
			EndTime:   secondsToDuration(line.End),
			Text:      line.Text,
		})
	}
	return &Subtitle{Entries: entries, Format: string(format)}
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

// summary of a subtitle's timing, shown by the info command
type Stats struct {
	Lines    int
	Start    time.Duration
	End      time.Duration
	Gaps     int // silent stretches between consecutive lines
	Overlaps int // consecutive lines whose intervals intersect
}

func (s *Subtitle) Stats() Stats {
	stats := Stats{Lines: len(s.Entries)}
	if len(s.Entries) == 0 {
		return stats
	}

	sorted := make([]Entry, len(s.Entries))
	copy(sorted, s.Entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime < sorted[j].StartTime
	})

	stats.Start = sorted[0].StartTime
	for _, entry := range sorted {
		if entry.EndTime > stats.End {
			stats.End = entry.EndTime
		}
	}
	for i := 1; i < len(sorted); i++ {
		switch {
		case sorted[i].StartTime > sorted[i-1].EndTime:
			stats.Gaps++
		case sorted[i].StartTime < sorted[i-1].EndTime:
			stats.Overlaps++
		}
	}
	return stats
}
