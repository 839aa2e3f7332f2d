package playback

import (
	"sort"
)

// one timed subtitle/lyric line
type TimedLine struct {
	ID    string
	Start float64 // seconds
	End   float64 // seconds
	Text  string
}

// Covers reports whether the line's interval contains the given time.
// Start is inclusive, End exclusive.
func (l TimedLine) Covers(at float64) bool {
	return at >= l.Start && at < l.End
}

// ordered collection of timed lines for one subtitle stream
type Track struct {
	lines []TimedLine
}

// NewTrack copies the lines and sorts them ascending by start time.
// Lookup depends on that order; building it here keeps it an invariant
// rather than a caller obligation.
func NewTrack(lines []TimedLine) *Track {
	sorted := make([]TimedLine, len(lines))
	copy(sorted, lines)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})
	return &Track{lines: sorted}
}

func (t *Track) Len() int {
	if t == nil {
		return 0
	}
	return len(t.lines)
}

// Line returns the line at index i. Panics on out-of-range, like slice
// access; callers index only with values produced by this package.
func (t *Track) Line(i int) TimedLine {
	return t.lines[i]
}

// Lines returns the underlying ordered slice. Callers must not mutate it.
func (t *Track) Lines() []TimedLine {
	if t == nil {
		return nil
	}
	return t.lines
}

// Lookup returns the index of the line covering the given time, or -1 if
// no line covers it. Binary search over the start-sorted lines, so a full
// audiobook track stays cheap to query every tick.
//
// When imported data overlaps, more than one line may cover the time; the
// lowest such index is returned so results are stable across builds.
func (t *Track) Lookup(at float64) int {
	if t == nil {
		return -1
	}
	low, high := 0, len(t.lines)-1
	found := -1
	for low <= high {
		mid := (low + high) / 2
		line := t.lines[mid]
		if line.Covers(at) {
			found = mid
			break
		}
		if at < line.Start {
			high = mid - 1
		} else {
			low = mid + 1
		}
	}
	if found == -1 {
		return -1
	}
	// Prefer the first covering line when neighbors overlap.
	for found > 0 && t.lines[found-1].Covers(at) {
		found--
	}
	return found
}
