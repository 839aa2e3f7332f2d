package playback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func advance(t *testing.T, tr *Tracker, track *Track, at float64) {
	t.Helper()
	_, ok := tr.Advance(track, at)
	require.False(t, ok, "unexpected seek request at %v", at)
}

func TestTrackerRetainsLineThroughGap(t *testing.T) {
	track := NewTrack([]TimedLine{
		line("a", 0, 1),
		line("b", 2, 3),
	})
	tr := NewTracker()

	advance(t, tr, track, 0.5)
	assert.Equal(t, 0, tr.Index())

	// In the gap the previous line stays active; no blank flicker.
	advance(t, tr, track, 1.5)
	assert.Equal(t, 0, tr.Index())

	advance(t, tr, track, 2.5)
	assert.Equal(t, 1, tr.Index())
}

func TestTrackerBoundarySampleMovesToNextLine(t *testing.T) {
	track := NewTrack([]TimedLine{
		line("a", 0, 2),
		line("b", 2, 4),
	})
	tr := NewTracker()

	advance(t, tr, track, 1)
	require.Equal(t, 0, tr.Index())

	// End is exclusive, start inclusive: exactly 2 belongs to line b.
	advance(t, tr, track, 2)
	assert.Equal(t, 1, tr.Index())
}

func TestTrackerStaysNoneOutsideAllLines(t *testing.T) {
	track := NewTrack([]TimedLine{line("a", 5, 6)})
	tr := NewTracker()

	advance(t, tr, track, 1)
	assert.Equal(t, -1, tr.Index())
	advance(t, tr, track, 10)
	assert.Equal(t, -1, tr.Index())
}

func TestTrackerSeekBackwardReactivatesEarlierLine(t *testing.T) {
	track := NewTrack([]TimedLine{
		line("a", 0, 1),
		line("b", 2, 3),
	})
	tr := NewTracker()

	advance(t, tr, track, 2.5)
	require.Equal(t, 1, tr.Index())

	advance(t, tr, track, 0.5)
	assert.Equal(t, 0, tr.Index())
}

func TestTrackerRepeatRewindsAtLineEnd(t *testing.T) {
	track := NewTrack([]TimedLine{
		line("a", 0, 2),
		line("b", 2, 4),
	})
	tr := NewTracker()
	tr.SetRepeat(true)

	advance(t, tr, track, 1)
	require.Equal(t, 0, tr.Index())

	// Crossing the active line's end requests a rewind and keeps the
	// line active instead of advancing to the next one.
	seekTo, ok := tr.Advance(track, 2.3)
	require.True(t, ok)
	assert.Equal(t, 0.0, seekTo)
	assert.Equal(t, 0, tr.Index())
}

func TestTrackerRepeatRewindsAcrossGap(t *testing.T) {
	track := NewTrack([]TimedLine{
		line("a", 1, 2),
		line("b", 5, 6),
	})
	tr := NewTracker()
	tr.SetRepeat(true)

	advance(t, tr, track, 1.5)
	require.Equal(t, 0, tr.Index())

	// Past the end and into the gap still counts as crossing the loop
	// boundary.
	seekTo, ok := tr.Advance(track, 3)
	require.True(t, ok)
	assert.Equal(t, 1.0, seekTo)
	assert.Equal(t, 0, tr.Index())
}

func TestTrackerRepeatOffAdvancesNormally(t *testing.T) {
	track := NewTrack([]TimedLine{
		line("a", 0, 2),
		line("b", 2, 4),
	})
	tr := NewTracker()

	advance(t, tr, track, 1)
	advance(t, tr, track, 2.3)
	assert.Equal(t, 1, tr.Index())
}

func TestTrackerReset(t *testing.T) {
	track := NewTrack([]TimedLine{line("a", 0, 1)})
	tr := NewTracker()
	advance(t, tr, track, 0.5)
	require.Equal(t, 0, tr.Index())

	tr.Reset()
	assert.Equal(t, -1, tr.Index())
}
