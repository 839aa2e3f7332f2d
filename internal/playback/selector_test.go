package playback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectorCurrent(t *testing.T) {
	primary := NewTrack([]TimedLine{line("p", 0, 1)})
	secondary := NewTrack([]TimedLine{line("s", 0, 1)})
	s := NewSelector(primary, secondary)

	assert.Same(t, primary, s.Current())
	assert.False(t, s.Secondary())

	s.Select(true)
	assert.Same(t, secondary, s.Current())
	assert.True(t, s.Secondary())

	s.Select(false)
	assert.Same(t, primary, s.Current())
}

func TestSelectorWithoutSecondary(t *testing.T) {
	s := NewSelector(NewTrack([]TimedLine{line("p", 0, 1)}), nil)
	assert.False(t, s.HasSecondary())

	// Selecting a missing stream yields a nil track, which lookups
	// tolerate.
	s.Select(true)
	assert.Equal(t, -1, s.Current().Lookup(0.5))
}

func TestSelectorReplaceTrack(t *testing.T) {
	s := NewSelector(NewTrack([]TimedLine{line("p", 0, 1)}), nil)
	replacement := NewTrack([]TimedLine{line("p2", 5, 6)})
	s.SetPrimary(replacement)
	assert.Same(t, replacement, s.Current())
}
