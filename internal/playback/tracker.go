package playback

// Tracker maintains the "currently active line" pointer for a track as
// playback time samples arrive.
//
// The active index is deliberately stateful, not derived from the clock:
// when playback sits in a silent gap between lines, the last active line
// stays active instead of flashing to nothing. Only a real line boundary
// moves the pointer.
type Tracker struct {
	index  int
	repeat bool
}

func NewTracker() *Tracker {
	return &Tracker{index: -1}
}

// Index returns the active line index, or -1 when no line has been
// active yet.
func (t *Tracker) Index() int {
	return t.index
}

// SetIndex overrides the active index directly. Used by navigation and
// track switching, which must not wait for the next time sample.
func (t *Tracker) SetIndex(i int) {
	t.index = i
}

// Repeat reports whether single-line repeat mode is on.
func (t *Tracker) Repeat() bool {
	return t.repeat
}

func (t *Tracker) SetRepeat(on bool) {
	t.repeat = on
}

// Reset clears the active pointer, e.g. when a track is unloaded.
func (t *Tracker) Reset() {
	t.index = -1
}

// Advance processes one playback time sample against the given track and
// updates the active index. If single-line repeat is on and playback ran
// past the end of the active line, Advance leaves the index in place and
// returns the line's start as a seek target with ok true.
func (t *Tracker) Advance(track *Track, at float64) (seekTo float64, ok bool) {
	candidate := track.Lookup(at)

	// Repeat check runs first: crossing the active line's end rewinds
	// instead of advancing.
	if t.repeat && t.index >= 0 && t.index < track.Len() {
		current := track.Line(t.index)
		if at > current.End && candidate != t.index {
			return current.Start, true
		}
	}

	if candidate != -1 && candidate != t.index {
		t.index = candidate
	}
	// candidate == -1: keep the previous index. A gap between lines is
	// not a transition.
	return 0, false
}
