package playback

// fallback scrub distances when no line-relative jump applies
const (
	stepBackFallback = 5.0 // seconds
	replayFallback   = 3.0 // seconds
)

// Seeker is the single side effect this package performs: rewriting the
// playback position. Implementations are fire-and-forget; the next time
// sample reflects the post-seek position.
type Seeker interface {
	Seek(seconds float64)
}

// Navigator implements discrete line-to-line stepping. It updates the
// tracker index synchronously with each seek so the next time sample's
// gap-retention rule cannot snap the highlight back to the old line
// while the audio catches up.
type Navigator struct {
	seeker Seeker
}

func NewNavigator(seeker Seeker) *Navigator {
	return &Navigator{seeker: seeker}
}

// StepForward jumps to the start of the next line. Before any line has
// been active it jumps to the first line. At the last line it does
// nothing.
func (n *Navigator) StepForward(track *Track, tracker *Tracker) {
	if track.Len() == 0 {
		return
	}
	idx := tracker.Index()
	next := idx + 1
	if idx == -1 {
		next = 0
	}
	if next >= track.Len() {
		return
	}
	tracker.SetIndex(next)
	n.seeker.Seek(track.Line(next).Start)
}

// StepBackward jumps to the start of the previous line. With no previous
// line to target it falls back to scrubbing back a few seconds without
// touching the active index.
func (n *Navigator) StepBackward(track *Track, tracker *Tracker, at float64) {
	idx := tracker.Index()
	if idx > 0 && idx < track.Len() {
		prev := idx - 1
		tracker.SetIndex(prev)
		n.seeker.Seek(track.Line(prev).Start)
		return
	}
	n.seeker.Seek(at - stepBackFallback)
}

// ReplayCurrent restarts the active line from its start, or scrubs back
// slightly when nothing is active.
func (n *Navigator) ReplayCurrent(track *Track, tracker *Tracker, at float64) {
	idx := tracker.Index()
	if idx >= 0 && idx < track.Len() {
		n.seeker.Seek(track.Line(idx).Start)
		return
	}
	n.seeker.Seek(at - replayFallback)
}
