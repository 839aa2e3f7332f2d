// Package playback implements the subtitle-timeline synchronization
// engine: given time samples from an audio clock, it tracks which line
// is active, runs A-B and single-line loops, and steps between lines.
//
// Everything here is synchronous, single-goroutine state driven by
// HandleTimeUpdate; the only side effect is seeking the clock.
package playback

import (
	"github.com/mgpai22/dhwani/internal/logging"
)

// Engine wires the track selector, active-line tracker, loop controller
// and navigator into one per-tick pipeline. One engine serves however
// many views render its state; views never run their own copy of this
// logic.
type Engine struct {
	selector *Selector
	tracker  *Tracker
	loop     *Loop
	nav      *Navigator
	seeker   Seeker
	log      *logging.Logger

	pos float64 // last position seen or requested
}

// NewEngine builds an engine over the primary and optional secondary
// (translation) tracks. seeker receives position rewrites; log may be
// nil.
func NewEngine(primary, secondary *Track, seeker Seeker, log *logging.Logger) *Engine {
	if log == nil {
		log = logging.NewNop()
	}
	e := &Engine{
		selector: NewSelector(primary, secondary),
		tracker:  NewTracker(),
		loop:     NewLoop(),
		seeker:   seeker,
		log:      log,
	}
	// The navigator seeks through the engine so the remembered position
	// stays in step with every rewrite.
	e.nav = NewNavigator(engineSeeker{e})
	return e
}

type engineSeeker struct{ e *Engine }

func (s engineSeeker) Seek(seconds float64) { s.e.seek(seconds) }

func (e *Engine) seek(to float64) {
	e.pos = to
	e.seeker.Seek(to)
}

// HandleTimeUpdate processes one playback time sample. Loop boundaries
// are checked before the tracker so a rewind ends the tick; the tracker
// reacts to the rewound position on the next sample.
func (e *Engine) HandleTimeUpdate(at float64) {
	e.pos = at

	if to, ok := e.loop.Check(at); ok {
		e.log.Debugf("loop boundary at %.3fs, rewinding to %.3fs", at, to)
		e.seek(to)
		return
	}

	if to, ok := e.tracker.Advance(e.selector.Current(), at); ok {
		e.log.Debugf("repeating line %d from %.3fs", e.tracker.Index(), to)
		e.seek(to)
	}
}

// Position returns the last playback position the engine saw or
// requested.
func (e *Engine) Position() float64 {
	return e.pos
}

// ActiveIndex returns the active line index in the current track, or -1.
func (e *Engine) ActiveIndex() int {
	return e.tracker.Index()
}

// ActiveLine returns the active line, if any.
func (e *Engine) ActiveLine() (TimedLine, bool) {
	track := e.selector.Current()
	idx := e.tracker.Index()
	if idx < 0 || idx >= track.Len() {
		return TimedLine{}, false
	}
	return track.Line(idx), true
}

// Current returns the track playback currently follows.
func (e *Engine) Current() *Track {
	return e.selector.Current()
}

// StepForward jumps to the next line (or the first, before any line has
// been active).
func (e *Engine) StepForward() {
	e.nav.StepForward(e.selector.Current(), e.tracker)
}

// StepBackward jumps to the previous line, or scrubs back a few seconds
// when there is none.
func (e *Engine) StepBackward() {
	e.nav.StepBackward(e.selector.Current(), e.tracker, e.pos)
}

// ReplayCurrent restarts the active line.
func (e *Engine) ReplayCurrent() {
	e.nav.ReplayCurrent(e.selector.Current(), e.tracker, e.pos)
}

// ToggleLoop advances the A-B loop cycle at the current position.
func (e *Engine) ToggleLoop() LoopState {
	state := e.loop.Toggle(e.pos)
	e.log.Debugf("loop %s at %.3fs", state, e.pos)
	return state
}

// LoopState reports the A-B loop state for UI affordances.
func (e *Engine) LoopState() LoopState {
	return e.loop.State()
}

// ToggleRepeat flips single-line repeat mode and returns the new value.
func (e *Engine) ToggleRepeat() bool {
	on := !e.tracker.Repeat()
	e.tracker.SetRepeat(on)
	return on
}

// Repeat reports whether single-line repeat mode is on.
func (e *Engine) Repeat() bool {
	return e.tracker.Repeat()
}

// SelectTrack switches between the primary and secondary stream and
// recomputes the active line against the new track at the current
// position right away. Waiting for the next tick would leave the old
// track's highlight visible across the switch. Loop points and repeat
// mode are left alone.
func (e *Engine) SelectTrack(secondary bool) {
	if e.selector.Secondary() == secondary {
		return
	}
	e.selector.Select(secondary)
	e.tracker.SetIndex(e.selector.Current().Lookup(e.pos))
	e.log.Debugf("switched to %s track, active line %d",
		trackName(secondary), e.tracker.Index())
}

// UsingSecondary reports which stream is current.
func (e *Engine) UsingSecondary() bool {
	return e.selector.Secondary()
}

// HasSecondary reports whether a translation stream is loaded.
func (e *Engine) HasSecondary() bool {
	return e.selector.HasSecondary()
}

// ShiftCurrent moves every line of the current track by offset seconds
// and makes the shifted copy the live track, recomputing the active
// line. The new track is returned for the caller to persist as the new
// baseline.
func (e *Engine) ShiftCurrent(offset float64) *Track {
	shifted := Shift(e.selector.Current(), offset)
	if e.selector.Secondary() {
		e.selector.SetSecondary(shifted)
	} else {
		e.selector.SetPrimary(shifted)
	}
	e.tracker.SetIndex(shifted.Lookup(e.pos))
	e.log.Debugf("shifted %s track by %+.3fs", trackName(e.selector.Secondary()), offset)
	return shifted
}

func trackName(secondary bool) string {
	if secondary {
		return "secondary"
	}
	return "primary"
}
