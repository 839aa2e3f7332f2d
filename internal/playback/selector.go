package playback

// Selector holds the primary and secondary (translation) tracks and the
// flag saying which one playback currently follows. The other components
// only ever see Current(), so they stay agnostic to the switch.
type Selector struct {
	primary      *Track
	secondary    *Track
	useSecondary bool
}

func NewSelector(primary, secondary *Track) *Selector {
	return &Selector{primary: primary, secondary: secondary}
}

// Current returns the track playback follows right now. May be nil when
// the selected stream was never loaded; Track methods tolerate nil.
func (s *Selector) Current() *Track {
	if s.useSecondary {
		return s.secondary
	}
	return s.primary
}

func (s *Selector) Secondary() bool {
	return s.useSecondary
}

// HasSecondary reports whether a translation stream is loaded at all.
func (s *Selector) HasSecondary() bool {
	return s.secondary.Len() > 0
}

// Select switches which stream is current. It mutates neither track;
// callers must recompute the active index against the new track
// immediately (Engine.SelectTrack does) so the highlight never goes
// stale across a switch.
func (s *Selector) Select(secondary bool) {
	s.useSecondary = secondary
}

// SetPrimary and SetSecondary replace a stream wholesale, e.g. after a
// re-import or a timeline shift.
func (s *Selector) SetPrimary(t *Track)   { s.primary = t }
func (s *Selector) SetSecondary(t *Track) { s.secondary = t }
