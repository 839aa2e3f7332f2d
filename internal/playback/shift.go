package playback

// Shift returns a new track with every line's start and end moved by
// offset seconds (negative to pull lines earlier). The input track is
// left untouched so a reload restores the previous timing, and no
// clamping is applied; lines may end up with negative times and callers
// decide how to treat those when persisting or playing.
func Shift(track *Track, offset float64) *Track {
	lines := track.Lines()
	shifted := make([]TimedLine, len(lines))
	for i, line := range lines {
		line.Start += offset
		line.End += offset
		shifted[i] = line
	}
	// A uniform offset preserves order, so the sort in NewTrack is a
	// no-op here.
	return NewTrack(shifted)
}
