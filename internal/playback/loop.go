package playback

// loop state for UI affordances
type LoopState int

const (
	LoopOff    LoopState = iota // no points set
	LoopArmed                   // point A marked, waiting for B
	LoopActive                  // both points set, loop running
)

func (s LoopState) String() string {
	switch s {
	case LoopArmed:
		return "armed"
	case LoopActive:
		return "active"
	default:
		return "off"
	}
}

// Loop implements the manual A-B range loop. A single Toggle action
// cycles through marking A, marking B, and clearing both.
type Loop struct {
	pointA float64
	pointB float64
	hasA   bool
	hasB   bool
}

func NewLoop() *Loop {
	return &Loop{}
}

// Toggle advances the loop cycle at the given playback time and returns
// the resulting state: off -> A marked -> A+B marked -> off.
//
// If the user scrubbed backward between presses the second point lands
// before the first; the points are swapped so the loop always runs over
// the earlier-to-later range. A raw comparison would re-seek to A on
// every tick and pin playback there.
func (l *Loop) Toggle(at float64) LoopState {
	switch {
	case !l.hasA:
		l.pointA = at
		l.hasA = true
	case !l.hasB:
		l.pointB = at
		l.hasB = true
		if l.pointB < l.pointA {
			l.pointA, l.pointB = l.pointB, l.pointA
		}
	default:
		l.hasA = false
		l.hasB = false
	}
	return l.State()
}

func (l *Loop) State() LoopState {
	switch {
	case l.hasA && l.hasB:
		return LoopActive
	case l.hasA:
		return LoopArmed
	default:
		return LoopOff
	}
}

// Points returns the loop endpoints; a or b is meaningful only when the
// corresponding flag is true.
func (l *Loop) Points() (a, b float64, hasA, hasB bool) {
	return l.pointA, l.pointB, l.hasA, l.hasB
}

// Clear drops both points.
func (l *Loop) Clear() {
	l.hasA = false
	l.hasB = false
}

// Check inspects one playback time sample. When the loop is active and
// the position has reached point B, it returns point A as a seek target
// with ok true. The caller seeks and stops processing that sample; the
// tracker reacts to the rewound position on the next one.
func (l *Loop) Check(at float64) (seekTo float64, ok bool) {
	if l.hasA && l.hasB && at >= l.pointB {
		return l.pointA, true
	}
	return 0, false
}
