package state

// Source tags where a pointer event came from.
type Source int

const (
	SourceMouse Source = iota
	SourceTouch
)

func (s Source) String() string {
	switch s {
	case SourceMouse:
		return "mouse"
	case SourceTouch:
		return "touch"
	}
	return "unknown"
}

// Phase is the gesture stage an event reports.
type Phase int

const (
	PhasePress Phase = iota
	PhaseMove
	PhaseRelease
	PhaseLeave
)

func (p Phase) String() string {
	switch p {
	case PhasePress:
		return "press"
	case PhaseMove:
		return "move"
	case PhaseRelease:
		return "release"
	case PhaseLeave:
		return "leave"
	}
	return "unknown"
}

// PointerEvent is a raw input event in client coordinates.
// Mouse events carry Client; touch events carry Touches, of which only the
// first is used.
type PointerEvent struct {
	Source  Source
	Phase   Phase
	Client  Point
	Touches []Point
}

// MouseEvent builds a mouse PointerEvent.
func MouseEvent(phase Phase, client Point) PointerEvent {
	return PointerEvent{Source: SourceMouse, Phase: phase, Client: client}
}

// TouchEvent builds a touch PointerEvent.
func TouchEvent(phase Phase, touches ...Point) PointerEvent {
	return PointerEvent{Source: SourceTouch, Phase: phase, Touches: touches}
}

// clientPos returns the single point this event tracks.
func (e PointerEvent) clientPos() (Point, bool) {
	switch e.Source {
	case SourceMouse:
		return e.Client, true
	case SourceTouch:
		if len(e.Touches) == 0 {
			return Point{}, false
		}
		return e.Touches[0], true
	}
	return Point{}, false
}

// Normalize maps the event into buffer coordinates: the surface's on-screen
// origin is subtracted and the result multiplied by the display scale.
// The returned action no longer knows which device produced it.
func (e PointerEvent) Normalize(origin Point, scale float64) Pointer {
	if scale <= 0 {
		scale = 1
	}
	p, ok := e.clientPos()
	if !ok {
		return Pointer{Phase: e.Phase}
	}
	return Pointer{Phase: e.Phase, At: p.Sub(origin).Scale(scale), HasPos: true}
}
