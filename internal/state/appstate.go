package state

// AppState is the whole UI state. Values are never modified in place;
// Reduce returns a new one for every action.
type AppState struct {
	Tools    ToolSettings
	Stroke   Stroke
	MenuOpen bool
	// LastSeq is the sequence number of the most recently started stroke.
	LastSeq uint64
}

// NewAppState returns the initial state for the given tool settings.
func NewAppState(tools ToolSettings) AppState {
	tools.Width = ClampWidth(tools.Width)
	tools.Color.A = 255
	return AppState{Tools: tools}
}

// Drawing reports whether a stroke is in progress.
func (s AppState) Drawing() bool { return s.Stroke.Active }

// Reduce applies a to s and returns the next state together with the side
// effect the caller must carry out. Reduce itself has no side effects.
func Reduce(s AppState, a Action) (AppState, Effect) {
	switch a := a.(type) {
	case SetColor:
		c, err := ParseHexColor(a.Hex)
		if err != nil {
			return s, Effect{}
		}
		s.Tools.Color = c
		return s, Effect{}

	case SetBrushWidth:
		s.Tools.Width = ClampWidth(a.Width)
		return s, Effect{}

	case ToggleMenu:
		s.MenuOpen = !s.MenuOpen
		return s, Effect{}

	case CloseMenu:
		s.MenuOpen = false
		return s, Effect{}

	case Pointer:
		return reducePointer(s, a)

	case Clear:
		return s, Effect{Kind: EffectClear}

	case Export:
		return s, Effect{Kind: EffectExport, Format: a.Format}

	case ExportPDF:
		return s, Effect{Kind: EffectExportPDF}

	case Resize:
		s.Stroke = Stroke{}
		return s, Effect{Kind: EffectResize, Width: a.Width, Height: a.Height}
	}
	return s, Effect{}
}

func reducePointer(s AppState, p Pointer) (AppState, Effect) {
	switch p.Phase {
	case PhasePress:
		if !p.HasPos {
			return s, Effect{}
		}
		s.LastSeq++
		s.Stroke = Stroke{
			Active: true,
			Seq:    s.LastSeq,
			Pos:    p.At,
			Color:  s.Tools.Color,
			Width:  s.Tools.Width,
		}
		return s, Effect{Kind: EffectBegin, Stroke: s.Stroke}

	case PhaseMove:
		if !s.Stroke.Active || !p.HasPos {
			return s, Effect{}
		}
		s.Stroke.Pos = p.At
		return s, Effect{Kind: EffectExtend, Stroke: s.Stroke, To: p.At}

	case PhaseRelease, PhaseLeave:
		if !s.Stroke.Active {
			return s, Effect{}
		}
		ended := s.Stroke
		s.Stroke = Stroke{}
		return s, Effect{Kind: EffectEnd, Stroke: ended}
	}
	return s, Effect{}
}
