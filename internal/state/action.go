package state

// Action is one input to Reduce. The concrete types below are the only
// implementations.
type Action interface {
	isAction()
}

// SetColor changes the tool color; Hex is "#rrggbb" or "#rgb".
type SetColor struct{ Hex string }

// SetBrushWidth changes the tool width, clamped to [1,50].
type SetBrushWidth struct{ Width int }

type ToggleMenu struct{}

type CloseMenu struct{}

// Pointer is a normalized pointer event in buffer coordinates.
// HasPos is false for events that carry no point, such as a touch end.
type Pointer struct {
	Phase  Phase
	At     Point
	HasPos bool
}

type Clear struct{}

// Export requests an encoded download in Format ("png", "jpeg", "webp").
type Export struct{ Format string }

type ExportPDF struct{}

// Resize reports a new display size in buffer pixels.
type Resize struct{ Width, Height int }

func (SetColor) isAction()      {}
func (SetBrushWidth) isAction() {}
func (ToggleMenu) isAction()    {}
func (CloseMenu) isAction()     {}
func (Pointer) isAction()       {}
func (Clear) isAction()         {}
func (Export) isAction()        {}
func (ExportPDF) isAction()     {}
func (Resize) isAction()        {}

// EffectKind is the side effect a reduction asks for.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectBegin
	EffectExtend
	EffectEnd
	EffectClear
	EffectExport
	EffectExportPDF
	EffectResize
)

func (k EffectKind) String() string {
	switch k {
	case EffectNone:
		return "none"
	case EffectBegin:
		return "begin"
	case EffectExtend:
		return "extend"
	case EffectEnd:
		return "end"
	case EffectClear:
		return "clear"
	case EffectExport:
		return "export"
	case EffectExportPDF:
		return "export-pdf"
	case EffectResize:
		return "resize"
	}
	return "unknown"
}

// Effect describes what the board must do to the surface or exporter after
// a state transition. Only the fields relevant to Kind are set.
type Effect struct {
	Kind   EffectKind
	Stroke Stroke // Begin, Extend, End
	To     Point  // Extend
	Format string // Export
	Width  int    // Resize
	Height int    // Resize
}
