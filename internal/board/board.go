// Package board ties the reducer to the raster surface and the exporter.
// Every UI callback ends up in Dispatch, which runs to completion before
// the next one.
package board

import (
	"fmt"
	"image"
	"io"
	"log"
	"path/filepath"

	"LocalCanvas/internal/export"
	"LocalCanvas/internal/state"
	"LocalCanvas/internal/surface"
)

type Board struct {
	state    state.AppState
	surface  *surface.Surface
	exporter *export.Exporter
	session  state.Session

	// OnChange is called after every dispatch with the new state.
	OnChange func(state.AppState)
	// OnStatus receives human readable results of clear/export commands.
	OnStatus func(string)
	// OnPaint is called whenever the buffer contents changed.
	OnPaint func()
}

func New(tools state.ToolSettings, exporter *export.Exporter) *Board {
	b := &Board{
		state:    state.NewAppState(tools),
		surface:  surface.New(),
		exporter: exporter,
		session:  state.NewSession(),
	}
	log.Printf("[BOARD] session %s started", b.session.ID)
	return b
}

func (b *Board) State() state.AppState { return b.state }

// Image returns a snapshot of the buffer, or nil before the first resize.
func (b *Board) Image() image.Image { return b.surface.Snapshot() }

// Size returns the buffer size in pixels.
func (b *Board) Size() (int, int) { return b.surface.Size() }

// Dispatch reduces a into the current state and carries out the effect.
func (b *Board) Dispatch(a state.Action) {
	next, eff := state.Reduce(b.state, a)
	b.state = next
	b.apply(eff)
	if b.OnChange != nil {
		b.OnChange(b.state)
	}
}

func (b *Board) apply(eff state.Effect) {
	switch eff.Kind {
	case state.EffectNone:
		return

	case state.EffectBegin:
		st := eff.Stroke
		b.surface.BeginStroke(st.Pos.X, st.Pos.Y, st.Color, st.Width)
		log.Printf("[BOARD] %s begin at (%.0f,%.0f) %s %dpx",
			b.session.StrokeID(st.Seq), st.Pos.X, st.Pos.Y, state.FormatHex(st.Color), st.Width)

	case state.EffectExtend:
		b.surface.ExtendStroke(eff.To.X, eff.To.Y)
		b.paint()

	case state.EffectEnd:
		b.surface.EndStroke()
		log.Printf("[BOARD] %s end", b.session.StrokeID(eff.Stroke.Seq))

	case state.EffectClear:
		if !b.surface.Ready() {
			return
		}
		b.surface.Clear()
		b.paint()
		b.status("Canvas cleared")

	case state.EffectResize:
		b.surface.Initialize(eff.Width, eff.Height)
		log.Printf("[BOARD] surface reset to %dx%d", eff.Width, eff.Height)
		b.paint()

	case state.EffectExport:
		img := b.surface.Snapshot()
		if img == nil {
			return
		}
		path, err := b.exporter.Export(img, eff.Format)
		b.reportExport(path, err)

	case state.EffectExportPDF:
		img := b.surface.Snapshot()
		if img == nil {
			return
		}
		path, err := b.exporter.ExportPDF(img)
		b.reportExport(path, err)
	}
}

func (b *Board) reportExport(path string, err error) {
	if err != nil {
		log.Printf("[EXPORT] failed: %v", err)
		b.status(fmt.Sprintf("Export failed: %v", err))
		return
	}
	b.status("Saved " + filepath.Base(path))
}

// ExportTo encodes the current buffer into w, for callers that picked
// their own destination.
func (b *Board) ExportTo(w io.Writer, format string) error {
	img := b.surface.Snapshot()
	if img == nil {
		return export.ErrNotReady
	}
	return export.Encode(w, img, export.ParseFormat(format))
}

func (b *Board) paint() {
	if b.OnPaint != nil {
		b.OnPaint()
	}
}

func (b *Board) status(s string) {
	if b.OnStatus != nil {
		b.OnStatus(s)
	}
}
