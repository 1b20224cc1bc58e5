// Package surface owns the raster buffer strokes are painted into.
//
// A Surface is not ready until Initialize has been called with a positive
// size; until then every operation is a silent no-op. Callers are UI
// callbacks that have nothing useful to do with an error.
package surface

import (
	"image"
	"image/color"
	"log"

	"github.com/gogpu/gg"

	"LocalCanvas/internal/state"
)

// Background is the fill used on initialize and clear.
var Background = gg.White

type Surface struct {
	dc     *gg.Context
	active bool
	last   state.Point
	color  color.NRGBA
	width  int
}

func New() *Surface {
	return &Surface{}
}

// Initialize sizes the buffer to the displayed pixel size and fills it
// white. Prior contents are always discarded, even when the size is
// unchanged. A non-positive size releases the buffer.
func (s *Surface) Initialize(width, height int) {
	s.active = false
	if width <= 0 || height <= 0 {
		if s.dc != nil {
			_ = s.dc.Close()
			s.dc = nil
		}
		return
	}

	if s.dc == nil {
		s.dc = gg.NewContext(width, height)
	} else if err := s.dc.Resize(width, height); err != nil {
		log.Printf("[SURFACE] resize to %dx%d failed: %v", width, height, err)
		return
	}
	s.dc.ClearWithColor(Background)
	s.dc.SetLineCap(gg.LineCapRound)
	s.dc.SetLineJoin(gg.LineJoinRound)
}

func (s *Surface) Ready() bool {
	return s != nil && s.dc != nil
}

// Size returns the buffer dimensions, or 0,0 when not ready.
func (s *Surface) Size() (int, int) {
	if !s.Ready() {
		return 0, 0
	}
	return s.dc.Width(), s.dc.Height()
}

func (s *Surface) Active() bool {
	return s.Ready() && s.active
}

// BeginStroke starts a path at (x, y). Nothing is painted until the
// first ExtendStroke.
func (s *Surface) BeginStroke(x, y float64, c color.Color, width int) {
	if !s.Ready() {
		return
	}
	s.active = true
	s.last = state.Point{X: x, Y: y}
	s.color = color.NRGBAModel.Convert(c).(color.NRGBA)
	s.width = width
	s.dc.ClearPath()
}

// ExtendStroke paints a segment from the last point to (x, y) with the
// stroke's own color and width, then moves the pen to (x, y).
func (s *Surface) ExtendStroke(x, y float64) {
	if !s.Active() {
		return
	}
	s.dc.SetColor(s.color)
	s.dc.SetLineWidth(float64(s.width))
	s.dc.SetLineCap(gg.LineCapRound)
	s.dc.SetLineJoin(gg.LineJoinRound)
	s.dc.MoveTo(s.last.X, s.last.Y)
	s.dc.LineTo(x, y)
	if err := s.dc.Stroke(); err != nil {
		log.Printf("[SURFACE] stroke segment failed: %v", err)
	}
	s.last = state.Point{X: x, Y: y}
}

func (s *Surface) EndStroke() {
	if !s.Ready() {
		return
	}
	s.active = false
	s.dc.ClearPath()
}

// Clear repaints the whole buffer white. An active stroke stays active.
func (s *Surface) Clear() {
	if !s.Ready() {
		return
	}
	s.dc.ClearWithColor(Background)
}

// Snapshot returns a copy of the current pixels. Later drawing does not
// affect it. It returns nil when the surface is not ready.
func (s *Surface) Snapshot() image.Image {
	if !s.Ready() {
		return nil
	}
	_ = s.dc.FlushGPU()
	return s.dc.Image()
}
