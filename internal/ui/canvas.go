package ui

import (
	"image"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"LocalCanvas/internal/board"
	"LocalCanvas/internal/state"
)

// CanvasWidget shows the board's raster and feeds it pointer input.
// Mouse and touch events are normalized here so the board never sees
// which device produced them.
type CanvasWidget struct {
	widget.BaseWidget
	board  *board.Board
	raster *canvas.Raster

	pixelW, pixelH int
}

var _ fyne.Widget = (*CanvasWidget)(nil)
var _ fyne.Draggable = (*CanvasWidget)(nil)
var _ desktop.Mouseable = (*CanvasWidget)(nil)
var _ desktop.Hoverable = (*CanvasWidget)(nil)
var _ mobile.Touchable = (*CanvasWidget)(nil)

var blank = func() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.White)
	return img
}()

func NewCanvasWidget(b *board.Board) *CanvasWidget {
	c := &CanvasWidget{board: b}
	c.raster = canvas.NewRaster(func(w, h int) image.Image {
		if img := c.board.Image(); img != nil {
			return img
		}
		return blank
	})
	c.raster.ScaleMode = canvas.ImageScalePixels
	c.ExtendBaseWidget(c)
	return c
}

// Repaint redraws the raster from the board buffer.
func (c *CanvasWidget) Repaint() {
	c.raster.Refresh()
}

func (c *CanvasWidget) scale() float32 {
	a := fyne.CurrentApp()
	if a == nil {
		return 1
	}
	if cv := a.Driver().CanvasForObject(c); cv != nil && cv.Scale() > 0 {
		return cv.Scale()
	}
	return 1
}

func (c *CanvasWidget) origin() state.Point {
	a := fyne.CurrentApp()
	if a == nil {
		return state.Point{}
	}
	pos := a.Driver().AbsolutePositionForObject(c)
	return state.Point{X: float64(pos.X), Y: float64(pos.Y)}
}

func toPoint(p fyne.Position) state.Point {
	return state.Point{X: float64(p.X), Y: float64(p.Y)}
}

func (c *CanvasWidget) pointer(ev state.PointerEvent) {
	c.board.Dispatch(ev.Normalize(c.origin(), float64(c.scale())))
}

// resized reinitializes the board when the pixel size really changed.
// Layout passes that keep the size leave the drawing alone.
func (c *CanvasWidget) resized(size fyne.Size) {
	s := c.scale()
	w := int(math.Round(float64(size.Width * s)))
	h := int(math.Round(float64(size.Height * s)))
	if w == c.pixelW && h == c.pixelH {
		return
	}
	c.pixelW, c.pixelH = w, h
	c.board.Dispatch(state.Resize{Width: w, Height: h})
}

func (c *CanvasWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	c.pointer(state.MouseEvent(state.PhasePress, toPoint(e.AbsolutePosition)))
}

func (c *CanvasWidget) MouseUp(e *desktop.MouseEvent) {
	c.pointer(state.MouseEvent(state.PhaseRelease, toPoint(e.AbsolutePosition)))
}

func (c *CanvasWidget) MouseIn(*desktop.MouseEvent) {}

func (c *CanvasWidget) MouseMoved(e *desktop.MouseEvent) {
	c.pointer(state.MouseEvent(state.PhaseMove, toPoint(e.AbsolutePosition)))
}

func (c *CanvasWidget) MouseOut() {
	c.board.Dispatch(state.Pointer{Phase: state.PhaseLeave})
}

// Dragged consumes the drag so no enclosing scroller moves while drawing.
func (c *CanvasWidget) Dragged(e *fyne.DragEvent) {
	c.pointer(state.MouseEvent(state.PhaseMove, toPoint(e.AbsolutePosition)))
}

func (c *CanvasWidget) DragEnd() {
	c.board.Dispatch(state.Pointer{Phase: state.PhaseRelease})
}

func (c *CanvasWidget) TouchDown(e *mobile.TouchEvent) {
	c.pointer(state.TouchEvent(state.PhasePress, toPoint(e.AbsolutePosition)))
}

func (c *CanvasWidget) TouchUp(*mobile.TouchEvent) {
	c.pointer(state.TouchEvent(state.PhaseRelease))
}

func (c *CanvasWidget) TouchCancel(*mobile.TouchEvent) {
	c.pointer(state.TouchEvent(state.PhaseLeave))
}

func (c *CanvasWidget) CreateRenderer() fyne.WidgetRenderer {
	return &canvasRenderer{widget: c}
}

type canvasRenderer struct {
	widget *CanvasWidget
}

func (r *canvasRenderer) Layout(size fyne.Size) {
	r.widget.raster.Resize(size)
	r.widget.resized(size)
}

func (r *canvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *canvasRenderer) Refresh() {
	r.widget.raster.Refresh()
}

func (r *canvasRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.widget.raster}
}

func (r *canvasRenderer) Destroy() {}
