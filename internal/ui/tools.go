package ui

import (
	"fmt"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"LocalCanvas/internal/board"
	"LocalCanvas/internal/export"
	"LocalCanvas/internal/state"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

var palette = []color.Color{
	color.Black,
	color.NRGBA{R: 255, A: 255},
	color.NRGBA{G: 255, A: 255},
	color.NRGBA{B: 255, A: 255},
	color.NRGBA{R: 255, G: 255, A: 255},
}

// Sidebar holds the tool controls. Update mirrors the app state into it.
type Sidebar struct {
	root      *fyne.Container
	current   *canvas.Rectangle
	sizeLabel *widget.Label
	slider    *widget.Slider
	status    *widget.Label
	closeBtn  *widget.Button
}

func NewSidebar(b *board.Board, win fyne.Window) *Sidebar {
	s := &Sidebar{
		sizeLabel: widget.NewLabel(""),
		status:    widget.NewLabel("Ready"),
	}
	tools := b.State().Tools

	// --- Color ---
	setColor := func(c color.Color) {
		b.Dispatch(state.SetColor{Hex: state.FormatHex(c)})
	}
	s.current = canvas.NewRectangle(tools.Color)
	s.current.SetMinSize(fyne.NewSize(40, 28))
	pick := widget.NewButton("Pick…", func() {
		picker := dialog.NewColorPicker("Color", "Brush color", setColor, win)
		picker.Advanced = true
		picker.SetColor(b.State().Tools.Color)
		picker.Show()
	})
	swatches := container.NewHBox()
	for _, c := range palette {
		swatches.Add(newColorSwatch(c, setColor))
	}

	// --- Brush Size Slider ---
	s.slider = widget.NewSlider(state.MinBrushWidth, state.MaxBrushWidth)
	s.slider.Step = 1
	s.slider.SetValue(float64(tools.Width))
	s.slider.OnChanged = func(v float64) {
		b.Dispatch(state.SetBrushWidth{Width: int(v)})
	}
	s.sizeLabel.SetText(fmt.Sprintf("%dpx", tools.Width))

	// --- Commands ---
	clearBtn := widget.NewButton("Clear Canvas", func() {
		b.Dispatch(state.Clear{})
	})
	exportBtn := func(label string, f export.Format) *widget.Button {
		return widget.NewButton(label, func() {
			b.Dispatch(state.Export{Format: string(f)})
		})
	}
	saveAs := widget.NewButton("Save As…", func() {
		showSaveAs(b, win, s.SetStatus)
	})
	pdf := widget.NewButton("PDF", func() {
		b.Dispatch(state.ExportPDF{})
	})

	s.closeBtn = widget.NewButton("Close", func() {
		b.Dispatch(state.CloseMenu{})
	})
	s.closeBtn.Hide()

	s.root = container.NewVBox(
		container.NewHBox(widget.NewLabelWithStyle("Options", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}), s.closeBtn),
		widget.NewLabel("Color:"),
		container.NewHBox(s.current, pick),
		swatches,
		widget.NewSeparator(),
		widget.NewLabel("Brush Size:"),
		s.slider,
		s.sizeLabel,
		widget.NewSeparator(),
		clearBtn,
		widget.NewSeparator(),
		widget.NewLabel("Export As:"),
		exportBtn("WebP", export.WebP),
		exportBtn("PNG", export.PNG),
		exportBtn("JPEG", export.JPEG),
		saveAs,
		pdf,
		widget.NewSeparator(),
		s.status,
	)
	return s
}

func (s *Sidebar) Object() fyne.CanvasObject { return s.root }

// SetClosable shows the Close button, used when the sidebar is an overlay.
func (s *Sidebar) SetClosable(on bool) {
	if on {
		s.closeBtn.Show()
	} else {
		s.closeBtn.Hide()
	}
}

func (s *Sidebar) SetStatus(text string) {
	s.status.SetText(text)
}

func (s *Sidebar) Update(st state.AppState) {
	s.sizeLabel.SetText(fmt.Sprintf("%dpx", st.Tools.Width))
	if s.current.FillColor != color.Color(st.Tools.Color) {
		s.current.FillColor = st.Tools.Color
		s.current.Refresh()
	}
	if st.MenuOpen {
		s.root.Show()
	} else {
		s.root.Hide()
	}
}

// showSaveAs lets the user pick a destination; the extension chosen picks
// the encoder.
func showSaveAs(b *board.Board, win fyne.Window, status func(string)) {
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if w == nil {
			return
		}
		defer func() {
			if err := w.Close(); err != nil {
				log.Printf("Error closing writer: %v", err)
			}
		}()

		f := export.FormatForExtension(w.URI().Extension())
		if err := b.ExportTo(w, string(f)); err != nil {
			log.Printf("[EXPORT] save as %s failed: %v", w.URI(), err)
			status("Error saving file")
			return
		}
		status("Saved " + w.URI().Name())
	}, win)
	d.SetFileName(export.PNG.Filename())
	d.SetFilter(storage.NewExtensionFileFilter(extensions()))
	d.Show()
}

func extensions() []string {
	exts := []string{".jpg"}
	for _, f := range []export.Format{export.PNG, export.JPEG, export.WebP} {
		exts = append(exts, "."+string(f))
	}
	return exts
}
