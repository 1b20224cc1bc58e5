package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"LocalCanvas/internal/board"
	"LocalCanvas/internal/state"
)

const appID = "io.localcanvas.app"

// Build assembles the window content around b and wires the board
// callbacks to the widgets. On mobile the sidebar is an overlay opened with
// the Menu button, so toggling it never resizes the drawing surface.
func Build(b *board.Board, win fyne.Window, isMobile bool) fyne.CanvasObject {
	cw := NewCanvasWidget(b)
	side := NewSidebar(b, win)

	b.OnPaint = cw.Repaint
	b.OnStatus = side.SetStatus
	b.OnChange = side.Update

	if !isMobile {
		b.Dispatch(state.ToggleMenu{})
		return container.NewBorder(nil, nil, side.Object(), nil, cw)
	}

	side.SetClosable(true)
	side.Update(b.State())
	menu := widget.NewButton("Menu", func() {
		b.Dispatch(state.ToggleMenu{})
	})
	top := container.NewHBox(
		widget.NewLabelWithStyle("Canvas", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		layout.NewSpacer(),
		menu,
	)
	overlay := container.NewStack(cw, container.NewHBox(side.Object()))
	return container.NewBorder(top, nil, nil, nil, overlay)
}

func RunApp(b *board.Board, width, height float32) {
	myApp := app.NewWithID(appID)
	myWindow := myApp.NewWindow("Canvas")
	myWindow.Resize(fyne.NewSize(width, height))

	content := Build(b, myWindow, fyne.CurrentDevice().IsMobile())

	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}
