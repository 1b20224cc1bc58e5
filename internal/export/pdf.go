package export

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// PDFFilename is the download name for ExportPDF.
const PDFFilename = FileBase + ".pdf"

const pdfMargin = 10.0 // mm

// WritePDF lays the raster out on a single A4 page, landscape when the
// image is wider than tall, scaled to fit inside the margins.
func WritePDF(w io.Writer, img image.Image) error {
	if img == nil {
		return ErrNotReady
	}
	raster, err := EncodeBytes(img, PNG)
	if err != nil {
		return err
	}

	b := img.Bounds()
	orientation := "P"
	if b.Dx() > b.Dy() {
		orientation = "L"
	}
	p := gofpdf.New(orientation, "mm", "A4", "")
	p.SetTitle("Canvas", true)
	p.AddPage()

	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("canvas", opt, bytes.NewReader(raster))

	pageW, pageH := p.GetPageSize()
	availW, availH := pageW-2*pdfMargin, pageH-2*pdfMargin
	scale := availW / float64(b.Dx())
	if s := availH / float64(b.Dy()); s < scale {
		scale = s
	}
	drawW, drawH := float64(b.Dx())*scale, float64(b.Dy())*scale
	x := (pageW - drawW) / 2
	y := (pageH - drawH) / 2
	p.ImageOptions("canvas", x, y, drawW, drawH, false, opt, 0, "")

	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
