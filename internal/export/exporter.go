package export

import (
	"bytes"
	"image"
	"log"
)

// Exporter encodes snapshots and delivers them through a Downloader.
type Exporter struct {
	Downloader Downloader
}

func NewExporter(d Downloader) *Exporter {
	return &Exporter{Downloader: d}
}

// Export encodes img in the requested format and delivers it as
// canvas.<format>. Unknown formats are exported as canvas.png.
// It returns where the file ended up.
func (e *Exporter) Export(img image.Image, format string) (string, error) {
	f := ParseFormat(format)
	if string(f) != format {
		log.Printf("[EXPORT] format %q not recognised, using %s", format, f)
	}
	data, err := EncodeBytes(img, f)
	if err != nil {
		return "", err
	}
	return e.Downloader.Download(f.Filename(), data)
}

// ExportPDF wraps img in a one-page PDF and delivers it as canvas.pdf.
func (e *Exporter) ExportPDF(img image.Image) (string, error) {
	if img == nil {
		return "", ErrNotReady
	}
	var buf bytes.Buffer
	if err := WritePDF(&buf, img); err != nil {
		return "", err
	}
	return e.Downloader.Download(PDFFilename, buf.Bytes())
}
