package export

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/webp"
)

// testImage is white with a solid red square in the middle.
func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			c := color.RGBA{255, 255, 255, 255}
			if x >= 16 && x < 48 && y >= 12 && y < 36 {
				c = color.RGBA{255, 0, 0, 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func decode(t *testing.T, f Format, data []byte) image.Image {
	t.Helper()
	var (
		img image.Image
		err error
	)
	switch f {
	case JPEG:
		img, err = jpeg.Decode(bytes.NewReader(data))
	case WebP:
		img, err = webp.Decode(bytes.NewReader(data))
	default:
		img, err = png.Decode(bytes.NewReader(data))
	}
	if err != nil {
		t.Fatalf("decode %s: %v", f, err)
	}
	return img
}

func channelDiff(a, b color.Color) int {
	ar, ag, ab, _ := a.RGBA()
	br, bg, bb, _ := b.RGBA()
	max := 0
	for _, d := range []int{
		int(ar>>8) - int(br>>8),
		int(ag>>8) - int(bg>>8),
		int(ab>>8) - int(bb>>8),
	} {
		if d < 0 {
			d = -d
		}
		if d > max {
			max = d
		}
	}
	return max
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		name string
		mime string
	}{
		{"png", PNG, "canvas.png", "image/png"},
		{"jpeg", JPEG, "canvas.jpeg", "image/jpeg"},
		{"webp", WebP, "canvas.webp", "image/webp"},
		{"WEBP", WebP, "canvas.webp", "image/webp"},
		{"gif", PNG, "canvas.png", "image/png"},
		{"", PNG, "canvas.png", "image/png"},
		{"../../etc/passwd", PNG, "canvas.png", "image/png"},
	}
	for _, tt := range tests {
		f := ParseFormat(tt.in)
		if f != tt.want || f.Filename() != tt.name || f.MIMEType() != tt.mime {
			t.Errorf("ParseFormat(%q) = %s %s %s, want %s %s %s",
				tt.in, f, f.Filename(), f.MIMEType(), tt.want, tt.name, tt.mime)
		}
	}
	if PNG.Lossy() || !JPEG.Lossy() || !WebP.Lossy() {
		t.Error("Lossy() wrong")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	src := testImage()
	payloads := map[Format][]byte{}
	for _, f := range []Format{PNG, JPEG, WebP} {
		t.Run(string(f), func(t *testing.T) {
			data, err := EncodeBytes(src, f)
			if err != nil {
				t.Fatal(err)
			}
			payloads[f] = data

			got := decode(t, f, data)
			if got.Bounds().Size() != src.Bounds().Size() {
				t.Fatalf("size = %v, want %v", got.Bounds().Size(), src.Bounds().Size())
			}
			tolerance := 0
			if f.Lossy() {
				tolerance = 24
			}
			// Sample away from the square's edges, where lossy codecs ring.
			for _, p := range []image.Point{{2, 2}, {60, 44}, {32, 24}, {24, 16}, {40, 24}} {
				if d := channelDiff(got.At(p.X, p.Y), src.At(p.X, p.Y)); d > tolerance {
					t.Errorf("pixel %v off by %d (got %v want %v)", p, d, got.At(p.X, p.Y), src.At(p.X, p.Y))
				}
			}
		})
	}
	if bytes.Equal(payloads[PNG], payloads[JPEG]) || bytes.Equal(payloads[PNG], payloads[WebP]) || bytes.Equal(payloads[JPEG], payloads[WebP]) {
		t.Error("payloads for different formats are identical")
	}
}

func TestEncodePNGIsExact(t *testing.T) {
	src := testImage()
	data, err := EncodeBytes(src, PNG)
	if err != nil {
		t.Fatal(err)
	}
	got := decode(t, PNG, data)
	b := src.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if d := channelDiff(got.At(x, y), src.At(x, y)); d != 0 {
				t.Fatalf("pixel (%d,%d) differs by %d", x, y, d)
			}
		}
	}
}

func TestEncodeNil(t *testing.T) {
	if _, err := EncodeBytes(nil, PNG); !errors.Is(err, ErrNotReady) {
		t.Errorf("err = %v, want ErrNotReady", err)
	}
}

func TestDirDownloaderDeduplicates(t *testing.T) {
	dir := t.TempDir()
	d := DirDownloader{Dir: dir}

	var paths []string
	for i := 0; i < 3; i++ {
		p, err := d.Download("canvas.png", []byte{byte(i)})
		if err != nil {
			t.Fatal(err)
		}
		paths = append(paths, p)
	}
	want := []string{"canvas.png", "canvas (1).png", "canvas (2).png"}
	for i, p := range paths {
		if filepath.Base(p) != want[i] {
			t.Errorf("download %d saved as %s, want %s", i, filepath.Base(p), want[i])
		}
		data, err := os.ReadFile(p)
		if err != nil {
			t.Fatal(err)
		}
		if len(data) != 1 || data[0] != byte(i) {
			t.Errorf("download %d content = %v", i, data)
		}
	}
}

type memDownloader struct {
	names []string
	data  [][]byte
}

func (m *memDownloader) Download(name string, data []byte) (string, error) {
	m.names = append(m.names, name)
	m.data = append(m.data, data)
	return "mem://" + name, nil
}

func TestExporter(t *testing.T) {
	mem := &memDownloader{}
	e := NewExporter(mem)
	src := testImage()

	for _, format := range []string{"png", "jpeg", "webp", "bmp"} {
		if _, err := e.Export(src, format); err != nil {
			t.Fatalf("Export(%s): %v", format, err)
		}
	}
	want := []string{"canvas.png", "canvas.jpeg", "canvas.webp", "canvas.png"}
	for i, n := range mem.names {
		if n != want[i] {
			t.Errorf("name %d = %s, want %s", i, n, want[i])
		}
	}
	// The fallback is a real PNG.
	decode(t, PNG, mem.data[3])

	if _, err := e.Export(nil, "png"); !errors.Is(err, ErrNotReady) {
		t.Errorf("Export(nil) err = %v, want ErrNotReady", err)
	}
	if len(mem.names) != 4 {
		t.Errorf("not-ready export delivered a file")
	}
}

func TestExportPDF(t *testing.T) {
	mem := &memDownloader{}
	e := NewExporter(mem)
	if _, err := e.ExportPDF(testImage()); err != nil {
		t.Fatal(err)
	}
	if len(mem.names) != 1 || mem.names[0] != "canvas.pdf" {
		t.Fatalf("names = %v", mem.names)
	}
	if !bytes.HasPrefix(mem.data[0], []byte("%PDF-")) {
		t.Errorf("payload does not start with a PDF header")
	}
	if _, err := e.ExportPDF(nil); !errors.Is(err, ErrNotReady) {
		t.Errorf("ExportPDF(nil) err = %v, want ErrNotReady", err)
	}
}

func TestFormatForExtension(t *testing.T) {
	for ext, want := range map[string]Format{
		".png":  PNG,
		".jpg":  JPEG,
		".JPEG": JPEG,
		".webp": WebP,
		".txt":  PNG,
		"":      PNG,
	} {
		if got := FormatForExtension(ext); got != want {
			t.Errorf("FormatForExtension(%q) = %s, want %s", ext, got, want)
		}
	}
}
