package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/chai2010/webp"
)

// ErrNotReady is returned when there is no buffer to export.
var ErrNotReady = errors.New("export: surface not ready")

// Encode writes img to w in format f. PNG is lossless; JPEG and WebP are
// encoded at Quality.
func Encode(w io.Writer, img image.Image, f Format) error {
	if img == nil {
		return ErrNotReady
	}
	var err error
	switch f {
	case JPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: Quality})
	case WebP:
		err = webp.Encode(w, img, &webp.Options{Lossless: false, Quality: Quality})
	default:
		err = png.Encode(w, img)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	return nil
}

// EncodeBytes is Encode into a fresh buffer.
func EncodeBytes(img image.Image, f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
