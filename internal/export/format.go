package export

import "strings"

type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	WebP Format = "webp"
)

// Quality is the lossy encoder quality used for JPEG and WebP.
const Quality = 92

// FileBase is the download name without extension.
const FileBase = "canvas"

// ParseFormat maps a requested format to an encoder. Anything that is not
// png, jpeg or webp falls back to PNG.
func ParseFormat(s string) Format {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case JPEG:
		return JPEG
	case WebP:
		return WebP
	default:
		return PNG
	}
}

func (f Format) MIMEType() string {
	switch f {
	case JPEG:
		return "image/jpeg"
	case WebP:
		return "image/webp"
	default:
		return "image/png"
	}
}

// Lossy reports whether the format is encoded at Quality.
func (f Format) Lossy() bool {
	return f == JPEG || f == WebP
}

// Filename is the name the download is delivered under, e.g. canvas.webp.
func (f Format) Filename() string {
	return FileBase + "." + string(f)
}

// FormatForExtension maps a file extension such as ".jpg" to a format.
// Unknown extensions give PNG.
func FormatForExtension(ext string) Format {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "jpg" {
		return JPEG
	}
	return ParseFormat(ext)
}
