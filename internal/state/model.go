package state

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Brush width bounds, matching the sidebar slider.
const (
	MinBrushWidth = 1
	MaxBrushWidth = 50
)

type Point struct{ X, Y float64 }

func (p Point) Sub(o Point) Point { return Point{X: p.X - o.X, Y: p.Y - o.Y} }

func (p Point) Scale(f float64) Point { return Point{X: p.X * f, Y: p.Y * f} }

// ToolSettings are the color and width applied to new strokes.
type ToolSettings struct {
	Color color.NRGBA
	Width int
}

// DefaultTools is black at 5px.
func DefaultTools() ToolSettings {
	return ToolSettings{Color: color.NRGBA{A: 255}, Width: 5}
}

// Hex returns the tool color as "#rrggbb".
func (t ToolSettings) Hex() string {
	return FormatHex(t.Color)
}

// Stroke is the transient state of one press-to-release gesture.
// Color and Width are copied from ToolSettings when the stroke begins.
type Stroke struct {
	Active bool
	Seq    uint64
	Pos    Point
	Color  color.NRGBA
	Width  int
}

// ClampWidth forces w into [MinBrushWidth, MaxBrushWidth].
func ClampWidth(w int) int {
	if w < MinBrushWidth {
		return MinBrushWidth
	}
	if w > MaxBrushWidth {
		return MaxBrushWidth
	}
	return w
}

// ParseHexColor parses "#rgb" or "#rrggbb" into an opaque color.
func ParseHexColor(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// FormatHex renders c as "#rrggbb", ignoring alpha.
func FormatHex(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
