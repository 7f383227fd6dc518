// pkg/core/style.go
package core

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// NominalIconSize is the icon size the canvas geometry is authored at.
	NominalIconSize = 100.0

	DefaultFrameStrokeWidth = 4.0
	DefaultHQStaffLength    = 50.0
)

// Color is an RGB triple.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGB is a shorthand constructor for Color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// String formats the color the way SVG attributes expect it.
func (c Color) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// ParseColor accepts "#rrggbb" or "r,g,b".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		if len(s) != 7 {
			return Color{}, fmt.Errorf("invalid hex color %q", s)
		}
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Color{}, fmt.Errorf("invalid color %q: expected r,g,b", s)
	}
	var rgb [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color component %q: %w", p, err)
		}
		rgb[i] = uint8(v)
	}
	return RGB(rgb[0], rgb[1], rgb[2]), nil
}

// Style configures a single render call. The zero Style hides every layer;
// start from DefaultStyle.
type Style struct {
	ColorMode        ColorMode
	UseCivilianColor bool
	FrameStrokeWidth float64
	HQStaffLength    float64
	Padding          float64

	ShowFrame      bool
	ShowEntityIcon bool
	ShowModifiers  bool
	ShowAmplifiers bool

	UseColorOverride bool
	ColorOverride    Color

	UseStrokeWidthOverride bool
	StrokeWidthOverride    float64

	// IconSize is the requested icon size. Anything other than
	// NominalIconSize scales the whole symbol.
	IconSize float64
}

// DefaultStyle returns the style symbols are rendered with unless the
// caller asks otherwise.
func DefaultStyle() Style {
	return Style{
		ColorMode:        ColorModeLight,
		UseCivilianColor: true,
		FrameStrokeWidth: DefaultFrameStrokeWidth,
		HQStaffLength:    DefaultHQStaffLength,
		ShowFrame:        true,
		ShowEntityIcon:   true,
		ShowModifiers:    true,
		ShowAmplifiers:   true,
		IconSize:         NominalIconSize,
	}
}

// Normalized replaces out of range values with their defaults.
func (s Style) Normalized() Style {
	if s.FrameStrokeWidth <= 0 {
		s.FrameStrokeWidth = DefaultFrameStrokeWidth
	}
	if s.IconSize <= 0 {
		s.IconSize = NominalIconSize
	}
	if s.Padding < 0 {
		s.Padding = 0
	}
	if s.HQStaffLength < 0 {
		s.HQStaffLength = 0
	}
	return s
}

// ScaleFactor is the uniform scale applied after composition.
func (s Style) ScaleFactor() float64 {
	if s.IconSize <= 0 {
		return 1
	}
	return s.IconSize / NominalIconSize
}

// PositionOnly reports whether only the position marker is drawn.
func (s Style) PositionOnly() bool {
	return !s.ShowFrame && !s.ShowEntityIcon
}

func (s Style) WithColorMode(m ColorMode) Style {
	s.ColorMode = m
	return s
}

func (s Style) WithColorOverride(c Color) Style {
	s.UseColorOverride = true
	s.ColorOverride = c
	return s
}

func (s Style) WithStrokeWidthOverride(w float64) Style {
	s.UseStrokeWidthOverride = true
	s.StrokeWidthOverride = w
	return s
}

func (s Style) WithIconSize(size float64) Style {
	s.IconSize = size
	return s
}

// Output is the result of rendering a symbol.
type Output struct {
	SVG string `json:"svg"`
	// SVGBox is the canvas box in symbol coordinates.
	SVGBox Box `json:"svgBox"`
	// FrameBox and Anchor are relative to the top-left corner of SVGBox.
	FrameBox Box   `json:"frameBox"`
	Anchor   Point `json:"anchor"`
}
