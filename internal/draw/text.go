package draw

import (
	"unicode/utf8"

	"github.com/OCAP2/milsymbol/pkg/core"
)

// Approximate glyph metrics of a sans-serif font, as fractions of the
// font size.
const (
	glyphAdvance = 0.6
	glyphAscent  = 0.75
	glyphDescent = 0.2
)

func textBox(n Node) core.Box {
	if n.text == "" {
		return core.EmptyBox()
	}
	w := glyphAdvance * n.size * float64(utf8.RuneCountInString(n.text))
	if n.weight == FontBold {
		w *= 1.1
	}

	var x1 float64
	switch n.align {
	case AlignStart:
		x1 = n.pos.X
	case AlignEnd:
		x1 = n.pos.X - w
	default:
		x1 = n.pos.X - w/2
	}
	return core.NewBox(x1, n.pos.Y-glyphAscent*n.size, x1+w, n.pos.Y+glyphDescent*n.size)
}

// AutoText is a centered label inside the frame, shrunk as it gets longer.
func AutoText(s string, weight FontWeight) Node {
	size, y := 42.0, 115.0
	switch n := utf8.RuneCountInString(s); {
	case n == 1:
		size = 45
	case n == 3:
		size, y = 35, 110
	case n >= 4:
		size, y = 32, 110
	}
	return Text(s, core.Pt(100, y), size, weight, AlignMiddle)
}

// ModifierText1 is a label in the upper band of the frame.
func ModifierText1(s string) Node {
	size := 30.0
	switch n := utf8.RuneCountInString(s); {
	case n >= 4:
		size = 22
	case n == 3:
		size = 25
	}
	return Text(s, core.Pt(100, 77), size, FontNormal, AlignMiddle)
}

// ModifierText2 is a label in the lower band of the frame.
func ModifierText2(s string) Node {
	size, y := 30.0, 145.0
	switch n := utf8.RuneCountInString(s); {
	case n >= 4:
		size, y = 20, 135
	case n == 3:
		size, y = 25, 140
	}
	return Text(s, core.Pt(100, y), size, FontNormal, AlignMiddle)
}
