// Package render serializes composed scenes to SVG and computes the canvas
// box and the anchor metadata returned with the markup.
package render

import (
	"encoding/xml"
	"strings"

	"github.com/OCAP2/milsymbol/internal/color"
	"github.com/OCAP2/milsymbol/internal/compose"
	"github.com/OCAP2/milsymbol/internal/draw"
	"github.com/OCAP2/milsymbol/pkg/core"
)

const (
	svgNamespace = "http://www.w3.org/2000/svg"
	dashArray    = "8 8"
	noPaint      = "none"
)

// Render serializes scene under style.
func Render(scene compose.Scene, style core.Style) core.Output {
	style = style.Normalized()

	box := scene.Box
	if box.Empty {
		box = scene.FrameBox
	}
	if box.Empty {
		box = core.BoxAround(core.CanvasCenter, 0)
	}
	canvas := box.Expand(style.FrameStrokeWidth + style.Padding)

	nodes := scene.Nodes
	frameBox := scene.FrameBox
	anchor := scene.Anchor
	if s := style.ScaleFactor(); s != 1 {
		nodes = []draw.Node{draw.Scale(s, nodes...)}
		canvas = canvas.ScaleAboutCenter(s)
		frameBox = frameBox.ScaleAboutCenter(s)
		anchor = anchor.ScaleAboutCenter(s)
	}
	origin := canvas.TopLeft()

	w := newWriter(scene, style)
	w.open(canvas)
	for _, n := range nodes {
		w.node(n)
		w.sb.WriteByte('\n')
	}
	w.sb.WriteString("</svg>")

	return core.Output{
		SVG:      w.sb.String(),
		SVGBox:   canvas,
		FrameBox: frameBox.Translate(origin.Scale(-1)),
		Anchor:   anchor.Sub(origin),
	}
}

type writer struct {
	sb       strings.Builder
	params   color.Params
	frame    core.FrameAffiliation
	unfilled bool
	// strokeWidth replaces every node's stroke width when non-negative.
	strokeWidth float64
}

func newWriter(scene compose.Scene, style core.Style) *writer {
	w := &writer{
		params: color.Params{
			Affiliation: scene.Symbol.Affiliation,
			Civilian:    scene.Civilian,
			Mode:        style.ColorMode,
		},
		frame:       scene.FrameAffiliation,
		unfilled:    style.ColorMode == core.ColorModeUnfilled,
		strokeWidth: -1,
	}
	if style.UseColorOverride {
		c := style.ColorOverride
		w.params.Override = &c
	}
	if style.UseStrokeWidthOverride && style.StrokeWidthOverride >= 0 {
		w.strokeWidth = style.StrokeWidthOverride
	}
	return w
}

func (w *writer) open(canvas core.Box) {
	width, height := draw.FormatFloat(canvas.Width()), draw.FormatFloat(canvas.Height())
	w.sb.WriteString(`<svg xmlns="` + svgNamespace + `"`)
	w.attr("width", width)
	w.attr("height", height)
	w.attr("viewBox", draw.FormatFloat(canvas.X1)+" "+draw.FormatFloat(canvas.Y1)+" "+width+" "+height)
	w.sb.WriteString(">\n")
}

func (w *writer) attr(name, value string) {
	w.sb.WriteByte(' ')
	w.sb.WriteString(name)
	w.sb.WriteString(`="`)
	_ = xml.EscapeText(&w.sb, []byte(value))
	w.sb.WriteByte('"')
}

func (w *writer) num(name string, v float64) {
	w.attr(name, draw.FormatFloat(v))
}

// paint resolves a color role. Icon fills are left unpainted in unfilled
// mode.
func (w *writer) paint(role color.Role, shade *color.Shade, fill bool) string {
	if fill && w.unfilled && role == color.RoleIconFill {
		return noPaint
	}
	p := w.params
	p.Shade = shade
	c, ok := color.Resolve(role, p)
	if !ok {
		return noPaint
	}
	return c.String()
}

func (w *writer) stroke(n draw.Node) {
	width := n.StrokeWidth()
	if w.strokeWidth >= 0 {
		width = w.strokeWidth
	}
	w.num("stroke-width", width)
	if n.Stroke() != color.RoleNone && n.StrokeStyle() == draw.StrokeDashed {
		w.attr("stroke-dasharray", dashArray)
	}
}

func (w *writer) node(n draw.Node) {
	switch n.Kind() {
	case draw.KindPath:
		w.sb.WriteString("<path")
		w.attr("fill", w.paint(n.Fill(), n.Shade(), true))
		w.attr("stroke", w.paint(n.Stroke(), n.Shade(), false))
		w.attr("d", n.PathData())
		w.stroke(n)
		w.sb.WriteString("/>")

	case draw.KindCircle:
		c := n.Center()
		w.sb.WriteString("<circle")
		w.num("cx", c.X)
		w.num("cy", c.Y)
		w.num("r", n.Radius())
		w.attr("fill", w.paint(n.Fill(), n.Shade(), true))
		w.attr("stroke", w.paint(n.Stroke(), n.Shade(), false))
		w.stroke(n)
		w.sb.WriteString("/>")

	case draw.KindText:
		pos := n.Position()
		w.sb.WriteString("<text")
		w.num("x", pos.X)
		w.num("y", pos.Y)
		w.attr("fill", w.paint(n.Fill(), n.Shade(), true))
		w.attr("stroke", w.paint(n.Stroke(), n.Shade(), false))
		if n.Stroke() != color.RoleNone {
			w.stroke(n)
		}
		w.num("font-size", n.FontSize())
		w.attr("font-family", n.FontFamily())
		w.attr("font-weight", n.FontWeight().String())
		w.attr("text-anchor", n.Alignment().String())
		w.sb.WriteByte('>')
		_ = xml.EscapeText(&w.sb, []byte(n.Content()))
		w.sb.WriteString("</text>")

	case draw.KindTranslate:
		d := n.Delta()
		w.group("translate("+draw.FormatFloat(d.X)+" "+draw.FormatFloat(d.Y)+")", n.Children())

	case draw.KindScale:
		s := n.Factor()
		// scale about the canvas center
		a := draw.FormatFloat(core.CanvasCenter.X - core.CanvasCenter.X*s)
		w.group("translate("+a+" "+a+") scale("+draw.FormatFloat(s)+")", n.Children())

	case draw.KindVariant:
		w.node(n.Select(w.frame))
	}
}

func (w *writer) group(transform string, children []draw.Node) {
	w.sb.WriteString("<g")
	w.attr("transform", transform)
	w.sb.WriteByte('>')
	for _, c := range children {
		w.node(c)
	}
	w.sb.WriteString("</g>")
}
