// Package draw holds the scene tree symbols are composed of. Nodes carry
// color roles, never concrete colors; colors are resolved when the tree
// is serialized.
package draw

import (
	"github.com/OCAP2/milsymbol/internal/color"
	"github.com/OCAP2/milsymbol/pkg/core"
)

// Kind tags the active variant of a Node.
type Kind int

const (
	KindEmpty Kind = iota
	KindPath
	KindCircle
	KindText
	KindTranslate
	KindScale
	KindVariant
)

func (k Kind) String() string {
	switch k {
	case KindPath:
		return "path"
	case KindCircle:
		return "circle"
	case KindText:
		return "text"
	case KindTranslate:
		return "translate"
	case KindScale:
		return "scale"
	case KindVariant:
		return "variant"
	default:
		return "empty"
	}
}

// StrokeStyle is the dash pattern of a stroke.
type StrokeStyle int

const (
	StrokeSolid StrokeStyle = iota
	StrokeDashed
)

// FontWeight of a text node.
type FontWeight int

const (
	FontNormal FontWeight = iota
	FontBold
)

func (w FontWeight) String() string {
	if w == FontBold {
		return "bold"
	}
	return "normal"
}

// Alignment is the horizontal anchor of a text node.
type Alignment int

const (
	AlignMiddle Alignment = iota
	AlignStart
	AlignEnd
)

func (a Alignment) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignEnd:
		return "end"
	default:
		return "middle"
	}
}

const (
	DefaultStrokeWidth = 4.0
	DefaultFontFamily  = "Arial"
)

// Node is one draw command. Exactly one variant is active, chosen by
// Kind. The zero Node is empty: it draws nothing and has an empty box.
//
// Nodes are values; every With* method returns a modified copy and child
// slices are never written after construction.
type Node struct {
	kind Kind

	fill        color.Role
	stroke      color.Role
	strokeWidth float64
	strokeStyle StrokeStyle
	shade       *color.Shade

	// path
	d   string
	box core.Box

	// circle
	center core.Point
	radius float64

	// text
	text   string
	pos    core.Point
	size   float64
	family string
	weight FontWeight
	align  Alignment

	// translate, scale, variant
	delta    core.Point
	factor   float64
	children []Node
}

func leaf(kind Kind) Node {
	return Node{
		kind:        kind,
		fill:        color.RoleNone,
		stroke:      color.RoleIcon,
		strokeWidth: DefaultStrokeWidth,
	}
}

// Path returns a path node with SVG path data d and its precomputed box.
func Path(d string, box core.Box) Node {
	n := leaf(KindPath)
	n.d = d
	n.box = box
	return n
}

// Circle returns a circle node.
func Circle(center core.Point, radius float64) Node {
	n := leaf(KindCircle)
	n.center = center
	n.radius = radius
	return n
}

// Text returns a text node filled with the icon color and no stroke.
func Text(s string, pos core.Point, size float64, weight FontWeight, align Alignment) Node {
	n := leaf(KindText)
	n.fill = color.RoleIcon
	n.stroke = color.RoleNone
	n.text = s
	n.pos = pos
	n.size = size
	n.family = DefaultFontFamily
	n.weight = weight
	n.align = align
	return n
}

// Translate groups children and moves them by delta.
func Translate(delta core.Point, children ...Node) Node {
	return Node{kind: KindTranslate, delta: delta, children: children}
}

// Group is an untransformed group of children.
func Group(children ...Node) Node {
	return Translate(core.Point{}, children...)
}

// Scale groups children and scales them by factor about the canvas center.
func Scale(factor float64, children ...Node) Node {
	return Node{kind: KindScale, factor: factor, children: children}
}

// Variant holds one subtree per frame affiliation. Only the subtree of the
// affiliation being rendered is drawn.
func Variant(hostile, friend, neutral, unknown Node) Node {
	children := make([]Node, 4)
	children[core.FrameHostile] = hostile
	children[core.FrameFriend] = friend
	children[core.FrameNeutral] = neutral
	children[core.FrameUnknown] = unknown
	return Node{kind: KindVariant, children: children}
}

func (n Node) Kind() Kind               { return n.kind }
func (n Node) IsEmpty() bool            { return n.kind == KindEmpty }
func (n Node) Fill() color.Role         { return n.fill }
func (n Node) Stroke() color.Role       { return n.stroke }
func (n Node) StrokeWidth() float64     { return n.strokeWidth }
func (n Node) StrokeStyle() StrokeStyle { return n.strokeStyle }
func (n Node) Shade() *color.Shade      { return n.shade }
func (n Node) PathData() string         { return n.d }
func (n Node) Center() core.Point       { return n.center }
func (n Node) Radius() float64          { return n.radius }
func (n Node) Content() string          { return n.text }
func (n Node) Position() core.Point     { return n.pos }
func (n Node) FontSize() float64        { return n.size }
func (n Node) FontFamily() string       { return n.family }
func (n Node) FontWeight() FontWeight   { return n.weight }
func (n Node) Alignment() Alignment     { return n.align }
func (n Node) Delta() core.Point        { return n.delta }
func (n Node) Factor() float64          { return n.factor }

// Children returns a copy of the node's children.
func (n Node) Children() []Node {
	return append([]Node(nil), n.children...)
}

// Select returns the subtree of a variant node for the given frame
// affiliation. Any other node is returned unchanged.
func (n Node) Select(f core.FrameAffiliation) Node {
	if n.kind != KindVariant {
		return n
	}
	if f < 0 || int(f) >= len(n.children) {
		return Node{}
	}
	return n.children[f]
}

func (n Node) WithFill(r color.Role) Node {
	n.fill = r
	return n
}

func (n Node) WithStroke(r color.Role) Node {
	n.stroke = r
	return n
}

func (n Node) WithStrokeWidth(w float64) Node {
	n.strokeWidth = w
	return n
}

func (n Node) WithStrokeStyle(s StrokeStyle) Node {
	n.strokeStyle = s
	return n
}

// WithShade pins the node's icon colors to one palette row.
func (n Node) WithShade(s color.Shade) Node {
	n.shade = &s
	return n
}

func (n Node) WithFontFamily(family string) Node {
	n.family = family
	return n
}

// Box returns the node's bounding box. Variant nodes report the union of
// all their subtrees; use BoxFor when the affiliation is known.
func (n Node) Box() core.Box {
	return n.bounds(func(children []Node) core.Box {
		out := core.EmptyBox()
		for _, c := range children {
			out = out.Merge(c.Box())
		}
		return out
	})
}

// BoxFor returns the bounding box as drawn for frame affiliation f.
func (n Node) BoxFor(f core.FrameAffiliation) core.Box {
	if n.kind == KindVariant {
		return n.Select(f).BoxFor(f)
	}
	return n.bounds(func(children []Node) core.Box {
		out := core.EmptyBox()
		for _, c := range children {
			out = out.Merge(c.BoxFor(f))
		}
		return out
	})
}

func (n Node) bounds(union func([]Node) core.Box) core.Box {
	switch n.kind {
	case KindPath:
		return n.box
	case KindCircle:
		return core.BoxAround(n.center, n.radius)
	case KindText:
		return textBox(n)
	case KindTranslate:
		return union(n.children).Translate(n.delta)
	case KindScale:
		return union(n.children).ScaleAboutCenter(n.factor)
	case KindVariant:
		return union(n.children)
	default:
		return core.EmptyBox()
	}
}

// BoxOf merges the boxes of nodes as drawn for frame affiliation f.
func BoxOf(f core.FrameAffiliation, nodes ...Node) core.Box {
	out := core.EmptyBox()
	for _, n := range nodes {
		out = out.Merge(n.BoxFor(f))
	}
	return out
}
