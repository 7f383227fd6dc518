// pkg/core/geometry.go
package core

import "math"

// CanvasCenter is the center of the 200x200 canvas all symbol geometry is
// authored in.
var CanvasCenter = Point{X: 100, Y: 100}

// Point is a position or offset on the symbol canvas.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is a shorthand constructor for Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p * s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// ScaleAboutCenter scales p by s about the canvas center.
func (p Point) ScaleAboutCenter(s float64) Point {
	return CanvasCenter.Add(p.Sub(CanvasCenter).Scale(s))
}

// Box is an axis-aligned bounding box. The Empty box holds no area at all
// and is the identity element of Merge.
type Box struct {
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Empty bool    `json:"-"`
}

// NewBox returns the box spanned by the two corners, normalized so that
// X1 <= X2 and Y1 <= Y2.
func NewBox(x1, y1, x2, y2 float64) Box {
	return Box{
		X1: math.Min(x1, x2),
		Y1: math.Min(y1, y2),
		X2: math.Max(x1, x2),
		Y2: math.Max(y1, y2),
	}
}

// EmptyBox returns a box that contributes nothing when merged.
func EmptyBox() Box {
	return Box{Empty: true}
}

// BoxAround returns the box of a circle of radius r around c.
func BoxAround(c Point, r float64) Box {
	return NewBox(c.X-r, c.Y-r, c.X+r, c.Y+r)
}

func (b Box) Width() float64 {
	if b.Empty {
		return 0
	}
	return b.X2 - b.X1
}

func (b Box) Height() float64 {
	if b.Empty {
		return 0
	}
	return b.Y2 - b.Y1
}

func (b Box) Center() Point {
	return Point{(b.X1 + b.X2) / 2, (b.Y1 + b.Y2) / 2}
}

func (b Box) TopLeft() Point     { return Point{b.X1, b.Y1} }
func (b Box) TopRight() Point    { return Point{b.X2, b.Y1} }
func (b Box) BottomLeft() Point  { return Point{b.X1, b.Y2} }
func (b Box) BottomRight() Point { return Point{b.X2, b.Y2} }

// Merge returns the smallest box containing both b and o.
func (b Box) Merge(o Box) Box {
	switch {
	case b.Empty:
		return o
	case o.Empty:
		return b
	}
	return Box{
		X1: math.Min(b.X1, o.X1),
		Y1: math.Min(b.Y1, o.Y1),
		X2: math.Max(b.X2, o.X2),
		Y2: math.Max(b.Y2, o.Y2),
	}
}

// MergePoint returns the smallest box containing b and p.
func (b Box) MergePoint(p Point) Box {
	return b.Merge(Box{X1: p.X, Y1: p.Y, X2: p.X, Y2: p.Y})
}

// Translate moves the box by d.
func (b Box) Translate(d Point) Box {
	if b.Empty {
		return b
	}
	return Box{b.X1 + d.X, b.Y1 + d.Y, b.X2 + d.X, b.Y2 + d.Y, false}
}

// ScaleAboutCenter scales the box by s about the canvas center.
func (b Box) ScaleAboutCenter(s float64) Box {
	if b.Empty {
		return b
	}
	tl := b.TopLeft().ScaleAboutCenter(s)
	br := b.BottomRight().ScaleAboutCenter(s)
	return NewBox(tl.X, tl.Y, br.X, br.Y)
}

// Expand grows the box by d on every side.
func (b Box) Expand(d float64) Box {
	if b.Empty {
		return b
	}
	return NewBox(b.X1-d, b.Y1-d, b.X2+d, b.Y2+d)
}

// WithY1 returns a copy of the box with its top edge moved to y.
func (b Box) WithY1(y float64) Box {
	return NewBox(b.X1, y, b.X2, b.Y2)
}

// MergeBoxes folds Merge over boxes, starting from the empty box.
func MergeBoxes(boxes ...Box) Box {
	out := EmptyBox()
	for _, b := range boxes {
		out = out.Merge(b)
	}
	return out
}
